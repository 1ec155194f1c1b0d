package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/intake/internal/form"
)

// SectionsModel toggles the optional blocks of the form. A child section is
// listed only while its parent is shown.
type SectionsModel struct {
	CommonModel
	sections *form.Sections
	cursor   int
}

func NewSectionsModel(s *form.Sections) SectionsModel {
	return SectionsModel{sections: s}
}

func (m SectionsModel) Title() string { return "Optional Sections" }

func (m SectionsModel) ShortHelp() string { return "Esc: back | Space/Enter: toggle" }

func (m SectionsModel) Init() tea.Cmd { return nil }

func (m SectionsModel) rows() []form.Section {
	var rows []form.Section

	for _, id := range form.AllSections {
		if p, ok := m.sections.Parent(id); ok && !m.sections.Visible(p) {
			continue
		}

		rows = append(rows, id)
	}

	return rows
}

func (m SectionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows := m.rows()

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case " ", "enter":
		if m.cursor < len(rows) {
			m.sections.Toggle(rows[m.cursor])
		}
	}

	if n := len(m.rows()); m.cursor >= n {
		m.cursor = n - 1
	}

	return m, nil
}

func (m SectionsModel) View() string {
	var b strings.Builder

	b.WriteString("Which of these should appear on your site?\n\n")

	for i, id := range m.rows() {
		box := "[ ]"
		if m.sections.Own(id) {
			box = "[x]"
		}

		indent := ""
		if _, ok := m.sections.Parent(id); ok {
			indent = "    "
		}

		b.WriteString(fmt.Sprintf("%s %s%s %s\n", cursor(i == m.cursor), indent, box, id.Title()))
	}

	return padded.Render(b.String())
}

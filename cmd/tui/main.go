package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/intake/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/intake/internal/client"
	"github.com/MrJamesThe3rd/intake/internal/config"
	"github.com/MrJamesThe3rd/intake/internal/form"
	"github.com/MrJamesThe3rd/intake/internal/importer"
)

type model struct {
	session   *form.Session
	assembler *form.Assembler
	hints     *view.Hints
	parser    *importer.Parser

	cursor  int
	current view.View
	width   int
	height  int
}

// menuItem is one entry of the main menu. Entries for hidden sections are
// left out, so the menu is rebuilt on every render.
type menuItem struct {
	label string
	open  func(m model) view.View
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	api := client.New(cfg.Client.BaseURL, cfg.Client.Timeout)

	return model{
		session:   form.NewSession(),
		assembler: form.NewAssembler(api, api),
		hints:     view.NewHints(),
		parser:    importer.NewParser(),
	}
}

func (m model) menu() []menuItem {
	items := []menuItem{
		{label: "Business profile", open: func(m model) view.View { return view.NewProfileModel(m.session, m.hints) }},
		{label: "Optional sections", open: func(m model) view.View { return view.NewSectionsModel(m.session.Sections) }},
	}

	for _, e := range m.session.Lists() {
		if !m.session.Enabled(e) {
			continue
		}

		list := e.List
		label := fmt.Sprintf("%s (%d)", list.Name(), list.Len())
		items = append(items, menuItem{label: label, open: func(m model) view.View { return view.NewRecordsModel(list, m.hints) }})
	}

	if m.session.Sections.Visible(form.SectionInstallation) {
		label := fmt.Sprintf("Installation process (%d)", m.session.InstallationSteps.Len())
		items = append(items, menuItem{label: label, open: func(m model) view.View {
			return view.NewStepsModel(m.session.InstallationSteps, m.hints)
		}})
	}

	return append(items,
		menuItem{label: "Import service areas from CSV", open: func(m model) view.View {
			return view.NewAreasImportModel(m.session.ServiceAreas, m.parser)
		}},
		menuItem{label: "Review and submit", open: func(m model) view.View { return view.NewSubmitModel(m.session, m.assembler) }},
	)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.current == nil {
			return m.updateMenu(msg)
		}
	case view.BackMsg:
		m.current = nil

		if n := len(m.menu()); m.cursor >= n {
			m.cursor = n - 1
		}

		return m, nil
	}

	if m.current == nil {
		return m, nil
	}

	next, cmd := m.current.Update(msg)
	if v, ok := next.(view.View); ok {
		m.current = v
	}

	return m, cmd
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menu()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter":
		m.current = items[m.cursor].open(m)

		cmds := []tea.Cmd{m.current.Init()}
		if m.width > 0 {
			size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
			cmds = append(cmds, func() tea.Msg { return size })
		}

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.current != nil {
		return titleStyle.Render(m.current.Title()) + "\n" +
			m.current.View() + "\n" +
			helpStyle.Render(m.current.ShortHelp())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Business Profile Intake") + "\n\n")

	for i, item := range m.menu() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		b.WriteString(cursor + item.label + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("Enter: open | q: quit"))

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

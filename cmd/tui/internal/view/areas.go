package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/intake/internal/form"
	"github.com/MrJamesThe3rd/intake/internal/importer"
	"github.com/MrJamesThe3rd/intake/internal/profile"
)

type areasState int

const (
	areasStatePick areasState = iota
	areasStateImporting
	areasStateResult
)

// AreasImportModel loads service areas from a spreadsheet export into the
// session.
type AreasImportModel struct {
	CommonModel
	areas  *form.Editor[profile.ServiceArea]
	parser *importer.Parser

	state      areasState
	filePicker filepicker.Model
	status     string
	err        error
}

func NewAreasImportModel(areas *form.Editor[profile.ServiceArea], parser *importer.Parser) AreasImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".tsv", ".txt"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return AreasImportModel{areas: areas, parser: parser, filePicker: fp}
}

func (m AreasImportModel) Title() string { return "Import Service Areas" }

func (m AreasImportModel) ShortHelp() string { return "Esc: back | Enter: select" }

func (m AreasImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m AreasImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == areasStateResult {
				m.state = areasStatePick
				m.status = ""
				m.err = nil

				return m, nil
			}

			return m, Back
		}

	case areasResultMsg:
		m.state = areasStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		added := m.areas.Append(msg.result.Areas...)
		m.status = fmt.Sprintf("Added %s (%s layout).", Plural(added, "service area"), msg.result.Layout)

		if msg.result.Skipped > 0 {
			m.status += fmt.Sprintf(" Skipped %s (blank or repeated).", Plural(msg.result.Skipped, "row"))
		}

		return m, nil
	}

	if m.state != areasStatePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = areasStateImporting
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m AreasImportModel) View() string {
	switch m.state {
	case areasStateImporting:
		return padded.Render(m.status)
	case areasStateResult:
		style := successStyle
		if m.err != nil {
			style = errorStyle
		}

		return padded.Render(style.Render(m.status) + "\n\n(Esc to go back)")
	}

	return padded.Render("Select a CSV of the areas you serve:\n\n" + m.filePicker.View())
}

type areasResultMsg struct {
	result *importer.Result
	err    error
}

func (m AreasImportModel) importCmd(path string) tea.Cmd {
	parser := m.parser

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return areasResultMsg{err: err}
		}
		defer f.Close()

		res, err := parser.Parse(f)

		return areasResultMsg{result: res, err: err}
	}
}

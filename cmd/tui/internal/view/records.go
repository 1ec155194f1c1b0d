package view

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/intake/internal/form"
	"github.com/MrJamesThe3rd/intake/internal/profile"
)

const hintImages = "records.images"

var imageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic"}

type recordsState int

const (
	recordsStateList recordsState = iota
	recordsStateForm
	recordsStateImages
	recordsStatePick
)

// RecordsModel drives the add/edit/delete lifecycle of one record list.
type RecordsModel struct {
	CommonModel
	list  form.List
	hints *Hints

	state      recordsState
	cursor     int
	imgCursor  int
	form       *huh.Form
	filePicker filepicker.Model
	status     string
}

func NewRecordsModel(l form.List, hints *Hints) RecordsModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = imageTypes
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return RecordsModel{list: l, hints: hints, filePicker: fp}
}

func (m RecordsModel) Title() string { return m.list.Name() }

func (m RecordsModel) ShortHelp() string {
	switch m.state {
	case recordsStateForm:
		return "Esc: cancel | Enter/Tab: next field"
	case recordsStateImages:
		return "a: add image | d: remove image | Enter: save | Esc: cancel"
	case recordsStatePick:
		return "Enter: select | Esc: back"
	}

	return "a: add | Enter: edit | d: delete | Esc: back"
}

func (m RecordsModel) Init() tea.Cmd { return nil }

func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case recordsStateForm:
		return m.updateForm(msg)
	case recordsStateImages:
		return m.updateImages(msg)
	case recordsStatePick:
		return m.updatePick(msg)
	}

	return m.updateList(msg)
}

func (m RecordsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case "a":
		m.list.OpenForCreate()
		m.status = ""

		return m.openForm()
	case "enter":
		if err := m.list.OpenForEdit(m.cursor); err != nil {
			return m, nil
		}

		m.status = ""

		return m.openForm()
	case "d":
		m.list.Remove(m.cursor)

		if m.cursor >= m.list.Len() && m.cursor > 0 {
			m.cursor--
		}

		m.status = "Removed."
	}

	return m, nil
}

func (m RecordsModel) openForm() (tea.Model, tea.Cmd) {
	var fields []huh.Field

	for _, b := range m.list.Bindings() {
		title := b.Title
		if b.Required {
			title += " *"
		}

		if b.Long {
			fields = append(fields, huh.NewText().Key(b.Key).Title(title).Value(b.Value))
			continue
		}

		fields = append(fields, huh.NewInput().Key(b.Key).Title(title).Value(b.Value))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithWidth(60).WithShowHelp(false)
	m.state = recordsStateForm

	return m, m.form.Init()
}

func (m RecordsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.cancel()
	}

	f, cmd := m.form.Update(msg)
	if ff, ok := f.(*huh.Form); ok {
		m.form = ff
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.list.Illustrated() {
		m.state = recordsStateImages
		m.imgCursor = 0

		return m, nil
	}

	return m.confirm()
}

func (m RecordsModel) updateImages(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.list.DraftAttachments())

	switch keyMsg.String() {
	case "esc":
		return m.cancel()
	case hideTipKey:
		m.hints.Dismiss(hintImages)
	case "up", "k":
		if m.imgCursor > 0 {
			m.imgCursor--
		}
	case "down", "j":
		if m.imgCursor < n-1 {
			m.imgCursor++
		}
	case "a":
		m.state = recordsStatePick
		return m, m.filePicker.Init()
	case "d":
		_ = m.list.RemoveAttachment(m.imgCursor)

		if m.imgCursor >= len(m.list.DraftAttachments()) && m.imgCursor > 0 {
			m.imgCursor--
		}
	case "enter":
		return m.confirm()
	}

	return m, nil
}

func (m RecordsModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = recordsStateImages
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		_ = m.list.AddAttachment(fileFor(path))
		m.state = recordsStateImages
		m.imgCursor = len(m.list.DraftAttachments()) - 1

		return m, nil
	}

	return m, cmd
}

func fileFor(path string) *profile.File {
	return &profile.File{
		Name:        filepath.Base(path),
		Path:        path,
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
	}
}

func (m RecordsModel) confirm() (tea.Model, tea.Cmd) {
	editing := m.list.EditingIndex()

	if err := m.list.Confirm(); err != nil {
		var missing *form.MissingFieldsError
		if errors.As(err, &missing) {
			m.status = "Please fill in: " + strings.Join(missing.Fields, ", ")
			return m.openForm()
		}

		m.status = err.Error()

		return m, nil
	}

	m.state = recordsStateList
	m.form = nil

	if editing >= 0 {
		m.cursor = editing
		m.status = "Saved."
	} else {
		m.cursor = m.list.Len() - 1
		m.status = "Added."
	}

	return m, nil
}

func (m RecordsModel) cancel() (tea.Model, tea.Cmd) {
	m.list.Cancel()
	m.state = recordsStateList
	m.form = nil
	m.status = ""

	return m, nil
}

func (m RecordsModel) View() string {
	switch m.state {
	case recordsStateForm:
		heading := "New entry"
		if i := m.list.EditingIndex(); i >= 0 {
			heading = fmt.Sprintf("Editing %s", m.list.Label(i))
		}

		return padded.Render(heading + "\n\n" + m.statusLine() + m.form.View())
	case recordsStateImages:
		return padded.Render(m.viewImages())
	case recordsStatePick:
		return padded.Render("Select an image:\n\n" + m.filePicker.View())
	}

	return padded.Render(m.viewList())
}

func (m RecordsModel) viewList() string {
	var b strings.Builder

	b.WriteString(m.list.Name() + "\n\n")

	if m.list.Len() == 0 {
		b.WriteString(faintStyle.Render("Nothing here yet. Press a to add one.") + "\n")
	}

	for i := range m.list.Len() {
		line := m.list.Label(i)
		if m.list.Illustrated() {
			line += faintStyle.Render("  " + Plural(m.list.Pictures(i), "image"))
		}

		b.WriteString(fmt.Sprintf("%s %s\n", cursor(i == m.cursor), line))
	}

	return m.statusLine() + b.String()
}

func (m RecordsModel) viewImages() string {
	var b strings.Builder

	b.WriteString(m.hints.Render(hintImages, "Photos are uploaded when you submit. Add as many as you like."))
	b.WriteString("Images\n\n")

	files := m.list.DraftAttachments()
	if len(files) == 0 {
		b.WriteString(faintStyle.Render("No images. Press a to add one.") + "\n")
	}

	for i, f := range files {
		b.WriteString(fmt.Sprintf("%s %s\n", cursor(i == m.imgCursor), f.Name))
	}

	return m.statusLine() + b.String()
}

func (m RecordsModel) statusLine() string {
	if m.status == "" {
		return ""
	}

	return faintStyle.Render(m.status) + "\n\n"
}

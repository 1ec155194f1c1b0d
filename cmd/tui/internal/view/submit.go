package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/intake/internal/form"
)

type submitState int

const (
	submitStateReview submitState = iota
	submitStateSending
	submitStateDone
	submitStateFailed
)

// SubmitModel reviews the session and sends it. The session is left as is
// on both success and failure, so a failed attempt can be retried.
type SubmitModel struct {
	CommonModel
	session   *form.Session
	assembler *form.Assembler

	state   submitState
	spinner spinner.Model
	id      uuid.UUID
	err     error
}

func NewSubmitModel(s *form.Session, a *form.Assembler) SubmitModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return SubmitModel{session: s, assembler: a, spinner: sp}
}

func (m SubmitModel) Title() string { return "Submit" }

func (m SubmitModel) ShortHelp() string {
	if m.state == submitStateSending {
		return "Sending..."
	}

	return "Enter: submit | Esc: back"
}

func (m SubmitModel) Init() tea.Cmd { return nil }

type submitResultMsg struct {
	id  uuid.UUID
	err error
}

func (m SubmitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == submitStateSending {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			m.state = submitStateSending
			m.err = nil

			return m, tea.Batch(m.spinner.Tick, m.submitCmd())
		}

	case submitResultMsg:
		if msg.err != nil {
			m.state = submitStateFailed
			m.err = msg.err

			return m, nil
		}

		m.state = submitStateDone
		m.id = msg.id

		return m, nil

	case spinner.TickMsg:
		if m.state != submitStateSending {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m SubmitModel) submitCmd() tea.Cmd {
	session := m.session
	assembler := m.assembler

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		id, err := assembler.Submit(ctx, session)

		return submitResultMsg{id: id, err: err}
	}
}

// errorMessage turns an assembler error into the one line shown to the user.
func errorMessage(err error) string {
	var verr *form.ValidationError

	switch {
	case errors.As(err, &verr):
		if msg, ok := verr.Fields[form.FieldYearsOfExperience]; ok {
			return "Years of experience " + msg + "."
		}

		return err.Error()
	case errors.Is(err, form.ErrUpload):
		return "Failed to upload images, please retry."
	case errors.Is(err, form.ErrSubmit):
		return "Failed to submit your profile, please retry."
	case errors.Is(err, form.ErrInFlight):
		return "A submission is already in progress."
	}

	return err.Error()
}

func (m SubmitModel) View() string {
	switch m.state {
	case submitStateSending:
		return padded.Render(m.spinner.View() + " Uploading images and sending your profile...")
	case submitStateDone:
		return padded.Render(successStyle.Render(fmt.Sprintf("Thanks! Your profile was received (reference %s).", m.id)) +
			"\n\nEnter: send again | Esc: back")
	case submitStateFailed:
		return padded.Render(errorStyle.Render(errorMessage(m.err)) +
			"\n\nNothing you entered was lost. Enter: retry | Esc: back")
	}

	return padded.Render(m.summary() + "\nPress Enter to submit.")
}

func (m SubmitModel) summary() string {
	var b strings.Builder

	name := strings.TrimSpace(m.session.Scalars.BusinessName)
	if name == "" {
		name = faintStyle.Render("(no business name)")
	}

	b.WriteString(fmt.Sprintf("Ready to send %s\n\n", name))

	for _, e := range m.session.Lists() {
		if !m.session.Enabled(e) {
			continue
		}

		b.WriteString(fmt.Sprintf("  %-20s %d\n", e.List.Name(), e.List.Len()))
	}

	if m.session.Sections.Visible(form.SectionInstallation) {
		b.WriteString(fmt.Sprintf("  %-20s %d\n", "Installation steps", m.session.InstallationSteps.Len()))
	}

	return b.String()
}

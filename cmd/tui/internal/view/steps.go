package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/intake/internal/form"
)

const hintSteps = "steps.reorder"

type stepsState int

const (
	stepsStateList stepsState = iota
	stepsStateAdd
	stepsStateEdit
)

// StepsModel edits the ordered installation process.
type StepsModel struct {
	CommonModel
	steps *form.Steps
	hints *Hints

	state  stepsState
	cursor int
	input  textinput.Model
}

func NewStepsModel(s *form.Steps, hints *Hints) StepsModel {
	ti := textinput.New()
	ti.Placeholder = "Describe the step"
	ti.CharLimit = 280
	ti.Width = 60

	return StepsModel{steps: s, hints: hints, input: ti}
}

func (m StepsModel) Title() string { return "Installation Process" }

func (m StepsModel) ShortHelp() string {
	if m.state != stepsStateList {
		return "Enter: save | Esc: cancel"
	}

	return "a: add | e: edit | d: delete | K/J: move up/down | t: to top | b: to bottom | Esc: back"
}

func (m StepsModel) Init() tea.Cmd { return nil }

func (m StepsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != stepsStateList {
		return m.updateInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := m.steps.Len() - 1

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case hideTipKey:
		m.hints.Dismiss(hintSteps)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < last {
			m.cursor++
		}
	case "K":
		if m.cursor > 0 {
			m.steps.Reorder(m.cursor, m.cursor-1)
			m.cursor--
		}
	case "J":
		if m.cursor < last {
			m.steps.Reorder(m.cursor, m.cursor+1)
			m.cursor++
		}
	case "t":
		m.steps.MoveToFirst(m.cursor)
		m.cursor = 0
	case "b":
		if last >= 0 {
			m.steps.MoveToLast(m.cursor)
			m.cursor = last
		}
	case "d":
		m.steps.Remove(m.cursor)

		if m.cursor >= m.steps.Len() && m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.state = stepsStateAdd
		m.input.SetValue("")

		return m, m.input.Focus()
	case "e", "enter":
		if err := m.steps.BeginEdit(m.cursor); err != nil {
			return m, nil
		}

		m.state = stepsStateEdit
		m.input.SetValue(m.steps.EditValue())
		m.input.CursorEnd()

		return m, m.input.Focus()
	}

	return m, nil
}

func (m StepsModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			if m.state == stepsStateEdit {
				m.steps.CancelEdit()
			}

			return m.closeInput(), nil
		case tea.KeyEnter:
			if m.state == stepsStateEdit {
				m.steps.SetEditValue(m.input.Value())
				m.steps.SaveEdit()

				return m.closeInput(), nil
			}

			if m.steps.Add(m.input.Value()) {
				m.cursor = m.steps.Len() - 1
			}

			return m.closeInput(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m StepsModel) closeInput() StepsModel {
	m.state = stepsStateList
	m.input.Blur()
	m.input.SetValue("")

	return m
}

func (m StepsModel) View() string {
	var b strings.Builder

	b.WriteString(m.hints.Render(hintSteps, "Put the steps in the order a customer experiences them. Use K/J to move a step."))
	b.WriteString("Installation steps\n\n")

	if m.steps.Len() == 0 && m.state != stepsStateAdd {
		b.WriteString(faintStyle.Render("No steps yet. Press a to add one.") + "\n")
	}

	for i := range m.steps.Len() {
		text := m.steps.At(i)
		if m.state == stepsStateEdit && i == m.steps.Editing() {
			text = m.input.View()
		}

		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor(i == m.cursor), i+1, text))
	}

	if m.state == stepsStateAdd {
		b.WriteString(fmt.Sprintf("\n  %d. %s\n", m.steps.Len()+1, m.input.View()))
	}

	return padded.Render(b.String())
}

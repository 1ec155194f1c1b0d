package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/intake/internal/form"
)

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg

		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		m, _ = m.Update(msg)
	}

	return m
}

func TestSectionsModel_ChildListedOnlyUnderVisibleParent(t *testing.T) {
	s := form.NewSections()
	m := NewSectionsModel(s)

	assert.NotContains(t, m.rows(), form.SectionEmergencyPhone)

	// emergency_services is the last top-level row.
	last := len(m.rows()) - 1
	for range last {
		m = press(t, m, "down").(SectionsModel)
	}

	m = press(t, m, "enter").(SectionsModel)
	assert.True(t, s.Visible(form.SectionEmergencyServices))
	assert.Contains(t, m.rows(), form.SectionEmergencyPhone)

	m = press(t, m, "down", "space").(SectionsModel)
	assert.True(t, s.Included(form.SectionEmergencyPhone))

	m = press(t, m, "up", "enter").(SectionsModel)
	assert.False(t, s.Included(form.SectionEmergencyPhone))
	assert.True(t, s.Own(form.SectionEmergencyPhone))
	assert.NotContains(t, m.rows(), form.SectionEmergencyPhone)
}

func TestSectionsModel_AboutUsEnablesModifications(t *testing.T) {
	s := form.NewSections()
	m := NewSectionsModel(s)

	m = press(t, m, "enter", "enter").(SectionsModel)

	assert.False(t, s.Visible(form.SectionAboutUs))
	assert.True(t, s.ModificationsEnabled())
	assert.Contains(t, m.View(), "About us")
}

func TestSectionsModel_EscGoesBack(t *testing.T) {
	m := NewSectionsModel(form.NewSections())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, BackMsg{}, cmd())
	}
}

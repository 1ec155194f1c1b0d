package view

import (
	"github.com/charmbracelet/lipgloss"
)

const hideTipKey = "ctrl+t"

var hintStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Foreground(lipgloss.Color("245")).
	Padding(0, 1)

// Hints holds the dismissed state of every help box in the app, keyed by an
// identifier. The zero value shows everything.
type Hints struct {
	dismissed map[string]bool
}

func NewHints() *Hints {
	return &Hints{dismissed: make(map[string]bool)}
}

func (h *Hints) Dismiss(id string) {
	if h.dismissed == nil {
		h.dismissed = make(map[string]bool)
	}

	h.dismissed[id] = true
}

func (h *Hints) Dismissed(id string) bool { return h.dismissed[id] }

// Render returns the boxed hint text, or "" once it has been dismissed.
func (h *Hints) Render(id, text string) string {
	if h.Dismissed(id) {
		return ""
	}

	return hintStyle.Render(text+"\n(ctrl+t: hide tip)") + "\n"
}

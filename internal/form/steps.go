package form

import (
	"slices"
	"strings"
)

// Steps is an ordered list of process steps. Besides add and remove it
// supports drag-style reordering and inline editing of a single step.
type Steps struct {
	items   []string
	editing int
	buffer  string
}

func NewSteps() *Steps {
	return &Steps{editing: -1}
}

func (s *Steps) Len() int { return len(s.items) }

func (s *Steps) Items() []string { return slices.Clone(s.items) }

func (s *Steps) At(i int) string {
	if i < 0 || i >= len(s.items) {
		return ""
	}

	return s.items[i]
}

// Add appends a trimmed step. Blank input is ignored.
func (s *Steps) Add(step string) bool {
	step = strings.TrimSpace(step)
	if step == "" {
		return false
	}

	s.items = append(s.items, step)

	return true
}

func (s *Steps) Remove(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}

	s.items = slices.Delete(s.items, i, i+1)

	switch {
	case s.editing == i:
		s.CancelEdit()
	case s.editing > i:
		s.editing--
	}
}

// Reorder moves the step at from so it ends up at to.
func (s *Steps) Reorder(from, to int) {
	n := len(s.items)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return
	}

	step := s.items[from]
	s.items = slices.Delete(s.items, from, from+1)
	s.items = slices.Insert(s.items, to, step)

	if s.editing >= 0 {
		s.editing = shifted(s.editing, from, to)
	}
}

func (s *Steps) MoveToFirst(i int) { s.Reorder(i, 0) }

func (s *Steps) MoveToLast(i int) { s.Reorder(i, len(s.items)-1) }

// shifted returns where index idx lands after moving from -> to.
func shifted(idx, from, to int) int {
	switch {
	case idx == from:
		return to
	case from < idx && idx <= to:
		return idx - 1
	case to <= idx && idx < from:
		return idx + 1
	}

	return idx
}

func (s *Steps) Editing() int { return s.editing }

// BeginEdit loads step i into the inline edit buffer.
func (s *Steps) BeginEdit(i int) error {
	if i < 0 || i >= len(s.items) {
		return ErrInvalidIndex
	}

	s.editing = i
	s.buffer = s.items[i]

	return nil
}

func (s *Steps) EditValue() string { return s.buffer }

// EditBuffer exposes the buffer for binding to an input widget.
func (s *Steps) EditBuffer() *string { return &s.buffer }

func (s *Steps) SetEditValue(v string) { s.buffer = v }

// SaveEdit writes the trimmed buffer back. A blank buffer keeps the old
// value.
func (s *Steps) SaveEdit() {
	if s.editing < 0 || s.editing >= len(s.items) {
		s.CancelEdit()
		return
	}

	if v := strings.TrimSpace(s.buffer); v != "" {
		s.items[s.editing] = v
	}

	s.CancelEdit()
}

func (s *Steps) CancelEdit() {
	s.editing = -1
	s.buffer = ""
}

package form

import (
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/intake/internal/profile"
)

// Binding exposes one draft field to a form widget.
type Binding struct {
	Key      string
	Title    string
	Required bool
	Long     bool
	Value    *string
}

// List is the type-erased view of an Editor used by the terminal client.
type List interface {
	Name() string
	Len() int
	Label(i int) string
	Pictures(i int) int
	Illustrated() bool

	IsOpen() bool
	EditingIndex() int
	OpenForCreate()
	OpenForEdit(i int) error
	Bindings() []Binding
	UpdateDraftField(key, value string) error
	DraftAttachments() profile.Attachments
	AddAttachment(files ...*profile.File) error
	RemoveAttachment(i int) error
	Confirm() error
	Cancel()
	Remove(i int)
}

// Editor manages the draft and committed list of one record type.
//
// Records are copied by value. Attachment sets are copy-on-write, so a value
// copy is enough to keep a draft from touching the committed entry it was
// loaded from.
type Editor[T any] struct {
	kind    Kind[T]
	items   []T
	draft   *T
	editing int
}

func NewEditor[T any](kind Kind[T]) *Editor[T] {
	return &Editor[T]{kind: kind, editing: -1}
}

func (e *Editor[T]) Name() string { return e.kind.Name }

func (e *Editor[T]) Len() int { return len(e.items) }

// Items returns a copy of the committed list.
func (e *Editor[T]) Items() []T { return slices.Clone(e.items) }

func (e *Editor[T]) Label(i int) string {
	if i < 0 || i >= len(e.items) {
		return ""
	}

	return e.kind.Label(e.items[i])
}

func (e *Editor[T]) Illustrated() bool { return e.kind.Gallery != nil }

func (e *Editor[T]) Pictures(i int) int {
	if !e.Illustrated() || i < 0 || i >= len(e.items) {
		return 0
	}

	return len(e.kind.Gallery(&e.items[i]).Pictures)
}

func (e *Editor[T]) IsOpen() bool { return e.draft != nil }

// EditingIndex is the committed position the open draft will replace, or -1
// when confirm appends.
func (e *Editor[T]) EditingIndex() int { return e.editing }

// Draft returns the open draft, or nil.
func (e *Editor[T]) Draft() *T { return e.draft }

func (e *Editor[T]) OpenForCreate() {
	var empty T
	e.draft = &empty
	e.editing = -1
}

func (e *Editor[T]) OpenForEdit(i int) error {
	if i < 0 || i >= len(e.items) {
		return ErrInvalidIndex
	}

	cp := e.items[i]
	e.draft = &cp
	e.editing = i

	return nil
}

// Update applies fn to the open draft.
func (e *Editor[T]) Update(fn func(*T)) error {
	if e.draft == nil {
		return ErrNotOpen
	}

	fn(e.draft)

	return nil
}

func (e *Editor[T]) UpdateDraftField(key, value string) error {
	if e.draft == nil {
		return ErrNotOpen
	}

	f, ok := e.kind.field(key)
	if !ok {
		return ErrUnknownField
	}

	*f.Ref(e.draft) = value

	return nil
}

func (e *Editor[T]) Bindings() []Binding {
	if e.draft == nil {
		return nil
	}

	out := make([]Binding, 0, len(e.kind.Fields))
	for _, f := range e.kind.Fields {
		out = append(out, Binding{
			Key:      f.Key,
			Title:    f.Title,
			Required: f.Required,
			Long:     f.Long,
			Value:    f.Ref(e.draft),
		})
	}

	return out
}

func (e *Editor[T]) DraftAttachments() profile.Attachments {
	if e.draft == nil || !e.Illustrated() {
		return nil
	}

	return e.kind.Gallery(e.draft).Pictures
}

func (e *Editor[T]) AddAttachment(files ...*profile.File) error {
	g, err := e.draftGallery()
	if err != nil {
		return err
	}

	g.Pictures = g.Pictures.With(files...)

	return nil
}

func (e *Editor[T]) RemoveAttachment(i int) error {
	g, err := e.draftGallery()
	if err != nil {
		return err
	}

	if i < 0 || i >= len(g.Pictures) {
		return ErrInvalidIndex
	}

	g.Pictures = g.Pictures.Without(i)

	return nil
}

func (e *Editor[T]) draftGallery() (*profile.Gallery, error) {
	if e.draft == nil {
		return nil, ErrNotOpen
	}

	if !e.Illustrated() {
		return nil, ErrNoGallery
	}

	return e.kind.Gallery(e.draft), nil
}

// Confirm commits the draft. When required fields are blank the draft stays
// open and the list is left alone.
func (e *Editor[T]) Confirm() error {
	if e.draft == nil {
		return ErrNotOpen
	}

	if missing := e.kind.missing(e.draft); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if e.editing >= 0 && e.editing < len(e.items) {
		e.items[e.editing] = *e.draft
	} else {
		e.items = append(e.items, *e.draft)
	}

	e.draft = nil
	e.editing = -1

	return nil
}

func (e *Editor[T]) Cancel() {
	e.draft = nil
	e.editing = -1
}

// Remove deletes the committed entry at i. An open draft editing a later
// entry follows it down; a draft editing the removed entry becomes a new one.
func (e *Editor[T]) Remove(i int) {
	if i < 0 || i >= len(e.items) {
		return
	}

	e.items = slices.Delete(e.items, i, i+1)

	switch {
	case e.editing == i:
		e.editing = -1
	case e.editing > i:
		e.editing--
	}
}

// Append commits records directly, skipping those with blank required
// fields. It returns how many were added.
func (e *Editor[T]) Append(recs ...T) int {
	n := 0

	for _, r := range recs {
		if len(e.kind.missing(&r)) > 0 {
			continue
		}

		e.items = append(e.items, r)
		n++
	}

	return n
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/intake/internal/form"
	"github.com/MrJamesThe3rd/intake/internal/profile"
)

func committedService(t *testing.T, e *form.Editor[profile.Service], name, desc string, files ...*profile.File) {
	t.Helper()

	e.OpenForCreate()
	require.NoError(t, e.UpdateDraftField("name", name))
	require.NoError(t, e.UpdateDraftField("description", desc))

	if len(files) > 0 {
		require.NoError(t, e.AddAttachment(files...))
	}

	require.NoError(t, e.Confirm())
}

func TestEditor_ConfirmRequiresFields(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		description string
		wantMissing []string
	}{
		{name: "BothEmpty", serviceName: "", description: "", wantMissing: []string{"name", "description"}},
		{name: "WhitespaceName", serviceName: "   ", description: "Roof repair", wantMissing: []string{"name"}},
		{name: "WhitespaceDescription", serviceName: "Roofing", description: "\t\n", wantMissing: []string{"description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := form.NewEditor(form.ServiceKind)
			committedService(t, e, "Gutters", "Seamless gutters")

			e.OpenForCreate()
			require.NoError(t, e.UpdateDraftField("name", tt.serviceName))
			require.NoError(t, e.UpdateDraftField("description", tt.description))

			err := e.Confirm()

			var missing *form.MissingFieldsError
			require.ErrorAs(t, err, &missing)
			assert.ErrorIs(t, err, form.ErrRequiredFields)
			assert.Equal(t, tt.wantMissing, missing.Fields)
			assert.Equal(t, 1, e.Len())
			assert.True(t, e.IsOpen(), "editor stays open for correction")
		})
	}
}

func TestEditor_ConfirmAppends(t *testing.T) {
	e := form.NewEditor(form.ServiceKind)
	committedService(t, e, "Roofing", "Shingle roofs")
	committedService(t, e, "Siding", "Vinyl siding")

	items := e.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Roofing", items[0].Name)
	assert.Equal(t, "Siding", items[1].Name)
	assert.False(t, e.IsOpen())
	assert.Equal(t, -1, e.EditingIndex())
}

func TestEditor_EditWithoutChangesIsNoop(t *testing.T) {
	f := &profile.File{Name: "roof.jpg"}
	e := form.NewEditor(form.ServiceKind)
	committedService(t, e, "Roofing", "Shingle roofs", f)
	committedService(t, e, "Siding", "Vinyl siding")

	before := e.Items()

	require.NoError(t, e.OpenForEdit(0))
	require.NoError(t, e.Confirm())

	assert.Equal(t, before, e.Items())
}

func TestEditor_EditReplacesInPlace(t *testing.T) {
	e := form.NewEditor(form.ServiceKind)
	committedService(t, e, "Roofing", "Shingle roofs")
	committedService(t, e, "Siding", "Vinyl siding")

	require.NoError(t, e.OpenForEdit(1))
	assert.Equal(t, 1, e.EditingIndex())
	require.NoError(t, e.UpdateDraftField("name", "Vinyl Siding"))

	assert.Equal(t, "Siding", e.Items()[1].Name, "draft must not leak before confirm")

	require.NoError(t, e.Confirm())

	items := e.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Vinyl Siding", items[1].Name)
}

func TestEditor_CancelDiscardsDraft(t *testing.T) {
	f1 := &profile.File{Name: "a.jpg"}
	f2 := &profile.File{Name: "b.jpg"}

	e := form.NewEditor(form.ServiceKind)
	committedService(t, e, "Roofing", "Shingle roofs", f1)

	require.NoError(t, e.OpenForEdit(0))
	require.NoError(t, e.AddAttachment(f2))
	require.NoError(t, e.Update(func(s *profile.Service) { s.PriceRange = "$$$" }))
	e.Cancel()

	got := e.Items()[0]
	assert.Equal(t, profile.Attachments{f1}, got.Pictures)
	assert.Empty(t, got.PriceRange)
	assert.Equal(t, 1, e.Pictures(0))
}

func TestEditor_OpenForEditOutOfRange(t *testing.T) {
	e := form.NewEditor(form.ProjectKind)

	assert.ErrorIs(t, e.OpenForEdit(0), form.ErrInvalidIndex)
	assert.ErrorIs(t, e.OpenForEdit(-1), form.ErrInvalidIndex)
	assert.False(t, e.IsOpen())
}

func TestEditor_UpdateDraftField(t *testing.T) {
	e := form.NewEditor(form.ProjectKind)

	assert.ErrorIs(t, e.UpdateDraftField("title", "x"), form.ErrNotOpen)

	e.OpenForCreate()
	assert.ErrorIs(t, e.UpdateDraftField("color", "red"), form.ErrUnknownField)
	require.NoError(t, e.UpdateDraftField("location", "Austin, TX"))
	assert.Equal(t, "Austin, TX", e.Draft().Location)
}

func TestEditor_Attachments(t *testing.T) {
	f1 := &profile.File{Name: "front.jpg"}
	f2 := &profile.File{Name: "back.jpg"}

	e := form.NewEditor(form.ServiceKind)
	e.OpenForCreate()

	require.NoError(t, e.AddAttachment(f1, f2))
	before := e.DraftAttachments()

	require.NoError(t, e.RemoveAttachment(0))

	got := e.DraftAttachments()
	require.Len(t, got, 1)
	assert.Same(t, f2, got[0])
	assert.Len(t, before, 2, "earlier set is not mutated")

	assert.ErrorIs(t, e.RemoveAttachment(3), form.ErrInvalidIndex)
}

func TestEditor_AttachmentsRequireGallery(t *testing.T) {
	e := form.NewEditor(form.ServiceAreaKind)
	e.OpenForCreate()

	assert.False(t, e.Illustrated())
	assert.ErrorIs(t, e.AddAttachment(&profile.File{Name: "map.png"}), form.ErrNoGallery)
}

func TestEditor_Remove(t *testing.T) {
	e := form.NewEditor(form.ServiceKind)
	committedService(t, e, "A", "a")
	committedService(t, e, "B", "b")
	committedService(t, e, "C", "c")

	e.Remove(5)
	assert.Equal(t, 3, e.Len())

	require.NoError(t, e.OpenForEdit(2))
	e.Remove(0)
	assert.Equal(t, 1, e.EditingIndex(), "editing index follows the entry")

	require.NoError(t, e.UpdateDraftField("name", "C2"))
	require.NoError(t, e.Confirm())

	items := e.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Name)
	assert.Equal(t, "C2", items[1].Name)
}

func TestEditor_RemoveEditedEntry(t *testing.T) {
	e := form.NewEditor(form.ServiceKind)
	committedService(t, e, "A", "a")
	committedService(t, e, "B", "b")

	require.NoError(t, e.OpenForEdit(0))
	e.Remove(0)
	assert.Equal(t, -1, e.EditingIndex())

	require.NoError(t, e.Confirm())
	assert.Equal(t, []string{"B", "A"}, []string{e.Label(0), e.Label(1)})
}

func TestEditor_Append(t *testing.T) {
	e := form.NewEditor(form.ServiceAreaKind)

	n := e.Append(
		profile.ServiceArea{Name: "Travis County"},
		profile.ServiceArea{Name: "  "},
		profile.ServiceArea{Name: "Hays County"},
	)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, e.Len())
}

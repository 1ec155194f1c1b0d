package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/intake/internal/form"
)

func TestSections_StartHidden(t *testing.T) {
	s := form.NewSections()

	for _, id := range form.AllSections {
		assert.False(t, s.Visible(id), id)
		assert.False(t, s.Included(id), id)
	}
}

func TestSections_ToggleSetsBothFlags(t *testing.T) {
	s := form.NewSections()

	s.Toggle(form.SectionWarranty)
	assert.True(t, s.Visible(form.SectionWarranty))
	assert.True(t, s.Included(form.SectionWarranty))

	s.Toggle(form.SectionWarranty)
	assert.False(t, s.Visible(form.SectionWarranty))
	assert.False(t, s.Included(form.SectionWarranty))
}

func TestSections_ChainIsANDOfAncestors(t *testing.T) {
	s := form.NewSections()

	s.Show(form.SectionEmergencyPhone)
	assert.True(t, s.Own(form.SectionEmergencyPhone))
	assert.False(t, s.Visible(form.SectionEmergencyPhone), "parent hidden")

	s.Show(form.SectionEmergencyServices)
	assert.True(t, s.Visible(form.SectionEmergencyPhone))
	assert.True(t, s.Included(form.SectionEmergencyPhone))

	s.Hide(form.SectionEmergencyServices)
	assert.False(t, s.Visible(form.SectionEmergencyPhone))
	assert.True(t, s.Own(form.SectionEmergencyPhone), "child flag survives parent hide")

	parent, ok := s.Parent(form.SectionEmergencyPhone)
	require.True(t, ok)
	assert.Equal(t, form.SectionEmergencyServices, parent)
}

func TestSections_AboutUsEnablesModificationsOneWay(t *testing.T) {
	s := form.NewSections()
	assert.False(t, s.ModificationsEnabled())

	s.Show(form.SectionAboutUs)
	assert.True(t, s.ModificationsEnabled())

	s.Hide(form.SectionAboutUs)
	assert.True(t, s.ModificationsEnabled())
}

func TestSession_EmergencyNumberRetainedOnHide(t *testing.T) {
	sess := form.NewSession()
	sess.Scalars.YearsOfExperience = "12"

	sess.Sections.Show(form.SectionEmergencyServices)
	sess.Sections.Show(form.SectionEmergencyPhone)
	sess.Scalars.EmergencyPhoneNumber = "555-0100"

	sess.Sections.Hide(form.SectionEmergencyServices)

	p, err := form.Validate(sess)
	require.NoError(t, err)
	assert.Empty(t, p.EmergencyPhoneNumber, "hidden section is absent from the payload")
	assert.Equal(t, "555-0100", sess.Scalars.EmergencyPhoneNumber)

	sess.Sections.Show(form.SectionEmergencyServices)

	p, err = form.Validate(sess)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", p.EmergencyPhoneNumber)
}

func TestValidate_Years(t *testing.T) {
	tests := []struct {
		input   string
		want    *int
		wantErr bool
	}{
		{input: "", want: nil},
		{input: " 25 ", want: new(25)},
		{input: "0", want: new(0)},
		{input: "50", want: new(50)},
		{input: "51", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "2.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sess := form.NewSession()
			sess.Scalars.YearsOfExperience = tt.input
			sess.Scalars.BusinessName = "Acme Roofing"

			p, err := form.Validate(sess)
			if tt.wantErr {
				var verr *form.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, form.FieldYearsOfExperience)
				assert.Len(t, verr.Fields, 1)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, p.YearsOfExperience)
			assert.Equal(t, "Acme Roofing", p.BusinessName)
		})
	}
}

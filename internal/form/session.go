package form

import (
	"github.com/MrJamesThe3rd/intake/internal/profile"
)

// Scalars holds the single-value answers as typed by the user. Years of
// experience stays a string until validation so bad input can be reported
// at the field.
type Scalars struct {
	BusinessName         string
	OwnerName            string
	Email                string
	Phone                string
	Website              string
	Address              string
	YearsOfExperience    string
	Tagline              string
	AboutUs              string
	AboutUsModifications string
	EmergencyPhoneNumber string
	AdditionalNotes      string
}

// Session is all state of one form fill. It is owned by a single goroutine.
type Session struct {
	Scalars  Scalars
	Sections *Sections

	Services          *Editor[profile.Service]
	Projects          *Editor[profile.Project]
	ServiceAreas      *Editor[profile.ServiceArea]
	FinancingOptions  *Editor[profile.FinancingOption]
	StormServices     *Editor[profile.StormService]
	Certifications    *Editor[profile.Certification]
	MaintenanceTips   *Editor[profile.MaintenanceTip]
	WarrantyTerms     *Editor[profile.WarrantyTerm]
	InstallationSteps *Steps
}

func NewSession() *Session {
	return &Session{
		Sections:          NewSections(),
		Services:          NewEditor(ServiceKind),
		Projects:          NewEditor(ProjectKind),
		ServiceAreas:      NewEditor(ServiceAreaKind),
		FinancingOptions:  NewEditor(FinancingOptionKind),
		StormServices:     NewEditor(StormServiceKind),
		Certifications:    NewEditor(CertificationKind),
		MaintenanceTips:   NewEditor(MaintenanceTipKind),
		WarrantyTerms:     NewEditor(WarrantyTermKind),
		InstallationSteps: NewSteps(),
	}
}

// ListEntry pairs a record list with the section gating it. Gate is empty
// for lists that are always part of the form.
type ListEntry struct {
	List List
	Gate Section
}

func (s *Session) Lists() []ListEntry {
	return []ListEntry{
		{List: s.Services},
		{List: s.Projects},
		{List: s.ServiceAreas},
		{List: s.Certifications},
		{List: s.FinancingOptions, Gate: SectionFinancing},
		{List: s.StormServices, Gate: SectionStormServices},
		{List: s.MaintenanceTips, Gate: SectionMaintenance},
		{List: s.WarrantyTerms, Gate: SectionWarranty},
	}
}

// Enabled reports whether a list entry is currently part of the form.
func (s *Session) Enabled(e ListEntry) bool {
	return e.Gate == "" || s.Sections.Visible(e.Gate)
}

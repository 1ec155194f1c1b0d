package form

import (
	"github.com/MrJamesThe3rd/intake/internal/profile"
)

// Field describes one editable string field of a record type.
type Field[T any] struct {
	Key      string
	Title    string
	Required bool
	Long     bool
	Ref      func(*T) *string
}

// Kind describes a repeated record type: its fields, how to label a
// committed entry and, for illustrated types, where its gallery lives.
type Kind[T any] struct {
	Name    string
	Fields  []Field[T]
	Label   func(T) string
	Gallery func(*T) *profile.Gallery
}

func (k Kind[T]) field(key string) (Field[T], bool) {
	for _, f := range k.Fields {
		if f.Key == key {
			return f, true
		}
	}

	return Field[T]{}, false
}

func (k Kind[T]) missing(rec *T) []string {
	var keys []string

	for _, f := range k.Fields {
		if !f.Required {
			continue
		}

		if isBlank(*f.Ref(rec)) {
			keys = append(keys, f.Key)
		}
	}

	return keys
}

var ServiceKind = Kind[profile.Service]{
	Name: "Services",
	Fields: []Field[profile.Service]{
		{Key: "name", Title: "Service name", Required: true, Ref: func(s *profile.Service) *string { return &s.Name }},
		{Key: "description", Title: "Description", Required: true, Long: true, Ref: func(s *profile.Service) *string { return &s.Description }},
		{Key: "priceRange", Title: "Price range", Ref: func(s *profile.Service) *string { return &s.PriceRange }},
	},
	Label:   func(s profile.Service) string { return s.Name },
	Gallery: func(s *profile.Service) *profile.Gallery { return &s.Gallery },
}

var ProjectKind = Kind[profile.Project]{
	Name: "Projects",
	Fields: []Field[profile.Project]{
		{Key: "title", Title: "Project title", Required: true, Ref: func(p *profile.Project) *string { return &p.Title }},
		{Key: "description", Title: "Description", Required: true, Long: true, Ref: func(p *profile.Project) *string { return &p.Description }},
		{Key: "location", Title: "Location", Ref: func(p *profile.Project) *string { return &p.Location }},
		{Key: "completedOn", Title: "Completed on", Ref: func(p *profile.Project) *string { return &p.CompletedOn }},
	},
	Label:   func(p profile.Project) string { return p.Title },
	Gallery: func(p *profile.Project) *profile.Gallery { return &p.Gallery },
}

var ServiceAreaKind = Kind[profile.ServiceArea]{
	Name: "Service areas",
	Fields: []Field[profile.ServiceArea]{
		{Key: "name", Title: "Area", Required: true, Ref: func(a *profile.ServiceArea) *string { return &a.Name }},
		{Key: "description", Title: "Notes", Long: true, Ref: func(a *profile.ServiceArea) *string { return &a.Description }},
	},
	Label: func(a profile.ServiceArea) string { return a.Name },
}

var FinancingOptionKind = Kind[profile.FinancingOption]{
	Name: "Financing options",
	Fields: []Field[profile.FinancingOption]{
		{Key: "name", Title: "Option name", Required: true, Ref: func(o *profile.FinancingOption) *string { return &o.Name }},
		{Key: "description", Title: "Description", Required: true, Long: true, Ref: func(o *profile.FinancingOption) *string { return &o.Description }},
		{Key: "terms", Title: "Terms", Ref: func(o *profile.FinancingOption) *string { return &o.Terms }},
	},
	Label: func(o profile.FinancingOption) string { return o.Name },
}

var StormServiceKind = Kind[profile.StormService]{
	Name: "Storm services",
	Fields: []Field[profile.StormService]{
		{Key: "name", Title: "Service name", Required: true, Ref: func(s *profile.StormService) *string { return &s.Name }},
		{Key: "description", Title: "Description", Required: true, Long: true, Ref: func(s *profile.StormService) *string { return &s.Description }},
	},
	Label:   func(s profile.StormService) string { return s.Name },
	Gallery: func(s *profile.StormService) *profile.Gallery { return &s.Gallery },
}

var CertificationKind = Kind[profile.Certification]{
	Name: "Certifications",
	Fields: []Field[profile.Certification]{
		{Key: "name", Title: "Certification", Required: true, Ref: func(c *profile.Certification) *string { return &c.Name }},
		{Key: "issuer", Title: "Issued by", Ref: func(c *profile.Certification) *string { return &c.Issuer }},
		{Key: "year", Title: "Year", Ref: func(c *profile.Certification) *string { return &c.Year }},
	},
	Label:   func(c profile.Certification) string { return c.Name },
	Gallery: func(c *profile.Certification) *profile.Gallery { return &c.Gallery },
}

var MaintenanceTipKind = Kind[profile.MaintenanceTip]{
	Name: "Maintenance tips",
	Fields: []Field[profile.MaintenanceTip]{
		{Key: "title", Title: "Tip", Required: true, Ref: func(m *profile.MaintenanceTip) *string { return &m.Title }},
		{Key: "description", Title: "Details", Required: true, Long: true, Ref: func(m *profile.MaintenanceTip) *string { return &m.Description }},
	},
	Label: func(m profile.MaintenanceTip) string { return m.Title },
}

var WarrantyTermKind = Kind[profile.WarrantyTerm]{
	Name: "Warranty terms",
	Fields: []Field[profile.WarrantyTerm]{
		{Key: "title", Title: "Term", Required: true, Ref: func(w *profile.WarrantyTerm) *string { return &w.Title }},
		{Key: "description", Title: "Coverage", Required: true, Long: true, Ref: func(w *profile.WarrantyTerm) *string { return &w.Description }},
		{Key: "duration", Title: "Duration", Ref: func(w *profile.WarrantyTerm) *string { return &w.Duration }},
	},
	Label: func(w profile.WarrantyTerm) string { return w.Title },
}

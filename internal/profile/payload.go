package profile

import "slices"

// Sections reports which optional blocks of the form were included.
type Sections struct {
	HasAboutUs                  bool `json:"hasAboutUs"`
	AboutUsModificationsEnabled bool `json:"aboutUsModificationsEnabled"`
	HasFinancingOptions         bool `json:"hasFinancingOptions"`
	HasStormServices            bool `json:"hasStormServices"`
	HasWarranty                 bool `json:"hasWarranty"`
	HasMaintenanceTips          bool `json:"hasMaintenanceTips"`
	HasInstallationProcess      bool `json:"hasInstallationProcess"`
	HasEmergencyServices        bool `json:"hasEmergencyServices"`
	HasEmergencyPhoneNumber     bool `json:"hasEmergencyPhoneNumber"`
}

// Payload is the single document sent to the submission endpoint.
type Payload struct {
	Profile
	Sections

	Services          []Service         `json:"services"`
	Projects          []Project         `json:"projects"`
	ServiceAreas      []ServiceArea     `json:"serviceAreas"`
	FinancingOptions  []FinancingOption `json:"financingOptions"`
	StormServices     []StormService    `json:"stormServices"`
	Certifications    []Certification   `json:"certifications"`
	MaintenanceTips   []MaintenanceTip  `json:"maintenanceTips"`
	WarrantyTerms     []WarrantyTerm    `json:"warrantyTerms"`
	InstallationSteps []string          `json:"installationSteps"`
}

// Normalize replaces nil lists with empty ones so the document always
// carries every list key.
func (p *Payload) Normalize() {
	p.Services = orEmpty(p.Services)
	p.Projects = orEmpty(p.Projects)
	p.ServiceAreas = orEmpty(p.ServiceAreas)
	p.FinancingOptions = orEmpty(p.FinancingOptions)
	p.StormServices = orEmpty(p.StormServices)
	p.Certifications = orEmpty(p.Certifications)
	p.MaintenanceTips = orEmpty(p.MaintenanceTips)
	p.WarrantyTerms = orEmpty(p.WarrantyTerms)
	p.InstallationSteps = orEmpty(p.InstallationSteps)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Payload) Clone() Payload {
	if p.YearsOfExperience != nil {
		p.YearsOfExperience = new(*p.YearsOfExperience)
	}

	p.Services = cloneEach(p.Services, func(r *Service) { r.Gallery = r.Gallery.clone() })
	p.Projects = cloneEach(p.Projects, func(r *Project) { r.Gallery = r.Gallery.clone() })
	p.ServiceAreas = slices.Clone(p.ServiceAreas)
	p.FinancingOptions = slices.Clone(p.FinancingOptions)
	p.StormServices = cloneEach(p.StormServices, func(r *StormService) { r.Gallery = r.Gallery.clone() })
	p.Certifications = cloneEach(p.Certifications, func(r *Certification) { r.Gallery = r.Gallery.clone() })
	p.MaintenanceTips = slices.Clone(p.MaintenanceTips)
	p.WarrantyTerms = slices.Clone(p.WarrantyTerms)
	p.InstallationSteps = slices.Clone(p.InstallationSteps)

	return p
}

func (g Gallery) clone() Gallery {
	return Gallery{
		Pictures:    slices.Clone(g.Pictures),
		PictureURLs: slices.Clone(g.PictureURLs),
	}
}

func cloneEach[T any](s []T, fn func(*T)) []T {
	out := slices.Clone(s)
	for i := range out {
		fn(&out[i])
	}

	return out
}

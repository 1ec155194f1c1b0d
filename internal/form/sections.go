package form

// Section identifies an optional block of the form.
type Section string

const (
	SectionAboutUs           Section = "about_us"
	SectionFinancing         Section = "financing_options"
	SectionStormServices     Section = "storm_services"
	SectionWarranty          Section = "warranty"
	SectionMaintenance       Section = "maintenance"
	SectionInstallation      Section = "installation"
	SectionEmergencyServices Section = "emergency_services"
	SectionEmergencyPhone    Section = "emergency_phone"
)

// AllSections lists every section in display order.
var AllSections = []Section{
	SectionAboutUs,
	SectionFinancing,
	SectionStormServices,
	SectionWarranty,
	SectionMaintenance,
	SectionInstallation,
	SectionEmergencyServices,
	SectionEmergencyPhone,
}

var sectionTitles = map[Section]string{
	SectionAboutUs:           "About us",
	SectionFinancing:         "Financing options",
	SectionStormServices:     "Storm services",
	SectionWarranty:          "Warranty",
	SectionMaintenance:       "Maintenance tips",
	SectionInstallation:      "Installation process",
	SectionEmergencyServices: "Emergency services",
	SectionEmergencyPhone:    "Separate emergency phone line",
}

func (s Section) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}

	return string(s)
}

// Sections tracks, per optional section, whether it is shown and whether
// its data goes into the submission. The two flags are set together by
// Show/Hide; effective values are ANDed along the parent chain. Hiding a
// section never clears the data entered under it.
type Sections struct {
	visible  map[Section]bool
	included map[Section]bool
	parent   map[Section]Section
	onShow   map[Section]func(*Sections)

	modificationsEnabled bool
}

func NewSections() *Sections {
	return &Sections{
		visible:  make(map[Section]bool),
		included: make(map[Section]bool),
		parent: map[Section]Section{
			SectionEmergencyPhone: SectionEmergencyServices,
		},
		onShow: map[Section]func(*Sections){
			SectionAboutUs: func(s *Sections) { s.modificationsEnabled = true },
		},
	}
}

func (s *Sections) Show(id Section) { s.set(id, true) }

func (s *Sections) Hide(id Section) { s.set(id, false) }

func (s *Sections) Toggle(id Section) { s.set(id, !s.visible[id]) }

func (s *Sections) set(id Section, on bool) {
	s.visible[id] = on
	s.included[id] = on

	if !on {
		return
	}

	if fn := s.onShow[id]; fn != nil {
		fn(s)
	}
}

// Own reports the section's own flag, ignoring ancestors.
func (s *Sections) Own(id Section) bool { return s.visible[id] }

func (s *Sections) Visible(id Section) bool { return s.chain(s.visible, id) }

func (s *Sections) Included(id Section) bool { return s.chain(s.included, id) }

// Parent returns the section that gates id, if any.
func (s *Sections) Parent(id Section) (Section, bool) {
	p, ok := s.parent[id]
	return p, ok
}

func (s *Sections) chain(flags map[Section]bool, id Section) bool {
	for seen := 0; seen <= len(s.parent); seen++ {
		if !flags[id] {
			return false
		}

		p, ok := s.parent[id]
		if !ok {
			return true
		}

		id = p
	}

	return false
}

// ModificationsEnabled is switched on the first time About us is shown and
// stays on.
func (s *Sections) ModificationsEnabled() bool { return s.modificationsEnabled }

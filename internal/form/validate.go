package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/intake/internal/profile"
)

const FieldYearsOfExperience = "yearsOfExperience"

// ParseYears validates the years-of-experience input. Blank input is
// allowed and yields nil.
func ParseYears(input string) (*int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return nil, fmt.Errorf("must be a whole number")
	}

	if n < profile.MinYearsOfExperience || n > profile.MaxYearsOfExperience {
		return nil, fmt.Errorf("must be between %d and %d", profile.MinYearsOfExperience, profile.MaxYearsOfExperience)
	}

	return &n, nil
}

// Validate checks the scalar answers and returns the typed profile. Records
// are not re-checked here; they were validated when confirmed.
func Validate(s *Session) (profile.Profile, error) {
	fields := map[string]string{}

	years, err := ParseYears(s.Scalars.YearsOfExperience)
	if err != nil {
		fields[FieldYearsOfExperience] = err.Error()
	}

	if len(fields) > 0 {
		return profile.Profile{}, &ValidationError{Fields: fields}
	}

	sc := s.Scalars
	p := profile.Profile{
		BusinessName:      strings.TrimSpace(sc.BusinessName),
		OwnerName:         strings.TrimSpace(sc.OwnerName),
		Email:             strings.TrimSpace(sc.Email),
		Phone:             strings.TrimSpace(sc.Phone),
		Website:           strings.TrimSpace(sc.Website),
		Address:           strings.TrimSpace(sc.Address),
		YearsOfExperience: years,
		Tagline:           strings.TrimSpace(sc.Tagline),
		AdditionalNotes:   strings.TrimSpace(sc.AdditionalNotes),
	}

	if s.Sections.Included(SectionAboutUs) {
		p.AboutUs = strings.TrimSpace(sc.AboutUs)

		if s.Sections.ModificationsEnabled() {
			p.AboutUsModifications = strings.TrimSpace(sc.AboutUsModifications)
		}
	}

	if s.Sections.Included(SectionEmergencyPhone) {
		p.EmergencyPhoneNumber = strings.TrimSpace(sc.EmergencyPhoneNumber)
	}

	return p, nil
}

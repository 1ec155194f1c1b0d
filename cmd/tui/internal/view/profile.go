package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/intake/internal/form"
)

const hintYears = "profile.years"

// ProfileModel edits the single-value answers of the session.
type ProfileModel struct {
	CommonModel
	session *form.Session
	hints   *Hints
	form    *huh.Form
}

func NewProfileModel(s *form.Session, hints *Hints) ProfileModel {
	m := ProfileModel{session: s, hints: hints}
	m.form = m.buildForm()

	return m
}

func (m ProfileModel) Title() string { return "Business Profile" }

func (m ProfileModel) ShortHelp() string {
	return "Esc: back | Enter/Tab: next field | Ctrl+T: hide tip"
}

func (m ProfileModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ProfileModel) buildForm() *huh.Form {
	sc := &m.session.Scalars
	sections := m.session.Sections

	contact := huh.NewGroup(
		huh.NewInput().Key("businessName").Title("Business name").Value(&sc.BusinessName),
		huh.NewInput().Key("ownerName").Title("Owner name").Value(&sc.OwnerName),
		huh.NewInput().Key("email").Title("Email").Placeholder("you@example.com").Value(&sc.Email),
		huh.NewInput().Key("phone").Title("Phone").Value(&sc.Phone),
		huh.NewInput().Key("website").Title("Website").Placeholder("https://...").Value(&sc.Website),
		huh.NewInput().Key("address").Title("Address").Value(&sc.Address),
	).Title("Contact")

	about := []huh.Field{
		huh.NewInput().
			Key(form.FieldYearsOfExperience).
			Title("Years of experience").
			Placeholder("0-50").
			Value(&sc.YearsOfExperience).
			Validate(func(s string) error {
				_, err := form.ParseYears(s)
				return err
			}),
		huh.NewInput().Key("tagline").Title("Tagline").Value(&sc.Tagline),
	}

	if sections.Visible(form.SectionAboutUs) {
		about = append(about, huh.NewText().Key("aboutUs").Title("About us").Value(&sc.AboutUs))

		if sections.ModificationsEnabled() {
			about = append(about, huh.NewText().
				Key("aboutUsModifications").
				Title("Changes to make to your current About us").
				Value(&sc.AboutUsModifications))
		}
	}

	if sections.Visible(form.SectionEmergencyPhone) {
		about = append(about, huh.NewInput().
			Key("emergencyPhoneNumber").
			Title("Emergency phone number").
			Value(&sc.EmergencyPhoneNumber))
	}

	about = append(about, huh.NewText().Key("additionalNotes").Title("Anything else we should know?").Value(&sc.AdditionalNotes))

	return huh.NewForm(contact, huh.NewGroup(about...).Title("About the business")).
		WithWidth(60).
		WithShowHelp(false)
}

func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case hideTipKey:
			m.hints.Dismiss(hintYears)
			return m, nil
		}
	}

	f, cmd := m.form.Update(msg)
	if ff, ok := f.(*huh.Form); ok {
		m.form = ff
	}

	if m.form.State == huh.StateCompleted {
		return m, Back
	}

	return m, cmd
}

func (m ProfileModel) View() string {
	tip := m.hints.Render(hintYears, "Years of experience is a whole number from 0 to 50. Leave it blank if unsure.")
	return padded.Render(tip + m.form.View())
}

package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/intake/internal/profile"
	"github.com/MrJamesThe3rd/intake/internal/submission"
)

// Summary is the rendered notification for one submission.
type Summary struct {
	Subject string
	Text    string
	HTML    string
}

type entry struct {
	Label  string
	Detail string
	Images []string
}

type block struct {
	Title   string
	Entries []entry
}

type view struct {
	ID       string
	Business string
	Created  string
	Fields   [][2]string
	Blocks   []block
}

// A Caser holds state, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

var page = template.Must(template.New("summary").Parse(`<html><body>
<h1>{{.Business}}</h1>
<p>Submission {{.ID}} received {{.Created}}</p>
<table>{{range .Fields}}<tr><th align="left">{{index . 0}}</th><td>{{index . 1}}</td></tr>{{end}}</table>
{{range .Blocks}}<h2>{{.Title}}</h2><ul>{{range .Entries}}<li><strong>{{.Label}}</strong>{{if .Detail}} - {{.Detail}}{{end}}{{range .Images}}<br><a href="{{.}}">{{.}}</a>{{end}}</li>{{end}}</ul>
{{end}}</body></html>`))

// Render builds the operator summary in plain text and HTML.
func Render(s *submission.Submission) (Summary, error) {
	v := build(s)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\nSubmission %s received %s\n\n", v.Business, v.ID, v.Created))

	for _, f := range v.Fields {
		sb.WriteString(fmt.Sprintf("%s: %s\n", f[0], f[1]))
	}

	for _, b := range v.Blocks {
		sb.WriteString(fmt.Sprintf("\n%s\n", b.Title))

		for _, e := range b.Entries {
			if e.Detail != "" {
				sb.WriteString(fmt.Sprintf("* %s | %s\n", e.Label, e.Detail))
			} else {
				sb.WriteString(fmt.Sprintf("* %s\n", e.Label))
			}

			for _, u := range e.Images {
				sb.WriteString(fmt.Sprintf("    %s\n", u))
			}
		}
	}

	var html bytes.Buffer
	if err := page.Execute(&html, v); err != nil {
		return Summary{}, fmt.Errorf("rendering html summary: %w", err)
	}

	return Summary{
		Subject: "New intake submission: " + v.Business,
		Text:    sb.String(),
		HTML:    html.String(),
	}, nil
}

func build(s *submission.Submission) view {
	p := s.Payload

	business := title(strings.TrimSpace(p.BusinessName))
	if business == "" {
		business = "Unnamed Business"
	}

	v := view{
		ID:       s.ID.String(),
		Business: business,
		Created:  s.CreatedAt.Format("2006-01-02 15:04 MST"),
	}

	add := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			v.Fields = append(v.Fields, [2]string{label, value})
		}
	}

	add("Owner", title(p.OwnerName))
	add("Email", p.Email)
	add("Phone", p.Phone)
	add("Website", p.Website)
	add("Address", p.Address)

	if p.YearsOfExperience != nil {
		add("Years of experience", strconv.Itoa(*p.YearsOfExperience))
	}

	add("Tagline", p.Tagline)
	add("About us", p.AboutUs)

	if p.AboutUsModifications != "" {
		add("About us changes", p.AboutUsModifications)
	}

	add("Emergency phone", p.EmergencyPhoneNumber)
	add("Notes", p.AdditionalNotes)
	add("Included sections", included(p.Sections))

	v.Blocks = collect(
		listBlock("Services", p.Services, func(r profile.Service) entry {
			return entry{r.Name, join(r.Description, r.PriceRange), r.PictureURLs}
		}),
		listBlock("Projects", p.Projects, func(r profile.Project) entry {
			return entry{r.Title, join(r.Description, r.Location, r.CompletedOn), r.PictureURLs}
		}),
		listBlock("Service Areas", p.ServiceAreas, func(r profile.ServiceArea) entry {
			return entry{r.Name, r.Description, nil}
		}),
		listBlock("Financing Options", p.FinancingOptions, func(r profile.FinancingOption) entry {
			return entry{r.Name, join(r.Description, r.Terms), nil}
		}),
		listBlock("Storm Services", p.StormServices, func(r profile.StormService) entry {
			return entry{r.Name, r.Description, r.PictureURLs}
		}),
		listBlock("Certifications", p.Certifications, func(r profile.Certification) entry {
			return entry{r.Name, join(r.Issuer, r.Year), r.PictureURLs}
		}),
		listBlock("Maintenance Tips", p.MaintenanceTips, func(r profile.MaintenanceTip) entry {
			return entry{r.Title, r.Description, nil}
		}),
		listBlock("Warranty", p.WarrantyTerms, func(r profile.WarrantyTerm) entry {
			return entry{r.Title, join(r.Description, r.Duration), nil}
		}),
		steps(p.InstallationSteps),
	)

	return v
}

func included(s profile.Sections) string {
	flags := []struct {
		on   bool
		name string
	}{
		{s.HasAboutUs, "About us"},
		{s.AboutUsModificationsEnabled, "About us changes"},
		{s.HasFinancingOptions, "Financing"},
		{s.HasStormServices, "Storm services"},
		{s.HasWarranty, "Warranty"},
		{s.HasMaintenanceTips, "Maintenance tips"},
		{s.HasInstallationProcess, "Installation process"},
		{s.HasEmergencyServices, "Emergency services"},
		{s.HasEmergencyPhoneNumber, "Emergency phone line"},
	}

	var names []string
	for _, f := range flags {
		if f.on {
			names = append(names, f.name)
		}
	}

	return strings.Join(names, ", ")
}

func listBlock[T any](name string, recs []T, fn func(T) entry) block {
	b := block{Title: name}
	for _, r := range recs {
		b.Entries = append(b.Entries, fn(r))
	}

	return b
}

func steps(items []string) block {
	b := block{Title: "Installation Process"}
	for i, s := range items {
		b.Entries = append(b.Entries, entry{Label: fmt.Sprintf("%d. %s", i+1, s)})
	}

	return b
}

func collect(blocks ...block) []block {
	out := blocks[:0]
	for _, b := range blocks {
		if len(b.Entries) > 0 {
			out = append(out, b)
		}
	}

	return out
}

func join(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, " | ")
}

package form

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/intake/internal/profile"
)

//go:generate mockgen -source=assembler.go -destination=assembler_mock.go -package=form
type Uploader interface {
	// Upload stores the files remotely and returns one URL per file, in the
	// order given.
	Upload(ctx context.Context, files []*profile.File) ([]string, error)
}

type Submitter interface {
	Submit(ctx context.Context, payload *profile.Payload) (uuid.UUID, error)
}

// Assembler turns a session into a payload and sends it. Only one Submit
// runs at a time; a concurrent call returns ErrInFlight.
type Assembler struct {
	uploader  Uploader
	submitter Submitter
	busy      atomic.Bool
}

func NewAssembler(uploader Uploader, submitter Submitter) *Assembler {
	return &Assembler{uploader: uploader, submitter: submitter}
}

// Submit validates the session, resolves every image set, and issues the
// submission call once. The session is never modified, so a failed attempt
// can simply be retried.
func (a *Assembler) Submit(ctx context.Context, s *Session) (uuid.UUID, error) {
	if !a.busy.CompareAndSwap(false, true) {
		return uuid.Nil, ErrInFlight
	}
	defer a.busy.Store(false)

	prof, err := Validate(s)
	if err != nil {
		return uuid.Nil, err
	}

	payload, err := a.assemble(ctx, s, prof)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := a.submitter.Submit(ctx, payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrSubmit, err)
	}

	return id, nil
}

func (a *Assembler) InFlight() bool { return a.busy.Load() }

func (a *Assembler) assemble(ctx context.Context, s *Session, prof profile.Profile) (*profile.Payload, error) {
	sec := s.Sections

	p := &profile.Payload{
		Profile: prof,
		Sections: profile.Sections{
			HasAboutUs:                  sec.Included(SectionAboutUs),
			AboutUsModificationsEnabled: sec.Included(SectionAboutUs) && sec.ModificationsEnabled(),
			HasFinancingOptions:         sec.Included(SectionFinancing),
			HasStormServices:            sec.Included(SectionStormServices),
			HasWarranty:                 sec.Included(SectionWarranty),
			HasMaintenanceTips:          sec.Included(SectionMaintenance),
			HasInstallationProcess:      sec.Included(SectionInstallation),
			HasEmergencyServices:        sec.Included(SectionEmergencyServices),
			HasEmergencyPhoneNumber:     sec.Included(SectionEmergencyPhone),
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	p.Services = resolve(gctx, g, a.uploader, ServiceKind, s.Services.Items())
	p.Projects = resolve(gctx, g, a.uploader, ProjectKind, s.Projects.Items())
	p.ServiceAreas = s.ServiceAreas.Items()
	p.Certifications = resolve(gctx, g, a.uploader, CertificationKind, s.Certifications.Items())

	if p.HasFinancingOptions {
		p.FinancingOptions = s.FinancingOptions.Items()
	}

	if p.HasStormServices {
		p.StormServices = resolve(gctx, g, a.uploader, StormServiceKind, s.StormServices.Items())
	}

	if p.HasMaintenanceTips {
		p.MaintenanceTips = s.MaintenanceTips.Items()
	}

	if p.HasWarranty {
		p.WarrantyTerms = s.WarrantyTerms.Items()
	}

	if p.HasInstallationProcess {
		p.InstallationSteps = s.InstallationSteps.Items()
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	p.Normalize()

	return p, nil
}

// resolve schedules one upload per non-empty image set on g and returns the
// records that will carry the URLs once g completes. recs must be a private
// copy.
func resolve[T any](ctx context.Context, g *errgroup.Group, up Uploader, kind Kind[T], recs []T) []T {
	if kind.Gallery == nil {
		return recs
	}

	for i := range recs {
		gal := kind.Gallery(&recs[i])
		files := gal.Pictures
		gal.Pictures = nil

		if len(files) == 0 {
			gal.PictureURLs = []string{}
			continue
		}

		g.Go(func() error {
			urls, err := up.Upload(ctx, files)
			if err != nil {
				return fmt.Errorf("%s #%d: %w", kind.Name, i+1, err)
			}

			if len(urls) != len(files) {
				return fmt.Errorf("%s #%d: got %d urls for %d images", kind.Name, i+1, len(urls), len(files))
			}

			gal.PictureURLs = urls

			return nil
		})
	}

	return recs
}

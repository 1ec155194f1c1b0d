package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/intake/internal/profile"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=submission
type Repository interface {
	CreateSubmission(ctx context.Context, s *Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error)
	// ListSubmissions returns every submission, newest first.
	ListSubmissions(ctx context.Context) ([]*Submission, error)
}

type Notifier interface {
	Notify(ctx context.Context, s *Submission) error
}

type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create validates and stores the payload, then notifies the operator. A
// notification failure is logged and does not fail the call.
func (s *Service) Create(ctx context.Context, payload profile.Payload) (*Submission, error) {
	payload.Normalize()

	if err := profile.Validate(&payload); err != nil {
		return nil, err
	}

	sub := &Submission{Payload: payload}
	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	if s.notifier == nil {
		return sub, nil
	}

	if err := s.notifier.Notify(ctx, sub); err != nil {
		slog.Error("failed to send submission notification", "id", sub.ID, "error", err)
	}

	return sub, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return s.repo.GetSubmission(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Submission, error) {
	return s.repo.ListSubmissions(ctx)
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/intake/internal/submission"
)

// Store persists submissions in postgres. The payload is kept as a single
// jsonb document.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, payload, created_at
func scanSubmission(s scanner) (*submission.Submission, error) {
	var (
		sub submission.Submission
		raw []byte
	)

	if err := s.Scan(&sub.ID, &raw, &sub.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, &sub.Payload); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	return &sub, nil
}

func (s *Store) CreateSubmission(ctx context.Context, sub *submission.Submission) error {
	raw, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	query := `
		INSERT INTO submissions (business_name, payload, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, sub.Payload.BusinessName, raw).Scan(&sub.ID, &sub.CreatedAt); err != nil {
		return fmt.Errorf("creating submission: %w", err)
	}

	return nil
}

func (s *Store) GetSubmission(ctx context.Context, id uuid.UUID) (*submission.Submission, error) {
	query := `SELECT id, payload, created_at FROM submissions WHERE id = $1`

	sub, err := scanSubmission(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, submission.ErrNotFound
		}

		return nil, fmt.Errorf("getting submission: %w", err)
	}

	return sub, nil
}

func (s *Store) ListSubmissions(ctx context.Context) ([]*submission.Submission, error) {
	query := `SELECT id, payload, created_at FROM submissions ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var subs []*submission.Submission

	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}

		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/intake/internal/submission"
)

type entry struct {
	sub submission.Submission
	seq uint64
}

// Memory keeps submissions in process memory. Contents are lost on restart.
// Submissions are deep-copied on the way in and out.
type Memory struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]entry
	seq  uint64
	now  func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		subs: make(map[uuid.UUID]entry),
		now:  time.Now,
	}
}

func (m *Memory) CreateSubmission(_ context.Context, s *submission.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = uuid.New()
	s.CreatedAt = m.now()
	m.seq++
	m.subs[s.ID] = entry{sub: clone(s), seq: m.seq}

	return nil
}

func (m *Memory) GetSubmission(_ context.Context, id uuid.UUID) (*submission.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.subs[id]
	if !ok {
		return nil, submission.ErrNotFound
	}

	s := clone(&e.sub)

	return &s, nil
}

// ListSubmissions returns newest first. Submissions created at the same
// instant are ordered by insertion, latest first.
func (m *Memory) ListSubmissions(_ context.Context) ([]*submission.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]entry, 0, len(m.subs))
	for _, e := range m.subs {
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b entry) int {
		if c := b.sub.CreatedAt.Compare(a.sub.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.seq, a.seq)
	})

	subs := make([]*submission.Submission, 0, len(entries))
	for _, e := range entries {
		s := clone(&e.sub)
		subs = append(subs, &s)
	}

	return subs, nil
}

func clone(s *submission.Submission) submission.Submission {
	cp := *s
	cp.Payload = s.Payload.Clone()

	return cp
}

package submission

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/intake/internal/profile"
)

var ErrNotFound = errors.New("submission not found")

// Submission is one persisted intake form.
type Submission struct {
	ID        uuid.UUID
	Payload   profile.Payload
	CreatedAt time.Time
}

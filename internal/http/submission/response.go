package submission

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/intake/internal/profile"
	"github.com/MrJamesThe3rd/intake/internal/submission"
)

type submissionResponse struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   profile.Payload `json:"payload"`
}

func toResponse(s *submission.Submission) submissionResponse {
	return submissionResponse{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Payload:   s.Payload,
	}
}

func toResponseList(subs []*submission.Submission) []submissionResponse {
	resp := make([]submissionResponse, len(subs))
	for i, s := range subs {
		resp[i] = toResponse(s)
	}

	return resp
}

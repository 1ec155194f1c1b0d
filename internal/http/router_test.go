package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	intakeHttp "github.com/MrJamesThe3rd/intake/internal/http"
	"github.com/MrJamesThe3rd/intake/internal/http/submission"
	"github.com/MrJamesThe3rd/intake/internal/http/upload"
	"github.com/MrJamesThe3rd/intake/internal/media"
	svc "github.com/MrJamesThe3rd/intake/internal/submission"
	"github.com/MrJamesThe3rd/intake/internal/submission/store"
)

type noUploads struct{}

func (noUploads) Upload(context.Context, []media.Image) ([]string, error) { return []string{}, nil }

func newRouter() http.Handler {
	return intakeHttp.New(
		[]string{"https://forms.example"},
		submission.NewHandler(svc.NewService(store.NewMemory(), nil)),
		upload.NewHandler(noUploads{}, 1<<20),
	)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		wantStatus  int
	}{
		{name: "Health", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK},
		{name: "ListSubmissions", method: http.MethodGet, target: "/api/v1/submissions", wantStatus: http.StatusOK},
		{
			name: "CreateSubmission", method: http.MethodPost, target: "/api/v1/submissions",
			contentType: "application/json", body: `{"yearsOfExperience":3}`, wantStatus: http.StatusCreated,
		},
		{
			name: "WrongContentType", method: http.MethodPost, target: "/api/v1/submissions",
			contentType: "text/plain", body: `{}`, wantStatus: http.StatusUnsupportedMediaType,
		},
		{name: "UnknownRoute", method: http.MethodGet, target: "/api/v2/submissions", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			rec := httptest.NewRecorder()
			newRouter().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/submissions", nil)
	req.Header.Set("Origin", "https://forms.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	assert.Equal(t, "https://forms.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

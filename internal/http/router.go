package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/intake/internal/http/submission"
	"github.com/MrJamesThe3rd/intake/internal/http/upload"
)

func New(
	allowedOrigins []string,
	submissionsV1 *submission.Handler,
	uploadsV1 *upload.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/submissions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			submissionsV1.Routes(r)
		})

		r.Route("/uploads", uploadsV1.Routes)
	})

	return router
}

package upload

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/intake/internal/media"
)

const field = "images"

type Uploader interface {
	Upload(ctx context.Context, images []media.Image) ([]string, error)
}

// Handler proxies image uploads to the media host so its credentials stay
// on the server.
type Handler struct {
	uploader Uploader
	maxBytes int64
}

func NewHandler(uploader Uploader, maxBytes int64) *Handler {
	return &Handler{uploader: uploader, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
}

type uploadResponse struct {
	URLs []string `json:"urls"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		http.Error(w, "no images provided", http.StatusBadRequest)
		return
	}

	images := make([]media.Image, len(headers))
	for i, fh := range headers {
		images[i] = media.Image{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		}
	}

	urls, err := h.uploader.Upload(r.Context(), images)
	if err != nil {
		slog.Error("failed to upload images", "count", len(images), "error", err)
		http.Error(w, "failed to upload images", http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(uploadResponse{URLs: urls}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

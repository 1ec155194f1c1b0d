package media

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func image(name, content string) Image {
	return Image{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func newTestCloudinary(t *testing.T, h http.HandlerFunc) *Cloudinary {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := NewCloudinary(Options{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "intake",
		BaseURL:   srv.URL,
	})
	c.now = func() time.Time { return time.Unix(1700000000, 0) }

	return c
}

func TestCloudinary_UploadReader(t *testing.T) {
	want := sha1.Sum([]byte("folder=intake&timestamp=1700000000secret"))

	c := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/image/upload", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))
		assert.Equal(t, "intake", r.FormValue("folder"))
		assert.Equal(t, hex.EncodeToString(want[:]), r.FormValue("signature"))

		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()

		raw, _ := io.ReadAll(f)
		assert.Equal(t, "roof.jpg", hdr.Filename)
		assert.Equal(t, "jpeg-bytes", string(raw))

		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://cdn.example/roof.jpg"})
	})

	url, err := c.UploadReader(t.Context(), "roof.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/roof.jpg", url)
}

func TestCloudinary_Upload_PreservesOrder(t *testing.T) {
	c := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		_, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}

		// Finish the first file last.
		if hdr.Filename == "a.jpg" {
			time.Sleep(20 * time.Millisecond)
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://cdn.example/" + hdr.Filename})
	})

	urls, err := c.Upload(t.Context(), []Image{image("a.jpg", "a"), image("b.jpg", "b"), image("c.jpg", "c")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://cdn.example/a.jpg",
		"https://cdn.example/b.jpg",
		"https://cdn.example/c.jpg",
	}, urls)
}

func TestCloudinary_Upload_FailureFailsBatch(t *testing.T) {
	c := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		_, hdr, _ := r.FormFile("file")
		if hdr != nil && hdr.Filename == "bad.jpg" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprint(w, `{"error":{"message":"Invalid image file"}}`)

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://cdn.example/ok"})
	})

	urls, err := c.Upload(t.Context(), []Image{image("ok.jpg", "x"), image("bad.jpg", "y")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image file")
	assert.Nil(t, urls)
}

func TestCloudinary_Upload_OpenError(t *testing.T) {
	var calls atomic.Int32

	c := newTestCloudinary(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://cdn.example/ok"})
	})

	broken := Image{Name: "gone.jpg", Open: func() (io.ReadCloser, error) { return nil, errors.New("no such file") }}

	_, err := c.Upload(t.Context(), []Image{broken})
	require.Error(t, err)
	assert.Zero(t, calls.Load())
}

func TestCloudinary_Upload_Empty(t *testing.T) {
	urls, err := NewCloudinary(Options{}).Upload(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, urls)
}

func TestCloudinary_NotConfigured(t *testing.T) {
	_, err := NewCloudinary(Options{}).Upload(t.Context(), []Image{image("a.jpg", "a")})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

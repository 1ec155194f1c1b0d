package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/intake/internal/profile"
)

// Client talks to the intake API. It satisfies form.Uploader and
// form.Submitter.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type uploadResponse struct {
	URLs []string `json:"urls"`
}

type createResponse struct {
	ID uuid.UUID `json:"id"`
}

// Upload streams the files as one multipart request and returns the URLs in
// file order.
func (c *Client) Upload(ctx context.Context, files []*profile.File) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeFiles(mw, files))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/uploads", pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out uploadResponse
	if err := c.do(req, http.StatusOK, &out); err != nil {
		return nil, err
	}

	if len(out.URLs) != len(files) {
		return nil, fmt.Errorf("expected %d urls, got %d", len(files), len(out.URLs))
	}

	return out.URLs, nil
}

func writeFiles(mw *multipart.Writer, files []*profile.File) error {
	for _, f := range files {
		if err := writeFile(mw, f); err != nil {
			return err
		}
	}

	return mw.Close()
}

func writeFile(mw *multipart.Writer, f *profile.File) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, f.Name))

	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	h.Set("Content-Type", ct)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating part for %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	if _, err := io.Copy(part, rc); err != nil {
		return fmt.Errorf("reading %s: %w", f.Name, err)
	}

	return nil
}

func (c *Client) Submit(ctx context.Context, payload *profile.Payload) (uuid.UUID, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/submissions", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	var out createResponse
	if err := c.do(req, http.StatusCreated, &out); err != nil {
		return uuid.Nil, err
	}

	return out.ID, nil
}

func (c *Client) do(req *http.Request, want int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

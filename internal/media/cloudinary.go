package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrNotConfigured = errors.New("media host is not configured")

// Image is one file to push to the media host.
type Image struct {
	Name string
	Open func() (io.ReadCloser, error)
}

type Options struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	BaseURL   string
	// Concurrency bounds parallel uploads in a batch. Zero means 4.
	Concurrency int
}

// Cloudinary uploads images through the signed upload API.
type Cloudinary struct {
	opts   Options
	client *http.Client
	now    func() time.Time
}

func NewCloudinary(opts Options) *Cloudinary {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}

	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &Cloudinary{
		opts:   opts,
		client: &http.Client{Timeout: 60 * time.Second},
		now:    time.Now,
	}
}

func (c *Cloudinary) configured() bool {
	return c.opts.CloudName != "" && c.opts.APIKey != "" && c.opts.APISecret != ""
}

// Upload pushes every image and returns their URLs in input order. Any
// failure fails the batch.
func (c *Cloudinary) Upload(ctx context.Context, images []Image) ([]string, error) {
	if len(images) == 0 {
		return []string{}, nil
	}

	if !c.configured() {
		return nil, ErrNotConfigured
	}

	urls := make([]string, len(images))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)

	for i, img := range images {
		g.Go(func() error {
			rc, err := img.Open()
			if err != nil {
				return fmt.Errorf("opening %s: %w", img.Name, err)
			}
			defer rc.Close()

			url, err := c.UploadReader(ctx, img.Name, rc)
			if err != nil {
				return err
			}

			urls[i] = url

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadReader sends a single image and returns its secure URL.
func (c *Cloudinary) UploadReader(ctx context.Context, name string, r io.Reader) (string, error) {
	if !c.configured() {
		return "", ErrNotConfigured
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	fields := [][2]string{
		{"api_key", c.opts.APIKey},
		{"timestamp", timestamp},
		{"signature", c.sign(timestamp)},
	}
	if c.opts.Folder != "" {
		fields = append(fields, [2]string{"folder", c.opts.Folder})
	}

	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return "", fmt.Errorf("writing field %s: %w", f[0], err)
		}
	}

	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("creating file part: %w", err)
	}

	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copying %s: %w", name, err)
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("closing multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.opts.BaseURL, c.opts.CloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("uploading %s: status %d: %s", name, resp.StatusCode, out.Error.Message)
		}

		return "", fmt.Errorf("uploading %s: unexpected status code %d", name, resp.StatusCode)
	}

	if out.SecureURL == "" {
		return "", fmt.Errorf("uploading %s: response carried no url", name)
	}

	return out.SecureURL, nil
}

// sign follows the host's scheme: the signed parameters sorted by name,
// joined as a query string, with the secret appended, hashed with SHA-1.
func (c *Cloudinary) sign(timestamp string) string {
	params := "timestamp=" + timestamp
	if c.opts.Folder != "" {
		params = "folder=" + c.opts.Folder + "&" + params
	}

	sum := sha1.Sum([]byte(params + c.opts.APISecret))

	return hex.EncodeToString(sum[:])
}

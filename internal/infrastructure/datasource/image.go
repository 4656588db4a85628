package datasource

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	// Decoders for the formats the hero image CDN serves.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ImageFetcher downloads and decodes images over HTTP.
type ImageFetcher struct {
	client *http.Client
}

// NewImageFetcher creates an image fetcher with the given client timeout.
func NewImageFetcher(timeout time.Duration) *ImageFetcher {
	return &ImageFetcher{client: &http.Client{Timeout: timeout}}
}

// FetchImage downloads url and decodes it.
func (f *ImageFetcher) FetchImage(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("requesting %s: unexpected status %s", url, resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

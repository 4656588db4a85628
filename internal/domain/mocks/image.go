package mocks

import (
	"context"
	"image"
)

// ImageFetcher is a mock implementation of ports.ImageFetcher.
type ImageFetcher struct {
	Image image.Image
	Err   error

	// Call tracking
	LastURL string
}

// FetchImage returns the configured image or error.
func (m *ImageFetcher) FetchImage(ctx context.Context, url string) (image.Image, error) {
	m.LastURL = url
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Image, nil
}

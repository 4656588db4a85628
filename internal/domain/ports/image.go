package ports

import (
	"context"
	"image"
)

// ImageFetcher downloads and decodes a remote image.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) (image.Image, error)
}

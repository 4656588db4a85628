package handlers

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/domain/ports"
	"github.com/ersonp/herotable/internal/domain/services"
)

// ErrNoImage is returned when the matched record has no image URL.
var ErrNoImage = errors.New("record has no image")

// PortraitHandler looks up a hero and downloads its thumbnail.
type PortraitHandler struct {
	source  ports.DataSource
	fetcher ports.ImageFetcher
}

// NewPortraitHandler creates a new portrait handler.
func NewPortraitHandler(source ports.DataSource, fetcher ports.ImageFetcher) *PortraitHandler {
	return &PortraitHandler{
		source:  source,
		fetcher: fetcher,
	}
}

// PortraitResult contains the matched record and its decoded image.
type PortraitResult struct {
	Record entities.Record
	Image  image.Image
}

// Handle finds the hero named name and fetches its image.
func (h *PortraitHandler) Handle(ctx context.Context, name string) (*PortraitResult, error) {
	records, err := h.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}

	record, err := services.FindRecord(records, name)
	if err != nil {
		return nil, err
	}

	if record.ImageURL == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoImage, record.Name)
	}

	img, err := h.fetcher.FetchImage(ctx, record.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching image for %s: %w", record.Name, err)
	}

	return &PortraitResult{
		Record: record,
		Image:  img,
	}, nil
}

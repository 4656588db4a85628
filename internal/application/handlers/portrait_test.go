package handlers

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/domain/mocks"
	"github.com/ersonp/herotable/internal/domain/services"
)

func portraitRecords() []entities.Record {
	return []entities.Record{
		{Name: "Batgirl", ImageURL: "https://example.test/batgirl.jpg"},
		{Name: "Batman", ImageURL: "https://example.test/batman.jpg"},
		{Name: "Robin"},
	}
}

func TestPortraitHandler_Handle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	fetcher := &mocks.ImageFetcher{Image: img}
	handler := NewPortraitHandler(&mocks.DataSource{Records: portraitRecords()}, fetcher)

	result, err := handler.Handle(context.Background(), "batman")
	require.NoError(t, err)
	assert.Equal(t, "Batman", result.Record.Name)
	assert.Same(t, img, result.Image)
	assert.Equal(t, "https://example.test/batman.jpg", fetcher.LastURL)
}

func TestPortraitHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  *mocks.DataSource
		fetcher *mocks.ImageFetcher
		query   string
		wantErr error
		errMsg  string
	}{
		{
			name:    "fetch fails",
			source:  &mocks.DataSource{Err: errors.New("offline")},
			fetcher: &mocks.ImageFetcher{},
			query:   "batman",
			errMsg:  "offline",
		},
		{
			name:    "no such hero",
			source:  &mocks.DataSource{Records: portraitRecords()},
			fetcher: &mocks.ImageFetcher{},
			query:   "joker",
			wantErr: services.ErrNoRecord,
		},
		{
			name:    "hero without image",
			source:  &mocks.DataSource{Records: portraitRecords()},
			fetcher: &mocks.ImageFetcher{},
			query:   "robin",
			wantErr: ErrNoImage,
		},
		{
			name:    "image download fails",
			source:  &mocks.DataSource{Records: portraitRecords()},
			fetcher: &mocks.ImageFetcher{Err: errors.New("404")},
			query:   "batgirl",
			errMsg:  "fetching image for Batgirl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPortraitHandler(tt.source, tt.fetcher)
			_, err := handler.Handle(context.Background(), tt.query)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

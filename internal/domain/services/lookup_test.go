package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/herotable/internal/domain/entities"
)

func TestFindRecord(t *testing.T) {
	records := []entities.Record{
		{ID: "1", Name: "Batman II"},
		{ID: "2", Name: "Batgirl"},
		{ID: "3", Name: "Batman"},
	}

	tests := []struct {
		name   string
		query  string
		wantID string
	}{
		{"exact match wins over earlier partial", "batman", "3"},
		{"exact match ignores case and spaces", "  BATGIRL ", "2"},
		{"first partial match", "bat", "1"},
		{"partial match in the middle", "girl", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRecord(records, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestFindRecord_NoMatch(t *testing.T) {
	records := []entities.Record{{Name: "Batman"}}

	_, err := FindRecord(records, "joker")
	require.ErrorIs(t, err, ErrNoRecord)
	assert.Contains(t, err.Error(), `"joker"`)

	_, err = FindRecord(records, "  ")
	require.ErrorIs(t, err, ErrNoRecord)

	_, err = FindRecord(nil, "batman")
	require.ErrorIs(t, err, ErrNoRecord)
}

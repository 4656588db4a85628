// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// DataSource is a mock implementation of ports.DataSource.
type DataSource struct {
	Records []entities.Record
	Err     error

	// Call tracking
	FetchCallCount int
}

// Fetch returns the configured records or error.
func (m *DataSource) Fetch(ctx context.Context) ([]entities.Record, error) {
	m.FetchCallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

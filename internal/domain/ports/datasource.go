// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// DataSource supplies the hero records for a session.
type DataSource interface {
	// Fetch retrieves every record. It is called once per session.
	Fetch(ctx context.Context) ([]entities.Record, error)
}

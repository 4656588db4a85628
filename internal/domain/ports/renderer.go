package ports

import (
	"context"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// Renderer draws a table view model.
// Implementations redraw the whole table on every call.
type Renderer interface {
	Render(ctx context.Context, view entities.View) error
}

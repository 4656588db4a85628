package mocks

import (
	"context"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// Renderer is a mock implementation of ports.Renderer that records every view.
type Renderer struct {
	Views []entities.View
	Err   error
}

// Render stores the view and returns the configured error.
func (m *Renderer) Render(ctx context.Context, view entities.View) error {
	m.Views = append(m.Views, view)
	return m.Err
}

// Last returns the most recently rendered view.
func (m *Renderer) Last() entities.View {
	if len(m.Views) == 0 {
		return entities.View{}
	}
	return m.Views[len(m.Views)-1]
}

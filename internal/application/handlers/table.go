// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/domain/ports"
	"github.com/ersonp/herotable/internal/domain/services"
)

// ErrUnknownEvent is returned by Handle for event types it does not know.
var ErrUnknownEvent = errors.New("unknown event")

// Event is a user interaction delivered to the table.
type Event interface {
	event()
}

// PageSelected is sent when the user picks a page from the page selector.
type PageSelected struct {
	Page int
}

// PageSizeChanged is sent when the user picks a page size.
type PageSizeChanged struct {
	Size entities.PageSize
}

// QueryChanged is sent whenever the search box text changes.
type QueryChanged struct {
	Query string
}

// HeaderActivated is sent when a column header is clicked or selected.
type HeaderActivated struct {
	Header string
}

func (PageSelected) event()    {}
func (PageSizeChanged) event() {}
func (QueryChanged) event()    {}
func (HeaderActivated) event() {}

// TableOptions configures a TableHandler.
type TableOptions struct {
	PageSize     entities.PageSize
	SearchColumn entities.Column
}

// TableHandler owns the table state. It loads records from the data source
// and answers interaction events by computing the next state and asking the
// renderer to redraw. Callers must not invoke it concurrently; each call runs
// to completion before the next one starts.
type TableHandler struct {
	source   ports.DataSource
	renderer ports.Renderer
	logger   *slog.Logger
	state    services.TableState
}

// NewTableHandler creates a new table handler.
func NewTableHandler(source ports.DataSource, renderer ports.Renderer, logger *slog.Logger, opts TableOptions) *TableHandler {
	if logger == nil {
		logger = slog.Default()
	}

	state := services.NewTableState(opts.PageSize)
	if opts.SearchColumn != "" {
		state = state.WithSearchColumn(opts.SearchColumn)
	}

	return &TableHandler{
		source:   source,
		renderer: renderer,
		logger:   logger,
		state:    state,
	}
}

// State returns the current table state.
func (h *TableHandler) State() services.TableState {
	return h.state
}

// Load fetches the records and renders the first page.
// On fetch failure the failure is logged, the table is rendered empty and
// the error is returned; the handler stays usable.
func (h *TableHandler) Load(ctx context.Context) error {
	records, err := h.source.Fetch(ctx)
	return h.Accept(ctx, records, err)
}

// Accept installs the outcome of a fetch and renders the first page. It lets
// callers run the fetch elsewhere (off the UI goroutine) and hand the result
// back to the goroutine that owns the handler.
func (h *TableHandler) Accept(ctx context.Context, records []entities.Record, fetchErr error) error {
	if fetchErr != nil {
		h.logger.Error("loading records failed", "error", fetchErr)
		h.state = h.state.WithRecords(nil)
		if rerr := h.render(ctx); rerr != nil {
			return errors.Join(fmt.Errorf("fetching records: %w", fetchErr), rerr)
		}
		return fmt.Errorf("fetching records: %w", fetchErr)
	}

	h.logger.Info("records loaded", "count", len(records))
	h.state = h.state.WithRecords(records)
	return h.render(ctx)
}

// Handle applies an interaction event and re-renders.
func (h *TableHandler) Handle(ctx context.Context, ev Event) error {
	next, err := h.apply(ev)
	if err != nil {
		return err
	}
	h.state = next
	return h.render(ctx)
}

// Replay applies a sequence of events and renders once at the end.
// If any event fails, the state is left as it was before the call.
func (h *TableHandler) Replay(ctx context.Context, events ...Event) error {
	saved := h.state
	for _, ev := range events {
		next, err := h.apply(ev)
		if err != nil {
			h.state = saved
			return err
		}
		h.state = next
	}
	return h.render(ctx)
}

func (h *TableHandler) apply(ev Event) (services.TableState, error) {
	switch e := ev.(type) {
	case PageSelected:
		h.logger.Debug("page selected", "page", e.Page)
		return h.state.SelectPage(e.Page), nil
	case PageSizeChanged:
		h.logger.Debug("page size changed", "size", e.Size.String())
		return h.state.WithPageSize(e.Size), nil
	case QueryChanged:
		h.logger.Debug("query changed", "query", e.Query)
		return h.state.WithQuery(e.Query), nil
	case HeaderActivated:
		h.logger.Debug("sorting", "column", e.Header, "order", h.state.NextOrder().String())
		return h.state.SortBy(e.Header), nil
	default:
		return h.state, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
}

// View returns the view model of the current state.
func (h *TableHandler) View() entities.View {
	return h.state.View()
}

func (h *TableHandler) render(ctx context.Context) error {
	if err := h.renderer.Render(ctx, h.state.View()); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}

package datasource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/infrastructure/parsers"
)

// HTTPSource fetches records in the superhero API JSON format from a URL.
type HTTPSource struct {
	url    string
	client *http.Client
	parser parsers.Parser
	logger *slog.Logger
}

// NewHTTPSource creates a source for url. A zero timeout means no client timeout.
func NewHTTPSource(url string, timeout time.Duration, logger *slog.Logger) *HTTPSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		parser: &parsers.JSONParser{},
		logger: logger,
	}
}

// Fetch downloads and parses the record list.
func (s *HTTPSource) Fetch(ctx context.Context) ([]entities.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("requesting %s: unexpected status %s", s.url, resp.Status)
	}

	raw, err := s.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.url, err)
	}

	records, skipped := ToRecords(raw)
	for _, e := range skipped {
		s.logger.Warn("skipping record", "url", s.url, "line", e.Line, "field", e.Field, "reason", e.Message)
	}

	s.logger.Debug("fetched records", "url", s.url, "count", len(records), "elapsed", time.Since(start))
	return records, nil
}

package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/infrastructure/parsers"
)

// FileSource reads records from a local .json or .csv file.
type FileSource struct {
	path   string
	format string
	logger *slog.Logger
}

// NewFileSource creates a source reading path. An empty format picks the
// parser from the file extension.
func NewFileSource(path, format string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		path:   path,
		format: format,
		logger: logger,
	}
}

// Fetch reads and parses the file.
func (s *FileSource) Fetch(ctx context.Context) ([]entities.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser, err := s.parser()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raw, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	records, skipped := ToRecords(raw)
	for _, e := range skipped {
		s.logger.Warn("skipping record", "path", s.path, "line", e.Line, "field", e.Field, "reason", e.Message)
	}

	return records, nil
}

func (s *FileSource) parser() (parsers.Parser, error) {
	if s.format != "" {
		if p := parsers.ForFormat(s.format); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("unsupported format %q (use json or csv)", s.format)
	}
	if p := parsers.ForFile(s.path); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("unsupported file type %q (use .json or .csv)", filepath.Ext(s.path))
}

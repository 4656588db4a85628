// Package datasource provides DataSource implementations backed by HTTP and local files.
package datasource

import (
	"fmt"
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/infrastructure/parsers"
)

// RecordError describes a raw record that was skipped.
type RecordError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Field   string // Which field has the error
	Message string // Human-readable error message
}

func (e RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ToRecords validates raw records and converts the valid ones to entities.
// Records without a name are skipped; records without an ID get a random one.
func ToRecords(raw []parsers.RawRecord) ([]entities.Record, []RecordError) {
	records := make([]entities.Record, 0, len(raw))
	var errs []RecordError

	for i := range raw {
		r := &raw[i]
		line := r.LineNum
		if line == 0 {
			line = i + 1
		}

		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, RecordError{Line: line, Field: "name", Message: "missing required field: name"})
			continue
		}

		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}

		records = append(records, entities.Record{
			ID:           id,
			Name:         r.Name,
			FullName:     r.FullName,
			Race:         r.Race,
			Gender:       r.Gender,
			Height:       r.Height,
			Weight:       r.Weight,
			PlaceOfBirth: r.PlaceOfBirth,
			Alignment:    r.Alignment,
			Powerstats:   maps.Clone(r.Powerstats),
			ImageURL:     r.ImageURL,
		})
	}

	return records, errs
}

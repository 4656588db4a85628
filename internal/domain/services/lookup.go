package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// ErrNoRecord is returned when no record matches a lookup.
var ErrNoRecord = errors.New("no matching record")

// FindRecord returns the record whose name matches name.
// An exact case-insensitive match wins; otherwise the first record whose
// name contains name is returned.
func FindRecord(records []entities.Record, name string) (entities.Record, error) {
	q := NormalizeQuery(name)
	if q == "" {
		return entities.Record{}, fmt.Errorf("%w: empty name", ErrNoRecord)
	}

	partial := -1
	for i, r := range records {
		n := NormalizeQuery(r.Name)
		if n == q {
			return r, nil
		}
		if partial < 0 && strings.Contains(n, q) {
			partial = i
		}
	}

	if partial >= 0 {
		return records[partial], nil
	}
	return entities.Record{}, fmt.Errorf("%w: %q", ErrNoRecord, name)
}

package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// DefaultSearchColumn is the column searched by the row filter.
const DefaultSearchColumn = entities.ColumnName

// NormalizeQuery trims and lower-cases text for case-insensitive matching.
func NormalizeQuery(s string) string {
	// cases.Caser keeps state, so one is created per call.
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Visibility reports, for each record, whether it matches query in the given column.
// The result is aligned with records. An empty query shows every row without
// inspecting any cell. Records are never removed or reordered.
func Visibility(records []entities.Record, query string, column entities.Column) []bool {
	visible := make([]bool, len(records))

	q := NormalizeQuery(query)
	if q == "" {
		for i := range visible {
			visible[i] = true
		}
		return visible
	}

	lower := cases.Lower(language.Und)
	for i, r := range records {
		cell := lower.String(strings.TrimSpace(r.Cell(column)))
		visible[i] = strings.Contains(cell, q)
	}
	return visible
}

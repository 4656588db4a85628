package services

import (
	"slices"

	"github.com/ersonp/herotable/internal/domain/entities"
)

type keyedRecord struct {
	record entities.Record
	key    SortKey
}

// SortKeys computes the sort key of every record for the given column.
func SortKeys(records []entities.Record, column entities.Column) []SortKey {
	kind := column.Kind()
	keys := make([]SortKey, len(records))
	for i, r := range records {
		keys[i] = KeyFor(kind, r.Cell(column))
	}
	return keys
}

// Sort returns a reordered copy of records, ordered by the column's sort key.
// Records with equal keys form a group that keeps its original relative
// order. Groups are ordered by key in the requested direction; Missing keys
// are the largest, so they come last ascending and first descending.
// The input slice is not modified.
func Sort(records []entities.Record, column entities.Column, order entities.SortOrder) []entities.Record {
	keys := SortKeys(records, column)

	keyed := make([]keyedRecord, len(records))
	for i, r := range records {
		keyed[i] = keyedRecord{record: r, key: keys[i]}
	}

	slices.SortStableFunc(keyed, func(a, b keyedRecord) int {
		c := a.key.Compare(b.key)
		if order == entities.Descending {
			return -c
		}
		return c
	})

	sorted := make([]entities.Record, len(keyed))
	for i, k := range keyed {
		sorted[i] = k.record
	}
	return sorted
}

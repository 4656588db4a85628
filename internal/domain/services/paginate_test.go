package services

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/herotable/internal/domain/entities"
)

func makeRecords(n int) []entities.Record {
	records := make([]entities.Record, n)
	for i := range records {
		records[i] = entities.Record{ID: strconv.Itoa(i), Name: "Hero " + strconv.Itoa(i)}
	}
	return records
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{731, 100, 8},
		{5, 0, 1},
		{45, math.MaxInt, 1},
		{math.MaxInt, math.MaxInt, 1},
		{math.MaxInt, 1, math.MaxInt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestSliceBounds(t *testing.T) {
	tests := []struct {
		name               string
		total, page, size  int
		wantStart, wantEnd int
	}{
		{"first page", 45, 1, 20, 0, 20},
		{"last partial page", 45, 3, 20, 40, 45},
		{"past the end", 45, 4, 20, 45, 45},
		{"far past the end", 45, 1 << 40, 20, 45, 45},
		{"page zero", 45, 0, 20, 0, 0},
		{"negative page", 45, -2, 20, 0, 0},
		{"empty set", 0, 1, 20, 0, 0},
		{"zero size", 45, 1, 0, 0, 0},
		{"huge size", 45, 1, math.MaxInt, 0, 45},
		{"huge size second page", 45, 2, math.MaxInt, 45, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := SliceBounds(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.True(t, 0 <= start && start <= end && end <= tt.total)
		})
	}
}

func TestVisibleSlice_CoversAllRecordsOnce(t *testing.T) {
	for _, n := range []int{0, 1, 19, 20, 21, 45, 100} {
		for _, size := range []int{1, 10, 20, 50, 100} {
			records := makeRecords(n)
			seen := make(map[string]int)

			total := 0
			for page := 1; page <= TotalPages(n, size); page++ {
				slice := VisibleSlice(records, page, size)
				total += len(slice)
				for _, r := range slice {
					seen[r.ID]++
				}
			}

			assert.Equal(t, n, total, "n=%d size=%d", n, size)
			for id, count := range seen {
				assert.Equal(t, 1, count, "record %s shown on %d pages", id, count)
			}
		}
	}
}

func TestVisibleSlice_FortyFiveRecords(t *testing.T) {
	records := makeRecords(45)

	assert.Equal(t, 3, TotalPages(len(records), 20))
	assert.Equal(t, records[0:20], VisibleSlice(records, 1, 20))

	last := VisibleSlice(records, 3, 20)
	require.Len(t, last, 5)
	assert.Equal(t, records[40:45], last)

	assert.Empty(t, VisibleSlice(records, 4, 20))
}

func TestVisibleSlice_CannotGrowIntoNeighbours(t *testing.T) {
	records := makeRecords(10)
	slice := VisibleSlice(records, 1, 5)

	slice = append(slice, entities.Record{ID: "new"})
	assert.Equal(t, "5", records[5].ID)
	assert.Len(t, slice, 6)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 45, 20))
	assert.Equal(t, 1, ClampPage(-3, 45, 20))
	assert.Equal(t, 2, ClampPage(2, 45, 20))
	assert.Equal(t, 3, ClampPage(9, 45, 20))
	assert.Equal(t, 1, ClampPage(9, 0, 20))
}

func TestPages(t *testing.T) {
	links := Pages(45, 20, 2)
	assert.Equal(t, []entities.PageLink{
		{Number: 1},
		{Number: 2, Active: true},
		{Number: 3},
	}, links)

	assert.Equal(t, []entities.PageLink{{Number: 1, Active: true}}, Pages(0, 20, 1))
}

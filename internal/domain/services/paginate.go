package services

import "github.com/ersonp/herotable/internal/domain/entities"

// SliceBounds returns the [start, end) range of records shown on a page.
// Both bounds are clamped so that 0 <= start <= end <= total; an
// out-of-range page yields an empty range.
func SliceBounds(total, page, pageSize int) (start, end int) {
	if total <= 0 || page < 1 || pageSize <= 0 {
		return 0, 0
	}
	// Pages beyond the end would overflow start; clamp before multiplying.
	if page-1 > total/pageSize {
		return total, total
	}
	start = min((page-1)*pageSize, total)
	end = start + min(pageSize, total-start)
	return start, end
}

// VisibleSlice returns the records on the given page.
// The result shares the backing array of records; callers must not modify it.
func VisibleSlice(records []entities.Record, page, pageSize int) []entities.Record {
	start, end := SliceBounds(len(records), page, pageSize)
	return records[start:end:end]
}

// TotalPages returns ceil(total/pageSize), never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total-1)/pageSize + 1
}

// ClampPage limits page to [1, TotalPages(total, pageSize)].
func ClampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(total, pageSize); page > last {
		return last
	}
	return page
}

// Pages builds the page selector entries 1..TotalPages, marking current as active.
func Pages(total, pageSize, current int) []entities.PageLink {
	n := TotalPages(total, pageSize)
	links := make([]entities.PageLink, n)
	for i := range links {
		links[i] = entities.PageLink{Number: i + 1, Active: i+1 == current}
	}
	return links
}

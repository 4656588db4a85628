package entities

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size used until the user picks another.
const DefaultPageSize PageSize = 20

// PageSizeAll shows every record on a single page.
const PageSizeAll PageSize = -1

// PageSizeChoices are the sizes offered by page-size selectors.
var PageSizeChoices = []PageSize{10, DefaultPageSize, 50, 100, PageSizeAll}

// PageSizeChoicesWith returns PageSizeChoices with size added in ascending
// order when it is not already offered. The result is a fresh slice.
func PageSizeChoicesWith(size PageSize) []PageSize {
	choices := make([]PageSize, 0, len(PageSizeChoices)+1)
	added := size.IsAll() || size <= 0 || slices.Contains(PageSizeChoices, size)
	for _, c := range PageSizeChoices {
		if !added && (c.IsAll() || c > size) {
			choices = append(choices, size)
			added = true
		}
		choices = append(choices, c)
	}
	if !added {
		choices = append(choices, size)
	}
	return choices
}

// ErrInvalidPageSize is returned when page size text is neither "all" nor a positive integer.
var ErrInvalidPageSize = errors.New("invalid page size")

// PageSize is the number of records per page, or PageSizeAll.
type PageSize int

// ParsePageSize parses "all" or a positive integer.
func ParsePageSize(s string) (PageSize, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return PageSizeAll, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q (want a positive number or \"all\")", ErrInvalidPageSize, s)
	}
	return PageSize(n), nil
}

// IsAll reports whether the size means "every record".
func (p PageSize) IsAll() bool {
	return p == PageSizeAll
}

// Effective returns the number of rows per page for a record set of the given size.
// "all" resolves to the live record count so it follows the data if it changes.
func (p PageSize) Effective(total int) int {
	if p.IsAll() {
		return total
	}
	return int(p)
}

// String returns "all" or the decimal size.
func (p PageSize) String() string {
	if p.IsAll() {
		return "all"
	}
	return strconv.Itoa(int(p))
}

// SortOrder is the direction of the next sort.
type SortOrder int

// Sort orders.
const (
	Ascending SortOrder = iota
	Descending
)

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// String returns "asc" or "desc".
func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// PageLink is one entry of the page selector.
type PageLink struct {
	Number int  `json:"number"`
	Active bool `json:"active"`
}

// Row is one rendered record of the current page.
type Row struct {
	Record  Record   `json:"record"`
	Cells   []string `json:"cells"`
	Visible bool     `json:"visible"`
}

// SortInfo describes the most recent sort applied to the table.
type SortInfo struct {
	Column Column    `json:"column"`
	Order  SortOrder `json:"order"`
}

// View is the render-ready view model of the table.
// Renderers draw it without consulting any other state.
type View struct {
	Columns     []string   `json:"columns"`
	Rows        []Row      `json:"rows"`
	Pages       []PageLink `json:"pages"`
	CurrentPage int        `json:"current_page"`
	TotalPages  int        `json:"total_pages"`
	PageSize    PageSize   `json:"page_size"`
	Total       int        `json:"total"`
	Query       string     `json:"query,omitempty"`
	LastSort    *SortInfo  `json:"last_sort,omitempty"`
}

// VisibleRows returns the rows that pass the current filter.
func (v View) VisibleRows() []Row {
	rows := make([]Row, 0, len(v.Rows))
	for _, r := range v.Rows {
		if r.Visible {
			rows = append(rows, r)
		}
	}
	return rows
}

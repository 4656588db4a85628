package services

import (
	"slices"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// TableState is the complete state of the hero table: the record set plus
// page, filter and sort state. It is a value; every transition returns a new
// state and leaves the receiver untouched, so a handler either replaces the
// whole state or nothing.
type TableState struct {
	records      []entities.Record
	page         int
	pageSize     entities.PageSize
	query        string
	searchColumn entities.Column
	order        entities.SortOrder
	lastSort     *entities.SortInfo
}

// NewTableState returns an empty table on page 1 with the given page size.
func NewTableState(pageSize entities.PageSize) TableState {
	if pageSize == 0 {
		pageSize = entities.DefaultPageSize
	}
	return TableState{
		page:         1,
		pageSize:     pageSize,
		searchColumn: DefaultSearchColumn,
		order:        entities.Ascending,
	}
}

// Records returns the record set in its current order.
func (s TableState) Records() []entities.Record {
	return slices.Clip(s.records)
}

// Page returns the current page number.
func (s TableState) Page() int { return s.page }

// PageSize returns the selected page size.
func (s TableState) PageSize() entities.PageSize { return s.pageSize }

// Query returns the current search query as typed.
func (s TableState) Query() string { return s.query }

// SearchColumn returns the column the query is matched against.
func (s TableState) SearchColumn() entities.Column { return s.searchColumn }

// NextOrder returns the direction the next sort will use.
func (s TableState) NextOrder() entities.SortOrder { return s.order }

// effectiveSize resolves the page size against the live record count.
func (s TableState) effectiveSize() int {
	return s.pageSize.Effective(len(s.records))
}

// TotalPages returns the number of pages for the current record set.
func (s TableState) TotalPages() int {
	return TotalPages(len(s.records), s.effectiveSize())
}

// WithRecords replaces the record set and returns to page 1.
func (s TableState) WithRecords(records []entities.Record) TableState {
	s.records = slices.Clone(records)
	s.page = 1
	s.lastSort = nil
	return s
}

// SelectPage moves to page n, clamped to the available pages.
func (s TableState) SelectPage(n int) TableState {
	s.page = ClampPage(n, len(s.records), s.effectiveSize())
	return s
}

// WithPageSize changes the page size and always resets to page 1.
func (s TableState) WithPageSize(size entities.PageSize) TableState {
	if size == 0 {
		size = entities.DefaultPageSize
	}
	s.pageSize = size
	s.page = 1
	return s
}

// WithQuery sets the search query. The record set is unchanged.
func (s TableState) WithQuery(q string) TableState {
	s.query = q
	return s
}

// WithSearchColumn sets the column the query is matched against.
func (s TableState) WithSearchColumn(c entities.Column) TableState {
	s.searchColumn = c
	return s
}

// SortBy reorders the whole record set by the column named by header, using
// the pending direction, then flips the direction. The direction is shared by
// all columns: sorting another column continues the alternation.
// Unknown headers sort as generic text.
func (s TableState) SortBy(header string) TableState {
	column, ok := entities.ColumnByHeader(header)
	if !ok {
		column = entities.Column(header)
	}

	s.records = Sort(s.records, column, s.order)
	s.lastSort = &entities.SortInfo{Column: column, Order: s.order}
	s.order = s.order.Toggle()
	s.page = ClampPage(s.page, len(s.records), s.effectiveSize())
	return s
}

// View derives the view model for the current page.
// The filter is applied to the rows of the current page only.
func (s TableState) View() entities.View {
	size := s.effectiveSize()
	page := ClampPage(s.page, len(s.records), size)
	slice := VisibleSlice(s.records, page, size)
	visible := Visibility(slice, s.query, s.searchColumn)

	rows := make([]entities.Row, len(slice))
	for i, r := range slice {
		rows[i] = entities.Row{
			Record:  r,
			Cells:   r.Cells(),
			Visible: visible[i],
		}
	}

	var lastSort *entities.SortInfo
	if s.lastSort != nil {
		info := *s.lastSort
		lastSort = &info
	}

	return entities.View{
		Columns:     entities.ColumnHeaders(),
		Rows:        rows,
		Pages:       Pages(len(s.records), size, page),
		CurrentPage: page,
		TotalPages:  TotalPages(len(s.records), size),
		PageSize:    s.pageSize,
		Total:       len(s.records),
		Query:       s.query,
		LastSort:    lastSort,
	}
}

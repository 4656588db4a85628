package entities

import "strings"

// Column identifies one column of the hero table.
type Column string

// Table columns, in display order.
const (
	ColumnName         Column = "Name"
	ColumnFullName     Column = "Full Name"
	ColumnPowerstats   Column = "Powerstats"
	ColumnRace         Column = "Race"
	ColumnGender       Column = "Gender"
	ColumnHeight       Column = "Height"
	ColumnWeight       Column = "Weight"
	ColumnPlaceOfBirth Column = "Place of Birth"
	ColumnAlignment    Column = "Alignment"
)

// Columns lists every column in display order.
var Columns = []Column{
	ColumnName,
	ColumnFullName,
	ColumnPowerstats,
	ColumnRace,
	ColumnGender,
	ColumnHeight,
	ColumnWeight,
	ColumnPlaceOfBirth,
	ColumnAlignment,
}

// ColumnKind selects the parsing and comparison rule used when sorting a column.
type ColumnKind int

// Column kinds.
const (
	KindGeneric ColumnKind = iota
	KindHeight
	KindWeight
	KindPowerstats
)

// String returns the kind name.
func (k ColumnKind) String() string {
	switch k {
	case KindHeight:
		return "height"
	case KindWeight:
		return "weight"
	case KindPowerstats:
		return "powerstats"
	default:
		return "text"
	}
}

// KindForHeader maps header text to its column kind.
// The match is exact, like the header labels rendered by the table;
// anything unrecognized uses the generic text rule.
func KindForHeader(header string) ColumnKind {
	switch header {
	case string(ColumnHeight):
		return KindHeight
	case string(ColumnWeight):
		return KindWeight
	case string(ColumnPowerstats):
		return KindPowerstats
	default:
		return KindGeneric
	}
}

// Kind returns the column's kind.
func (c Column) Kind() ColumnKind {
	return KindForHeader(string(c))
}

// ColumnByHeader resolves header text (case-insensitive, trimmed) to a column.
// Returns false if no column has that header.
func ColumnByHeader(header string) (Column, bool) {
	header = strings.TrimSpace(header)
	for _, c := range Columns {
		if strings.EqualFold(string(c), header) {
			return c, true
		}
	}
	return "", false
}

// ColumnHeaders returns the header label of every column.
func ColumnHeaders() []string {
	headers := make([]string, len(Columns))
	for i, c := range Columns {
		headers[i] = string(c)
	}
	return headers
}

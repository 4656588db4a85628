// Package entities contains core domain data structures.
package entities

import (
	"sort"
	"strconv"
	"strings"
)

// Record represents one superhero character as received from a data source.
// Records are immutable once loaded; services copy slices instead of mutating them.
type Record struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	FullName     string         `json:"full_name"`
	Race         string         `json:"race"`
	Gender       string         `json:"gender"`
	Height       string         `json:"height"` // Raw text, e.g. "6'2, 188 cm"
	Weight       string         `json:"weight"` // Raw text, e.g. "210 lb, 95 kg"
	PlaceOfBirth string         `json:"place_of_birth"`
	Alignment    string         `json:"alignment"`
	Powerstats   map[string]int `json:"powerstats"`
	ImageURL     string         `json:"image_url,omitempty"`
}

// PowerstatKeys is the display order of the known power stats.
var PowerstatKeys = []string{"intelligence", "strength", "speed", "durability", "power", "combat"}

// StatNames returns the record's stat names in display order.
// Known stats come first in PowerstatKeys order, unknown ones follow sorted.
func (r Record) StatNames() []string {
	names := make([]string, 0, len(r.Powerstats))
	known := make(map[string]bool, len(PowerstatKeys))
	for _, k := range PowerstatKeys {
		known[k] = true
		if _, ok := r.Powerstats[k]; ok {
			names = append(names, k)
		}
	}

	var extra []string
	for k := range r.Powerstats {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	return append(names, extra...)
}

// PowerstatsText renders the power stats the way the table cell shows them:
// one "<stat>: <value>" line per stat, each terminated by a newline.
func (r Record) PowerstatsText() string {
	var b strings.Builder
	for _, name := range r.StatNames() {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(r.Powerstats[name]))
		b.WriteByte('\n')
	}
	return b.String()
}

// FlattenCell puts a multi-line cell (powerstats) on one line, joining the
// lines with ", ".
func FlattenCell(s string) string {
	s = strings.TrimRight(s, "\n")
	return strings.ReplaceAll(s, "\n", ", ")
}

// Cell returns the text shown for the given column.
func (r Record) Cell(c Column) string {
	switch c {
	case ColumnName:
		return r.Name
	case ColumnFullName:
		return r.FullName
	case ColumnPowerstats:
		return r.PowerstatsText()
	case ColumnRace:
		return r.Race
	case ColumnGender:
		return r.Gender
	case ColumnHeight:
		return r.Height
	case ColumnWeight:
		return r.Weight
	case ColumnPlaceOfBirth:
		return r.PlaceOfBirth
	case ColumnAlignment:
		return r.Alignment
	default:
		return ""
	}
}

// Cells returns the text of every column in display order.
func (r Record) Cells() []string {
	cells := make([]string, len(Columns))
	for i, c := range Columns {
		cells[i] = r.Cell(c)
	}
	return cells
}

// Package services contains the table logic: unit parsing, pagination, filtering and sorting.
package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// reLeadingInt matches an optionally signed integer at the start of a string.
var reLeadingInt = regexp.MustCompile(`^\s*([+-]?\d+)`)

// reLeadingNumber matches an optionally signed decimal number at the start of a string.
var reLeadingNumber = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+))`)

type keyKind int

const (
	keyNumber keyKind = iota
	keyText
	keyMissing
)

// SortKey is the comparable value computed for one table cell.
// The zero value is the number 0; use Missing for the sentinel.
type SortKey struct {
	kind keyKind
	num  int
	text string
}

// Missing is the sentinel key for unparseable measurements and empty cells.
// It is distinct from every real number and string, including "" and 0.
var Missing = SortKey{kind: keyMissing}

// NumberKey returns a numeric key.
func NumberKey(n int) SortKey {
	return SortKey{kind: keyNumber, num: n}
}

// TextKey returns a text key.
func TextKey(s string) SortKey {
	return SortKey{kind: keyText, text: s}
}

// IsMissing reports whether k is the missing sentinel.
func (k SortKey) IsMissing() bool {
	return k.kind == keyMissing
}

// Number returns the numeric value and whether k holds one.
func (k SortKey) Number() (int, bool) {
	return k.num, k.kind == keyNumber
}

// String returns a printable form of the key.
func (k SortKey) String() string {
	switch k.kind {
	case keyNumber:
		return strconv.Itoa(k.num)
	case keyText:
		return strconv.Quote(k.text)
	default:
		return "<missing>"
	}
}

// Compare orders keys: numbers before text, text before Missing.
// Numbers compare numerically and text compares bytewise.
func (k SortKey) Compare(other SortKey) int {
	if k.kind != other.kind {
		if k.kind < other.kind {
			return -1
		}
		return 1
	}
	switch k.kind {
	case keyNumber:
		switch {
		case k.num < other.num:
			return -1
		case k.num > other.num:
			return 1
		}
		return 0
	case keyText:
		return strings.Compare(k.text, other.text)
	default:
		return 0
	}
}

// leadingInt parses the integer prefix of s, ignoring anything after it.
// "6'2" yields 6; "N/A" yields false.
func leadingInt(s string) (int, bool) {
	m := reLeadingInt.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func leadingNumber(s string) (float64, bool) {
	m := reLeadingNumber.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseHeight converts "<feet>'<inches>, <value> <unit>" to centimeters.
// Unit is "cm" or "meters". The cell is unparseable when the feet segment
// does not start with a number, or the metric segment is malformed.
func ParseHeight(text string) (int, bool) {
	imperial, metric, ok := strings.Cut(text, ",")
	if !ok {
		return 0, false
	}
	if _, ok := leadingInt(imperial); !ok {
		return 0, false
	}

	fields := strings.Fields(metric)
	if len(fields) < 2 {
		return 0, false
	}

	switch fields[1] {
	case "cm":
		return leadingInt(fields[0])
	case "meters":
		m, ok := leadingNumber(fields[0])
		if !ok {
			return 0, false
		}
		return int(math.Round(m * 100)), true
	default:
		return 0, false
	}
}

// ParseWeight reads the pound value from "<value> lb, <value2> kg".
// Only the first segment is consulted and its unit must be exactly "lb".
func ParseWeight(text string) (int, bool) {
	imperial, _, _ := strings.Cut(text, ",")
	fields := strings.Fields(imperial)
	if len(fields) < 2 || fields[1] != "lb" {
		return 0, false
	}
	return leadingInt(fields[0])
}

// ParsePowerstats sums the values of newline-delimited "<stat> <value>" lines.
// Lines without an integer value add nothing; parsing continues past them.
func ParsePowerstats(text string) int {
	sum := 0
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if n, ok := leadingInt(fields[1]); ok {
			sum += n
		}
	}
	return sum
}

// ParseGeneric normalizes a text cell. "" and "-" become Missing.
func ParseGeneric(text string) SortKey {
	if text == "" || text == "-" {
		return Missing
	}
	return TextKey(text)
}

// KeyFor computes the sort key of a cell according to its column kind.
func KeyFor(kind entities.ColumnKind, text string) SortKey {
	switch kind {
	case entities.KindHeight:
		if cm, ok := ParseHeight(text); ok {
			return NumberKey(cm)
		}
		return Missing
	case entities.KindWeight:
		if lb, ok := ParseWeight(text); ok {
			return NumberKey(lb)
		}
		return Missing
	case entities.KindPowerstats:
		return NumberKey(ParsePowerstats(text))
	default:
		return ParseGeneric(text)
	}
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/herotable/internal/domain/entities"
)

func TestParseHeight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"centimeters", "6'2, 188 cm", 188, true},
		{"meters", "5'9, 1.75 meters", 175, true},
		{"meters rounding", "30'0, 9.1 meters", 910, true},
		{"zero feet", "0'7, 18 cm", 18, true},
		{"no space after comma", "6'2,188 cm", 188, true},
		{"malformed prefix", "N/A, 180 cm", 0, false},
		{"dash", "-, 0 cm", 0, false},
		{"missing metric segment", "6'2", 0, false},
		{"unknown unit", "6'2, 74 inches", 0, false},
		{"no unit", "6'2, 188", 0, false},
		{"non numeric metric value", "6'2, tall cm", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHeight(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"pounds", "210 lb, 95 kg", 210, true},
		{"pounds only", "155 lb", 155, true},
		{"kilograms first", "95 kg", 0, false},
		{"kilograms then pounds", "95 kg, 210 lb", 0, false},
		{"dash", "- lb, 0 kg", 0, false},
		{"unit glued to value", "210lb, 95 kg", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWeight(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParsePowerstats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"two lines", "strength 50\nspeed 40\n", 90},
		{"rendered cell", "intelligence: 100\nstrength: 26\nspeed: 27\n", 153},
		{"non numeric line contributes zero", "strength 50\nspeed null\ncombat 10", 60},
		{"malformed line is skipped", "strength\n\nspeed 5", 5},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePowerstats(tt.input))
		})
	}
}

func TestParseGeneric(t *testing.T) {
	assert.True(t, ParseGeneric("").IsMissing())
	assert.True(t, ParseGeneric("-").IsMissing())
	assert.Equal(t, TextKey("Human"), ParseGeneric("Human"))
	assert.Equal(t, TextKey(" -"), ParseGeneric(" -"))
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, NumberKey(188), KeyFor(entities.KindHeight, "6'2, 188 cm"))
	assert.True(t, KeyFor(entities.KindHeight, "N/A, 180 cm").IsMissing())
	assert.Equal(t, NumberKey(210), KeyFor(entities.KindWeight, "210 lb, 95 kg"))
	assert.True(t, KeyFor(entities.KindWeight, "95 kg").IsMissing())
	assert.Equal(t, NumberKey(90), KeyFor(entities.KindPowerstats, "strength 50\nspeed 40\n"))
	assert.Equal(t, TextKey("good"), KeyFor(entities.KindGeneric, "good"))
}

func TestSortKey_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b SortKey
		want int
	}{
		{"numbers", NumberKey(1), NumberKey(2), -1},
		{"equal numbers", NumberKey(7), NumberKey(7), 0},
		{"negative numbers", NumberKey(-5), NumberKey(0), -1},
		{"text", TextKey("a"), TextKey("b"), -1},
		{"text is bytewise", TextKey("Z"), TextKey("a"), -1},
		{"number before text", NumberKey(999), TextKey("0"), -1},
		{"text before missing", TextKey("zzz"), Missing, -1},
		{"number before missing", NumberKey(0), Missing, -1},
		{"missing equals missing", Missing, Missing, 0},
		{"missing after number", Missing, NumberKey(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestSortKey_Accessors(t *testing.T) {
	n, ok := NumberKey(42).Number()
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = TextKey("42").Number()
	assert.False(t, ok)

	assert.Equal(t, "42", NumberKey(42).String())
	assert.Equal(t, `"42"`, TextKey("42").String())
	assert.Equal(t, "<missing>", Missing.String())
	assert.NotEqual(t, Missing, TextKey(""))
	assert.NotEqual(t, Missing, NumberKey(0))
}

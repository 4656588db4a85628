package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiSample = `[
  {
    "id": 70,
    "name": "Batman",
    "slug": "70-batman",
    "powerstats": {"intelligence": 100, "strength": 26, "speed": 27, "durability": 50, "power": 47, "combat": 100},
    "appearance": {"gender": "Male", "race": "Human", "height": ["6'2", "188 cm"], "weight": ["210 lb", "95 kg"]},
    "biography": {"fullName": "Bruce Wayne", "placeOfBirth": "Crest Hill, Bristol Township; Gotham County", "alignment": "good"},
    "images": {"xs": "https://example.test/xs/70-batman.jpg", "sm": "https://example.test/sm/70-batman.jpg"}
  },
  {
    "id": 1,
    "name": "A-Bomb",
    "powerstats": {"intelligence": 38},
    "appearance": {"gender": "Male", "race": null, "height": ["-", "0 cm"], "weight": ["- lb", "0 kg"]},
    "biography": {"fullName": "", "placeOfBirth": "-", "alignment": "good"},
    "images": {"sm": "https://example.test/sm/1-a-bomb.jpg"}
  }
]`

func TestJSONParser_Parse_ValidInput(t *testing.T) {
	parser := &JSONParser{}
	result, err := parser.Parse(strings.NewReader(apiSample))
	require.NoError(t, err)
	require.Len(t, result, 2)

	batman := result[0]
	assert.Equal(t, "70", batman.ID)
	assert.Equal(t, "Batman", batman.Name)
	assert.Equal(t, "Bruce Wayne", batman.FullName)
	assert.Equal(t, "Human", batman.Race)
	assert.Equal(t, "Male", batman.Gender)
	assert.Equal(t, "6'2, 188 cm", batman.Height)
	assert.Equal(t, "210 lb, 95 kg", batman.Weight)
	assert.Equal(t, "good", batman.Alignment)
	assert.Equal(t, 100, batman.Powerstats["combat"])
	assert.Equal(t, "https://example.test/xs/70-batman.jpg", batman.ImageURL)
	assert.Equal(t, 1, batman.LineNum)

	bomb := result[1]
	assert.Empty(t, bomb.Race)
	assert.Equal(t, "-, 0 cm", bomb.Height)
	assert.Equal(t, "https://example.test/sm/1-a-bomb.jpg", bomb.ImageURL)
	assert.Equal(t, 2, bomb.LineNum)
}

func TestJSONParser_Parse_EmptyArray(t *testing.T) {
	parser := &JSONParser{}
	result, err := parser.Parse(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestJSONParser_Parse_InvalidInput(t *testing.T) {
	parser := &JSONParser{}
	_, err := parser.Parse(strings.NewReader("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

func TestCSVParser_Parse_ValidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []RawRecord
	}{
		{
			name:  "name column only",
			input: "name\nBatman\n",
			expected: []RawRecord{
				{Name: "Batman", LineNum: 2},
			},
		},
		{
			name:     "empty CSV (header only)",
			input:    "name,race\n",
			expected: nil,
		},
		{
			name:  "columns in different order and case",
			input: "Race,Name\nHuman,Batman\n",
			expected: []RawRecord{
				{Name: "Batman", Race: "Human", LineNum: 2},
			},
		},
		{
			name:  "quoted measurement cells",
			input: "name,height,weight,strength,speed\nBatman,\"6'2, 188 cm\",\"210 lb, 95 kg\",26,27\n",
			expected: []RawRecord{
				{
					Name:       "Batman",
					Height:     "6'2, 188 cm",
					Weight:     "210 lb, 95 kg",
					Powerstats: map[string]int{"strength": 26, "speed": 27},
					LineNum:    2,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &CSVParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCSVParser_Parse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "missing required column",
			input:  "race,gender\nHuman,Male\n",
			errMsg: "missing required column: name",
		},
		{
			name:   "invalid stat value",
			input:  "name,strength\nBatman,strong\n",
			errMsg: "invalid strength value",
		},
		{
			name:   "empty input",
			input:  "",
			errMsg: "reading CSV header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &CSVParser{}
			_, err := parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("json"))
	assert.IsType(t, &CSVParser{}, ForFormat("CSV"))
	assert.Nil(t, ForFormat("unknown"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("all.json"))
	assert.IsType(t, &CSVParser{}, ForFile("heroes.csv"))
	assert.Nil(t, ForFile("heroes.txt"))
	assert.Nil(t, ForFile("noextension"))
}

package parsers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// apiHero mirrors one element of the superhero API's all.json.
type apiHero struct {
	ID         json.Number    `json:"id"`
	Name       string         `json:"name"`
	Powerstats map[string]int `json:"powerstats"`
	Appearance struct {
		Gender string   `json:"gender"`
		Race   string   `json:"race"`
		Height []string `json:"height"`
		Weight []string `json:"weight"`
	} `json:"appearance"`
	Biography struct {
		FullName     string `json:"fullName"`
		PlaceOfBirth string `json:"placeOfBirth"`
		Alignment    string `json:"alignment"`
	} `json:"biography"`
	Images struct {
		XS string `json:"xs"`
		SM string `json:"sm"`
	} `json:"images"`
}

// JSONParser parses records in the superhero API format.
type JSONParser struct{}

// Parse reads a JSON array of heroes from the reader.
// Height and weight arrays are joined with ", " to form the cell text.
func (p *JSONParser) Parse(r io.Reader) ([]RawRecord, error) {
	var heroes []apiHero

	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&heroes); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	records := make([]RawRecord, 0, len(heroes))
	for i := range heroes {
		h := &heroes[i]
		image := h.Images.XS
		if image == "" {
			image = h.Images.SM
		}
		records = append(records, RawRecord{
			ID:           h.ID.String(),
			Name:         h.Name,
			FullName:     h.Biography.FullName,
			Race:         h.Appearance.Race,
			Gender:       h.Appearance.Gender,
			Height:       strings.Join(h.Appearance.Height, ", "),
			Weight:       strings.Join(h.Appearance.Weight, ", "),
			PlaceOfBirth: h.Biography.PlaceOfBirth,
			Alignment:    h.Biography.Alignment,
			Powerstats:   h.Powerstats,
			ImageURL:     image,
			// Array index + 1, 1-indexed
			LineNum: i + 1,
		})
	}

	return records, nil
}

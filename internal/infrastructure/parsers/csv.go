package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// CSVParser parses records from a flat CSV table.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed records.
// Expected columns: name (required), id, full_name, race, gender, height,
// weight, place_of_birth, alignment, image_url, and one column per power stat.
func (p *CSVParser) Parse(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	if _, ok := colIndex["name"]; !ok {
		return nil, fmt.Errorf("missing required column: name")
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawRecords.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawRecord, error) {
	var records []RawRecord
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		record, err := p.parseRow(row, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// parseRow converts a CSV row to a RawRecord.
func (p *CSVParser) parseRow(row []string, colIndex map[string]int, lineNum int) (RawRecord, error) {
	record := RawRecord{
		ID:           getColumn(row, colIndex, "id"),
		Name:         getColumn(row, colIndex, "name"),
		FullName:     getColumn(row, colIndex, "full_name"),
		Race:         getColumn(row, colIndex, "race"),
		Gender:       getColumn(row, colIndex, "gender"),
		Height:       getColumn(row, colIndex, "height"),
		Weight:       getColumn(row, colIndex, "weight"),
		PlaceOfBirth: getColumn(row, colIndex, "place_of_birth"),
		Alignment:    getColumn(row, colIndex, "alignment"),
		ImageURL:     getColumn(row, colIndex, "image_url"),
		LineNum:      lineNum,
	}

	for _, stat := range entities.PowerstatKeys {
		if _, ok := colIndex[stat]; !ok {
			continue
		}
		raw := strings.TrimSpace(getColumn(row, colIndex, stat))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return RawRecord{}, fmt.Errorf("line %d: invalid %s value %q: %w", lineNum, stat, raw, err)
		}
		if record.Powerstats == nil {
			record.Powerstats = make(map[string]int)
		}
		record.Powerstats[stat] = n
	}

	return record, nil
}

// getColumn safely retrieves a column value from a row.
func getColumn(row []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(row) {
		return row[idx]
	}
	return ""
}

// Package parsers provides parsers for reading hero records from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawRecord represents a hero parsed from an external source before validation.
type RawRecord struct {
	ID           string         `json:"id,omitempty"`
	Name         string         `json:"name"`
	FullName     string         `json:"full_name,omitempty"`
	Race         string         `json:"race,omitempty"`
	Gender       string         `json:"gender,omitempty"`
	Height       string         `json:"height,omitempty"`
	Weight       string         `json:"weight,omitempty"`
	PlaceOfBirth string         `json:"place_of_birth,omitempty"`
	Alignment    string         `json:"alignment,omitempty"`
	Powerstats   map[string]int `json:"powerstats,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	LineNum      int            `json:"-"` // Line number in source (set by parser)
}

// Parser defines the interface for parsing records from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawRecord, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}

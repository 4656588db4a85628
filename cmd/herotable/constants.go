package main

// Defaults for CLI commands.
const (
	// DefaultBrowseLogFile receives logs while the interactive table owns the terminal.
	DefaultBrowseLogFile = "herotable.log"
	// DefaultCellWidth caps cell width in the plain table output.
	DefaultCellWidth = 28
)

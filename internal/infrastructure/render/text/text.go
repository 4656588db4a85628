// Package text renders the hero table to a plain writer such as stdout.
package text

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ersonp/herotable/internal/domain/entities"
)

// Output formats.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatCSV      = "csv"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTable, FormatMarkdown, FormatJSON, FormatCSV}

// DefaultMaxWidth is the widest a table column may grow before truncation.
const DefaultMaxWidth = 28

// Renderer writes views to an io.Writer in one of the supported formats.
// Rows hidden by the filter are omitted from every format.
type Renderer struct {
	w        io.Writer
	format   string
	maxWidth int
	printer  *message.Printer
}

// NewRenderer creates a renderer. It returns an error for unknown formats.
func NewRenderer(w io.Writer, format string) (*Renderer, error) {
	if !IsFormat(format) {
		return nil, fmt.Errorf("invalid format %q, valid formats: %v", format, Formats)
	}
	return &Renderer{
		w:        w,
		format:   format,
		maxWidth: DefaultMaxWidth,
		printer:  message.NewPrinter(language.English),
	}, nil
}

// SetMaxWidth changes the column width limit of the table format.
// Values below 4 disable truncation.
func (r *Renderer) SetMaxWidth(n int) {
	r.maxWidth = n
}

// IsFormat reports whether format is supported.
func IsFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Render writes the view.
func (r *Renderer) Render(ctx context.Context, view entities.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch r.format {
	case FormatTable:
		return r.formatTable(view)
	case FormatMarkdown:
		return formatMarkdown(r.w, view)
	case FormatJSON:
		return formatJSON(r.w, view)
	case FormatCSV:
		return formatCSV(r.w, view)
	default:
		return fmt.Errorf("unknown format: %s", r.format)
	}
}

func (r *Renderer) formatTable(view entities.View) error {
	rows := view.VisibleRows()

	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, view.Columns)
	for _, row := range rows {
		line := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			line[i] = entities.FlattenCell(c)
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(view.Columns))
	for _, line := range cells {
		for i, c := range line {
			if w := runewidth.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	if r.maxWidth >= 4 {
		for i := range widths {
			widths[i] = min(widths[i], r.maxWidth)
		}
	}

	for n, line := range cells {
		if err := r.writeTableLine(line, widths); err != nil {
			return err
		}
		if n == 0 {
			sep := make([]string, len(widths))
			for i, w := range widths {
				sep[i] = strings.Repeat("-", w)
			}
			if err := r.writeTableLine(sep, widths); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(r.w, "\n"+r.footer(view, len(rows))+"\n")
	return err
}

func (r *Renderer) writeTableLine(line []string, widths []int) error {
	parts := make([]string, len(line))
	for i, c := range line {
		c = runewidth.Truncate(c, widths[i], "…")
		parts[i] = runewidth.FillRight(c, widths[i])
	}
	_, err := io.WriteString(r.w, strings.TrimRight(strings.Join(parts, "  "), " ")+"\n")
	return err
}

// footer summarizes paging and filtering, e.g.
// "Showing 20 of 1,234 heroes | page 1 of 62: [1] 2 3 ...".
func (r *Renderer) footer(view entities.View, shown int) string {
	var b strings.Builder
	b.WriteString(r.printer.Sprintf("Showing %d of %d heroes", shown, view.Total))
	if view.Query != "" {
		b.WriteString(r.printer.Sprintf(" matching %q", strings.TrimSpace(view.Query)))
	}
	if view.LastSort != nil {
		b.WriteString(fmt.Sprintf(" | sorted by %s %s", view.LastSort.Column, view.LastSort.Order))
	}
	b.WriteString(r.printer.Sprintf(" | page %d of %d (size %s): ", view.CurrentPage, view.TotalPages, view.PageSize.String()))
	b.WriteString(PageSelector(view.Pages))
	return b.String()
}

// PageSelector renders page links as "1 [2] 3", bracketing the active page.
func PageSelector(pages []entities.PageLink) string {
	labels := make([]string, len(pages))
	for i, p := range pages {
		if p.Active {
			labels[i] = fmt.Sprintf("[%d]", p.Number)
		} else {
			labels[i] = fmt.Sprintf("%d", p.Number)
		}
	}
	return strings.Join(labels, " ")
}

func formatJSON(w io.Writer, view entities.View) error {
	type exportRow map[string]string

	type exportView struct {
		Total       int                 `json:"total"`
		CurrentPage int                 `json:"current_page"`
		TotalPages  int                 `json:"total_pages"`
		PageSize    string              `json:"page_size"`
		Query       string              `json:"query,omitempty"`
		LastSort    *entities.SortInfo  `json:"last_sort,omitempty"`
		Rows        []exportRow         `json:"rows"`
		Pages       []entities.PageLink `json:"pages"`
	}

	rows := view.VisibleRows()
	out := exportView{
		Total:       view.Total,
		CurrentPage: view.CurrentPage,
		TotalPages:  view.TotalPages,
		PageSize:    view.PageSize.String(),
		Query:       view.Query,
		LastSort:    view.LastSort,
		Rows:        make([]exportRow, 0, len(rows)),
		Pages:       view.Pages,
	}
	for _, row := range rows {
		er := make(exportRow, len(view.Columns))
		for i, col := range view.Columns {
			er[col] = row.Cells[i]
		}
		out.Rows = append(out.Rows, er)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func formatCSV(w io.Writer, view entities.View) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(view.Columns); err != nil {
		return err
	}

	for _, row := range view.VisibleRows() {
		line := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			line[i] = strings.TrimRight(c, "\n")
		}
		if err := writer.Write(line); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, view entities.View) error {
	rows := view.VisibleRows()

	if _, err := fmt.Fprintf(w, "# Heroes\n\nPage %d of %d, %d of %d heroes\n\n", view.CurrentPage, view.TotalPages, len(rows), view.Total); err != nil {
		return err
	}

	header := make([]string, len(view.Columns))
	rule := make([]string, len(view.Columns))
	for i, c := range view.Columns {
		header[i] = escapeMarkdown(c)
		rule[i] = strings.Repeat("-", max(3, len(c)))
	}
	if _, err := fmt.Fprintf(w, "| %s |\n|%s|\n", strings.Join(header, " | "), "-"+strings.Join(rule, "-|-")+"-"); err != nil {
		return err
	}

	for _, row := range rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = escapeMarkdown(entities.FlattenCell(c))
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/herotable/internal/application/handlers"
	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/infrastructure/render/text"
)

// listOptions holds the flags of the list command.
type listOptions struct {
	page     int
	pageSize string
	query    string
	sorts    []string
	format   string
	width    int
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of heroes",
		Long: `Loads the hero roster and prints one page of it.

Each --sort activates a column header once, in order. The sort direction is
shared by all columns and flips on every activation, so the first sort is
ascending and a repeated --sort on the same column reverses it.`,
		Example: `  herotable list --page-size 50 --sort Height
  herotable list --query man --sort Weight --sort Weight
  herotable list --page-size all --format csv > heroes.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page to print")
	cmd.Flags().StringVarP(&opts.pageSize, "page-size", "n", "", "Rows per page: 10, 20, 50, 100 or all (default: configured size)")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Only show rows whose name contains this text")
	cmd.Flags().StringArrayVar(&opts.sorts, "sort", nil, "Activate a column header (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format %v (default: table on a terminal, csv otherwise)", text.Formats))
	cmd.Flags().IntVar(&opts.width, "width", DefaultCellWidth, "Maximum cell width in table output (0 for unlimited)")

	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	ctx := cmd.Context()

	format := opts.format
	if format == "" {
		format = defaultFormat(isTerminal(cmd.OutOrStdout()))
	}

	out, err := text.NewRenderer(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	out.SetMaxWidth(opts.width)

	events, err := listEvents(opts)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		capture := &viewCapture{}
		handler := handlers.NewTableHandler(d.Source, capture, d.Logger, handlers.TableOptions{
			PageSize:     d.PageSize,
			SearchColumn: d.SearchColumn,
		})

		if err := handler.Load(ctx); err != nil {
			return err
		}
		if err := handler.Replay(ctx, events...); err != nil {
			return err
		}

		return out.Render(ctx, capture.view)
	})
}

// listEvents turns the list flags into the interaction events they stand
// for: page size first, then each sort, then the query and the page.
func listEvents(opts listOptions) ([]handlers.Event, error) {
	var events []handlers.Event

	if opts.pageSize != "" {
		size, err := entities.ParsePageSize(opts.pageSize)
		if err != nil {
			return nil, err
		}
		events = append(events, handlers.PageSizeChanged{Size: size})
	}

	for _, header := range opts.sorts {
		if col, ok := entities.ColumnByHeader(header); ok {
			header = string(col)
		}
		events = append(events, handlers.HeaderActivated{Header: header})
	}

	if opts.query != "" {
		events = append(events, handlers.QueryChanged{Query: opts.query})
	}

	if opts.page > 1 {
		events = append(events, handlers.PageSelected{Page: opts.page})
	}

	return events, nil
}

// defaultFormat picks the aligned table for terminals and csv for pipes.
func defaultFormat(terminal bool) string {
	if terminal {
		return text.FormatTable
	}
	return text.FormatCSV
}

// viewCapture keeps the last rendered view so list prints only the final one.
type viewCapture struct {
	view entities.View
}

func (c *viewCapture) Render(ctx context.Context, view entities.View) error {
	c.view = view
	return ctx.Err()
}

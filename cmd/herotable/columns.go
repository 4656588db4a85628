package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/herotable/internal/domain/entities"
)

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the table columns and how each one sorts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeColumns(cmd.OutOrStdout())
		},
	}
}

func writeColumns(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-16s %s\n", "HEADER", "SORTS AS"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-16s %s\n", "------", "--------"); err != nil {
		return err
	}
	for _, col := range entities.Columns {
		if _, err := fmt.Fprintf(w, "%-16s %s\n", col, col.Kind()); err != nil {
			return err
		}
	}
	return nil
}

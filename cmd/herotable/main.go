// Package main provides the entry point for the herotable CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0-dev"
	globalSource string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "herotable",
		Short:         "Browse, filter, sort and page through the superhero roster",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalSource, "source", "s", "", "Named source to load (default: the configured source)")

	rootCmd.AddCommand(
		newInitCmd(),
		newListCmd(),
		newBrowseCmd(),
		newPortraitCmd(),
		newColumnsCmd(),
		newSourcesCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/herotable/internal/infrastructure/config"
	"github.com/ersonp/herotable/internal/infrastructure/parsers"
)

func newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage named data sources",
		RunE:  runSourcesList,
	}

	cmd.AddCommand(
		newSourcesListCmd(),
		newSourcesAddCmd(),
		newSourcesRemoveCmd(),
		newSourcesCheckCmd(),
	)

	return cmd
}

func newSourcesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sources",
		RunE:  runSourcesList,
	}
}

func runSourcesList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	sources, err := config.LoadSources(cwd)
	if err != nil {
		return fmt.Errorf("loading sources: %w", err)
	}

	return writeSources(cmd.OutOrStdout(), sources)
}

func writeSources(w io.Writer, sources *config.SourcesConfig) error {
	names := sources.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No sources configured.")
		fmt.Fprintln(w, "Use 'herotable sources add NAME --url URL' to add one.")
		return nil
	}

	fmt.Fprintf(w, "%-20s %-50s %s\n", "NAME", "LOCATION", "DESCRIPTION")
	fmt.Fprintf(w, "%-20s %-50s %s\n", "----", "--------", "-----------")

	for _, name := range names {
		entry := sources.Sources[name]
		location := entry.Location()
		if entry.Format != "" {
			location += " (" + entry.Format + ")"
		}
		fmt.Fprintf(w, "%-20s %-50s %s\n", name, location, entry.Description)
	}

	return nil
}

func newSourcesAddCmd() *cobra.Command {
	var (
		entry config.SourceEntry
		force bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Register a named source",
		Long:  "Registers a superhero API URL or a local .json/.csv file under NAME, for use with --source.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			key, err := addSource(cwd, args[0], entry, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added source %q (%s)\n", key, entry.Location())
			return nil
		},
	}

	cmd.Flags().StringVar(&entry.URL, "url", "", "URL serving the superhero API JSON")
	cmd.Flags().StringVar(&entry.Path, "path", "", "Local .json or .csv file")
	cmd.Flags().StringVar(&entry.Format, "format", "", "File format of --path when its extension does not tell (json, csv)")
	cmd.Flags().StringVarP(&entry.Description, "description", "d", "", "Source description")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing source with the same name")
	cmd.MarkFlagsMutuallyExclusive("url", "path")
	cmd.MarkFlagsOneRequired("url", "path")

	return cmd
}

func newSourcesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Remove a named source",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			if err := removeSource(cwd, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed source %q\n", args[0])
			return nil
		},
	}
}

func newSourcesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [NAME]",
		Short: "Fetch a source and report how many heroes it holds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				globalSource = args[0]
			}

			return withDeps(func(d *Deps) error {
				records, err := d.Source.Fetch(cmd.Context())
				if err != nil {
					return fmt.Errorf("checking %s: %w", d.SourceEntry.Location(), err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d heroes\n", d.SourceEntry.Location(), len(records))
				return nil
			})
		},
	}
}

// addSource registers entry in the sources file under basePath and returns
// the sanitized name it was stored under.
func addSource(basePath, name string, entry config.SourceEntry, force bool) (string, error) {
	if config.SanitizeSourceName(name) == "" {
		return "", fmt.Errorf("invalid source name %q", name)
	}
	format, err := checkFormat(entry.Format)
	if err != nil {
		return "", err
	}
	entry.Format = format

	sources, err := config.LoadSources(basePath)
	if err != nil {
		return "", fmt.Errorf("loading sources: %w", err)
	}

	if sources.Exists(name) && !force {
		return "", fmt.Errorf("source %q already exists, use --force to replace it", name)
	}

	key, err := sources.Add(name, entry)
	if err != nil {
		return "", err
	}

	if err := sources.Save(basePath); err != nil {
		return "", err
	}

	return key, nil
}

// checkFormat validates a source file format and returns it lower-cased.
// An empty format is left to the file extension.
func checkFormat(format string) (string, error) {
	if format == "" {
		return "", nil
	}
	if parsers.ForFormat(format) == nil {
		return "", fmt.Errorf("unsupported format %q (use json or csv)", format)
	}
	return strings.ToLower(format), nil
}

// removeSource deletes name from the sources file under basePath.
func removeSource(basePath, name string) error {
	sources, err := config.LoadSources(basePath)
	if err != nil {
		return fmt.Errorf("loading sources: %w", err)
	}

	if !sources.Exists(name) {
		return fmt.Errorf("%w: %q", config.ErrSourceNotFound, name)
	}

	sources.Remove(name)

	return sources.Save(basePath)
}

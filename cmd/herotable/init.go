package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/herotable/internal/infrastructure/config"
)

// initOptions overrides the defaults written by init. Empty fields keep
// the default value.
type initOptions struct {
	url      string
	path     string
	format   string
	pageSize string
	logLevel string
}

func (o initOptions) isSet() bool {
	return o != initOptions{}
}

func newInitCmd() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long: `Creates a .herotable directory with a config.yaml in the current directory.

Without flags the commented default config is written. Flags replace single
default values, for example:
  herotable init --page-size 50
  herotable init --path heroes.export --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			return initConfig(cmd.OutOrStdout(), cwd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "Default source URL")
	cmd.Flags().StringVar(&opts.path, "path", "", "Default source file (.json or .csv)")
	cmd.Flags().StringVar(&opts.format, "format", "", "File format of --path when its extension does not tell (json, csv)")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "", "Default page size (a positive number or all)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.MarkFlagsMutuallyExclusive("url", "path")

	return cmd
}

// initConfig writes the config under basePath and reads it back.
func initConfig(out io.Writer, basePath string, opts initOptions) error {
	if config.Exists(basePath) {
		return fmt.Errorf("herotable already initialized in %s", basePath)
	}

	if opts.isSet() {
		cfg, err := opts.apply(config.Default())
		if err != nil {
			return err
		}
		if err := config.Write(basePath, cfg); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	} else if err := config.WriteDefault(basePath); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	// Read it back so a broken config is caught here rather than on first use.
	if _, err := config.Load(basePath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Fprintf(out, "Created %s\n", config.ConfigFilePath(basePath))
	fmt.Fprintln(out, "herotable initialized successfully!")

	return nil
}

func (o initOptions) apply(cfg *config.Config) (*config.Config, error) {
	if o.url != "" {
		cfg.Source.URL = o.url
	}
	if o.path != "" {
		cfg.Source.URL = ""
		cfg.Source.Path = o.path
	}

	format, err := checkFormat(o.format)
	if err != nil {
		return nil, err
	}
	if format != "" && cfg.Source.Path == "" {
		return nil, errors.New("--format needs --path")
	}
	cfg.Source.Format = format

	if o.pageSize != "" {
		cfg.Table.PageSize = o.pageSize
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

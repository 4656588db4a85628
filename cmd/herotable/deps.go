package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/ersonp/herotable/internal/domain/entities"
	"github.com/ersonp/herotable/internal/domain/ports"
	"github.com/ersonp/herotable/internal/infrastructure/config"
	"github.com/ersonp/herotable/internal/infrastructure/datasource"
	"github.com/ersonp/herotable/internal/infrastructure/logging"
)

// ErrNotTerminal is returned by commands that need an interactive terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Deps holds the dependencies shared by the table commands.
type Deps struct {
	Config       *config.Config
	Sources      *config.SourcesConfig
	Logger       *slog.Logger
	Source       ports.DataSource
	SourceEntry  config.SourceEntry
	PageSize     entities.PageSize
	SearchColumn entities.Column
}

// depsOptions tweaks how withDepsOptions builds the dependencies.
type depsOptions struct {
	// logFile is used when the config does not name one.
	logFile string
}

// withDeps loads config, sets up logging and resolves the data source,
// then calls the provided function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withDepsOptions(depsOptions{}, fn)
}

func withDepsOptions(opts depsOptions, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sources, err := config.LoadSources(cwd)
	if err != nil {
		return fmt.Errorf("loading sources: %w", err)
	}

	logCfg := cfg.Log
	if logCfg.File == "" && opts.logFile != "" {
		logCfg.File = opts.logFile
	}
	logger, closeLog, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	entry, err := sources.Resolve(globalSource, cfg)
	if err != nil {
		return err
	}

	pageSize, err := cfg.PageSize()
	if err != nil {
		return err
	}
	searchColumn, err := cfg.SearchColumn()
	if err != nil {
		return err
	}

	deps := &Deps{
		Config:       cfg,
		Sources:      sources,
		Logger:       logger,
		Source:       newDataSource(entry, cfg, logger),
		SourceEntry:  entry,
		PageSize:     pageSize,
		SearchColumn: searchColumn,
	}

	logger.Debug("dependencies ready", "source", entry.Location())

	return fn(deps)
}

// newDataSource picks the file or HTTP source for entry.
func newDataSource(entry config.SourceEntry, cfg *config.Config, logger *slog.Logger) ports.DataSource {
	if entry.Path != "" {
		return datasource.NewFileSource(entry.Path, entry.Format, logger)
	}
	return datasource.NewHTTPSource(entry.URL, cfg.Source.Timeout, logger)
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// requireTerminal fails with ErrNotTerminal when stdout is redirected.
func requireTerminal(command string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("%s needs an interactive terminal: %w", command, ErrNotTerminal)
	}
	return nil
}

// browseLogFile is where browse logs when the config names no log file.
func browseLogFile() string {
	return filepath.Join(os.TempDir(), DefaultBrowseLogFile)
}

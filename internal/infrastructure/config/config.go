// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/herotable/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for herotable configuration.
	DefaultConfigDir = ".herotable"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultSourcesFile is the default sources file name.
	DefaultSourcesFile = "sources.yaml"
	// DefaultSourceURL is the superhero API snapshot used when nothing else is configured.
	DefaultSourceURL = "https://rawcdn.githack.com/akabab/superhero-api/0.2.0/api/all.json"
	// DefaultHTTPTimeout bounds a single fetch.
	DefaultHTTPTimeout = 30 * time.Second
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static application configuration (read-only after load).
type Config struct {
	Source SourceConfig `yaml:"source,omitempty"`
	Table  TableConfig  `yaml:"table,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

// SourceConfig holds configuration for the default data source.
type SourceConfig struct {
	URL     string        `yaml:"url,omitempty"`
	Path    string        `yaml:"path,omitempty"`
	Format  string        `yaml:"format,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// TableConfig holds presentation defaults.
type TableConfig struct {
	PageSize     string `yaml:"page_size,omitempty"`
	SearchColumn string `yaml:"search_column,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	// File receives log output. Empty means stderr.
	File string `yaml:"file,omitempty"`
}

// envOverrides holds raw environment values that take precedence over the file.
type envOverrides struct {
	SourceURL   string        `env:"HEROTABLE_SOURCE_URL"`
	SourcePath  string        `env:"HEROTABLE_SOURCE_PATH"`
	HTTPTimeout time.Duration `env:"HEROTABLE_HTTP_TIMEOUT"`
	PageSize    string        `env:"HEROTABLE_PAGE_SIZE"`
	LogLevel    string        `env:"HEROTABLE_LOG_LEVEL"`
	LogFile     string        `env:"HEROTABLE_LOG_FILE"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: DefaultHTTPTimeout,
		},
		Table: TableConfig{
			PageSize:     entities.DefaultPageSize.String(),
			SearchColumn: string(entities.ColumnName),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the .herotable directory in the given path.
// A missing config file yields the defaults; environment overrides apply either way.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	if e.SourceURL != "" {
		c.Source.URL = e.SourceURL
		c.Source.Path = ""
	}
	if e.SourcePath != "" {
		c.Source.Path = e.SourcePath
	}
	if e.HTTPTimeout > 0 {
		c.Source.Timeout = e.HTTPTimeout
	}
	if e.PageSize != "" {
		c.Table.PageSize = e.PageSize
	}
	if e.LogLevel != "" {
		c.Log.Level = e.LogLevel
	}
	if e.LogFile != "" {
		c.Log.File = e.LogFile
	}
	return nil
}

// Validate checks values that would otherwise fail later at first use.
func (c *Config) Validate() error {
	if _, err := c.PageSize(); err != nil {
		return fmt.Errorf("table.page_size: %w", err)
	}
	if _, err := c.SearchColumn(); err != nil {
		return fmt.Errorf("table.search_column: %w", err)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative, got %s", c.Source.Timeout)
	}
	return nil
}

// PageSize returns the configured default page size.
func (c *Config) PageSize() (entities.PageSize, error) {
	if c.Table.PageSize == "" {
		return entities.DefaultPageSize, nil
	}
	return entities.ParsePageSize(c.Table.PageSize)
}

// SearchColumn returns the configured search column.
func (c *Config) SearchColumn() (entities.Column, error) {
	if c.Table.SearchColumn == "" {
		return entities.ColumnName, nil
	}
	col, ok := entities.ColumnByHeader(c.Table.SearchColumn)
	if !ok {
		return "", fmt.Errorf("unknown column %q (valid: %s)", c.Table.SearchColumn, strings.Join(entities.ColumnHeaders(), ", "))
	}
	return col, nil
}

// ConfigDir returns the path to the .herotable config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SourcesFilePath returns the path to the sources file.
func SourcesFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultSourcesFile)
}

// Exists checks if a herotable config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// SanitizeSourceName converts a source name to a registry key.
func SanitizeSourceName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return "default"
	}

	return name
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSourceNotFound is returned when a named source is not registered.
var ErrSourceNotFound = errors.New("source not found")

// SourcesConfig holds named data source definitions (read/write).
type SourcesConfig struct {
	Sources map[string]SourceEntry `yaml:"sources,omitempty"`
}

// SourceEntry describes where a named source loads its records from.
// Exactly one of URL or Path is set. Format names the file format of Path
// ("json" or "csv") when its extension does not tell.
type SourceEntry struct {
	URL         string `yaml:"url,omitempty"`
	Path        string `yaml:"path,omitempty"`
	Format      string `yaml:"format,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Validate checks that exactly one location is set.
func (e SourceEntry) Validate() error {
	switch {
	case e.URL == "" && e.Path == "":
		return errors.New("source needs a url or a path")
	case e.URL != "" && e.Path != "":
		return errors.New("source cannot have both a url and a path")
	case e.Format != "" && e.Path == "":
		return errors.New("source format applies only to a path")
	}
	return nil
}

// Location returns the URL or path of the entry.
func (e SourceEntry) Location() string {
	if e.URL != "" {
		return e.URL
	}
	return e.Path
}

// LoadSources loads source definitions from the .herotable directory.
func LoadSources(basePath string) (*SourcesConfig, error) {
	data, err := os.ReadFile(SourcesFilePath(basePath))
	if os.IsNotExist(err) {
		// Return empty config if file doesn't exist
		return &SourcesConfig{
			Sources: make(map[string]SourceEntry),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}

	var cfg SourcesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sources file: %w", err)
	}

	if cfg.Sources == nil {
		cfg.Sources = make(map[string]SourceEntry)
	}

	return &cfg, nil
}

// Save writes the source definitions to the sources file.
func (s *SourcesConfig) Save(basePath string) error {
	configDir := filepath.Join(basePath, DefaultConfigDir)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling sources config: %w", err)
	}

	if err := os.WriteFile(SourcesFilePath(basePath), data, 0600); err != nil {
		return fmt.Errorf("writing sources file: %w", err)
	}

	return nil
}

// Add registers a source under its sanitized name and returns that name.
func (s *SourcesConfig) Add(name string, entry SourceEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}
	if s.Sources == nil {
		s.Sources = make(map[string]SourceEntry)
	}
	key := SanitizeSourceName(name)
	s.Sources[key] = entry
	return key, nil
}

// Remove removes a source from the configuration.
func (s *SourcesConfig) Remove(name string) {
	if s.Sources != nil {
		delete(s.Sources, SanitizeSourceName(name))
	}
}

// Names returns the registered source names in lexical order.
func (s *SourcesConfig) Names() []string {
	names := make([]string, 0, len(s.Sources))
	for k := range s.Sources {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Get returns the configuration for a specific source.
func (s *SourcesConfig) Get(name string) (*SourceEntry, error) {
	if len(s.Sources) == 0 {
		return nil, fmt.Errorf("%w: %q (no sources configured)", ErrSourceNotFound, name)
	}

	entry, ok := s.Sources[SanitizeSourceName(name)]
	if !ok {
		names := s.Names()
		if len(names) > 5 {
			names = append(names[:5], "...")
		}
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrSourceNotFound, name, strings.Join(names, ", "))
	}

	return &entry, nil
}

// Exists checks if a source exists in the configuration.
func (s *SourcesConfig) Exists(name string) bool {
	if s.Sources == nil {
		return false
	}
	_, ok := s.Sources[SanitizeSourceName(name)]
	return ok
}

// Resolve picks the source to load from. An empty name selects the
// config's default source.
func (s *SourcesConfig) Resolve(name string, cfg *Config) (SourceEntry, error) {
	if name == "" {
		return SourceEntry{
			URL:         cfg.Source.URL,
			Path:        cfg.Source.Path,
			Format:      cfg.Source.Format,
			Description: "default",
		}.normalized(), nil
	}
	entry, err := s.Get(name)
	if err != nil {
		return SourceEntry{}, err
	}
	return *entry, nil
}

// normalized prefers the path when the default config carries both.
func (e SourceEntry) normalized() SourceEntry {
	if e.Path != "" {
		e.URL = ""
	} else {
		e.Format = ""
	}
	return e
}

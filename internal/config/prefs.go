// Package config loads and saves user preferences.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Environment variables that override the preferences file.
const (
	EnvDataFile = "PROJECTBOOK_DATA"
	EnvBackend  = "PROJECTBOOK_BACKEND"
	EnvLogLevel = "LOG_LEVEL"
)

// Prefs holds user preferences. Callers either build Prefs in code or place a
// preferences.yaml next to the data and call Load.
type Prefs struct {
	// DataFile is where the project book is stored (default "data/projectbook.json").
	DataFile string `yaml:"data_file"`

	// Backend selects the store: "json" (default) or "sqlite".
	Backend string `yaml:"backend"`

	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `yaml:"log_level"`

	// MetricsAddr, when set, exposes Prometheus metrics on this address
	// (e.g. ":9090") while the REPL runs.
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		DataFile: filepath.Join("data", "projectbook.json"),
		Backend:  BackendJSON,
		LogLevel: "info",
	}
}

// Load reads preferences from path. A missing file yields Default().
// Empty fields in the file fall back to their defaults.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("failed to parse preferences %s: %w", path, err)
	}
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return Prefs{}, err
	}
	return p, nil
}

// Save writes the preferences as YAML, creating parent directories.
func (p Prefs) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

// WithEnv applies environment overrides read through getenv.
func (p Prefs) WithEnv(getenv func(string) string) Prefs {
	if v := getenv(EnvDataFile); v != "" {
		p.DataFile = v
	}
	if v := getenv(EnvBackend); v != "" {
		p.Backend = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		p.LogLevel = v
	}
	return p
}

// Validate rejects unknown backends and an empty data file.
func (p Prefs) Validate() error {
	switch p.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid backend %q: must be %q or %q", p.Backend, BackendJSON, BackendSQLite)
	}
	if p.DataFile == "" {
		return errors.New("data_file must not be empty")
	}
	return nil
}

func (p Prefs) withDefaults() Prefs {
	d := Default()
	if p.DataFile == "" {
		p.DataFile = d.DataFile
	}
	if p.Backend == "" {
		p.Backend = d.Backend
	}
	if p.LogLevel == "" {
		p.LogLevel = d.LogLevel
	}
	return p
}

// Package settings provides YAML-based persistence for the simulation
// settings: grid dimensions, cell display width and update interval.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-adjustable simulation parameters.
type Settings struct {
	GridWidth      int `yaml:"grid_width"`      // Cells per row
	GridHeight     int `yaml:"grid_height"`     // Cells per column
	CellWidth      int `yaml:"cell_width"`      // Terminal columns per cell
	UpdateInterval int `yaml:"update_interval"` // Milliseconds between generations
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		GridWidth:      30,
		GridHeight:     30,
		CellWidth:      2,
		UpdateInterval: 100,
	}
}

// Validate checks that every value is a positive integer.
// Dimension validation lives here, with the configuration provider;
// the engine independently rejects non-positive dimensions.
func (s Settings) Validate() error {
	var errs []error
	if s.GridWidth < 1 {
		errs = append(errs, fmt.Errorf("grid_width must be at least 1, got %d", s.GridWidth))
	}
	if s.GridHeight < 1 {
		errs = append(errs, fmt.Errorf("grid_height must be at least 1, got %d", s.GridHeight))
	}
	if s.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("cell_width must be at least 1, got %d", s.CellWidth))
	}
	if s.UpdateInterval < 1 {
		errs = append(errs, fmt.Errorf("update_interval must be at least 1, got %d", s.UpdateInterval))
	}
	return errors.Join(errs...)
}

// DefaultPath returns the default settings file location
// (~/.termlife/settings.yaml), or empty if home is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termlife", "settings.yaml")
}

// Load reads settings from the given path. A missing, unreadable or
// malformed file yields the defaults: settings are always usable, never
// a startup failure.
func Load(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default()
	}
	if err := s.Validate(); err != nil {
		return Default()
	}
	return s
}

// Save writes settings to the given path as YAML, creating parent
// directories as needed. Invalid settings are rejected before touching
// the file.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("settings: refusing to save invalid settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("settings: cannot create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: cannot encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("settings: cannot write %s: %w", path, err)
	}
	return nil
}

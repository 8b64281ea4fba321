// Package config persists the tool's defaults between runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oSoWoSo/neofetch/internal/color"
	"github.com/oSoWoSo/neofetch/internal/presets"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMode      = "rgb"
	DefaultPreset    = "rainbow"
	DefaultLightness = 0.65
)

var (
	// ErrLightnessRange indicates a lightness value outside [0, 1].
	ErrLightnessRange = errors.New("config: lightness outside [0, 1]")

	// ErrUnknownPreset indicates a preset name missing from the catalog.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Config holds the persisted defaults: the color mode output is encoded
// with, the favorite preset preselected in the browser, and the preview
// lightness adjustment.
type Config struct {
	Mode      string  `yaml:"mode"`
	Preset    string  `yaml:"preset"`
	Lightness float64 `yaml:"lightness"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:      DefaultMode,
		Preset:    DefaultPreset,
		Lightness: DefaultLightness,
	}
}

// DefaultPath is the per-user config file location, created on first
// save.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "neofetch", "config.yaml"), nil
}

// Load reads the config at path. Keys absent from the file keep their
// default values; a missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault reads the config at path, falling back to the defaults
// when the file is missing or unreadable.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field against the known modes and presets.
func (c *Config) Validate() error {
	if _, err := color.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Lightness < 0 || c.Lightness > 1 {
		return fmt.Errorf("%w: %v", ErrLightnessRange, c.Lightness)
	}
	if _, ok := presets.Lookup(c.Preset); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, c.Preset)
	}
	return nil
}

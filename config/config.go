// Package config loads gridpath settings from YAML files and GRIDPATH_*
// environment variables.
package config

import (
	"errors"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. GRIDPATH_GRID_WIDTH.
const EnvPrefix = "GRIDPATH"

// Config is the root configuration.
type Config struct {
	Grid    GridConfig    `mapstructure:"grid" yaml:"grid"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
}

// GridConfig sizes the lattice used when no scenario sets one.
type GridConfig struct {
	Width  int `mapstructure:"width" yaml:"width" validate:"min=1,max=4096"`
	Height int `mapstructure:"height" yaml:"height" validate:"min=1,max=4096"`
}

// SearchConfig selects the strategy and heuristic.
type SearchConfig struct {
	Strategy  string `mapstructure:"strategy" yaml:"strategy" validate:"oneof=fifo best-first"`
	Heuristic string `mapstructure:"heuristic" yaml:"heuristic" validate:"omitempty,oneof=product euclidean manhattan octile zero"`
	Autoplay  bool   `mapstructure:"autoplay" yaml:"autoplay"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// RenderConfig controls terminal output.
type RenderConfig struct {
	Color bool `mapstructure:"color" yaml:"color"`
	// Expanded shows cells the search pushed, not just the path.
	Expanded bool `mapstructure:"expanded" yaml:"expanded"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  36,
			Height: 22,
		},
		Search: SearchConfig{
			Strategy:  "fifo",
			Heuristic: "",
			Autoplay:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Render: RenderConfig{
			Color:    true,
			Expanded: true,
		},
	}
}

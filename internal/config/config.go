// Package config provides the levelsnap configuration tree, loaded through
// viper from config files, environment variables, and flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete levelsnap configuration
type Config struct {
	Capture CaptureConfig `mapstructure:"capture"`
	Output  OutputConfig  `mapstructure:"output"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CaptureConfig controls how regions are framed and masked
type CaptureConfig struct {
	// PixelsPerUnit converts world-unit lengths to pixel lengths (default: 100)
	PixelsPerUnit float32 `mapstructure:"pixels_per_unit"`
	// Margin is extra world-space padding around the selection (default: 0)
	Margin float32 `mapstructure:"margin"`
	// Layers is the layer mask in decimal or 0x-hex form, or "all"
	Layers string `mapstructure:"layers"`
	// Split exports one file per named layer instead of a single composite
	Split bool `mapstructure:"split"`
	// TrimToColliders shrinks the selection to the collider union before capture
	TrimToColliders bool `mapstructure:"trim_to_colliders"`
	// ClearColor is the hex color used for masked border pixels; empty means
	// fully transparent
	ClearColor string `mapstructure:"clear_color"`
}

// OutputConfig controls where captures are written
type OutputConfig struct {
	// Dir is prepended to relative output paths (default: ".")
	Dir string `mapstructure:"dir"`
}

// WatchConfig controls watch mode
type WatchConfig struct {
	// DebounceMs is how long to wait after a scene change before
	// re-capturing, coalescing editor write bursts (default: 250)
	DebounceMs int `mapstructure:"debounce_ms"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR (default: INFO)
	Level string `mapstructure:"level"`
	// JSON switches entries to JSON format for post-hoc analysis
	JSON bool `mapstructure:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Capture: CaptureConfig{
			PixelsPerUnit: 100,
			Margin:        0,
			Layers:        "all",
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Watch: WatchConfig{
			DebounceMs: 250,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// SetDefaults registers the built-in defaults with viper so they apply even
// without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("capture.pixels_per_unit", defaults.Capture.PixelsPerUnit)
	viper.SetDefault("capture.margin", defaults.Capture.Margin)
	viper.SetDefault("capture.layers", defaults.Capture.Layers)
	viper.SetDefault("capture.split", defaults.Capture.Split)
	viper.SetDefault("capture.trim_to_colliders", defaults.Capture.TrimToColliders)
	viper.SetDefault("capture.clear_color", defaults.Capture.ClearColor)

	viper.SetDefault("output.dir", defaults.Output.Dir)

	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.json", defaults.Logging.JSON)
}

// Load unmarshals the effective viper state into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "levelsnap")
}

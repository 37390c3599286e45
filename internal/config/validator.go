package config

import (
	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/layers"
	"github.com/levelsnap/levelsnap/internal/logging"
)

// Validate checks the configuration invariants. The first violated invariant
// is returned; configuration problems are terminal, never retried.
func (c *Config) Validate() error {
	if c.Capture.PixelsPerUnit <= 0 {
		return errors.NewValidationError("capture.pixels_per_unit", "must be positive")
	}
	if c.Capture.Margin < 0 {
		return errors.NewValidationError("capture.margin", "must be non-negative")
	}
	if _, err := layers.ParseMask(c.Capture.Layers); err != nil {
		return errors.NewValidationError("capture.layers", err.Error())
	}
	if c.Watch.DebounceMs < 0 {
		return errors.NewValidationError("watch.debounce_ms", "must be non-negative")
	}

	switch c.Logging.Level {
	case "", logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError,
		"debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("logging.level", "must be DEBUG, INFO, WARN, or ERROR")
	}

	return nil
}

// LayerMask returns the parsed layer mask. Validate must have accepted the
// config first.
func (c *Config) LayerMask() layers.Mask {
	m, err := layers.ParseMask(c.Capture.Layers)
	if err != nil {
		return layers.All
	}
	return m
}

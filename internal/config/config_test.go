package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Capture.PixelsPerUnit != 100 {
		t.Errorf("PixelsPerUnit = %g, want 100", cfg.Capture.PixelsPerUnit)
	}
	if cfg.Capture.Layers != "all" {
		t.Errorf("Layers = %q, want all", cfg.Capture.Layers)
	}
	if cfg.Watch.DebounceMs != 250 {
		t.Errorf("DebounceMs = %d, want 250", cfg.Watch.DebounceMs)
	}
}

func TestLoadOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("capture.pixels_per_unit", 32)
	viper.Set("capture.layers", "0x21")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Capture.PixelsPerUnit != 32 {
		t.Errorf("PixelsPerUnit = %g, want 32", cfg.Capture.PixelsPerUnit)
	}
	if cfg.LayerMask() != 0x21 {
		t.Errorf("LayerMask() = %v, want 0x21", cfg.LayerMask())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero scale", func(c *Config) { c.Capture.PixelsPerUnit = 0 }, true},
		{"negative margin", func(c *Config) { c.Capture.Margin = -1 }, true},
		{"bad mask", func(c *Config) { c.Capture.Layers = "zzz" }, true},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMs = -1 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "LOUD" }, true},
		{"lowercase level ok", func(c *Config) { c.Logging.Level = "debug" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

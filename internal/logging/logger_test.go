package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn, false)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("output contains suppressed levels: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("output missing expected levels: %q", out)
	}
}

func TestWithCapture(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, true).WithCapture("cap-123")

	logger.Info("rendering", "layer", "Background")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["capture_id"] != "cap-123" {
		t.Errorf("capture_id = %v, want cap-123", entry["capture_id"])
	}
	if entry["layer"] != "Background" {
		t.Errorf("layer = %v, want Background", entry["layer"])
	}
}

func TestWithInheritsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, true).
		WithCapture("cap-456").
		With("scene", "level1.yaml")

	logger.Info("captured")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["capture_id"] != "cap-456" {
		t.Errorf("capture_id = %v, want cap-456", entry["capture_id"])
	}
	if entry["scene"] != "level1.yaml" {
		t.Errorf("scene = %v, want level1.yaml", entry["scene"])
	}
}

func TestWithOddArgsIgnoresNonStringKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, true).With(42, "value", "ok", "yes")

	logger.Info("msg")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["ok"] != "yes" {
		t.Errorf("ok = %v, want yes", entry["ok"])
	}
}

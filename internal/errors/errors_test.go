package errors

import (
	"fmt"
	"testing"
)

func TestInvalidDimensionsError(t *testing.T) {
	err := NewInvalidDimensions(0, 256)
	want := "invalid buffer dimensions 0x256"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !IsInvalidDimensions(err) {
		t.Error("IsInvalidDimensions() = false, want true")
	}

	wrapped := fmt.Errorf("capture aborted: %w", err)
	if !IsInvalidDimensions(wrapped) {
		t.Error("IsInvalidDimensions() on wrapped error = false, want true")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		reason string
		want   string
	}{
		{
			name:   "with field",
			field:  "pixels_per_unit",
			reason: "must be positive",
			want:   "validation failed for pixels_per_unit: must be positive",
		},
		{
			name:   "without field",
			field:  "",
			reason: "scene has no entities",
			want:   "validation failed: scene has no entities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.reason)
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestIsTrimSignal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"no match", ErrNoMatch, true},
		{"too large", ErrTooLarge, true},
		{"wrapped no match", fmt.Errorf("trim: %w", ErrNoMatch), true},
		{"other sentinel", ErrSceneNotFound, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTrimSignal(tt.err); got != tt.want {
				t.Errorf("IsTrimSignal(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// Package errors provides centralized error definitions and error handling
// utilities for the levelsnap codebase. It defines domain-specific sentinel
// errors, semantic error types, and classification helpers used across the
// capture pipeline.
//
// # Error Types
//
// Sentinel errors represent well-known conditions:
//   - ErrNoMatch, ErrTooLarge: trimming signals, never fatal
//   - ErrSceneNotFound, ErrLayerOutOfRange: scene loading failures
//   - ErrSelectionCanceled: the user backed out of the interactive selector
//
// Semantic error types carry structured context:
//   - InvalidDimensionsError: a pixel buffer with non-positive extent
//   - ValidationError: invalid input or configuration
//
// # Usage
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrNoMatch) { ... }
//
//	var dimErr *errors.InvalidDimensionsError
//	if errors.As(err, &dimErr) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Trimming signals. Both leave the capture bounds unchanged and are logged
// as informational, never treated as failures.
var (
	// ErrNoMatch indicates that no collider overlapped the query region.
	ErrNoMatch = New("no colliders in region")
	// ErrTooLarge indicates that the collider union exceeds the current
	// bounds along at least one axis; trimming never grows the region.
	ErrTooLarge = New("collider union larger than bounds")
)

// Scene-related sentinel errors
var (
	// ErrSceneNotFound indicates that the scene file could not be found.
	ErrSceneNotFound = New("scene not found")
	// ErrLayerOutOfRange indicates a layer index outside the 32 slots.
	ErrLayerOutOfRange = New("layer index out of range")
	// ErrNoLayers indicates that a layer mask selected no named layers.
	ErrNoLayers = New("no named layers selected")
)

// Capture-related sentinel errors
var (
	// ErrSelectionCanceled indicates the user canceled the interactive
	// selector. The capture is silently aborted.
	ErrSelectionCanceled = New("selection canceled")
	// ErrEncodeFailed indicates that PNG encoding failed.
	ErrEncodeFailed = New("encode failed")
)

// -----------------------------------------------------------------------------
// Semantic Error Types
// -----------------------------------------------------------------------------

// InvalidDimensionsError reports a pixel buffer with a non-positive width or
// height. The capture is aborted and no file is written.
type InvalidDimensionsError struct {
	Width  int
	Height int
}

// Error returns the error message.
func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("invalid buffer dimensions %dx%d", e.Width, e.Height)
}

// NewInvalidDimensions creates an InvalidDimensionsError for the given extent.
func NewInvalidDimensions(width, height int) *InvalidDimensionsError {
	return &InvalidDimensionsError{Width: width, Height: height}
}

// ValidationError indicates invalid input or configuration state.
type ValidationError struct {
	Field  string
	Reason string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsTrimSignal reports whether err is one of the non-fatal trimming signals.
// Callers log these and continue with unchanged bounds.
func IsTrimSignal(err error) bool {
	return Is(err, ErrNoMatch) || Is(err, ErrTooLarge)
}

// IsInvalidDimensions reports whether err is an InvalidDimensionsError.
func IsInvalidDimensions(err error) bool {
	var dimErr *InvalidDimensionsError
	return As(err, &dimErr)
}

// Package capture runs the end-to-end capture sequence: frame the selection
// with a camera, render the scene off-screen, mask the texture outside the
// selection, encode to PNG, and write the result.
package capture

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/levelsnap/levelsnap/internal/compositor"
	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/geom"
	"github.com/levelsnap/levelsnap/internal/layers"
)

// Session carries the full state of one capture interaction. Selection
// state that the original tool kept on a shared editor object lives here as
// explicit fields, and is mutated only through setters.
type Session struct {
	// ID correlates all log entries of this capture.
	ID string

	// ScenePath is the scene document to capture from.
	ScenePath string

	// Bounds is the selected world-space region.
	Bounds geom.WorldBounds

	// DragStart and DragEnd are the in-progress selection corners while the
	// interactive selector is active.
	DragStart geom.Vec2
	DragEnd   geom.Vec2

	// Params is the world-to-pixel scale and margin.
	Params compositor.CaptureParameters

	// Mask selects which layer slots are rendered.
	Mask layers.Mask

	// Split exports one file per named layer instead of a composite.
	Split bool

	// TrimToColliders shrinks Bounds to the collider union before framing.
	TrimToColliders bool

	// ClearColor fills masked border pixels. Zero value is fully transparent.
	ClearColor color.RGBA

	// OutputPath is where the PNG is written. Empty means the user backed
	// out; the capture silently aborts.
	OutputPath string
}

// NewSession creates a session with a fresh correlation ID, selecting all
// layers by default.
func NewSession(scenePath string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		ScenePath: scenePath,
		Mask:      layers.All,
	}
}

// SetDrag updates the in-progress selection corners and recomputes Bounds
// from them. Corners may be given in any order.
func (s *Session) SetDrag(start, end geom.Vec2) {
	s.DragStart = start
	s.DragEnd = end

	minX, maxX := start.X, end.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := start.Y, end.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	s.Bounds = geom.BoundsFromRect(geom.NewRect(minX, minY, maxX-minX, maxY-minY))
}

// SetBounds replaces the selection with an explicit region.
func (s *Session) SetBounds(b geom.WorldBounds) {
	s.Bounds = b
}

// SetPixelsPerUnit sets the world-to-pixel scale.
func (s *Session) SetPixelsPerUnit(ppu float32) {
	s.Params.PixelsPerUnit = ppu
}

// SetMargin sets the world-space padding added around the selection.
func (s *Session) SetMargin(margin float32) {
	s.Params.Margin = margin
}

// Validate checks that the session can be captured.
func (s *Session) Validate() error {
	if s.ScenePath == "" {
		return errors.NewValidationError("scene", "path is required")
	}
	if s.Bounds.Size.X <= 0 || s.Bounds.Size.Y <= 0 {
		return errors.NewValidationError("bounds", "selection size must be positive")
	}
	return s.Params.Validate()
}

// ParseClearColor parses a hex clear color like "#rrggbb". The empty string
// maps to fully transparent.
func ParseClearColor(hex string) (color.RGBA, error) {
	if hex == "" {
		return color.RGBA{}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, errors.NewValidationError("clear_color", err.Error())
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Package compositor implements bounds-constrained capture masking: given a
// rendered pixel buffer and the world-space region a capture was framed on,
// it computes the on-texture rectangle that should stay visible, clears
// everything outside it to a uniform color, and encodes the result as PNG.
//
// The border clear walks only the border pixels, decomposing the area
// outside the visible rectangle into four disjoint regions. Left and right
// regions span the full buffer height; top and bottom span only the visible
// columns.
package compositor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/geom"
)

// Transparent is the default clear color for masked border pixels.
var Transparent = color.RGBA{}

// CaptureParameters carries the world-to-pixel scale and padding of one
// capture. PixelsPerUnit must be positive; Margin must be non-negative.
type CaptureParameters struct {
	// PixelsPerUnit converts world-unit lengths to pixel lengths.
	PixelsPerUnit float32
	// Margin is extra world-space padding added around the bounds before
	// the visible size is computed.
	Margin float32
}

// Validate checks the parameter invariants.
func (p CaptureParameters) Validate() error {
	if p.PixelsPerUnit <= 0 {
		return errors.NewValidationError("pixels_per_unit", "must be positive")
	}
	if p.Margin < 0 {
		return errors.NewValidationError("margin", "must be non-negative")
	}
	return nil
}

// ComputeVisibleRect computes the pixel-space rectangle of the buffer that
// corresponds to the world bounds plus margin, centered within the buffer.
// All four fields are truncated toward zero from the float computation.
//
// The result is deliberately not clamped to the buffer extent: when the
// visible size exceeds the buffer, the origin goes negative and the rect
// overflows. ClearOutsideRect clamps before masking, so such rects are safe
// to pass through the pipeline.
func ComputeVisibleRect(bufferWidth, bufferHeight int, bounds geom.WorldBounds, params CaptureParameters) (geom.PixelRect, error) {
	if bufferWidth <= 0 || bufferHeight <= 0 {
		return geom.PixelRect{}, errors.NewInvalidDimensions(bufferWidth, bufferHeight)
	}
	if err := params.Validate(); err != nil {
		return geom.PixelRect{}, err
	}

	visibleW := (bounds.Size.X + params.Margin) * params.PixelsPerUnit
	visibleH := (bounds.Size.Y + params.Margin) * params.PixelsPerUnit

	return geom.PixelRect{
		X: int(float32(bufferWidth)/2 - visibleW/2),
		Y: int(float32(bufferHeight)/2 - visibleH/2),
		W: int(visibleW),
		H: int(visibleH),
	}, nil
}

// ClearOutsideRect fills every pixel of buf outside visible with clearColor,
// mutating buf in place. The visible rect is clamped to the buffer extent
// first, so the four border regions are always disjoint and cover the
// outside exactly once. Empty regions are no-ops; a visible rect with no
// overlap clears the whole buffer. Calling it twice with the same rect
// yields the same buffer as calling it once.
func ClearOutsideRect(buf *image.RGBA, visible geom.PixelRect, clearColor color.RGBA) {
	b := buf.Bounds()
	full := geom.NewPixelRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())
	v := visible.Intersect(full)
	if v.Empty() {
		fillRect(buf, full, clearColor)
		return
	}

	left := geom.NewPixelRect(full.X, full.Y, v.X-full.X, full.H)
	right := geom.NewPixelRect(v.XMax(), full.Y, full.XMax()-v.XMax(), full.H)
	top := geom.NewPixelRect(v.X, full.Y, v.W, v.Y-full.Y)
	bottom := geom.NewPixelRect(v.X, v.YMax(), v.W, full.YMax()-v.YMax())

	for _, region := range []geom.PixelRect{left, right, top, bottom} {
		fillRect(buf, region, clearColor)
	}
}

// fillRect fills one region of buf with a uniform color using row copies.
func fillRect(buf *image.RGBA, r geom.PixelRect, c color.RGBA) {
	if r.Empty() {
		return
	}

	row := make([]byte, r.W*4)
	for i := 0; i < r.W; i++ {
		row[i*4+0] = c.R
		row[i*4+1] = c.G
		row[i*4+2] = c.B
		row[i*4+3] = c.A
	}

	for y := r.Y; y < r.YMax(); y++ {
		off := buf.PixOffset(r.X, y)
		copy(buf.Pix[off:off+len(row)], row)
	}
}

// Encode serializes buf as PNG. The output is deterministic for identical
// pixel contents; no compression configuration is exposed.
func Encode(buf *image.RGBA) ([]byte, error) {
	b := buf.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.NewInvalidDimensions(b.Dx(), b.Dy())
	}

	var out bytes.Buffer
	if err := png.Encode(&out, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrEncodeFailed, err)
	}
	return out.Bytes(), nil
}

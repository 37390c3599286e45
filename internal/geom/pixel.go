package geom

import (
	"fmt"
	"image"
)

// PixelRect is an integer rectangle on a pixel buffer, stored as origin plus
// size. Unlike Rect it may legally carry negative origin or overflow a
// buffer's extent; callers that need a buffer-contained rectangle clamp with
// Intersect first.
type PixelRect struct {
	X int
	Y int
	W int
	H int
}

// NewPixelRect creates a PixelRect from origin and size.
func NewPixelRect(x, y, w, h int) PixelRect {
	return PixelRect{X: x, Y: y, W: w, H: h}
}

// XMax returns the exclusive right edge.
func (p PixelRect) XMax() int { return p.X + p.W }

// YMax returns the exclusive bottom edge.
func (p PixelRect) YMax() int { return p.Y + p.H }

// Empty reports whether the rectangle has non-positive width or height.
func (p PixelRect) Empty() bool {
	return p.W <= 0 || p.H <= 0
}

// Intersect returns the largest rectangle contained in both p and o.
// If the rectangles do not overlap, the result is Empty.
func (p PixelRect) Intersect(o PixelRect) PixelRect {
	x := max(p.X, o.X)
	y := max(p.Y, o.Y)
	xMax := min(p.XMax(), o.XMax())
	yMax := min(p.YMax(), o.YMax())
	return PixelRect{X: x, Y: y, W: xMax - x, H: yMax - y}
}

// Contains reports whether o lies entirely within p.
func (p PixelRect) Contains(o PixelRect) bool {
	return o.X >= p.X && o.Y >= p.Y && o.XMax() <= p.XMax() && o.YMax() <= p.YMax()
}

// ImageRect converts to a stdlib image.Rectangle.
func (p PixelRect) ImageRect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.XMax(), p.YMax())
}

// String returns a compact representation for logs.
func (p PixelRect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", p.X, p.Y, p.W, p.H)
}

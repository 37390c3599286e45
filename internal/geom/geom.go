// Package geom provides the world-space and pixel-space geometry used by the
// capture pipeline: axis-aligned bounds in world units, integer rectangles on
// pixel buffers, and the power-of-two texture sizing policy.
//
// World space is float32 throughout, matching the coordinate precision of the
// scenes being captured.
package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle in world units, stored as min corner
// plus size. Sizes are never negative.
type Rect struct {
	Min  Vec2
	Size Vec2
}

// NewRect creates a Rect from a min corner and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Max returns the maximum corner of the rectangle.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.Min.X + r.Size.X, Y: r.Min.Y + r.Size.Y}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.Min.X + r.Size.X/2, Y: r.Min.Y + r.Size.Y/2}
}

// Overlaps reports whether r and o intersect with positive area shared
// boundary included.
func (r Rect) Overlaps(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Min.X <= oMax.X && o.Min.X <= rMax.X &&
		r.Min.Y <= oMax.Y && o.Min.Y <= rMax.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math32.Min(r.Min.X, o.Min.X)
	minY := math32.Min(r.Min.Y, o.Min.Y)
	maxX := math32.Max(r.Min.X+r.Size.X, o.Min.X+o.Size.X)
	maxY := math32.Max(r.Min.Y+r.Size.Y, o.Min.Y+o.Size.Y)
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// String returns a compact representation for logs.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Min.X, r.Min.Y, r.Size.X, r.Size.Y)
}

// WorldBounds is an axis-aligned rectangle in world units, stored as center
// plus size. It defines the logical region of interest for a capture.
type WorldBounds struct {
	Center Vec2 `yaml:"center"`
	Size   Vec2 `yaml:"size"`
}

// BoundsFromRect converts a min/size rectangle to center/size bounds.
func BoundsFromRect(r Rect) WorldBounds {
	return WorldBounds{Center: r.Center(), Size: r.Size}
}

// Rect converts the bounds to a min/size rectangle.
func (b WorldBounds) Rect() Rect {
	return Rect{
		Min:  Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2},
		Size: b.Size,
	}
}

// MaxSide returns the larger of the two size components.
func (b WorldBounds) MaxSide() float32 {
	return math32.Max(b.Size.X, b.Size.Y)
}

// String returns a compact representation for logs.
func (b WorldBounds) String() string {
	return fmt.Sprintf("center=(%g,%g) size=(%g,%g)", b.Center.X, b.Center.Y, b.Size.X, b.Size.Y)
}

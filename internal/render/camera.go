// Package render produces the off-screen pixel buffer a capture is framed
// on. A software orthographic camera maps world space onto a square
// power-of-two texture; entities are rasterized per layer and layers are
// composited bottom-up.
package render

import (
	"github.com/chewxy/math32"

	"github.com/levelsnap/levelsnap/internal/compositor"
	"github.com/levelsnap/levelsnap/internal/geom"
)

// Camera is an orthographic 1:1 camera over a square texture. The texture
// covers a world-space square of side TextureSize/PixelsPerUnit centered on
// Center; world +Y maps to pixel -Y.
type Camera struct {
	Center        geom.Vec2
	TextureSize   int
	PixelsPerUnit float32
}

// Frame places a camera over the given bounds. The texture side length is
// the next power of two that fits (maxSide + margin) * pixelsPerUnit, so the
// framed region is always fully inside the texture.
func Frame(bounds geom.WorldBounds, params compositor.CaptureParameters) Camera {
	px := (bounds.MaxSide() + params.Margin) * params.PixelsPerUnit
	return Camera{
		Center:        bounds.Center,
		TextureSize:   geom.CeilPow2(int(math32.Ceil(px))),
		PixelsPerUnit: params.PixelsPerUnit,
	}
}

// OrthoHalfHeight returns the camera's orthographic half-height in world
// units: textureSize / pixelsPerUnit / 2.
func (c Camera) OrthoHalfHeight() float32 {
	return float32(c.TextureSize) / c.PixelsPerUnit / 2
}

// WorldToPixel maps a world point to continuous pixel coordinates on the
// texture.
func (c Camera) WorldToPixel(v geom.Vec2) (x, y float32) {
	half := c.OrthoHalfHeight()
	x = (v.X - (c.Center.X - half)) * c.PixelsPerUnit
	y = ((c.Center.Y + half) - v.Y) * c.PixelsPerUnit
	return x, y
}

// PixelRectOf maps a world rectangle to the integer pixel rectangle it
// covers on the texture, rounding edges to the nearest pixel.
func (c Camera) PixelRectOf(r geom.Rect) geom.PixelRect {
	x0, y0 := c.WorldToPixel(geom.Vec2{X: r.Min.X, Y: r.Max().Y})
	x1, y1 := c.WorldToPixel(geom.Vec2{X: r.Max().X, Y: r.Min.Y})

	xi := int(math32.Round(x0))
	yi := int(math32.Round(y0))
	return geom.NewPixelRect(xi, yi, int(math32.Round(x1))-xi, int(math32.Round(y1))-yi)
}

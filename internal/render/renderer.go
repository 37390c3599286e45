package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"path/filepath"

	"github.com/anthonynsimon/bild/blend"
	"github.com/spf13/afero"
	xdraw "golang.org/x/image/draw"

	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/layers"
	"github.com/levelsnap/levelsnap/internal/logging"
	"github.com/levelsnap/levelsnap/internal/scene"
)

// Renderer rasterizes scene entities onto camera-framed textures. Sprite
// images are resolved against baseDir on fs. A fresh buffer is produced per
// call; nothing is cached between captures.
type Renderer struct {
	fs      afero.Fs
	baseDir string
	log     *logging.Logger
}

// New creates a Renderer reading sprite images from fs relative to baseDir.
func New(fs afero.Fs, baseDir string, log *logging.Logger) *Renderer {
	if log == nil {
		log = logging.Discard()
	}
	return &Renderer{fs: fs, baseDir: baseDir, log: log}
}

// Render rasterizes every masked layer of the scene and composites them
// bottom-up into a single texture.
func (r *Renderer) Render(sc *scene.Scene, cam Camera, mask layers.Mask) (*image.RGBA, error) {
	if cam.TextureSize <= 0 {
		return nil, errors.NewInvalidDimensions(cam.TextureSize, cam.TextureSize)
	}

	out := newTexture(cam.TextureSize)
	for slot := 0; slot < layers.SlotCount; slot++ {
		if !mask.Has(slot) || !r.layerPopulated(sc, slot) {
			continue
		}
		layer, err := r.RenderLayer(sc, cam, slot)
		if err != nil {
			return nil, err
		}
		out = blend.Normal(out, layer)
	}
	return out, nil
}

// RenderLayer rasterizes the entities of a single layer slot, in document
// order, onto a fresh transparent texture.
func (r *Renderer) RenderLayer(sc *scene.Scene, cam Camera, slot int) (*image.RGBA, error) {
	if cam.TextureSize <= 0 {
		return nil, errors.NewInvalidDimensions(cam.TextureSize, cam.TextureSize)
	}

	buf := newTexture(cam.TextureSize)
	for _, e := range sc.Entities {
		if e.Layer != slot {
			continue
		}
		if err := r.drawEntity(buf, cam, e); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (r *Renderer) layerPopulated(sc *scene.Scene, slot int) bool {
	for _, e := range sc.Entities {
		if e.Layer == slot {
			return true
		}
	}
	return false
}

func (r *Renderer) drawEntity(buf *image.RGBA, cam Camera, e scene.Entity) error {
	dst := cam.PixelRectOf(e.Rect).ImageRect().Intersect(buf.Bounds())
	if dst.Empty() {
		r.log.Debug("entity outside texture", "entity", e.Name)
		return nil
	}

	if e.Sprite == "" {
		draw.Draw(buf, dst, image.NewUniform(e.Color), image.Point{}, draw.Over)
		return nil
	}

	sprite, err := r.loadSprite(e.Sprite)
	if err != nil {
		return fmt.Errorf("entity %s: %w", e.Name, err)
	}
	xdraw.NearestNeighbor.Scale(buf, dst, sprite, sprite.Bounds(), xdraw.Over, nil)
	return nil
}

func (r *Renderer) loadSprite(path string) (image.Image, error) {
	full := filepath.Join(r.baseDir, path)
	f, err := r.fs.Open(full)
	if err != nil {
		return nil, fmt.Errorf("opening sprite %s: %w", full, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding sprite %s: %w", full, err)
	}
	return img, nil
}

func newTexture(side int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, side, side))
}

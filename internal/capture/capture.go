package capture

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/levelsnap/levelsnap/internal/compositor"
	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/geom"
	"github.com/levelsnap/levelsnap/internal/layers"
	"github.com/levelsnap/levelsnap/internal/logging"
	"github.com/levelsnap/levelsnap/internal/output"
	"github.com/levelsnap/levelsnap/internal/render"
	"github.com/levelsnap/levelsnap/internal/scene"
	"github.com/levelsnap/levelsnap/internal/trim"
)

// Result reports what a completed capture produced.
type Result struct {
	// Files lists the written paths, in layer enumeration order when split.
	Files []string
	// Bounds is the effective region after any trimming.
	Bounds geom.WorldBounds
	// TextureSize is the side length of the render texture.
	TextureSize int
}

// Pipeline executes capture sessions against a filesystem. One pipeline can
// run any number of sessions, but the sequence within a session is atomic
// and synchronous: render, mask, encode, write, with no retries.
type Pipeline struct {
	fs  afero.Fs
	log *logging.Logger
}

// New creates a Pipeline on fs.
func New(fs afero.Fs, log *logging.Logger) *Pipeline {
	if log == nil {
		log = logging.Discard()
	}
	return &Pipeline{fs: fs, log: log}
}

// Run executes one capture session. An empty output path aborts silently
// with a nil error; trimming signals are logged and leave the selection
// unchanged; every other failure is terminal for this invocation.
func (p *Pipeline) Run(ctx context.Context, s *Session) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := p.log.WithCapture(s.ID)

	if s.OutputPath == "" {
		log.Debug("no output path, capture aborted")
		return nil, nil
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	sc, err := scene.Load(p.fs, s.ScenePath)
	if err != nil {
		return nil, err
	}

	bounds := s.Bounds
	if s.TrimToColliders {
		bounds = p.trimBounds(log, sc, s)
	}

	cam := render.Frame(bounds, s.Params)
	log.Info("capture framed",
		"scene", s.ScenePath,
		"bounds", bounds.String(),
		"texture_size", cam.TextureSize,
	)

	renderer := render.New(p.fs, filepath.Dir(s.ScenePath), log)
	writer := output.NewWriter(p.fs)

	result := &Result{Bounds: bounds, TextureSize: cam.TextureSize}

	if s.Split {
		if err := p.runSplit(log, s, sc, renderer, cam, bounds, writer, result); err != nil {
			return nil, err
		}
	} else {
		buf, err := renderer.Render(sc, cam, s.Mask)
		if err != nil {
			return nil, err
		}
		if err := p.maskAndWrite(s, cam, bounds, buf, writer, s.OutputPath, result); err != nil {
			return nil, err
		}
	}

	log.Info("capture complete", "files", len(result.Files))
	return result, nil
}

// trimBounds shrinks the selection to the collider union, keeping the
// original selection when the query signals NoMatch or TooLarge.
func (p *Pipeline) trimBounds(log *logging.Logger, sc *scene.Scene, s *Session) geom.WorldBounds {
	candidates := sc.CollidersIn(s.Bounds.Rect(), s.Mask)
	trimmed, err := trim.ToColliders(candidates, s.Bounds)
	if err != nil {
		// NoMatch and TooLarge are informational, not failures
		log.Info("bounds not trimmed", "reason", err.Error())
		return s.Bounds
	}
	log.Info("bounds trimmed", "bounds", trimmed.String())
	return trimmed
}

// runSplit renders, masks, and writes one file per enumerated layer.
func (p *Pipeline) runSplit(log *logging.Logger, s *Session, sc *scene.Scene, renderer *render.Renderer, cam render.Camera, bounds geom.WorldBounds, writer *output.Writer, result *Result) error {
	named := layers.Enumerate(s.Mask, sc.LayerTable())
	if len(named) == 0 {
		return fmt.Errorf("%w: mask %s", errors.ErrNoLayers, s.Mask)
	}

	for _, layer := range named {
		buf, err := renderer.RenderLayer(sc, cam, layer.Index)
		if err != nil {
			return err
		}
		path := output.LayerPath(s.OutputPath, layer.Name)
		if err := p.maskAndWrite(s, cam, bounds, buf, writer, path, result); err != nil {
			return err
		}
		log.WithLayer(layer.Name).Debug("layer written", "path", path)
	}
	return nil
}

// maskAndWrite clears the border, encodes, and writes one buffer.
func (p *Pipeline) maskAndWrite(s *Session, cam render.Camera, bounds geom.WorldBounds, buf *image.RGBA, writer *output.Writer, path string, result *Result) error {
	visible, err := compositor.ComputeVisibleRect(cam.TextureSize, cam.TextureSize, bounds, s.Params)
	if err != nil {
		return err
	}
	compositor.ClearOutsideRect(buf, visible, s.ClearColor)

	data, err := compositor.Encode(buf)
	if err != nil {
		return err
	}
	if err := writer.Write(path, data); err != nil {
		return err
	}

	result.Files = append(result.Files, path)
	return nil
}

// Package scene models the 2D level document a capture reads from: a table
// of named render layers and a flat list of rectangular entities, loaded
// from YAML. It also answers the spatial queries the trimming step needs.
package scene

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/geom"
	"github.com/levelsnap/levelsnap/internal/layers"
)

// Entity is one rectangular object in the scene. Entities are drawn in
// document order within their layer.
type Entity struct {
	// Name identifies the entity in logs and errors.
	Name string
	// Layer is the render layer slot index, 0-31.
	Layer int
	// Rect is the entity's world-space footprint.
	Rect geom.Rect
	// Color is the fill color with opacity applied to alpha.
	Color color.NRGBA
	// Collider marks the entity as participating in spatial queries.
	Collider bool
	// Sprite is an optional path to a PNG drawn instead of the flat fill,
	// relative to the scene file.
	Sprite string
}

// Scene is a loaded level document.
type Scene struct {
	Name     string
	Entities []Entity

	table [layers.SlotCount]string
}

// LayerTable returns the 32-slot layer name table. Unnamed slots are empty
// strings.
func (s *Scene) LayerTable() [layers.SlotCount]string {
	return s.table
}

// CollidersIn returns the world rects of collider entities that overlap the
// query region and whose layer is selected by mask. This is the spatial
// query feeding capture trimming.
func (s *Scene) CollidersIn(region geom.Rect, mask layers.Mask) []geom.Rect {
	var out []geom.Rect
	for _, e := range s.Entities {
		if !e.Collider || !mask.Has(e.Layer) {
			continue
		}
		if e.Rect.Overlaps(region) {
			out = append(out, e.Rect)
		}
	}
	return out
}

// yaml document shapes

type sceneDoc struct {
	Name     string         `yaml:"name"`
	Layers   map[int]string `yaml:"layers"`
	Entities []entityDoc    `yaml:"entities"`
}

type entityDoc struct {
	Name     string   `yaml:"name"`
	Layer    int      `yaml:"layer"`
	Rect     rectDoc  `yaml:"rect"`
	Color    string   `yaml:"color"`
	Opacity  *float64 `yaml:"opacity"`
	Collider bool     `yaml:"collider"`
	Sprite   string   `yaml:"sprite"`
}

type rectDoc struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	W float32 `yaml:"w"`
	H float32 `yaml:"h"`
}

// Load reads and validates a scene document from fs.
func Load(fs afero.Fs, path string) (*Scene, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errors.ErrSceneNotFound, path)
		}
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scene document.
func Parse(data []byte) (*Scene, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}

	s := &Scene{Name: doc.Name}

	for idx, name := range doc.Layers {
		if idx < 0 || idx >= layers.SlotCount {
			return nil, fmt.Errorf("%w: layer %q at slot %d", errors.ErrLayerOutOfRange, name, idx)
		}
		s.table[idx] = name
	}

	s.Entities = make([]Entity, 0, len(doc.Entities))
	for i, e := range doc.Entities {
		ent, err := buildEntity(i, e)
		if err != nil {
			return nil, err
		}
		s.Entities = append(s.Entities, ent)
	}

	return s, nil
}

func buildEntity(i int, e entityDoc) (Entity, error) {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("entity[%d]", i)
	}

	if e.Layer < 0 || e.Layer >= layers.SlotCount {
		return Entity{}, fmt.Errorf("%w: %s on layer %d", errors.ErrLayerOutOfRange, name, e.Layer)
	}
	if e.Rect.W <= 0 || e.Rect.H <= 0 {
		return Entity{}, errors.NewValidationError(name, "rect size must be positive")
	}

	opacity := 1.0
	if e.Opacity != nil {
		opacity = *e.Opacity
		if opacity < 0 || opacity > 1 {
			return Entity{}, errors.NewValidationError(name, "opacity must be in [0,1]")
		}
	}

	fill := color.NRGBA{A: uint8(opacity * 255)}
	if e.Color != "" {
		c, err := colorful.Hex(e.Color)
		if err != nil {
			return Entity{}, errors.NewValidationError(name, fmt.Sprintf("bad color %q", e.Color))
		}
		r, g, b := c.RGB255()
		fill.R, fill.G, fill.B = r, g, b
	}

	return Entity{
		Name:     name,
		Layer:    e.Layer,
		Rect:     geom.NewRect(e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H),
		Color:    fill,
		Collider: e.Collider,
		Sprite:   e.Sprite,
	}, nil
}

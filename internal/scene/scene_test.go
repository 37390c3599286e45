package scene

import (
	"image/color"
	"testing"

	"github.com/spf13/afero"

	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/geom"
	"github.com/levelsnap/levelsnap/internal/layers"
)

const sampleScene = `
name: demo
layers:
  0: Default
  2: Background
  5: Props
entities:
  - name: floor
    layer: 2
    rect: {x: -4, y: 0, w: 8, h: 1}
    color: "#333333"
    collider: true
  - name: crate
    layer: 5
    rect: {x: 0, y: 1, w: 2, h: 2}
    color: "#ff8800"
    opacity: 0.5
    collider: true
  - name: glow
    layer: 0
    rect: {x: 1, y: 1, w: 1, h: 1}
    color: "#ffffff"
`

func loadSample(t *testing.T) *Scene {
	t.Helper()
	s, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return s
}

func TestParse(t *testing.T) {
	s := loadSample(t)

	if s.Name != "demo" {
		t.Errorf("Name = %q, want demo", s.Name)
	}

	table := s.LayerTable()
	if table[0] != "Default" || table[2] != "Background" || table[5] != "Props" {
		t.Errorf("layer table = %v", table)
	}
	if table[1] != "" {
		t.Errorf("slot 1 should be unnamed, got %q", table[1])
	}

	if len(s.Entities) != 3 {
		t.Fatalf("len(Entities) = %d, want 3", len(s.Entities))
	}

	crate := s.Entities[1]
	if crate.Name != "crate" || crate.Layer != 5 || !crate.Collider {
		t.Errorf("crate = %+v", crate)
	}
	want := color.NRGBA{R: 255, G: 136, B: 0, A: 127}
	if crate.Color != want {
		t.Errorf("crate color = %v, want %v", crate.Color, want)
	}

	glow := s.Entities[2]
	if glow.Color.A != 255 {
		t.Errorf("default opacity should be fully opaque, got alpha %d", glow.Color.A)
	}
	if glow.Collider {
		t.Error("glow should not be a collider")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "layer slot out of range",
			doc:  "layers:\n  40: Bogus\n",
		},
		{
			name: "entity layer out of range",
			doc:  "entities:\n  - layer: 32\n    rect: {x: 0, y: 0, w: 1, h: 1}\n",
		},
		{
			name: "non-positive rect",
			doc:  "entities:\n  - layer: 0\n    rect: {x: 0, y: 0, w: 0, h: 1}\n",
		},
		{
			name: "bad color",
			doc:  "entities:\n  - layer: 0\n    rect: {x: 0, y: 0, w: 1, h: 1}\n    color: \"notacolor\"\n",
		},
		{
			name: "opacity out of range",
			doc:  "entities:\n  - layer: 0\n    rect: {x: 0, y: 0, w: 1, h: 1}\n    opacity: 1.5\n",
		},
		{
			name: "not yaml",
			doc:  "entities: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("Parse() should have failed")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "level.yaml", []byte(sampleScene), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(fs, "level.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Name != "demo" {
		t.Errorf("Name = %q, want demo", s.Name)
	}
}

func TestLoadMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "nope.yaml")
	if !errors.Is(err, errors.ErrSceneNotFound) {
		t.Errorf("error = %v, want ErrSceneNotFound", err)
	}
}

func TestCollidersIn(t *testing.T) {
	s := loadSample(t)

	tests := []struct {
		name   string
		region geom.Rect
		mask   layers.Mask
		want   int
	}{
		{"all layers, whole scene", geom.NewRect(-10, -10, 20, 20), layers.All, 2},
		{"background only", geom.NewRect(-10, -10, 20, 20), layers.Mask(0).With(2), 1},
		{"region misses crate", geom.NewRect(-4, 0, 2, 1), layers.All, 1},
		{"empty region", geom.NewRect(50, 50, 1, 1), layers.All, 0},
		{"mask excludes colliders", geom.NewRect(-10, -10, 20, 20), layers.Mask(0).With(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.CollidersIn(tt.region, tt.mask)
			if len(got) != tt.want {
				t.Errorf("CollidersIn() returned %d rects, want %d", len(got), tt.want)
			}
		})
	}
}

// Package scene reads YAML scene descriptions and turns them into shapes for the
// scheduler. A scene names a render style, a frame rate and a list of shapes.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"lifeboat/internal/lifeboat"
	"lifeboat/internal/matrix"
	"lifeboat/internal/model"
	"lifeboat/internal/shape"
)

//go:embed assets/demo.yaml
var demo []byte

// ErrInvalidShape is returned for shape entries that cannot be built.
var ErrInvalidShape = errors.New("invalid shape")

// Scene is the YAML document.
type Scene struct {
	Style  string     `yaml:"style,omitempty"`
	FPS    int        `yaml:"fps,omitempty"`
	Shapes []ShapeDef `yaml:"shapes"`
}

// ShapeDef is one entry of shapes. At and Size take as many components as the
// type needs: rectangle [w, h], cuboid [w, h, l], cube [l]. Angles are degrees.
type ShapeDef struct {
	Type      string      `yaml:"type"`
	At        []float32   `yaml:"at,omitempty"`
	Size      []float32   `yaml:"size,omitempty"`
	Points    [][]float32 `yaml:"points,omitempty"`
	Color     string      `yaml:"color,omitempty"`
	Faces     Faces       `yaml:"faces,omitempty"`
	PointSize float32     `yaml:"pointSize,omitempty"`
	Rotation  []float32   `yaml:"rotation,omitempty"`
	Spin      []float32   `yaml:"spin,omitempty"`
}

// Faces colors individual cuboid faces; they override Color.
type Faces struct {
	Front  string `yaml:"front,omitempty"`
	Back   string `yaml:"back,omitempty"`
	Left   string `yaml:"left,omitempty"`
	Right  string `yaml:"right,omitempty"`
	Top    string `yaml:"top,omitempty"`
	Bottom string `yaml:"bottom,omitempty"`
}

// Parse decodes a scene document. Unknown fields are rejected; an empty
// document is an empty static scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Demo returns the built-in demo scene.
func Demo() *Scene {
	s, err := Parse(demo)
	if err != nil {
		panic(err)
	}
	return s
}

// Options converts the scene's style and frame rate into scheduler options.
func (s *Scene) Options() ([]lifeboat.Option, error) {
	style, err := lifeboat.ParseStyle(s.Style)
	if err != nil {
		return nil, err
	}
	return []lifeboat.Option{lifeboat.WithStyle(style), lifeboat.WithFPS(s.FPS)}, nil
}

// Build creates the shapes in document order. Unknown colors are logged and
// render black; everything else that is malformed fails the whole build.
func (s *Scene) Build(log *zap.Logger) ([]shape.Renderable, error) {
	if log == nil {
		log = zap.NewNop()
	}
	out := make([]shape.Renderable, 0, len(s.Shapes))
	for i, def := range s.Shapes {
		b := builder{log: log.With(zap.Int("shape", i), zap.String("type", def.Type))}
		r, err := b.build(def)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, def.Type, err)
		}
		out = append(out, r)
	}
	return out, nil
}

type builder struct {
	log *zap.Logger
}

func (b builder) build(def ShapeDef) (shape.Renderable, error) {
	at, err := point(def.At)
	if err != nil {
		return nil, fmt.Errorf("at: %w", err)
	}
	color := b.color(def.Color)

	var r shape.Renderable
	switch strings.ToLower(def.Type) {
	case "point":
		if len(def.Rotation) > 0 || len(def.Spin) > 0 {
			return nil, fmt.Errorf("%w: points cannot rotate", ErrInvalidShape)
		}
		return shape.NewPoint(at, shape.PointSettings{Size: def.PointSize, Color: color}), nil
	case "rectangle":
		if len(def.Size) != 2 {
			return nil, fmt.Errorf("%w: rectangle size needs [width, height]", ErrInvalidShape)
		}
		r = shape.NewRectangle(at, def.Size[0], def.Size[1], color)
	case "triangle":
		if len(def.Points) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 points, got %d", ErrInvalidShape, len(def.Points))
		}
		var pts [3]model.Point
		for i, p := range def.Points {
			if pts[i], err = point(p); err != nil {
				return nil, fmt.Errorf("points[%d]: %w", i, err)
			}
		}
		r = shape.NewTriangle(pts[0], pts[1], pts[2], color)
	case "cuboid":
		if len(def.Size) != 3 {
			return nil, fmt.Errorf("%w: cuboid size needs [width, height, length]", ErrInvalidShape)
		}
		r = shape.NewCuboid(at, def.Size[0], def.Size[1], def.Size[2], b.faces(color, def.Faces))
	case "cube":
		if len(def.Size) != 1 {
			return nil, fmt.Errorf("%w: cube size needs [length]", ErrInvalidShape)
		}
		r = shape.NewCube(at, def.Size[0], b.faces(color, def.Faces))
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidShape, def.Type)
	}

	rot, ok := r.(shape.Rotatable)
	if !ok {
		return r, nil
	}
	if len(def.Rotation) > 0 {
		x, y, z, err := angles(def.Rotation)
		if err != nil {
			return nil, fmt.Errorf("rotation: %w", err)
		}
		rot.Rotate(x, y, z)
	}
	if len(def.Spin) > 0 {
		x, y, z, err := angles(def.Spin)
		if err != nil {
			return nil, fmt.Errorf("spin: %w", err)
		}
		return shape.Spin(rot, x, y, z), nil
	}
	return r, nil
}

// color parses name; an empty name stays unset and an unknown one falls back to black.
func (b builder) color(name string) model.Color {
	if name == "" {
		return model.Color{}
	}
	c, err := model.ParseColor(name)
	if err != nil {
		b.log.Warn("unknown color, using black", zap.String("color", name), zap.Error(err))
		return model.Black
	}
	return c
}

func (b builder) faces(base model.Color, f Faces) shape.CuboidSettings {
	pick := func(name string) model.Color {
		if name == "" {
			return base
		}
		return b.color(name)
	}
	return shape.CuboidSettings{
		Front:  pick(f.Front),
		Back:   pick(f.Back),
		Left:   pick(f.Left),
		Right:  pick(f.Right),
		Top:    pick(f.Top),
		Bottom: pick(f.Bottom),
	}
}

// point accepts [x, y] or [x, y, z]; an empty list is the origin.
func point(v []float32) (model.Point, error) {
	switch len(v) {
	case 0:
		return model.Point{}, nil
	case 2:
		return model.Pt(v[0], v[1], 0), nil
	case 3:
		return model.Pt(v[0], v[1], v[2]), nil
	}
	return model.Point{}, fmt.Errorf("%w: want 2 or 3 coordinates, got %d", ErrInvalidShape, len(v))
}

func angles(deg []float32) (x, y, z float32, err error) {
	if len(deg) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: want [x, y, z] degrees, got %d values", ErrInvalidShape, len(deg))
	}
	return matrix.DegreeToRadian(deg[0]), matrix.DegreeToRadian(deg[1]), matrix.DegreeToRadian(deg[2]), nil
}

package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lifeboat/internal/gl"
	"lifeboat/internal/lifeboat"
	"lifeboat/internal/matrix"
	"lifeboat/internal/model"
	"lifeboat/internal/shape"
)

func TestDemoBuilds(t *testing.T) {
	s := Demo()
	assert.Equal(t, "dynamic", s.Style)
	assert.Equal(t, 60, s.FPS)

	shapes, err := s.Build(nil)
	require.NoError(t, err)
	require.Len(t, shapes, 5)
	assert.IsType(t, &shape.Point{}, shapes[0])
	assert.IsType(t, &shape.Rectangle{}, shapes[1])
	assert.IsType(t, &shape.Triangle{}, shapes[2])
	assert.IsType(t, &shape.Cuboid{}, shapes[3])
	assert.IsType(t, &shape.Spinner{}, shapes[4])
}

func TestDemoRendersOneFrame(t *testing.T) {
	shapes, err := Demo().Build(nil)
	require.NoError(t, err)
	rec := gl.NewRecorder(640, 480)
	l := lifeboat.New(rec)
	for _, s := range shapes {
		l.AddShape(s)
	}
	f := l.Tick()
	require.NoError(t, f.Err)
	assert.Len(t, rec.Draws, 5)
}

func TestBuildShapes(t *testing.T) {
	s, err := Parse([]byte(`
shapes:
  - type: rectangle
    at: [10, 20]
    size: [30, 40]
    color: red
  - type: cuboid
    at: [1, 2, 3]
    size: [4, 5, 6]
    color: blue
    faces:
      top: "#00ff00"
  - type: triangle
    points: [[0, 10], [5, 0], [10, 10]]
  - type: point
    at: [3, 4]
    pointSize: 9
    color: white
`))
	require.NoError(t, err)
	shapes, err := s.Build(zap.NewNop())
	require.NoError(t, err)
	require.Len(t, shapes, 4)

	rect := shapes[0].(*shape.Rectangle)
	assert.Equal(t, model.Pt(10, 20, 0), rect.TopLeft())
	assert.Equal(t, model.Red, rect.Color())

	cub := shapes[1].(*shape.Cuboid)
	w, h, l := cub.Dimensions()
	assert.Equal(t, [3]float32{4, 5, 6}, [3]float32{w, h, l})
	assert.Equal(t, model.Blue, cub.Settings().Front)
	assert.Equal(t, model.RGB(0, 255, 0), cub.Settings().Top)

	tri := shapes[2].(*shape.Triangle)
	assert.Equal(t, model.Pt(5, 0, 0), tri.Points()[1])
	assert.True(t, tri.Color().IsZero())

	pt := shapes[3].(*shape.Point)
	assert.Equal(t, float32(9), pt.Settings().Size)
	assert.Equal(t, model.White, pt.Settings().Color)
}

func TestRotationAndSpin(t *testing.T) {
	s, err := Parse([]byte(`
shapes:
  - type: cube
    size: [10]
    rotation: [90, 0, 0]
    spin: [0, 180, 0]
`))
	require.NoError(t, err)
	shapes, err := s.Build(nil)
	require.NoError(t, err)

	sp := shapes[0].(*shape.Spinner)
	cube := sp.Rotatable.(*shape.Cube)
	x, y, _ := cube.Rotation()
	assert.InDelta(t, matrix.DegreeToRadian(90), x, 1e-6)
	assert.Zero(t, y)

	require.NoError(t, sp.Update())
	_, y, _ = cube.Rotation()
	assert.InDelta(t, matrix.DegreeToRadian(180), y, 1e-6)
}

func TestUnknownColorWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := &Scene{Shapes: []ShapeDef{{Type: "rectangle", Size: []float32{1, 1}, Color: "chartreuse-ish"}}}
	shapes, err := s.Build(zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, model.Black, shapes[0].(*shape.Rectangle).Color())

	entries := logs.FilterMessage("unknown color, using black").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "chartreuse-ish", entries[0].ContextMap()["color"])
	assert.Equal(t, int64(0), entries[0].ContextMap()["shape"])
}

func TestBuildErrors(t *testing.T) {
	for name, def := range map[string]ShapeDef{
		"unknown type":     {Type: "sphere"},
		"rectangle size":   {Type: "rectangle", Size: []float32{1}},
		"cuboid size":      {Type: "cuboid", Size: []float32{1, 2}},
		"cube size":        {Type: "cube"},
		"triangle points":  {Type: "triangle", Points: [][]float32{{0, 0}, {1, 1}}},
		"triangle coords":  {Type: "triangle", Points: [][]float32{{0}, {1, 1}, {2, 2}}},
		"at":               {Type: "cube", Size: []float32{1}, At: []float32{1}},
		"rotation":         {Type: "cube", Size: []float32{1}, Rotation: []float32{1, 2}},
		"spin":             {Type: "cube", Size: []float32{1}, Spin: []float32{1}},
		"rotating point":   {Type: "point", Spin: []float32{1, 1, 1}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := (&Scene{Shapes: []ShapeDef{def}}).Build(nil)
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("shapes:\n  - type: cube\n    colour: red\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Shapes)
	opts, err := s.Options()
	require.NoError(t, err)
	assert.Equal(t, lifeboat.Static, lifeboat.New(nil, opts...).Style())
}

func TestOptions(t *testing.T) {
	opts, err := (&Scene{Style: "dynamic", FPS: 30}).Options()
	require.NoError(t, err)
	l := lifeboat.New(nil, opts...)
	assert.Equal(t, lifeboat.Dynamic, l.Style())

	_, err = (&Scene{Style: "wobbly"}).Options()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: static\nshapes:\n  - type: cube\n    size: [3]\n"), 0644))
	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Shapes, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

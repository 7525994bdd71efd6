package shape

import (
	"lifeboat/internal/gl"
	"lifeboat/internal/model"
)

// Triangle is a single-colored triangle given by three explicit points.
// It is drawn with both windings, so it shows from either side.
type Triangle struct {
	Shape
	points [3]model.Point
	color  model.Color
}

var _ Rotatable = (*Triangle)(nil)

// NewTriangle returns the triangle a, b, c. A zero color draws black.
func NewTriangle(a, b, c model.Point, color model.Color) *Triangle {
	t := &Triangle{color: color}
	t.SetPoints(a, b, c)
	return t
}

// SetPoints replaces the corners; the local origin becomes their minimum.
func (t *Triangle) SetPoints(a, b, c model.Point) {
	t.points = [3]model.Point{a, b, c}
	t.setOrigin(model.Min(a, b, c))
}

func (t *Triangle) Points() [3]model.Point { return t.points }
func (t *Triangle) Color() model.Color     { return t.color }

// Vertices returns a, b, c followed by a, c, b in local coordinates.
func (t *Triangle) Vertices() []float32 {
	o := t.Origin()
	a, b, c := t.points[0].Sub(o), t.points[1].Sub(o), t.points[2].Sub(o)
	return appendPoints(make([]float32, 0, 18), a, b, c, a, c, b)
}

// Colors returns the triangle color once per vertex.
func (t *Triangle) Colors() []float32 {
	return repeatColor(t.color, 6)
}

// Render draws both windings of the triangle.
func (t *Triangle) Render(ctx gl.Context) error {
	return drawVertexColored(ctx, &t.Shape, t.Vertices(), t.Colors(), false)
}

package shape

import (
	"lifeboat/internal/gl"
	"lifeboat/internal/model"
)

// Rectangle is an axis-aligned quad anchored at its top-left corner.
type Rectangle struct {
	Shape
	topLeft       model.Point
	width, height float32
	color         model.Color
}

var _ Rotatable = (*Rectangle)(nil)

// NewRectangle returns a width×height rectangle. A zero color draws black.
func NewRectangle(topLeft model.Point, width, height float32, color model.Color) *Rectangle {
	r := &Rectangle{width: width, height: height, color: color}
	r.SetTopLeft(topLeft)
	return r
}

// SetTopLeft moves the anchor; the local origin follows it.
func (r *Rectangle) SetTopLeft(p model.Point) {
	r.topLeft = p
	r.setOrigin(p)
}

func (r *Rectangle) TopLeft() model.Point { return r.topLeft }
func (r *Rectangle) Color() model.Color   { return r.color }

// Vertices returns the two triangles in local coordinates:
// top-left, top-right, bottom-left, bottom-left, top-right, bottom-right.
func (r *Rectangle) Vertices() []float32 {
	tl := r.topLeft.Sub(r.Origin())
	tr := tl.Add(r.width, 0, 0)
	bl := tl.Add(0, r.height, 0)
	br := tl.Add(r.width, r.height, 0)
	return appendPoints(make([]float32, 0, 18), tl, tr, bl, bl, tr, br)
}

// Colors returns the rectangle color once per vertex.
func (r *Rectangle) Colors() []float32 {
	return repeatColor(r.color, 6)
}

// Render draws the rectangle as six vertices.
func (r *Rectangle) Render(ctx gl.Context) error {
	return drawVertexColored(ctx, &r.Shape, r.Vertices(), r.Colors(), false)
}

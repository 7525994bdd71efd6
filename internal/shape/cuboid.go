package shape

import (
	"lifeboat/internal/gl"
	"lifeboat/internal/model"
)

// Face identifies one side of a cuboid. The values are the order faces appear in the vertex buffer.
type Face int

const (
	Back Face = iota
	Left
	Right
	Top
	Bottom
	Front
)

// Faces lists every face in buffer order.
var Faces = [...]Face{Back, Left, Right, Top, Bottom, Front}

// FaceVertices is the vertex count of one face (two triangles).
const FaceVertices = 6

func (f Face) String() string {
	switch f {
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Front:
		return "front"
	}
	return "unknown"
}

// CuboidSettings colors each face. Unset faces draw black.
type CuboidSettings struct {
	Front, Back, Left, Right, Top, Bottom model.Color
}

// SolidCuboid colors every face c.
func SolidCuboid(c model.Color) CuboidSettings {
	return CuboidSettings{Front: c, Back: c, Left: c, Right: c, Top: c, Bottom: c}
}

// Color returns the color for f with the black default applied.
func (s CuboidSettings) Color(f Face) model.Color {
	var c model.Color
	switch f {
	case Front:
		c = s.Front
	case Back:
		c = s.Back
	case Left:
		c = s.Left
	case Right:
		c = s.Right
	case Top:
		c = s.Top
	case Bottom:
		c = s.Bottom
	}
	return c.OrBlack()
}

// Cuboid is a box anchored at its front-top-left corner: width along +x, height
// along +y (down), length along +z (into the screen). The front face is nearest
// the viewer. Back-face culling is on while drawing; every triangle winds
// counter-clockwise about its outward normal.
type Cuboid struct {
	Shape
	frontTopLeft          model.Point
	width, height, length float32
	settings              CuboidSettings
}

var _ Rotatable = (*Cuboid)(nil)

// NewCuboid returns a width×height×length cuboid.
func NewCuboid(frontTopLeft model.Point, width, height, length float32, settings CuboidSettings) *Cuboid {
	c := &Cuboid{width: width, height: height, length: length, settings: settings}
	c.SetFrontTopLeft(frontTopLeft)
	return c
}

// SetFrontTopLeft moves the anchor; the local origin follows it.
func (c *Cuboid) SetFrontTopLeft(p model.Point) {
	c.frontTopLeft = p
	c.setOrigin(p)
}

func (c *Cuboid) FrontTopLeft() model.Point { return c.frontTopLeft }
func (c *Cuboid) Settings() CuboidSettings  { return c.settings }

// Dimensions returns width, height and length.
func (c *Cuboid) Dimensions() (width, height, length float32) {
	return c.width, c.height, c.length
}

// Vertices returns 36 local-space vertices, FaceVertices per face in Faces order.
func (c *Cuboid) Vertices() []float32 {
	base := c.frontTopLeft.Sub(c.Origin())
	x1, y1, z1 := base.X, base.Y, base.Z
	x2, y2, z2 := x1+c.width, y1+c.height, z1+c.length
	p := model.Pt
	return appendPoints(make([]float32, 0, 36*3),
		// back
		p(x1, y1, z2), p(x2, y1, z2), p(x1, y2, z2),
		p(x2, y1, z2), p(x2, y2, z2), p(x1, y2, z2),
		// left
		p(x1, y1, z1), p(x1, y1, z2), p(x1, y2, z1),
		p(x1, y1, z2), p(x1, y2, z2), p(x1, y2, z1),
		// right
		p(x2, y1, z1), p(x2, y2, z1), p(x2, y1, z2),
		p(x2, y2, z1), p(x2, y2, z2), p(x2, y1, z2),
		// top
		p(x1, y1, z1), p(x2, y1, z1), p(x1, y1, z2),
		p(x2, y1, z1), p(x2, y1, z2), p(x1, y1, z2),
		// bottom
		p(x1, y2, z1), p(x1, y2, z2), p(x2, y2, z1),
		p(x1, y2, z2), p(x2, y2, z2), p(x2, y2, z1),
		// front
		p(x1, y1, z1), p(x1, y2, z1), p(x2, y1, z1),
		p(x2, y1, z1), p(x1, y2, z1), p(x2, y2, z1),
	)
}

// Colors returns each face's color for its six vertices, in Faces order.
func (c *Cuboid) Colors() []float32 {
	out := make([]float32, 0, 36*4)
	for _, f := range Faces {
		out = append(out, repeatColor(c.settings.Color(f), FaceVertices)...)
	}
	return out
}

// Render draws the 36 vertices with back-face culling enabled.
func (c *Cuboid) Render(ctx gl.Context) error {
	return drawVertexColored(ctx, &c.Shape, c.Vertices(), c.Colors(), true)
}

// Cube is a Cuboid with equal sides.
type Cube struct {
	Cuboid
}

var _ Rotatable = (*Cube)(nil)

// NewCube returns a cube with side length.
func NewCube(frontTopLeft model.Point, length float32, settings CuboidSettings) *Cube {
	c := &Cube{}
	c.width, c.height, c.length = length, length, length
	c.settings = settings
	c.SetFrontTopLeft(frontTopLeft)
	return c
}

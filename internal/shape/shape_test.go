package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeboat/internal/matrix"
	"lifeboat/internal/model"
)

const tol = 1e-5

func vertices(data []float32) []model.Point {
	out := make([]model.Point, 0, len(data)/3)
	for i := 0; i+2 < len(data); i += 3 {
		out = append(out, model.Pt(data[i], data[i+1], data[i+2]))
	}
	return out
}

func TestRectangleVertices(t *testing.T) {
	r := NewRectangle(model.Pt(10, 10, 0), 20, 10, model.Red)
	assert.Equal(t, model.Pt(10, 10, 0), r.Origin())

	pts := vertices(r.Vertices())
	require.Len(t, pts, 6)
	for _, corner := range []model.Point{model.Pt(0, 0, 0), model.Pt(20, 0, 0), model.Pt(0, 10, 0), model.Pt(20, 10, 0)} {
		assert.Contains(t, pts, corner)
	}
	assert.Equal(t, []model.Point{
		model.Pt(0, 0, 0), model.Pt(20, 0, 0), model.Pt(0, 10, 0),
		model.Pt(0, 10, 0), model.Pt(20, 0, 0), model.Pt(20, 10, 0),
	}, pts)
}

func TestTriangleOrigin(t *testing.T) {
	tri := NewTriangle(model.Pt(0, 0, 0), model.Pt(10, 0, 0), model.Pt(0, 10, 0), model.Blue)
	o := tri.Origin()
	assert.Equal(t, float32(0), o.X)
	assert.Equal(t, float32(0), o.Y)

	pts := vertices(tri.Vertices())
	require.Len(t, pts, 6)
	orig := tri.Points()
	assert.Equal(t, orig[:], pts[:3], "re-based coordinates equal the originals")

	moved := NewTriangle(model.Pt(5, 7, 0), model.Pt(15, 9, 0), model.Pt(6, 20, 0), model.Blue)
	assert.Equal(t, model.Pt(5, 7, 0), moved.Origin())
	assert.Equal(t, model.Pt(0, 0, 0), vertices(moved.Vertices())[0])
}

func TestCuboidLayout(t *testing.T) {
	settings := CuboidSettings{
		Front: model.Red, Back: model.Green, Left: model.Blue,
		Right: model.Yellow, Top: model.Purple, Bottom: model.Teal,
	}
	c := NewCuboid(model.Pt(0, 0, 0), 2, 2, 2, settings)

	pts := vertices(c.Vertices())
	require.Len(t, pts, 36)
	colors := c.Colors()
	require.Len(t, colors, 36*4)

	onFace := map[Face]func(model.Point) bool{
		Back:   func(p model.Point) bool { return p.Z == 2 },
		Left:   func(p model.Point) bool { return p.X == 0 },
		Right:  func(p model.Point) bool { return p.X == 2 },
		Top:    func(p model.Point) bool { return p.Y == 0 },
		Bottom: func(p model.Point) bool { return p.Y == 2 },
		Front:  func(p model.Point) bool { return p.Z == 0 },
	}
	for i, f := range Faces {
		want := settings.Color(f).Normalized()
		for v := i * FaceVertices; v < (i+1)*FaceVertices; v++ {
			assert.True(t, onFace[f](pts[v]), "vertex %d %v is not on the %s face", v, pts[v], f)
			assert.Equal(t, want[:], colors[v*4:v*4+4], "vertex %d color on %s face", v, f)
		}
	}
}

func TestCuboidWindingIsOutward(t *testing.T) {
	c := NewCuboid(model.Pt(30, 40, 50), 3, 5, 7, CuboidSettings{})
	pts := vertices(c.Vertices())
	center := model.Pt(1.5, 2.5, 3.5)
	for i := 0; i < len(pts); i += 3 {
		a, b, cc := pts[i], pts[i+1], pts[i+2]
		u, v := b.Sub(a), cc.Sub(a)
		n := model.Pt(u.Y*v.Z-u.Z*v.Y, u.Z*v.X-u.X*v.Z, u.X*v.Y-u.Y*v.X)
		centroid := model.Pt((a.X+b.X+cc.X)/3, (a.Y+b.Y+cc.Y)/3, (a.Z+b.Z+cc.Z)/3)
		out := centroid.Sub(center)
		assert.Greater(t, n.X*out.X+n.Y*out.Y+n.Z*out.Z, float32(0), "triangle %d faces inward", i/3)
	}
}

func TestCuboidUnsetFacesAreBlack(t *testing.T) {
	c := NewCuboid(model.Pt(0, 0, 0), 1, 1, 1, CuboidSettings{Top: model.White})
	colors := c.Colors()
	black := model.Black.Normalized()
	white := model.White.Normalized()
	assert.Equal(t, black[:], colors[0:4])
	assert.Equal(t, white[:], colors[int(Top)*FaceVertices*4:int(Top)*FaceVertices*4+4])
}

func TestCube(t *testing.T) {
	c := NewCube(model.Pt(1, 2, 3), 4, SolidCuboid(model.Pink))
	w, h, l := c.Dimensions()
	assert.Equal(t, []float32{4, 4, 4}, []float32{w, h, l})
	assert.Equal(t, model.Pt(1, 2, 3), c.Origin())
	assert.Len(t, c.Vertices(), 36*3)
	for _, f := range Faces {
		assert.Equal(t, model.Pink, c.Settings().Color(f))
	}
}

func TestRotationNoop(t *testing.T) {
	r := NewRectangle(model.Pt(0, 0, 0), 1, 1, model.Red)
	assert.Nil(t, r.CalculateRotation())
	assert.Nil(t, r.CalculateOffset())

	proj := matrix.Projection3D(100, 100, 200)
	assert.Equal(t, proj, r.Transform(proj))
}

func TestFullTurnReturnsToIdentity(t *testing.T) {
	turn := matrix.DegreeToRadian(360)
	setters := map[string]func(*Shape){
		"x": func(s *Shape) { s.SetRotationX(turn) },
		"y": func(s *Shape) { s.SetRotationY(turn) },
		"z": func(s *Shape) { s.SetRotationZ(turn) },
	}
	for axis, set := range setters {
		c := NewCube(model.Pt(0, 0, 0), 1, CuboidSettings{})
		set(&c.Shape)
		rot := c.CalculateRotation()
		require.NotNil(t, rot, axis)
		assert.True(t, matrix.ApproxEqual(rot, matrix.Identity(4), tol), "axis %s: %v", axis, rot)
	}
}

func TestTransformOrder(t *testing.T) {
	r := NewRectangle(model.Pt(100, 50, 0), 10, 10, model.Red)
	r.SetRotationZ(matrix.DegreeToRadian(90))
	proj := matrix.Projection3D(200, 100, 400)

	// local (10, 0) rotates onto (0, 10), then offsets to (100, 60), then projects
	got := matrix.Apply(r.Transform(proj), 10, 0, 0)
	want := matrix.Apply(proj, 100, 60, 0)
	assert.InDelta(t, want[0], got[0], tol)
	assert.InDelta(t, want[1], got[1], tol)
	assert.InDelta(t, want[2], got[2], tol)
}

func TestPointDefaults(t *testing.T) {
	p := NewPoint(model.Pt(3, 4, 0), PointSettings{})
	assert.Equal(t, DefaultPointSize, p.Settings().Size)
	assert.Equal(t, model.Black, p.Settings().Color)

	p = NewPoint(model.Pt(3, 4, 0), PointSettings{Size: 9, Color: model.Teal})
	assert.Equal(t, float32(9), p.Settings().Size)
	assert.Equal(t, model.Teal, p.Settings().Color)
}

func TestSpin(t *testing.T) {
	c := NewCube(model.Pt(0, 0, 0), 1, CuboidSettings{})
	s := Spin(c, 0.1, 0.2, 0.3)
	require.NoError(t, s.Update())
	require.NoError(t, s.Update())
	x, y, z := c.Rotation()
	assert.InDelta(t, 0.2, x, tol)
	assert.InDelta(t, 0.4, y, tol)
	assert.InDelta(t, 0.6, z, tol)
}

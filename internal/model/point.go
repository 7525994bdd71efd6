package model

// Point is an (x, y, z) position in pixel space: origin top-left, y down, z into the screen.
// It is a value type; copies never alias, so a Point held by a shape cannot change under it.
type Point struct {
	X, Y, Z float32
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float32) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns p offset by (dx, dy, dz).
func (p Point) Add(dx, dy, dz float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Sub returns p re-based onto origin.
func (p Point) Sub(origin Point) Point {
	return Point{X: p.X - origin.X, Y: p.Y - origin.Y, Z: p.Z - origin.Z}
}

// Coordinate returns x, y, z in buffer order.
func (p Point) Coordinate() [3]float32 {
	return [3]float32{p.X, p.Y, p.Z}
}

// Min returns the component-wise minimum of pts. Min of nothing is the zero point.
func Min(pts ...Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	m := pts[0]
	for _, p := range pts[1:] {
		m.X = min(m.X, p.X)
		m.Y = min(m.Y, p.Y)
		m.Z = min(m.Z, p.Z)
	}
	return m
}

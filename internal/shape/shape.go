// Package shape holds the renderable primitives: Point, Rectangle, Triangle,
// Cuboid and Cube. Each owns its vertex layout and coloring and draws itself
// through a gl.Context; the scheduler only calls Render and Update.
package shape

import (
	"lifeboat/internal/gl"
	"lifeboat/internal/matrix"
	"lifeboat/internal/model"
)

// Renderable is anything the scheduler can draw once and update once per frame.
type Renderable interface {
	// Render issues exactly one draw call. It returns an error (and draws nothing)
	// when the context is missing or no program can be built.
	Render(ctx gl.Context) error
	// Update advances the shape's own state between frames. It must not block.
	Update() error
}

// Transformer is implemented by shapes that carry rotation and a local origin.
// A nil matrix means the transform is a no-op.
type Transformer interface {
	CalculateRotation() matrix.Matrix
	CalculateOffset() matrix.Matrix
}

// Rotatable is a Renderable whose angles can be advanced, e.g. by Spin.
type Rotatable interface {
	Renderable
	Rotate(dx, dy, dz float32)
}

// Shape is the state shared by the polygon variants: three rotation angles in
// radians and the local origin (the shape's minimum corner). Vertices are
// re-based onto the origin before upload so rotation pivots about the shape.
// Shape is embedded, never drawn on its own; it has no Render method.
type Shape struct {
	rotX, rotY, rotZ float32
	origin           model.Point
}

// SetRotationX sets the rotation about the X axis in radians.
func (s *Shape) SetRotationX(rad float32) { s.rotX = rad }

// SetRotationY sets the rotation about the Y axis in radians.
func (s *Shape) SetRotationY(rad float32) { s.rotY = rad }

// SetRotationZ sets the rotation about the Z axis in radians.
func (s *Shape) SetRotationZ(rad float32) { s.rotZ = rad }

// Rotate adds (dx, dy, dz) radians to the current angles.
func (s *Shape) Rotate(dx, dy, dz float32) {
	s.rotX += dx
	s.rotY += dy
	s.rotZ += dz
}

// Rotation returns the current angles in radians.
func (s *Shape) Rotation() (x, y, z float32) {
	return s.rotX, s.rotY, s.rotZ
}

// Origin returns the local origin.
func (s *Shape) Origin() model.Point {
	return s.origin
}

func (s *Shape) setOrigin(p model.Point) {
	s.origin = p
}

// CalculateRotation returns RotationX × RotationY × RotationZ, or nil when all angles are zero.
func (s *Shape) CalculateRotation() matrix.Matrix {
	if s.rotX == 0 && s.rotY == 0 && s.rotZ == 0 {
		return nil
	}
	return matrix.Compose(
		matrix.RotationX(s.rotX),
		matrix.RotationY(s.rotY),
		matrix.RotationZ(s.rotZ),
	)
}

// CalculateOffset returns the translation from local space to the origin, or nil at the world origin.
func (s *Shape) CalculateOffset() matrix.Matrix {
	if s.origin == (model.Point{}) {
		return nil
	}
	return matrix.Translation3D(s.origin.X, s.origin.Y, s.origin.Z)
}

// Transform composes rotation × offset × projection, skipping the no-op parts.
func (s *Shape) Transform(projection matrix.Matrix) matrix.Matrix {
	return matrix.Compose(s.CalculateRotation(), s.CalculateOffset(), projection)
}

// Update is the default per-frame hook and does nothing.
func (s *Shape) Update() error {
	return nil
}

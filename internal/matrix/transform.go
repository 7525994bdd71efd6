package matrix

import "github.com/chewxy/math32"

// RotationX returns the 4×4 rotation about the X axis by rad radians.
func RotationX(rad float32) Matrix {
	s, c := math32.Sin(rad), math32.Cos(rad)
	return Matrix{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns the 4×4 rotation about the Y axis by rad radians.
func RotationY(rad float32) Matrix {
	s, c := math32.Sin(rad), math32.Cos(rad)
	return Matrix{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns the 4×4 rotation about the Z axis by rad radians.
func RotationZ(rad float32) Matrix {
	s, c := math32.Sin(rad), math32.Cos(rad)
	return Matrix{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns the 3×3 (2D) translation by (dx, dy).
func Translation(dx, dy float32) Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		dx, dy, 1,
	}
}

// Translation3D returns the 4×4 translation by (dx, dy, dz).
func Translation3D(dx, dy, dz float32) Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		dx, dy, dz, 1,
	}
}

// Scale returns the 3×3 (2D) scale by (sx, sy).
func Scale(sx, sy float32) Matrix {
	return Matrix{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Scale3D returns the 4×4 scale by (sx, sy, sz).
func Scale3D(sx, sy, sz float32) Matrix {
	return Matrix{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Projection returns the 3×3 matrix mapping pixel space (origin top-left, y down)
// of a width×height surface to clip space (origin center, y up).
func Projection(width, height float32) Matrix {
	return Matrix{
		2 / width, 0, 0,
		0, -2 / height, 0,
		-1, 1, 1,
	}
}

// Projection3D is Projection extended with depth: z' = 2z/depth.
func Projection3D(width, height, depth float32) Matrix {
	return Matrix{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 2 / depth, 0,
		-1, 1, 0, 1,
	}
}

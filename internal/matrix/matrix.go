package matrix

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Matrix is a flat, row-major n×n matrix (n is 3 or 4 in practice).
// Points are row vectors: a transformed point is v·M, so translation lives in the last row.
// Uploaded as-is, the same slice is the column-major layout GLSL expects for M * v.
// A nil Matrix is the no-op transform; Compose skips it instead of multiplying.
type Matrix []float32

// ErrDimension is matched by every *DimensionError.
var ErrDimension = errors.New("matrix: invalid dimensions")

// DimensionError reports operands that do not form two n×n matrices of the same n.
type DimensionError struct {
	LenA, LenB int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("matrix: cannot multiply %d-element by %d-element matrix", e.LenA, e.LenB)
}

func (e *DimensionError) Unwrap() error { return ErrDimension }

// Size returns n for an n×n matrix, or 0 when len(m) is not a perfect square.
func (m Matrix) Size() int {
	return sqrtInt(len(m))
}

func sqrtInt(l int) int {
	if l <= 0 {
		return 0
	}
	n := int(math32.Sqrt(float32(l)) + 0.5)
	if n*n != l {
		return 0
	}
	return n
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := make(Matrix, n*n)
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}
	return m
}

// Multiply returns the product a×b as a new matrix; neither input is modified.
func Multiply(a, b Matrix) (Matrix, error) {
	n := sqrtInt(len(a))
	if len(a) != len(b) || n == 0 {
		return nil, &DimensionError{LenA: len(a), LenB: len(b)}
	}
	out := make(Matrix, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sum float32
			for j := 0; j < n; j++ {
				sum += a[r*n+j] * b[j*n+c]
			}
			out[r*n+c] = sum
		}
	}
	return out, nil
}

// MustMultiply is Multiply for operands whose sizes are fixed by the caller.
// It panics with the *DimensionError when they are not.
func MustMultiply(a, b Matrix) Matrix {
	m, err := Multiply(a, b)
	if err != nil {
		panic(err)
	}
	return m
}

// Compose multiplies ms left to right, skipping nil or empty entries.
// With row vectors the leftmost matrix is applied first, so
// Compose(rotation, offset, projection) rotates, then offsets, then projects.
// Returns nil when every entry is a no-op. Panics on mixed sizes.
func Compose(ms ...Matrix) Matrix {
	var out Matrix
	for _, m := range ms {
		if len(m) == 0 {
			continue
		}
		if out == nil {
			out = append(Matrix(nil), m...)
			continue
		}
		out = MustMultiply(out, m)
	}
	return out
}

// Apply transforms the point v (without its homogeneous coordinate) by m.
// len(v) must be m.Size()-1; the result has the same length.
func Apply(m Matrix, v ...float32) []float32 {
	n := m.Size()
	if n == 0 || len(v) != n-1 {
		panic(&DimensionError{LenA: len(m), LenB: len(v)})
	}
	row := append(append(make([]float32, 0, n), v...), 1)
	out := make([]float32, n)
	for c := 0; c < n; c++ {
		var sum float32
		for j := 0; j < n; j++ {
			sum += row[j] * m[j*n+c]
		}
		out[c] = sum
	}
	w := out[n-1]
	if w != 0 && w != 1 {
		for i := range out[:n-1] {
			out[i] /= w
		}
	}
	return out[:n-1]
}

// ApproxEqual reports whether a and b have the same size and every element differs by at most tol.
func ApproxEqual(a, b Matrix, tol float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// DegreeToRadian converts degrees to radians.
func DegreeToRadian(deg float32) float32 {
	return deg * math32.Pi / 180
}

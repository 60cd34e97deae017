package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Shape is the per-axis point count (nx, ny, nz) of a lattice.
type Shape [3]int

// Len returns the total number of lattice points.
func (s Shape) Len() int { return s[0] * s[1] * s[2] }

// Equal reports whether two shapes are identical.
func (s Shape) Equal(other Shape) bool { return s == other }

func (s Shape) String() string { return fmt.Sprintf("(%d, %d, %d)", s[0], s[1], s[2]) }

// Scalar is a real-valued quantity sampled on every lattice point,
// stored flat in ij order.
type Scalar struct {
	shape Shape
	data  []float64
}

// NewScalar allocates a zero-filled scalar of the given shape.
func NewScalar(shape Shape) *Scalar {
	return &Scalar{shape: shape, data: make([]float64, shape.Len())}
}

// NewScalarFrom wraps existing data, taking ownership of the slice.
// The data length must match the shape.
func NewScalarFrom(shape Shape, data []float64) (*Scalar, error) {
	if len(data) != shape.Len() {
		return nil, fmt.Errorf("grid: data length %d does not match shape %v", len(data), shape)
	}
	return &Scalar{shape: shape, data: data}, nil
}

// Shape returns the scalar's lattice shape.
func (s *Scalar) Shape() Shape { return s.shape }

// Data returns the backing slice in ij order. Callers must not resize it.
func (s *Scalar) Data() []float64 { return s.data }

// At returns the value at lattice point (i, j, k).
func (s *Scalar) At(i, j, k int) float64 {
	return s.data[(i*s.shape[1]+j)*s.shape[2]+k]
}

// Set stores v at lattice point (i, j, k).
func (s *Scalar) Set(i, j, k int, v float64) {
	s.data[(i*s.shape[1]+j)*s.shape[2]+k] = v
}

// Add accumulates other into s elementwise. Shapes must match.
func (s *Scalar) Add(other *Scalar) error {
	if !s.shape.Equal(other.shape) {
		return fmt.Errorf("grid: shape mismatch %v != %v", s.shape, other.shape)
	}
	floats.Add(s.data, other.data)
	return nil
}

// Scale multiplies every element by c.
func (s *Scalar) Scale(c float64) { floats.Scale(c, s.data) }

// IsZero reports whether every element is exactly zero.
func (s *Scalar) IsZero() bool {
	for _, v := range s.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s *Scalar) Clone() *Scalar {
	out := NewScalar(s.shape)
	copy(out.data, s.data)
	return out
}

// Equal reports exact elementwise equality of shape and data.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.shape.Equal(other.shape) && floats.Equal(s.data, other.data)
}

// EqualApprox reports elementwise equality within an absolute tolerance.
func (s *Scalar) EqualApprox(other *Scalar, tol float64) bool {
	return s.shape.Equal(other.shape) && floats.EqualApprox(s.data, other.data, tol)
}

// Vector is a 3-component vector quantity sampled on a lattice: three
// Scalars of identical shape.
type Vector struct {
	X, Y, Z *Scalar
}

// NewVector allocates a zero-filled vector field of the given shape.
func NewVector(shape Shape) *Vector {
	return &Vector{X: NewScalar(shape), Y: NewScalar(shape), Z: NewScalar(shape)}
}

// Shape returns the common lattice shape of the three components.
func (v *Vector) Shape() Shape { return v.X.shape }

// Add accumulates other into v componentwise.
func (v *Vector) Add(other *Vector) error {
	if err := v.X.Add(other.X); err != nil {
		return err
	}
	if err := v.Y.Add(other.Y); err != nil {
		return err
	}
	return v.Z.Add(other.Z)
}

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScalarFrom(t *testing.T) {
	s, err := NewScalarFrom(Shape{2, 2, 2}, make([]float64, 8))
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2, 2}, s.Shape())

	_, err = NewScalarFrom(Shape{2, 2, 2}, make([]float64, 7))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match shape")
}

func TestScalarIndexing(t *testing.T) {
	s := NewScalar(Shape{2, 3, 4})
	s.Set(1, 2, 3, 42)
	assert.Equal(t, 42.0, s.At(1, 2, 3))
	// Flat layout is (i*ny + j)*nz + k.
	assert.Equal(t, 42.0, s.Data()[(1*3+2)*4+3])
}

func TestScalarAdd(t *testing.T) {
	a, err := NewScalarFrom(Shape{1, 1, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	b, err := NewScalarFrom(Shape{1, 1, 3}, []float64{10, 20, 30})
	require.NoError(t, err)

	require.NoError(t, a.Add(b))
	assert.Equal(t, []float64{11, 22, 33}, a.Data())

	c := NewScalar(Shape{3, 1, 1})
	err = a.Add(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestScalarZeroCloneEqual(t *testing.T) {
	s := NewScalar(Shape{2, 2, 2})
	assert.True(t, s.IsZero())

	s.Set(0, 1, 0, 1e-300)
	assert.False(t, s.IsZero())

	c := s.Clone()
	assert.True(t, s.Equal(c))
	c.Set(0, 0, 0, 1)
	assert.False(t, s.Equal(c))
}

func TestVectorAdd(t *testing.T) {
	v := NewVector(Shape{2, 2, 2})
	w := NewVector(Shape{2, 2, 2})
	w.X.Set(0, 0, 0, 5)
	w.Z.Set(1, 1, 1, -2)

	require.NoError(t, v.Add(w))
	assert.Equal(t, 5.0, v.X.At(0, 0, 0))
	assert.Equal(t, -2.0, v.Z.At(1, 1, 1))

	bad := NewVector(Shape{1, 2, 2})
	assert.Error(t, v.Add(bad))
}

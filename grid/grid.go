package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Axis describes one sampled coordinate axis of a rectilinear lattice.
type Axis struct {
	Min, Max float64
	Count    int
}

// Spacing returns the distance between adjacent points on the axis.
func (a Axis) Spacing() float64 { return (a.Max - a.Min) / float64(a.Count-1) }

// Grid is a 3-axis rectilinear sampling lattice of observation points.
type Grid struct {
	axes [3]Axis
}

// New builds a Grid from three axes. Every axis needs at least two
// points and min < max.
func New(x, y, z Axis) (*Grid, error) {
	axes := [3]Axis{x, y, z}
	for i, a := range axes {
		if a.Count < 2 {
			return nil, fmt.Errorf("grid: axis %d needs at least 2 points, got %d", i, a.Count)
		}
		if !(a.Min < a.Max) {
			return nil, fmt.Errorf("grid: axis %d requires min < max, got [%g, %g]", i, a.Min, a.Max)
		}
	}
	return &Grid{axes: axes}, nil
}

// Shape returns the lattice shape (nx, ny, nz).
func (g *Grid) Shape() Shape {
	return Shape{g.axes[0].Count, g.axes[1].Count, g.axes[2].Count}
}

// Axis returns the i-th axis (0 = x, 1 = y, 2 = z).
func (g *Grid) Axis(i int) Axis { return g.axes[i] }

// Origin returns the lattice origin (min of each axis).
func (g *Grid) Origin() [3]float64 {
	return [3]float64{g.axes[0].Min, g.axes[1].Min, g.axes[2].Min}
}

// Spacing returns the per-axis point spacing (dx, dy, dz).
func (g *Grid) Spacing() [3]float64 {
	return [3]float64{g.axes[0].Spacing(), g.axes[1].Spacing(), g.axes[2].Spacing()}
}

// CoordVec returns the linearly spaced coordinate vector of axis i.
func (g *Grid) CoordVec(i int) []float64 {
	a := g.axes[i]
	return floats.Span(make([]float64, a.Count), a.Min, a.Max)
}

// Meshgrid expands the coordinate vectors into three full lattice-shaped
// scalars holding the x, y and z coordinate of every observation point
// (ij indexing).
func (g *Grid) Meshgrid() (x, y, z *Scalar) {
	shape := g.Shape()
	xs, ys, zs := g.CoordVec(0), g.CoordVec(1), g.CoordVec(2)
	x, y, z = NewScalar(shape), NewScalar(shape), NewScalar(shape)
	idx := 0
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				x.data[idx] = xs[i]
				y.data[idx] = ys[j]
				z.data[idx] = zs[k]
				idx++
			}
		}
	}
	return x, y, z
}

package testutil

import (
	"testing"

	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
	"github.com/electronsandstuff/openPMD-beamphysics/grid"
)

// CubeGrid returns an n³ sampling grid spanning ±extent on every axis.
func CubeGrid(t *testing.T, n int, extent float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(
		grid.Axis{Min: -extent, Max: extent, Count: n},
		grid.Axis{Min: -extent, Max: extent, Count: n},
		grid.Axis{Min: -extent, Max: extent, Count: n},
	)
	if err != nil {
		t.Fatalf("building cube grid: %v", err)
	}
	return g
}

// ConstScalar returns a shape-sized scalar with every element set to v.
func ConstScalar(shape grid.Shape, v float64) *grid.Scalar {
	s := grid.NewScalar(shape)
	d := s.Data()
	for i := range d {
		d[i] = v
	}
	return s
}

// MeshBuilder is a fluent helper for constructing field meshes in
// tests. Chain only the parts you need; sensible defaults are applied.
//
// Example:
//
//	m := testutil.NewMeshBuilder().Shape(2, 2, 2).Const("Bx", 1).Build(t)
type MeshBuilder struct {
	attrs      fieldmesh.Attrs
	components map[string]*grid.Scalar
}

// NewMeshBuilder creates a builder for a static rectangular 2×2×2 mesh
// with unit spacing.
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{
		attrs: fieldmesh.DefaultAttrs(
			[3]float64{0, 0, 0},
			[3]float64{1, 1, 1},
			grid.Shape{2, 2, 2},
		),
		components: map[string]*grid.Scalar{},
	}
}

// Shape sets the grid size (chainable).
func (b *MeshBuilder) Shape(nx, ny, nz int) *MeshBuilder {
	b.attrs.GridSize = grid.Shape{nx, ny, nz}
	return b
}

// Geometry sets the mesh geometry tag (chainable).
func (b *MeshBuilder) Geometry(g fieldmesh.Geometry) *MeshBuilder {
	b.attrs.GridGeometry = g
	return b
}

// Origin sets the grid origin offset (chainable).
func (b *MeshBuilder) Origin(x, y, z float64) *MeshBuilder {
	b.attrs.GridOriginOffset = [3]float64{x, y, z}
	return b
}

// Spacing sets the grid spacing (chainable).
func (b *MeshBuilder) Spacing(dx, dy, dz float64) *MeshBuilder {
	b.attrs.GridSpacing = [3]float64{dx, dy, dz}
	return b
}

// Harmonic sets the harmonic index and fundamental frequency (chainable).
func (b *MeshBuilder) Harmonic(h int, fundamental float64) *MeshBuilder {
	b.attrs.Harmonic = h
	b.attrs.FundamentalFrequency = fundamental
	return b
}

// Const adds a component filled with a constant value (chainable).
func (b *MeshBuilder) Const(key string, v float64) *MeshBuilder {
	b.components[key] = ConstScalar(b.attrs.GridSize, v)
	return b
}

// Component adds a prebuilt component array (chainable).
func (b *MeshBuilder) Component(key string, s *grid.Scalar) *MeshBuilder {
	b.components[key] = s
	return b
}

// Build constructs the mesh, failing the test on validation errors.
func (b *MeshBuilder) Build(t *testing.T) *fieldmesh.FieldMesh {
	t.Helper()
	m, err := fieldmesh.New(b.attrs, b.components)
	if err != nil {
		t.Fatalf("building test mesh: %v", err)
	}
	return m
}

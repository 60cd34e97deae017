package fieldmesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
	"github.com/electronsandstuff/openPMD-beamphysics/grid"
	"github.com/electronsandstuff/openPMD-beamphysics/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	attrs := fieldmesh.DefaultAttrs([3]float64{}, [3]float64{1, 1, 1}, grid.Shape{2, 2, 2})

	t.Run("unknown geometry", func(t *testing.T) {
		bad := attrs
		bad.GridGeometry = "spherical"
		_, err := fieldmesh.New(bad, nil)
		assert.Error(t, err)
	})

	t.Run("unknown component", func(t *testing.T) {
		_, err := fieldmesh.New(attrs, map[string]*grid.Scalar{
			"magneticField/q": grid.NewScalar(attrs.GridSize),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown component "magneticField/q"`)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := fieldmesh.New(attrs, map[string]*grid.Scalar{
			"Bx": grid.NewScalar(grid.Shape{3, 3, 3}),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match grid size")
	})

	t.Run("nil component", func(t *testing.T) {
		_, err := fieldmesh.New(attrs, map[string]*grid.Scalar{"Bx": nil})
		assert.Error(t, err)
	})

	t.Run("zero spacing on extended axis", func(t *testing.T) {
		bad := attrs
		bad.GridSpacing = [3]float64{0, 0, 0}
		_, err := fieldmesh.New(bad, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid grid spacing")
	})

	t.Run("negative spacing", func(t *testing.T) {
		bad := attrs
		bad.GridSpacing = [3]float64{1, -0.5, 1}
		_, err := fieldmesh.New(bad, nil)
		assert.Error(t, err)
	})

	t.Run("zero size axis", func(t *testing.T) {
		bad := attrs
		bad.GridSize = grid.Shape{2, 0, 2}
		_, err := fieldmesh.New(bad, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid grid size")
	})

	t.Run("singleton axis permits zero spacing", func(t *testing.T) {
		ok := attrs
		ok.GridGeometry = fieldmesh.GeometryCylindrical
		ok.GridSize = grid.Shape{3, 1, 2}
		ok.GridSpacing = [3]float64{0.01, 0, 0.5}
		m, err := fieldmesh.New(ok, map[string]*grid.Scalar{
			"Bz": grid.NewScalar(ok.GridSize),
		})
		require.NoError(t, err)

		// Coordinate accessors must stay usable on axisymmetric meshes.
		thetas, err := m.CoordVec("theta")
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, thetas)
		_, _, z := m.Meshgrid()
		assert.Equal(t, 0.5, z.At(2, 0, 1))
	})

	t.Run("aliases stored under canonical names", func(t *testing.T) {
		m, err := fieldmesh.New(attrs, map[string]*grid.Scalar{
			"Bx": grid.NewScalar(attrs.GridSize),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"magneticField/x"}, m.ComponentKeys())
	})
}

func TestComponentLookup(t *testing.T) {
	m := testutil.NewMeshBuilder().
		Const("Bx", 1).Const("By", 2).Const("Bz", 3).
		Build(t)

	canonical, err := m.Component("magneticField/y")
	require.NoError(t, err)
	aliased, err := m.Component("By")
	require.NoError(t, err)
	assert.Same(t, canonical, aliased)
	assert.Equal(t, 2.0, aliased.At(0, 0, 0))

	_, err = m.Component("Bq")
	assert.ErrorIs(t, err, fieldmesh.ErrKeyNotAvailable)

	// Known alias but absent component.
	_, err = m.Component("Er")
	assert.ErrorIs(t, err, fieldmesh.ErrKeyNotAvailable)
}

func TestGridDerivedAccessors(t *testing.T) {
	m := testutil.NewMeshBuilder().
		Shape(3, 5, 2).
		Origin(-1, 0, 10).
		Spacing(0.5, 0.25, 2).
		Build(t)

	assert.Equal(t, [3]float64{-1, 0, 10}, m.Min())
	assert.Equal(t, [3]float64{0.5, 0.25, 2}, m.Delta())
	assert.Equal(t, [3]float64{0, 1, 12}, m.Max())

	i, err := m.AxisIndex("y")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = m.AxisIndex("r")
	assert.Error(t, err)

	xs, err := m.CoordVec("x")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, -0.5, 0}, xs, 1e-15)

	vecs := m.CoordVecs()
	assert.Len(t, vecs[1], 5)
	assert.InDeltaSlice(t, []float64{10, 12}, vecs[2], 1e-15)

	x, y, z := m.Meshgrid()
	assert.True(t, x.Shape().Equal(grid.Shape{3, 5, 2}))
	assert.Equal(t, -1.0, x.At(0, 4, 1))
	assert.Equal(t, 1.0, y.At(0, 4, 1))
	assert.Equal(t, 12.0, z.At(0, 4, 1))
}

func TestStaticAndHarmonicPredicates(t *testing.T) {
	static := testutil.NewMeshBuilder().Const("Bx", 1).Build(t)
	assert.True(t, static.IsStatic())
	assert.Equal(t, 0.0, static.Frequency())

	rf := testutil.NewMeshBuilder().
		Harmonic(2, 1.3e9).
		Const("Ez", 1).
		Build(t)
	assert.False(t, rf.IsStatic())
	assert.Equal(t, 2.6e9, rf.Frequency())
}

func TestPurityPredicates(t *testing.T) {
	magnetic := testutil.NewMeshBuilder().
		Const("Bx", 1).Const("By", 2).
		Const("Ez", 0). // zero components do not break purity
		Build(t)
	assert.True(t, magnetic.IsPureMagnetic())
	assert.False(t, magnetic.IsPureElectric())

	mixed := testutil.NewMeshBuilder().Const("Bx", 1).Const("Ez", 1).Build(t)
	assert.False(t, mixed.IsPureMagnetic())
	assert.False(t, mixed.IsPureElectric())

	electric := testutil.NewMeshBuilder().Const("Er", 1).Const("Ez", 1).Build(t)
	assert.True(t, electric.IsPureElectric())
}

func TestFieldMagnitude(t *testing.T) {
	m := testutil.NewMeshBuilder().
		Geometry(fieldmesh.GeometryCylindrical).
		Const("Br", 3).Const("Bz", 4).
		Build(t)

	b, err := m.B()
	require.NoError(t, err)
	assert.Equal(t, 5.0, b.At(0, 0, 0))

	_, err = m.E()
	assert.ErrorIs(t, err, fieldmesh.ErrKeyNotAvailable)

	rect := testutil.NewMeshBuilder().Const("Bx", 1).Build(t)
	_, err = rect.B()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cylindrical")
}

func TestReplaceComponent(t *testing.T) {
	m := testutil.NewMeshBuilder().Const("Bx", 1).Build(t)

	repl := testutil.ConstScalar(grid.Shape{2, 2, 2}, 7)
	require.NoError(t, m.ReplaceComponent("Bx", repl))
	got, err := m.Component("Bx")
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.At(1, 1, 1))

	err = m.ReplaceComponent("Bx", testutil.ConstScalar(grid.Shape{3, 3, 3}, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape")

	err = m.ReplaceComponent("By", repl) // valid name, nothing stored
	assert.ErrorIs(t, err, fieldmesh.ErrKeyNotAvailable)

	err = m.ReplaceComponent("Bq", repl)
	assert.ErrorIs(t, err, fieldmesh.ErrKeyNotAvailable)
}

func TestEqual(t *testing.T) {
	a := testutil.NewMeshBuilder().Const("Bx", 1).Const("By", 2).Build(t)
	b := testutil.NewMeshBuilder().Const("Bx", 1).Const("By", 2).Build(t)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	c := testutil.NewMeshBuilder().Const("Bx", 1).Const("By", 2.5).Build(t)
	assert.False(t, a.Equal(c))

	d := testutil.NewMeshBuilder().Origin(1, 0, 0).Const("Bx", 1).Const("By", 2).Build(t)
	assert.False(t, a.Equal(d))

	e := testutil.NewMeshBuilder().Const("Bx", 1).Build(t)
	assert.False(t, a.Equal(e))
}

func TestStringDescribesMesh(t *testing.T) {
	m := testutil.NewMeshBuilder().Shape(4, 4, 8).Const("Bz", 1).Build(t)
	s := m.String()
	assert.Contains(t, s, "rectangular")
	assert.Contains(t, s, "4")
}

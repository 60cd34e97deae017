package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronsandstuff/openPMD-beamphysics/export"
	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
	"github.com/electronsandstuff/openPMD-beamphysics/internal/testutil"
)

func TestWriteGPT(t *testing.T) {
	mesh := testutil.NewMeshBuilder().
		Shape(2, 2, 2).
		Origin(-1, 0, 10).
		Spacing(2, 1, 0.5).
		Const("Bx", 0.5).Const("By", -1).Const("Bz", 0).
		Build(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteGPT(&buf, mesh))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+8)
	assert.Equal(t, "x y z Bx By Bz", lines[0])

	// First row is the (0,0,0) corner in lattice order.
	first := strings.Fields(lines[1])
	require.Len(t, first, 6)
	assert.Equal(t, "-1.000000000000e+00", first[0])
	assert.Equal(t, "1.000000000000e+01", first[2])
	assert.Equal(t, "5.000000000000e-01", first[3])
	assert.Equal(t, "-1.000000000000e+00", first[4])

	// The z coordinate varies fastest.
	second := strings.Fields(lines[2])
	assert.Equal(t, first[0], second[0])
	assert.Equal(t, first[1], second[1])
	assert.Equal(t, "1.050000000000e+01", second[2])
}

func TestWriteGPTRejectsCylindrical(t *testing.T) {
	mesh := testutil.NewMeshBuilder().
		Geometry(fieldmesh.GeometryCylindrical).
		Const("Br", 1).Const("Bz", 1).
		Build(t)

	err := export.WriteGPT(&bytes.Buffer{}, mesh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rectangular geometry")
}

func TestWriteGPTRejectsHarmonic(t *testing.T) {
	mesh := testutil.NewMeshBuilder().
		Harmonic(1, 1.3e9).
		Const("Bx", 1).Const("By", 1).Const("Bz", 1).
		Build(t)

	err := export.WriteGPT(&bytes.Buffer{}, mesh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "static")
}

func TestWriteGPTRequiresAllComponents(t *testing.T) {
	mesh := testutil.NewMeshBuilder().Const("Bx", 1).Build(t)
	err := export.WriteGPT(&bytes.Buffer{}, mesh)
	assert.ErrorIs(t, err, fieldmesh.ErrKeyNotAvailable)
}

func TestWriteSuperfishPoisson(t *testing.T) {
	mesh := testutil.NewMeshBuilder().
		Geometry(fieldmesh.GeometryCylindrical).
		Shape(3, 1, 5).
		Origin(0, 0, -0.02).
		Spacing(0.005, 0, 0.01).
		Const("Br", 0.25).Const("Bz", 1.5).
		Build(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteSuperfish(&buf, mesh))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Two header lines then one row per (r, z) pair.
	require.Len(t, lines, 2+3*5)
	assert.Equal(t, "-2 2 4", lines[0]) // zmin zmax nz-1 in cm
	assert.Equal(t, "0 1 2", lines[1])  // rmin rmax nr-1 in cm

	row := strings.Fields(lines[2])
	require.Len(t, row, 2)
	assert.Equal(t, "2.500000000000e-01", row[0])
	assert.Equal(t, "1.500000000000e+00", row[1])
}

func TestWriteSuperfishFishVariant(t *testing.T) {
	mesh := testutil.NewMeshBuilder().
		Geometry(fieldmesh.GeometryCylindrical).
		Shape(2, 1, 2).
		Spacing(0.01, 0, 0.01).
		Harmonic(2, 650e6).
		Const("Er", 1e6).Const("Ez", -2e6).
		Build(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteSuperfish(&buf, mesh))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3+2*2)
	assert.Equal(t, "1.3e+09", lines[2]) // harmonic · fundamental
}

func TestWriteSuperfishRejectsRectangular(t *testing.T) {
	mesh := testutil.NewMeshBuilder().Const("Bx", 1).Build(t)
	err := export.WriteSuperfish(&bytes.Buffer{}, mesh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cylindrical")
}

func TestWriteSuperfishRejectsThickTheta(t *testing.T) {
	mesh := testutil.NewMeshBuilder().
		Geometry(fieldmesh.GeometryCylindrical).
		Shape(2, 3, 2).
		Const("Br", 1).Const("Bz", 1).
		Build(t)

	err := export.WriteSuperfish(&bytes.Buffer{}, mesh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ntheta == 1")
}

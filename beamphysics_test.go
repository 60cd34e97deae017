package beamphysics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	beamphysics "github.com/electronsandstuff/openPMD-beamphysics"
	"github.com/electronsandstuff/openPMD-beamphysics/export"
	"github.com/electronsandstuff/openPMD-beamphysics/pmdstore"
)

func TestFacadeEndToEnd(t *testing.T) {
	bounds := beamphysics.AutoBounds()
	bounds.NX, bounds.NY, bounds.NZ = 5, 5, 5

	mesh, err := beamphysics.DipoleCorrectorMesh("rectangular",
		beamphysics.Params{A: 0.2, B: 0.4, H: 0.1, Current: 2}, bounds)
	require.NoError(t, err)
	assert.True(t, mesh.IsStatic())
	assert.True(t, mesh.IsPureMagnetic())

	// Archive round trip.
	var archive bytes.Buffer
	require.NoError(t, pmdstore.Write(&archive, mesh))
	loaded, err := pmdstore.Read(&archive)
	require.NoError(t, err)
	assert.True(t, mesh.Equal(loaded))

	// Tracking-code export.
	var gpt bytes.Buffer
	require.NoError(t, export.WriteGPT(&gpt, loaded))
	assert.True(t, strings.HasPrefix(gpt.String(), "x y z Bx By Bz\n"))
}

func TestFacadeStraightWireNeedsBounds(t *testing.T) {
	_, err := beamphysics.StraightWireMesh(r3.Vec{Z: -1}, r3.Vec{Z: 1}, 1, beamphysics.AutoBounds())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required parameters")
}

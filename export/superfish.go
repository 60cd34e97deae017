package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
	"github.com/electronsandstuff/openPMD-beamphysics/grid"
)

// WriteSuperfish writes a cylindrical mesh in a Superfish-style T7
// layout. Static meshes use the Poisson variant (Br, Bz rows); harmonic
// meshes use the Fish variant (Er, Ez rows with the oscillation
// frequency in the header). The choice follows the mesh's IsStatic
// classification.
func WriteSuperfish(w io.Writer, m *fieldmesh.FieldMesh) error {
	if m.Geometry() != fieldmesh.GeometryCylindrical {
		return fmt.Errorf("export: T7 files require cylindrical geometry, mesh is %q",
			string(m.Geometry()))
	}
	if m.Shape()[1] != 1 {
		return fmt.Errorf("export: T7 files require an axisymmetric mesh (ntheta == 1), shape is %v",
			m.Shape())
	}
	if m.IsStatic() {
		return writePoissonT7(w, m)
	}
	return writeFishT7(w, m)
}

func t7Header(bw *bufio.Writer, m *fieldmesh.FieldMesh) error {
	// T7 grids are 2D in r-z: bounds in cm, interval counts per axis.
	const mToCm = 100.0
	min, max, shape := m.Min(), m.Max(), m.Shape()
	if _, err := fmt.Fprintf(bw, "%g %g %d\n", min[2]*mToCm, max[2]*mToCm, shape[2]-1); err != nil {
		return err
	}
	_, err := fmt.Fprintf(bw, "%g %g %d\n", min[0]*mToCm, max[0]*mToCm, shape[0]-1)
	return err
}

func t7Rows(bw *bufio.Writer, m *fieldmesh.FieldMesh, radial, axial *grid.Scalar) error {
	shape := m.Shape()
	for i := 0; i < shape[0]; i++ {
		for k := 0; k < shape[2]; k++ {
			if _, err := fmt.Fprintf(bw, "%20.12e %20.12e\n", radial.At(i, 0, k), axial.At(i, 0, k)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// writePoissonT7 renders the static-field variant with the magnetic
// components.
func writePoissonT7(w io.Writer, m *fieldmesh.FieldMesh) error {
	br, err := m.Component("Br")
	if err != nil {
		return err
	}
	bz, err := m.Component("Bz")
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := t7Header(bw, m); err != nil {
		return err
	}
	return t7Rows(bw, m, br, bz)
}

// writeFishT7 renders the harmonic-field variant with the electric
// components and the oscillation frequency.
func writeFishT7(w io.Writer, m *fieldmesh.FieldMesh) error {
	er, err := m.Component("Er")
	if err != nil {
		return err
	}
	ez, err := m.Component("Ez")
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := t7Header(bw, m); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%g\n", m.Frequency()); err != nil {
		return err
	}
	return t7Rows(bw, m, er, ez)
}

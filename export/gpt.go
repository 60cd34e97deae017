package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
)

// WriteGPT writes a rectangular static magnetic mesh as a GPT-style
// ASCII field table: a column header followed by one row per lattice
// point with the point coordinates and field components in SI units.
func WriteGPT(w io.Writer, m *fieldmesh.FieldMesh) error {
	if m.Geometry() != fieldmesh.GeometryRectangular {
		return fmt.Errorf("export: GPT field tables require rectangular geometry, mesh is %q",
			string(m.Geometry()))
	}
	if !m.IsStatic() {
		return fmt.Errorf("export: GPT field tables require a static mesh (harmonic %d)",
			m.Attrs().Harmonic)
	}
	bx, err := m.Component("Bx")
	if err != nil {
		return err
	}
	by, err := m.Component("By")
	if err != nil {
		return err
	}
	bz, err := m.Component("Bz")
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "x y z Bx By Bz"); err != nil {
		return err
	}
	x, y, z := m.Meshgrid()
	xd, yd, zd := x.Data(), y.Data(), z.Data()
	bxd, byd, bzd := bx.Data(), by.Data(), bz.Data()
	for i := range xd {
		_, err := fmt.Fprintf(bw, "%20.12e %20.12e %20.12e %20.12e %20.12e %20.12e\n",
			xd[i], yd[i], zd[i], bxd[i], byd[i], bzd[i])
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

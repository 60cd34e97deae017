package biotsavart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/electronsandstuff/openPMD-beamphysics/geometry"
	"github.com/electronsandstuff/openPMD-beamphysics/grid"
	"github.com/electronsandstuff/openPMD-beamphysics/units"
)

func checkPointCloud(x, y, z *grid.Scalar) error {
	if !x.Shape().Equal(y.Shape()) || !x.Shape().Equal(z.Shape()) {
		return fmt.Errorf("biotsavart: point cloud shapes differ: %v, %v, %v",
			x.Shape(), y.Shape(), z.Shape())
	}
	return nil
}

// FieldOfSegment computes the magnetic field of a single straight
// filament at every observation point (x, y, z) via the closed-form
// Biot–Savart solution.
//
// For each point P a local frame is built: ê1 along the filament, ê2
// from the foot of the perpendicular on the filament's line to P
// (radial, with perpendicular distance R), and ê3 = ê1 × ê2 (field
// direction). With x1, x2 the signed projections of the endpoints onto
// ê1 relative to the foot,
//
//	B = (μ0·I / 4πR) · (x2/√(x2²+R²) − x1/√(x1²+R²)) · ê3
//
// A degenerate segment (P1 == P2) fails with a GeometryError before any
// computation.
func FieldOfSegment(x, y, z *grid.Scalar, seg geometry.Segment) (*grid.Vector, error) {
	if err := checkPointCloud(x, y, z); err != nil {
		return nil, err
	}
	line := r3.Sub(seg.P2, seg.P1)
	if r3.Norm(line) == 0 {
		return nil, geometry.NewGeometryError("segment must be specified by 2 distinct points")
	}
	e1 := r3.Unit(line)
	prefactor := units.Mu0 * seg.Current / (4 * math.Pi)

	out := grid.NewVector(x.Shape())
	xd, yd, zd := x.Data(), y.Data(), z.Data()
	bx, by, bz := out.X.Data(), out.Y.Data(), out.Z.Data()
	for n := range xd {
		p := r3.Vec{X: xd[n], Y: yd[n], Z: zd[n]}

		// Foot of the perpendicular from p onto the filament's line.
		t := r3.Dot(r3.Sub(p, seg.P1), e1)
		foot := r3.Add(seg.P1, r3.Scale(t, e1))

		radial := r3.Sub(p, foot)
		rdist := r3.Norm(radial)
		e2 := r3.Scale(1/rdist, radial) // Inf/NaN on-wire, by the filament model
		e3 := r3.Cross(e1, e2)

		x1 := r3.Dot(r3.Sub(seg.P1, foot), e1)
		x2 := r3.Dot(r3.Sub(seg.P2, foot), e1)

		b0 := prefactor / rdist *
			(x2/math.Sqrt(x2*x2+rdist*rdist) - x1/math.Sqrt(x1*x1+rdist*rdist))

		bx[n] = b0 * e3.X
		by[n] = b0 * e3.Y
		bz[n] = b0 * e3.Z
	}
	return out, nil
}

package biotsavart

import (
	"github.com/electronsandstuff/openPMD-beamphysics/geometry"
	"github.com/electronsandstuff/openPMD-beamphysics/grid"
)

// FieldOfRectangularCoil computes the field of a closed rectangular coil
// of width a (x axis) and depth b (z axis) in the plane y = y0.
func FieldOfRectangularCoil(x, y, z *grid.Scalar, a, b, y0, current float64, optFns ...func(o *Options)) (*grid.Vector, error) {
	segs, err := geometry.RectangleSegments(a, b, y0, current)
	if err != nil {
		return nil, err
	}
	return Superpose(x, y, z, segs, optFns...)
}

// FieldOfRectangularCorrector computes the field of a rectangular dipole
// corrector: two coils of identical winding at y = −h/2 and y = +h/2.
func FieldOfRectangularCorrector(x, y, z *grid.Scalar, a, b, h, current float64, optFns ...func(o *Options)) (*grid.Vector, error) {
	lower, err := geometry.RectangleSegments(a, b, -h/2, current)
	if err != nil {
		return nil, err
	}
	upper, err := geometry.RectangleSegments(a, b, +h/2, current)
	if err != nil {
		return nil, err
	}
	return Superpose(x, y, z, append(lower, upper...), optFns...)
}

// FieldOfArc computes the field of a circular arc of radius r in the
// plane z = h spanning the opening angle theta, discretized into npts−1
// straight filaments.
func FieldOfArc(x, y, z *grid.Scalar, h, r, theta float64, npts int, current float64, optFns ...func(o *Options)) (*grid.Vector, error) {
	arc := geometry.Arc{H: h, R: r, Theta: theta, NPts: npts}
	segs, err := arc.Segments(current)
	if err != nil {
		return nil, err
	}
	return Superpose(x, y, z, segs, optFns...)
}

// FieldOfSaddleCoil computes the field of a single saddle coil: arcs at
// ∓l/2 sweeping ±theta plus the two straight axial return legs.
func FieldOfSaddleCoil(x, y, z *grid.Scalar, l, r, theta, current float64, npts int, optFns ...func(o *Options)) (*grid.Vector, error) {
	coil := geometry.SaddleCoil{L: l, R: r, Theta: theta, Current: current, NPts: npts}
	segs, err := coil.Segments()
	if err != nil {
		return nil, err
	}
	return Superpose(x, y, z, segs, optFns...)
}

// FieldOfSaddleCorrector computes the field of a saddle dipole
// corrector: the coil plus its mirror with l and r negated.
func FieldOfSaddleCorrector(x, y, z *grid.Scalar, l, r, theta, current float64, npts int, optFns ...func(o *Options)) (*grid.Vector, error) {
	dipole := geometry.SaddleDipole{L: l, R: r, Theta: theta, Current: current, NPts: npts}
	segs, err := dipole.Segments()
	if err != nil {
		return nil, err
	}
	return Superpose(x, y, z, segs, optFns...)
}

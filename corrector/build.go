package corrector

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/electronsandstuff/openPMD-beamphysics/biotsavart"
	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
	"github.com/electronsandstuff/openPMD-beamphysics/grid"
	"github.com/electronsandstuff/openPMD-beamphysics/logging"
)

// Options configures a mesh build.
type Options struct {
	// Logger receives build progress records. Defaults to a no-op logger.
	Logger logging.Logger

	// Workers bounds the segment-level parallelism of the field
	// superposition. Zero selects runtime.NumCPU().
	Workers int
}

// BuildFieldMesh decomposes the magnet, superposes its Biot–Savart field
// on the sampling grid described by bounds, and assembles a static
// magnetic FieldMesh. Limits left unset in bounds fall back to the
// magnet's characteristic box; magnets without one (a bare wire) fail
// with a ConfigurationError naming the unset limits.
func BuildFieldMesh(m Magnet, bounds Bounds, optFns ...func(o *Options)) (*fieldmesh.FieldMesh, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	resolved := bounds.merged(m.defaultBounds())
	if missing := resolved.missing(); len(missing) > 0 {
		return nil, &ConfigurationError{Mode: m.Mode(), Missing: missing}
	}
	g, err := resolved.samplingGrid()
	if err != nil {
		return nil, &ConfigurationError{Mode: m.Mode(), Message: err.Error()}
	}

	segs, err := m.Segments()
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("building corrector field mesh",
		"mode", m.Mode(), "segments", len(segs), "shape", g.Shape().String())

	x, y, z := g.Meshgrid()
	field, err := biotsavart.Superpose(x, y, z, segs, func(o *biotsavart.Options) {
		o.Workers = opts.Workers
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, err
	}
	return assembleMagneticMesh(g, field)
}

// assembleMagneticMesh wraps sampled field arrays and grid geometry in a
// FieldMesh with the canonical static-field attributes.
func assembleMagneticMesh(g *grid.Grid, field *grid.Vector) (*fieldmesh.FieldMesh, error) {
	attrs := fieldmesh.DefaultAttrs(g.Origin(), g.Spacing(), g.Shape())
	return fieldmesh.New(attrs, map[string]*grid.Scalar{
		"magneticField/x": field.X,
		"magneticField/y": field.Y,
		"magneticField/z": field.Z,
	})
}

// FieldOfStraightWire samples the field of a single filament from p1 to
// p2 over the grid, returning the raw component arrays.
func FieldOfStraightWire(g *grid.Grid, p1, p2 r3.Vec, current float64, optFns ...func(o *biotsavart.Options)) (*grid.Vector, error) {
	w := StraightWire{P1: p1, P2: p2, Current: current}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	segs, err := w.Segments()
	if err != nil {
		return nil, err
	}
	x, y, z := g.Meshgrid()
	return biotsavart.Superpose(x, y, z, segs, optFns...)
}

// FieldOfRectangularDipole samples the field of a rectangular dipole
// corrector over the grid, returning the raw component arrays.
func FieldOfRectangularDipole(g *grid.Grid, a, b, h, current float64, optFns ...func(o *biotsavart.Options)) (*grid.Vector, error) {
	c := RectangularCorrector{A: a, B: b, H: h, Current: current}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	x, y, z := g.Meshgrid()
	return biotsavart.FieldOfRectangularCorrector(x, y, z, a, b, h, current, optFns...)
}

// FieldOfSaddleDipole samples the field of a saddle dipole corrector
// over the grid, returning the raw component arrays.
func FieldOfSaddleDipole(g *grid.Grid, r, l, theta, current float64, npts int, optFns ...func(o *biotsavart.Options)) (*grid.Vector, error) {
	c := SaddleCorrector{R: r, L: l, Theta: theta, Current: current, NPts: npts}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	x, y, z := g.Meshgrid()
	return biotsavart.FieldOfSaddleCorrector(x, y, z, l, r, theta, current, c.npts(), optFns...)
}

// BuildDipoleCorrectorMesh is the string-keyed convenience over the
// typed variants, mirroring the classic mode dispatch: mode selects the
// design, params carries the union of shape parameters, and only the
// fields of the selected design are consulted. Unknown modes fail with a
// ConfigurationError.
func BuildDipoleCorrectorMesh(mode string, params Params, bounds Bounds, optFns ...func(o *Options)) (*fieldmesh.FieldMesh, error) {
	switch mode {
	case "rectangular":
		m := RectangularCorrector{A: params.A, B: params.B, H: params.H, Current: params.Current}
		return BuildFieldMesh(m, bounds, optFns...)
	case "saddle":
		m := SaddleCorrector{R: params.R, L: params.L, Theta: params.Theta, Current: params.Current, NPts: params.NPts}
		return BuildFieldMesh(m, bounds, optFns...)
	default:
		return nil, &ConfigurationError{
			Mode:    mode,
			Message: fmt.Sprintf("invalid mode %q: choose either \"rectangular\" or \"saddle\"", mode),
		}
	}
}

// Params is the union of shape parameters accepted by the mode dispatch.
type Params struct {
	// Rectangular design.
	A, B, H float64

	// Saddle design.
	R, L, Theta float64
	NPts        int

	Current float64
}

// BuildStraightWireMesh builds a FieldMesh for a bare filament. All six
// bounds must be supplied: a wire has no characteristic box of its own.
func BuildStraightWireMesh(p1, p2 r3.Vec, current float64, bounds Bounds, optFns ...func(o *Options)) (*fieldmesh.FieldMesh, error) {
	return BuildFieldMesh(StraightWire{P1: p1, P2: p2, Current: current}, bounds, optFns...)
}

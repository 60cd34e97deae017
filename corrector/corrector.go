package corrector

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/electronsandstuff/openPMD-beamphysics/geometry"
)

// ConfigurationError reports missing or invalid magnet/grid parameters
// or an unrecognized mode tag.
type ConfigurationError struct {
	Mode    string
	Missing []string
	Message string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("configuration error (%s): missing required parameters: %s",
			e.Mode, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Mode, e.Message)
}

// defaultNPts is the arc discretization used when a saddle magnet does
// not specify one.
const defaultNPts = 20

// Magnet is the tagged variant over supported corrector designs. Each
// variant carries only its own required fields.
type Magnet interface {
	// Mode returns the design tag ("rectangular", "saddle", "wire").
	Mode() string

	// Validate reports every missing required parameter by name.
	Validate() error

	// Segments decomposes the magnet into current filaments.
	Segments() ([]geometry.Segment, error)

	// defaultBounds derives the characteristic sampling box from the
	// magnet's own dimensions. Axes without a natural default are NaN.
	defaultBounds() Bounds
}

// RectangularCorrector is a rectangular air-core dipole corrector: two
// coplanar-offset rectangular coils of width A (x axis) and depth B
// (z axis), vertically separated by H, with identical winding.
type RectangularCorrector struct {
	A, B, H float64
	Current float64
}

// Mode returns "rectangular".
func (RectangularCorrector) Mode() string { return "rectangular" }

// Validate requires a, b and h to be positive.
func (c RectangularCorrector) Validate() error {
	var missing []string
	if c.A <= 0 {
		missing = append(missing, "a")
	}
	if c.B <= 0 {
		missing = append(missing, "b")
	}
	if c.H <= 0 {
		missing = append(missing, "h")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Mode: c.Mode(), Missing: missing}
	}
	return nil
}

// Segments emits the eight filaments of the two coils at y = ∓H/2.
func (c RectangularCorrector) Segments() ([]geometry.Segment, error) {
	lower, err := geometry.RectangleSegments(c.A, c.B, -c.H/2, c.Current)
	if err != nil {
		return nil, err
	}
	upper, err := geometry.RectangleSegments(c.A, c.B, +c.H/2, c.Current)
	if err != nil {
		return nil, err
	}
	return append(lower, upper...), nil
}

func (c RectangularCorrector) defaultBounds() Bounds {
	const f = 0.99 // stay just inside the conductors
	b := AutoBounds()
	b.XMin, b.XMax = -f*c.A, +f*c.A
	b.YMin, b.YMax = -f*c.H/2, +f*c.H/2
	b.ZMin, b.ZMax = -5*c.B, +5*c.B
	return b
}

// SaddleCorrector is a saddle dipole corrector: a saddle coil of radius
// R, axial length L and opening angle Theta plus its mirrored pole.
type SaddleCorrector struct {
	R, L, Theta float64
	Current     float64
	NPts        int
}

// Mode returns "saddle".
func (SaddleCorrector) Mode() string { return "saddle" }

// Validate requires R, L and theta to be set.
func (c SaddleCorrector) Validate() error {
	var missing []string
	if c.R == 0 {
		missing = append(missing, "R")
	}
	if c.L == 0 {
		missing = append(missing, "L")
	}
	if c.Theta == 0 {
		missing = append(missing, "theta")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Mode: c.Mode(), Missing: missing}
	}
	return nil
}

func (c SaddleCorrector) npts() int {
	if c.NPts < 2 {
		return defaultNPts
	}
	return c.NPts
}

// Segments emits the filaments of both saddle poles.
func (c SaddleCorrector) Segments() ([]geometry.Segment, error) {
	dipole := geometry.SaddleDipole{
		L: c.L, R: c.R, Theta: c.Theta, Current: c.Current, NPts: c.npts(),
	}
	return dipole.Segments()
}

func (c SaddleCorrector) defaultBounds() Bounds {
	b := AutoBounds()
	b.XMin, b.XMax = -c.R, +c.R
	b.YMin, b.YMax = -c.R, +c.R
	b.ZMin, b.ZMax = -5*c.L/2, +5*c.L/2
	return b
}

// StraightWire is a single thin straight filament. It has no
// characteristic dimensions, so sampling bounds must always be supplied
// by the caller.
type StraightWire struct {
	P1, P2  r3.Vec
	Current float64
}

// Mode returns "wire".
func (StraightWire) Mode() string { return "wire" }

// Validate requires two distinct endpoints.
func (w StraightWire) Validate() error {
	if r3.Norm(r3.Sub(w.P2, w.P1)) == 0 {
		return &ConfigurationError{Mode: w.Mode(), Message: "wire endpoints p1 and p2 must be distinct"}
	}
	return nil
}

// Segments emits the single filament.
func (w StraightWire) Segments() ([]geometry.Segment, error) {
	seg, err := geometry.NewSegment(w.P1, w.P2, w.Current)
	if err != nil {
		return nil, err
	}
	return []geometry.Segment{seg}, nil
}

func (StraightWire) defaultBounds() Bounds { return AutoBounds() }

package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SaddleCoil describes one saddle coil: two arcs of radius R at axial
// offsets ∓L/2 with opposite opening-angle signs, joined by two straight
// axial return legs at azimuths ±ϕ where ϕ = (π − Theta)/2.
type SaddleCoil struct {
	L, R, Theta float64
	Current     float64
	NPts        int
}

// Arcs returns the two arcs of the coil: the near arc at −L/2 sweeping
// +Theta and the far arc at +L/2 sweeping −Theta.
func (c SaddleCoil) Arcs() [2]Arc {
	return [2]Arc{
		{H: -c.L / 2, R: c.R, Theta: +c.Theta, NPts: c.NPts},
		{H: +c.L / 2, R: c.R, Theta: -c.Theta, NPts: c.NPts},
	}
}

// Legs returns the two straight axial return legs. The traversal
// directions match the arc winding so the loop closes.
func (c SaddleCoil) Legs() ([]Segment, error) {
	phi := (math.Pi - c.Theta) / 2
	x, y := c.R*math.Cos(phi), c.R*math.Sin(phi)

	leg1, err := NewSegment(
		r3.Vec{X: x, Y: y, Z: +c.L / 2},
		r3.Vec{X: x, Y: y, Z: -c.L / 2},
		c.Current,
	)
	if err != nil {
		return nil, err
	}
	leg2, err := NewSegment(
		r3.Vec{X: -x, Y: y, Z: -c.L / 2},
		r3.Vec{X: -x, Y: y, Z: +c.L / 2},
		c.Current,
	)
	if err != nil {
		return nil, err
	}
	return []Segment{leg1, leg2}, nil
}

// Segments decomposes the whole coil into straight filaments: both
// discretized arcs plus the two return legs.
func (c SaddleCoil) Segments() ([]Segment, error) {
	var segs []Segment
	for _, arc := range c.Arcs() {
		s, err := arc.Segments(c.Current)
		if err != nil {
			return nil, err
		}
		segs = append(segs, s...)
	}
	legs, err := c.Legs()
	if err != nil {
		return nil, err
	}
	return append(segs, legs...), nil
}

// SaddleDipole is a pair of mirrored saddle coils forming a dipole
// corrector. The second pole is the same coil with R and L negated.
type SaddleDipole struct {
	L, R, Theta float64
	Current     float64
	NPts        int
}

// Coils returns the two poles of the dipole.
func (d SaddleDipole) Coils() [2]SaddleCoil {
	return [2]SaddleCoil{
		{L: +d.L, R: +d.R, Theta: d.Theta, Current: d.Current, NPts: d.NPts},
		{L: -d.L, R: -d.R, Theta: d.Theta, Current: d.Current, NPts: d.NPts},
	}
}

// Segments decomposes both poles into straight filaments.
func (d SaddleDipole) Segments() ([]Segment, error) {
	var segs []Segment
	for _, coil := range d.Coils() {
		s, err := coil.Segments()
		if err != nil {
			return nil, err
		}
		segs = append(segs, s...)
	}
	return segs, nil
}

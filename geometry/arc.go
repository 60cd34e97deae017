package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// rotateAboutE3 rotates an in-plane (z = 0) vector counterclockwise by
// theta about the z axis.
func rotateAboutE3(v r3.Vec, theta float64) r3.Vec {
	c, s := math.Cos(theta), math.Sin(theta)
	return r3.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

// Arc describes a circular arc of radius R in the plane z = h (normal
// along +z) spanning an opening angle Theta. The starting azimuth is
// (π − Theta)/2, which centers the arc about the +y axis. A negative
// Theta sweeps the opposite way.
type Arc struct {
	H, R, Theta float64
	NPts        int
}

// StartAzimuth returns the initial azimuth ϕ = (π − θ)/2.
func (a Arc) StartAzimuth() float64 { return (math.Pi - a.Theta) / 2 }

// Points discretizes the arc into NPts points together with the unit
// tangent at each point. Tangents are exposed for visualization
// consumers; the field computation only needs the points.
func (a Arc) Points() (points, tangents []r3.Vec, err error) {
	if a.NPts < 2 {
		return nil, nil, NewGeometryError("arc needs at least 2 points, got %d", a.NPts)
	}
	e1 := rotateAboutE3(r3.Vec{X: 1}, a.StartAzimuth())
	center := r3.Vec{Z: a.H}

	points = make([]r3.Vec, a.NPts)
	tangents = make([]r3.Vec, a.NPts)
	step := a.Theta / float64(a.NPts-1)
	sweep := 1.0
	if a.Theta < 0 {
		sweep = -1.0
	}
	for i := range points {
		th := float64(i) * step
		radial := rotateAboutE3(e1, th)
		points[i] = r3.Add(center, r3.Scale(a.R, radial))
		// Tangent of a counterclockwise sweep is the radial rotated by +π/2.
		tangents[i] = r3.Unit(rotateAboutE3(radial, sweep*math.Pi/2))
	}
	return points, tangents, nil
}

// Segments chains the discretized arc points into NPts−1 straight
// filaments carrying the given current.
func (a Arc) Segments(current float64) ([]Segment, error) {
	points, _, err := a.Points()
	if err != nil {
		return nil, err
	}
	return Chain(points, current)
}

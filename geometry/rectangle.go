package geometry

import "gonum.org/v1/gonum/spatial/r3"

// RectangleCorners returns the four corners of a rectangular coil of
// width a (x axis) and depth b (z axis) lying in the plane y = y0. The
// traversal order fixes the circulation sign: the winding runs
// (−a/2, −b/2) → (+a/2, −b/2) → (+a/2, +b/2) → (−a/2, +b/2).
func RectangleCorners(a, b, y0 float64) [4]r3.Vec {
	return [4]r3.Vec{
		{X: -a / 2, Y: y0, Z: -b / 2},
		{X: +a / 2, Y: y0, Z: -b / 2},
		{X: +a / 2, Y: y0, Z: +b / 2},
		{X: -a / 2, Y: y0, Z: +b / 2},
	}
}

// RectangleSegments decomposes the coil into its four closed-loop
// segments, all carrying the same current.
func RectangleSegments(a, b, y0, current float64) ([]Segment, error) {
	c := RectangleCorners(a, b, y0)
	return Chain([]r3.Vec{c[0], c[1], c[2], c[3], c[0]}, current)
}

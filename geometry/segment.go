package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// GeometryError reports a degenerate or self-inconsistent geometry, such
// as a zero-length segment or an under-discretized arc.
type GeometryError struct {
	Message string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error: %s", e.Message)
}

// NewGeometryError creates a GeometryError with a formatted message.
func NewGeometryError(format string, args ...any) *GeometryError {
	return &GeometryError{Message: fmt.Sprintf(format, args...)}
}

// Segment is a straight current filament from P1 to P2 carrying a signed
// current in amperes.
type Segment struct {
	P1, P2  r3.Vec
	Current float64
}

// NewSegment builds a Segment, rejecting zero-length filaments.
func NewSegment(p1, p2 r3.Vec, current float64) (Segment, error) {
	if r3.Norm(r3.Sub(p2, p1)) == 0 {
		return Segment{}, NewGeometryError("segment must be specified by 2 distinct points, got %v twice", p1)
	}
	return Segment{P1: p1, P2: p2, Current: current}, nil
}

// Length returns the filament length.
func (s Segment) Length() float64 { return r3.Norm(r3.Sub(s.P2, s.P1)) }

// Reversed returns the segment traversed in the opposite direction with
// the current sign flipped. Its field is identical to the original's.
func (s Segment) Reversed() Segment {
	return Segment{P1: s.P2, P2: s.P1, Current: -s.Current}
}

// Chain connects consecutive points into segments all carrying the same
// current. Adjacent duplicate points are a geometry error.
func Chain(points []r3.Vec, current float64) ([]Segment, error) {
	if len(points) < 2 {
		return nil, NewGeometryError("chain requires at least 2 points, got %d", len(points))
	}
	segs := make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		seg, err := NewSegment(points[i], points[i+1], current)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

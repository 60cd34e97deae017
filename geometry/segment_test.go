package geometry

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewSegmentRejectsDegenerate(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	_, err := NewSegment(p, p, 1)
	if err == nil {
		t.Fatal("expected error for zero-length segment")
	}
	var gerr *GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *GeometryError, got %T", err)
	}
}

func TestSegmentReversed(t *testing.T) {
	seg, err := NewSegment(r3.Vec{Z: -1}, r3.Vec{Z: 1}, 10)
	if err != nil {
		t.Fatal(err)
	}
	rev := seg.Reversed()
	if rev.P1 != seg.P2 || rev.P2 != seg.P1 || rev.Current != -seg.Current {
		t.Fatalf("reversed segment malformed: %+v", rev)
	}
	if seg.Length() != 2 {
		t.Fatalf("length = %g, want 2", seg.Length())
	}
}

func TestChain(t *testing.T) {
	pts := []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}
	segs, err := Chain(pts, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	for _, s := range segs {
		if s.Current != 2.5 {
			t.Fatalf("segment current = %g, want 2.5", s.Current)
		}
	}

	if _, err := Chain(pts[:1], 1); err == nil {
		t.Fatal("expected error for single-point chain")
	}
	if _, err := Chain([]r3.Vec{{}, {}}, 1); err == nil {
		t.Fatal("expected error for duplicate adjacent points")
	}
}

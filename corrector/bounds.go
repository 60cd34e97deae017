package corrector

import (
	"math"

	"github.com/electronsandstuff/openPMD-beamphysics/grid"
)

// defaultAxisCount is the sampling resolution used for axes without an
// explicit count.
const defaultAxisCount = 101

// Bounds is the sampling box of a mesh build. Limits left as NaN fall
// back to the magnet's characteristic defaults; counts left as zero
// fall back to 101 points per axis.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
	NX, NY, NZ int
}

// AutoBounds returns bounds with every limit unset (NaN) and default
// counts, deferring the whole box to the magnet's own dimensions.
func AutoBounds() Bounds {
	nan := math.NaN()
	return Bounds{
		XMin: nan, XMax: nan,
		YMin: nan, YMax: nan,
		ZMin: nan, ZMax: nan,
	}
}

// merged fills unset limits from the fallback box and unset counts with
// the default resolution.
func (b Bounds) merged(fallback Bounds) Bounds {
	pick := func(v, fb float64) float64 {
		if math.IsNaN(v) {
			return fb
		}
		return v
	}
	out := Bounds{
		XMin: pick(b.XMin, fallback.XMin), XMax: pick(b.XMax, fallback.XMax),
		YMin: pick(b.YMin, fallback.YMin), YMax: pick(b.YMax, fallback.YMax),
		ZMin: pick(b.ZMin, fallback.ZMin), ZMax: pick(b.ZMax, fallback.ZMax),
		NX: b.NX, NY: b.NY, NZ: b.NZ,
	}
	if out.NX <= 0 {
		out.NX = defaultAxisCount
	}
	if out.NY <= 0 {
		out.NY = defaultAxisCount
	}
	if out.NZ <= 0 {
		out.NZ = defaultAxisCount
	}
	return out
}

// missing lists the limits still unset after merging, in the parameter
// naming of the build interface.
func (b Bounds) missing() []string {
	var out []string
	for _, lim := range []struct {
		name string
		v    float64
	}{
		{"xmin", b.XMin}, {"xmax", b.XMax},
		{"ymin", b.YMin}, {"ymax", b.YMax},
		{"zmin", b.ZMin}, {"zmax", b.ZMax},
	} {
		if math.IsNaN(lim.v) {
			out = append(out, lim.name)
		}
	}
	return out
}

// samplingGrid converts fully resolved bounds into a sampling grid.
func (b Bounds) samplingGrid() (*grid.Grid, error) {
	return grid.New(
		grid.Axis{Min: b.XMin, Max: b.XMax, Count: b.NX},
		grid.Axis{Min: b.YMin, Max: b.YMax, Count: b.NY},
		grid.Axis{Min: b.ZMin, Max: b.ZMax, Count: b.NZ},
	)
}

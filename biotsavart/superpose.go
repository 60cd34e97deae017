package biotsavart

import (
	"runtime"
	"sync"

	"github.com/electronsandstuff/openPMD-beamphysics/geometry"
	"github.com/electronsandstuff/openPMD-beamphysics/grid"
	"github.com/electronsandstuff/openPMD-beamphysics/logging"
)

// Options tunes field superposition.
type Options struct {
	// Workers bounds the number of segments evaluated concurrently.
	// Zero means runtime.NumCPU().
	Workers int

	// Logger receives debug records about the superposition. Defaults
	// to a no-op logger.
	Logger logging.Logger
}

// Superpose accumulates the Biot–Savart contributions of every segment
// over the observation points. Each segment's field is independent of
// every other's, so segments are evaluated concurrently; the final sum
// is an associative, commutative accumulation whose ordering only
// affects floating-point rounding.
func Superpose(x, y, z *grid.Scalar, segs []geometry.Segment, optFns ...func(o *Options)) (*grid.Vector, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if err := checkPointCloud(x, y, z); err != nil {
		return nil, err
	}

	total := grid.NewVector(x.Shape())
	if len(segs) == 0 {
		return total, nil
	}

	workers := opts.Workers
	if workers > len(segs) {
		workers = len(segs)
	}
	opts.Logger.Debug("superposing segment fields",
		"segments", len(segs), "points", x.Shape().Len(), "workers", workers)

	jobs := make(chan geometry.Segment)
	partials := make([]*grid.Vector, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			acc := grid.NewVector(x.Shape())
			for seg := range jobs {
				if errs[w] != nil {
					continue // keep draining so the producer never blocks
				}
				contrib, err := FieldOfSegment(x, y, z, seg)
				if err != nil {
					errs[w] = err
					continue
				}
				// Shapes are identical by construction.
				_ = acc.Add(contrib)
			}
			partials[w] = acc
		}(w)
	}
	for _, seg := range segs {
		jobs <- seg
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for _, p := range partials {
		if p != nil {
			_ = total.Add(p)
		}
	}
	return total, nil
}

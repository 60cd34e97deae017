// pmd-fieldgen builds the magnetic field mesh of an idealized dipole
// corrector magnet (rectangular or saddle design, or a bare straight
// wire) and writes it as a CBOR field archive and/or a GPT-style ASCII
// field table.
//
// Examples:
//
//	pmd-fieldgen --mode rectangular --a 0.5 --b 1.0 --h 0.2 --current 10 --out corrector.pmd
//	pmd-fieldgen --mode saddle --radius 0.01 --length 0.1 --theta 0.7853981633974483 --gpt field.txt
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/electronsandstuff/openPMD-beamphysics/corrector"
	"github.com/electronsandstuff/openPMD-beamphysics/export"
	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
	"github.com/electronsandstuff/openPMD-beamphysics/logging"
	"github.com/electronsandstuff/openPMD-beamphysics/pmdstore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		mode                         string
		a, b, h                      float64
		radius, length, theta        float64
		npts                         int
		p1x, p1y, p1z, p2x, p2y, p2z float64
		current                      float64
		outPath, gptPath             string
		logLevel                     string
		nx, ny, nz                   int
		xmin, xmax                   float64
		ymin, ymax                   float64
		zmin, zmax                   float64
	)

	nan := math.NaN()
	flags := pflag.NewFlagSet("pmd-fieldgen", pflag.ContinueOnError)
	flags.StringVar(&mode, "mode", "rectangular", "magnet design: rectangular, saddle or wire")
	flags.Float64Var(&a, "a", 0, "rectangular: coil width along x [m]")
	flags.Float64Var(&b, "b", 0, "rectangular: coil depth along z [m]")
	flags.Float64Var(&h, "h", 0, "rectangular: vertical coil separation [m]")
	flags.Float64Var(&radius, "radius", 0, "saddle: coil radius [m]")
	flags.Float64Var(&length, "length", 0, "saddle: coil length along z [m]")
	flags.Float64Var(&theta, "theta", 0, "saddle: opening angle [rad]")
	flags.IntVar(&npts, "npts", 0, "saddle: arc discretization points (default 20)")
	flags.Float64Var(&p1x, "p1x", 0, "wire: start point x [m]")
	flags.Float64Var(&p1y, "p1y", 0, "wire: start point y [m]")
	flags.Float64Var(&p1z, "p1z", 0, "wire: start point z [m]")
	flags.Float64Var(&p2x, "p2x", 0, "wire: end point x [m]")
	flags.Float64Var(&p2y, "p2y", 0, "wire: end point y [m]")
	flags.Float64Var(&p2z, "p2z", 0, "wire: end point z [m]")
	flags.Float64Var(&current, "current", 1, "coil current [A]")
	flags.Float64Var(&xmin, "xmin", nan, "sampling box limit (default from magnet dimensions)")
	flags.Float64Var(&xmax, "xmax", nan, "sampling box limit")
	flags.Float64Var(&ymin, "ymin", nan, "sampling box limit")
	flags.Float64Var(&ymax, "ymax", nan, "sampling box limit")
	flags.Float64Var(&zmin, "zmin", nan, "sampling box limit")
	flags.Float64Var(&zmax, "zmax", nan, "sampling box limit")
	flags.IntVar(&nx, "nx", 0, "grid points along x (default 101)")
	flags.IntVar(&ny, "ny", 0, "grid points along y (default 101)")
	flags.IntVar(&nz, "nz", 0, "grid points along z (default 101)")
	flags.StringVar(&outPath, "out", "", "write the mesh as a CBOR field archive to this path")
	flags.StringVar(&gptPath, "gpt", "", "write the mesh as a GPT ASCII field table to this path")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if outPath == "" && gptPath == "" {
		return fmt.Errorf("nothing to do: supply --out and/or --gpt")
	}

	level := logging.LogLevelInfo
	switch logLevel {
	case "debug":
		level = logging.LogLevelDebug
	case "info":
		level = logging.LogLevelInfo
	case "warn":
		level = logging.LogLevelWarn
	case "error":
		level = logging.LogLevelError
	default:
		return fmt.Errorf("unknown log level %q", logLevel)
	}
	logger := logging.NewLogger(&logging.Config{Level: level, Format: "json", Output: os.Stderr})

	runID := uuid.NewString()
	bounds := corrector.Bounds{
		XMin: xmin, XMax: xmax,
		YMin: ymin, YMax: ymax,
		ZMin: zmin, ZMax: zmax,
		NX: nx, NY: ny, NZ: nz,
	}
	withLogger := func(o *corrector.Options) { o.Logger = logger }

	start := time.Now()
	logger.Info("field mesh build started", "run_id", runID, "mode", mode, "current", current)

	mesh, err := buildMesh(mode, corrector.Params{
		A: a, B: b, H: h,
		R: radius, L: length, Theta: theta, NPts: npts,
		Current: current,
	}, r3.Vec{X: p1x, Y: p1y, Z: p1z}, r3.Vec{X: p2x, Y: p2y, Z: p2z}, bounds, withLogger)
	if err != nil {
		return err
	}
	logger.Info("field mesh built",
		"run_id", runID, "shape", mesh.Shape().String(), "elapsed", time.Since(start))

	if outPath != "" {
		if err := pmdstore.WriteFile(outPath, mesh); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}
		logger.Info("archive written", "run_id", runID, "path", outPath)
	}
	if gptPath != "" {
		if err := writeGPTFile(gptPath, mesh); err != nil {
			return fmt.Errorf("writing GPT table: %w", err)
		}
		logger.Info("GPT field table written", "run_id", runID, "path", gptPath)
	}
	return nil
}

func writeGPTFile(path string, mesh *fieldmesh.FieldMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteGPT(f, mesh); err != nil {
		return err
	}
	return f.Close()
}

func buildMesh(mode string, params corrector.Params, p1, p2 r3.Vec, bounds corrector.Bounds, opt func(o *corrector.Options)) (*fieldmesh.FieldMesh, error) {
	if mode == "wire" {
		return corrector.BuildStraightWireMesh(p1, p2, params.Current, bounds, opt)
	}
	return corrector.BuildDipoleCorrectorMesh(mode, params, bounds, opt)
}

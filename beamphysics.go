// Package beamphysics provides a high-level façade over the field-mesh
// core: Biot–Savart field computation for idealized wire-based corrector
// magnets and the openPMD-style FieldMesh value object that packages the
// sampled fields. Most applications interact with this package by:
//
//  1. Describing a magnet (RectangularCorrector, SaddleCorrector or
//     StraightWire) and optionally a sampling box
//  2. Building a FieldMesh via DipoleCorrectorMesh / StraightWireMesh
//  3. Consuming the mesh directly, or handing it to pmdstore (archival)
//     and export (tracking-code formats)
//
// The façade delegates decomposition and field evaluation to the
// geometry and biotsavart packages while keeping setup ergonomics
// concise. Defaults are safe: bounds derive from the magnet's own
// dimensions and logging is silent unless a logger is injected.
package beamphysics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/electronsandstuff/openPMD-beamphysics/corrector"
	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
)

// FieldMesh is the openPMD-style external field mesh value object.
type FieldMesh = fieldmesh.FieldMesh

// Magnet is the tagged variant over supported corrector designs.
type Magnet = corrector.Magnet

// Supported magnet variants.
type (
	// RectangularCorrector is two coplanar-offset rectangular coils.
	RectangularCorrector = corrector.RectangularCorrector
	// SaddleCorrector is a saddle coil pair on a cylinder.
	SaddleCorrector = corrector.SaddleCorrector
	// StraightWire is a single thin straight filament.
	StraightWire = corrector.StraightWire
)

// Bounds is the sampling box of a mesh build; unset limits fall back to
// the magnet's characteristic dimensions.
type Bounds = corrector.Bounds

// Params is the parameter union accepted by the string-keyed mode
// dispatch.
type Params = corrector.Params

// Options configures a mesh build (logger, parallelism).
type Options = corrector.Options

// AutoBounds returns a fully unset sampling box, deferring every limit
// to the magnet's defaults.
func AutoBounds() Bounds { return corrector.AutoBounds() }

// CorrectorMesh builds the field mesh of a typed magnet variant.
func CorrectorMesh(m Magnet, bounds Bounds, optFns ...func(o *Options)) (*FieldMesh, error) {
	return corrector.BuildFieldMesh(m, bounds, optFns...)
}

// DipoleCorrectorMesh builds a dipole corrector mesh through the
// string-keyed mode dispatch ("rectangular" or "saddle").
func DipoleCorrectorMesh(mode string, params Params, bounds Bounds, optFns ...func(o *Options)) (*FieldMesh, error) {
	return corrector.BuildDipoleCorrectorMesh(mode, params, bounds, optFns...)
}

// StraightWireMesh builds the field mesh of a bare filament from p1 to
// p2. All six bounds must be supplied.
func StraightWireMesh(p1, p2 r3.Vec, current float64, bounds Bounds, optFns ...func(o *Options)) (*FieldMesh, error) {
	return corrector.BuildStraightWireMesh(p1, p2, current, bounds, optFns...)
}

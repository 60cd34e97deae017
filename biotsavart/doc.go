// Package biotsavart evaluates the magnetic field of thin-wire current
// filaments on a sampling lattice. The heart of the package is the
// closed-form Biot–Savart solution for a finite straight filament
// (FieldOfSegment); everything else is strict linear superposition of
// filament contributions over decomposed magnet shapes.
//
// Observation points lying exactly on a filament's infinite line hit the
// inherent singularity of the thin-wire model and produce IEEE Inf/NaN
// values. These are not caught: callers must avoid sampling on-wire.
package biotsavart

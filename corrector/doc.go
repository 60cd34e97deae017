// Package corrector builds field meshes for idealized dipole corrector
// magnets. Each magnet design is a typed variant (RectangularCorrector,
// SaddleCorrector, StraightWire) that knows its required parameters and
// its characteristic default sampling bounds; BuildFieldMesh decomposes
// the magnet into current filaments, superposes the Biot–Savart field on
// the sampling grid and assembles a fieldmesh.FieldMesh with openPMD
// attribute metadata.
//
// Missing required parameters and unrecognized mode tags surface as
// ConfigurationError naming the offending fields, before any field
// computation starts.
package corrector

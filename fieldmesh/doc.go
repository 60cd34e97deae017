// Package fieldmesh defines the openPMD-style external field mesh value
// object: sampled field components on a rectilinear grid together with
// the attribute metadata (origin, spacing, size, geometry, harmonic)
// that gives the samples spatial meaning.
//
// A FieldMesh is immutable after construction from the core's
// perspective. Components are addressed by canonical record paths such
// as "magneticField/x"; a fixed alias registry maps the conventional
// short names (Bx, Br, Ez, ...) onto those paths. Lookups through
// unknown keys fail with ErrKeyNotAvailable rather than returning a
// zero value.
package fieldmesh

// Package export renders field meshes into the text formats consumed by
// downstream tracking codes: a GPT-style ASCII field table for
// rectangular meshes and a Superfish-style T7 layout for cylindrical
// meshes (the static Poisson variant or the harmonic Fish variant,
// selected by the mesh's IsStatic flag).
package export

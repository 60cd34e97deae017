// Package pmdstore persists field meshes as self-describing archives:
// the openPMD-style attribute set plus per-component records carrying
// the declared shape, unit dimension and sample data.
//
// The encoding is CBOR with Core Deterministic Encoding (RFC 8949 §4.2),
// so storing the same mesh always produces identical bytes and a
// store/load round-trip reproduces attributes and component arrays
// exactly. Loading validates every component against the declared grid
// size and the expected physical unit dimension for its record family;
// violations fail with DataIntegrityError and no partial mesh is
// returned.
package pmdstore

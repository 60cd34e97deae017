// Package geometry decomposes idealized magnet shapes into ordered
// current filaments. Every decomposer is a pure function of its shape
// parameters: rectangles become four corner-to-corner segments with a
// fixed winding order, circular arcs are discretized into chained
// straight segments, and saddle coils combine two arcs with two straight
// axial return legs. The emitted segments feed the biotsavart package.
package geometry

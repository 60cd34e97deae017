// Package grid provides the rectilinear sampling lattice and the
// shape-checked array types used for sampled field data. It defines the
// shape contract for the whole module:
//
//   - A Grid describes three ordered coordinate axes (min, max, count).
//   - A Scalar is one value per lattice point, stored flat in row-major
//     "ij" order: index = (i*ny + j)*nz + k for point (i, j, k).
//   - A Vector is three same-shape Scalars (the x, y, z components).
//
// All elementwise operations validate shapes explicitly; there is no
// implicit broadcasting.
package grid

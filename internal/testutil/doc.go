// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing grids and field meshes. These helpers
// are intentionally minimal and not intended for production usage.
package testutil

// Package matrix offers dense float64 storage and the low-level numeric
// primitives consumed by the decomposition core.
//
// The matrix package provides:
//
//   - Dense: a cache-friendly row-major buffer behind safe, error-returning
//     accessors (At/Set never panic on user input).
//   - Source / Matrix capability interfaces so kernels can accept any
//     row/column-addressable data source, with fast paths on *Dense.
//   - Read-only triangular views (unit-lower and upper) over a shared buffer.
//   - Primitives: ranged dot product, in-place row exchange, and in-place
//     forward/backward triangular substitution.
//   - The shared smallness policy: IsSmall with DefaultEpsilon as the single
//     configuration constant.
//
// Dense storage is best for small-to-medium problems where O(r·c) memory is
// acceptable; sparse and banded layouts are out of scope.
//
// See the decompose package for the LU engine built on these primitives.
package matrix

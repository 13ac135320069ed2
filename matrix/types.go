// SPDX-License-Identifier: MIT

// Package matrix: capability interfaces for matrix data sources.
// This file intentionally contains ONLY the interface contracts; Dense and
// the view types implement them. Errors and policy constants live in
// dedicated files (errors.go, options.go) per the package conventions.
package matrix

// Source is a read-only, row/column-addressable matrix data source.
// It is the minimal capability a decomposition needs to ingest data:
// dimension queries plus element-wise read access. Bulk copy semantics
// are provided by CopyInto, which takes a fast path when the concrete
// type is *Dense and falls back to At otherwise.
//
// Complexity notes: all methods are expected O(1).
type Source interface {
	// Rows returns the number of rows in the source.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the source.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)
}

// Matrix represents a two-dimensional mutable array of float64 values.
// It extends Source with write access and deep cloning, so algorithm
// pipelines can rely on immutability of their inputs.
type Matrix interface {
	Source

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

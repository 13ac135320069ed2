// SPDX-License-Identifier: MIT

// Package matrix: read-only triangular views over a shared Dense buffer.
//
// Purpose:
//   - Expose the two factors stored interleaved in a compact L\U buffer as
//     independent, read-only matrices without copying.
//   - LowerUnit masks the strict lower triangle and supplies the implicit
//     unit diagonal; Upper masks the diagonal and above.
//
// Shapes:
//   - For an m×n base with d = min(m, n): LowerUnit is m×d, Upper is d×n,
//     so that P·A = L·U holds with exact dimensions for rectangular inputs.

package matrix

import "fmt"

// LowerUnitView is a no-copy, read-only unit-lower-triangular window over a
// Dense buffer. It implements Source only; the underlying buffer is never
// mutated through the view.
type LowerUnitView struct {
	base *Dense // shared storage (not owned)
	r, c int    // view shape: base rows × min(base rows, base cols)
}

// UpperView is a no-copy, read-only upper-triangular window over a Dense
// buffer. It implements Source only.
type UpperView struct {
	base *Dense // shared storage (not owned)
	r, c int    // view shape: min(base rows, base cols) × base cols
}

// Compile-time assertions for Source conformance.
var (
	_ Source = (*LowerUnitView)(nil)
	_ Source = (*UpperView)(nil)
)

// LowerUnit returns the unit-lower-triangular view of base.
// The diagonal reads as an implicit 1; entries above it read as 0; entries
// strictly below it read through to the buffer.
// Complexity: O(1).
func LowerUnit(base *Dense) *LowerUnitView {
	d := base.r
	if base.c < d {
		d = base.c
	}

	return &LowerUnitView{base: base, r: base.r, c: d}
}

// Upper returns the upper-triangular view of base.
// Entries on and above the diagonal read through to the buffer; entries
// below it read as 0.
// Complexity: O(1).
func Upper(base *Dense) *UpperView {
	d := base.r
	if base.c < d {
		d = base.c
	}

	return &UpperView{base: base, r: d, c: base.c}
}

// Rows returns the number of rows in the view. Complexity: O(1).
func (v *LowerUnitView) Rows() int { return v.r }

// Cols returns the number of columns in the view. Complexity: O(1).
func (v *LowerUnitView) Cols() int { return v.c }

// At reads element (i,j) of the unit-lower triangle or returns ErrOutOfRange.
// Complexity: O(1).
func (v *LowerUnitView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("LowerUnitView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	switch {
	case i == j:
		return 1.0, nil // implicit unit diagonal
	case i > j:
		return v.base.data[i*v.base.c+j], nil // strict lower triangle
	default:
		return 0.0, nil // above the diagonal
	}
}

// Rows returns the number of rows in the view. Complexity: O(1).
func (v *UpperView) Rows() int { return v.r }

// Cols returns the number of columns in the view. Complexity: O(1).
func (v *UpperView) Cols() int { return v.c }

// At reads element (i,j) of the upper triangle or returns ErrOutOfRange.
// Complexity: O(1).
func (v *UpperView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("UpperView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if j >= i {
		return v.base.data[i*v.base.c+j], nil // diagonal and above
	}

	return 0.0, nil // below the diagonal
}

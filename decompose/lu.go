// SPDX-License-Identifier: MIT

// Package decompose: the LU decomposition engine and derived operations.
//
// Purpose:
//   - Factor a working copy of a dense m×n matrix in place into the compact
//     L\U layout (unit-lower multipliers strictly below the diagonal, upper
//     factor on and above it) while recording row exchanges in a Pivot.
//   - Serve determinant, rank, full-rank, solve and invert from that single
//     factored state.
//
// Notes:
//   - The working buffer and the pivot are only valid together: every new
//     factorization replaces both atomically, and Reset discards both.
//   - Factorization tolerates exact-zero pivots (multiplier division is
//     skipped); singularity is detected later via rank/solvability checks.

package decompose

import (
	"fmt"
	"math"

	"github.com/MootezSaaD/ojAlgo/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDecompose   = "Decompose"
	opDeterminant = "Determinant"
	opSolve       = "Solve"
	opInvert      = "Invert"
	opPreallocate = "Preallocate"
	opL           = "L"
	opU           = "U"
)

// luErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil; callers still match the sentinel with errors.Is.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU is one decomposition session: a working factor buffer plus its pivot.
//
// Lifecycle:
//   - zero value / New(): empty, IsComputed() == false.
//   - Decompose/DecomposeWithoutPivoting: copies the source into a fresh
//     buffer, factors it in place, creates a fresh Pivot.
//   - derived operations read the factored state; none of them re-mutate it.
//   - Reset: discards buffer and pivot together.
//
// An LU instance is not safe for concurrent use from multiple goroutines
// without external serialization; use independent instances instead.
type LU struct {
	store    *matrix.Dense // combined L\U working factor buffer (m×n)
	pivot    *Pivot        // row permutation of the current factorization
	computed bool          // true after a completed factorization
}

// New returns an empty decomposition session.
// Complexity: O(1).
func New() *LU { return &LU{} }

// Decompose copies src into a fresh working buffer and factors it in place
// with partial pivoting.
//
// Implementation:
//   - Stage 1: validate src (non-nil, positive dims) and ingest via CopyInto.
//   - Stage 2: run the left-looking Crout/Doolittle engine with pivoting.
//
// Behavior highlights:
//   - Factorization cannot fail on finite input; errors come only from
//     validation/allocation/ingestion.
//   - Replaces any previous factored state (buffer and pivot together).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, wrapped At errors
//     from misbehaving sources.
//
// Complexity:
//   - Time O(min(m,n)·m·n), Space O(m·n) for the working copy.
func (lu *LU) Decompose(src matrix.Source) error {
	return lu.decompose(src, true)
}

// DecomposeWithoutPivoting runs the same engine with the pivot scan disabled.
// A fresh Pivot is still created; it just never receives exchanges. Intended
// for inputs already known to be well-ordered (e.g. diagonally dominant).
// Complexity: Time O(min(m,n)·m·n), Space O(m·n).
func (lu *LU) DecomposeWithoutPivoting(src matrix.Source) error {
	return lu.decompose(src, false)
}

// decompose ingests src and factors it; pivoting selects the pivot scan.
func (lu *LU) decompose(src matrix.Source, pivoting bool) error {
	if err := matrix.ValidateNotNil(src); err != nil {
		return luErrorf(opDecompose, err)
	}
	if err := matrix.ValidateDims(src.Rows(), src.Cols()); err != nil {
		return luErrorf(opDecompose, err)
	}

	// Fresh working copy: the input is never mutated.
	store, err := matrix.ZerosLike(src)
	if err != nil {
		return luErrorf(opDecompose, err)
	}
	if err = matrix.CopyInto(src, store); err != nil {
		return luErrorf(opDecompose, err)
	}

	// Replace buffer and pivot together; invalidate until factoring is done.
	lu.store = store
	lu.pivot = NewPivot(store.Rows())
	lu.computed = false

	lu.factor(pivoting)
	lu.computed = true

	return nil
}

// factor runs the left-looking, dot-product Crout/Doolittle algorithm over
// the working buffer, column by column.
//
// Implementation:
//   - Stage 1: copy column j into a scratch vector to localize memory access.
//   - Stage 2: apply all previously computed multipliers to the column via
//     ranged dot products over columns [0, min(i,j)).
//   - Stage 3: pivot scan over rows j..m-1 of the updated column for the
//     largest magnitude; strict > keeps the lowest index on ties. Exchange
//     buffer rows and record the exchange only when the winner moved.
//   - Stage 4: divide the entries below the diagonal by the pivot value to
//     form the L multipliers; an exact-zero pivot skips the division.
//
// Determinism:
//   - Fixed j→i loops; stable pivot tie-breaking.
func (lu *LU) factor(pivoting bool) {
	m, n := lu.store.Shape()

	// Scratch copy of the current column to localize references.
	colJ := make([]float64, m)

	var (
		i, j, p  int       // loop indices and pivot candidate
		limit    int       // dot-product range end: min(i, j)
		valP     float64   // current pivot magnitude
		pivotVal float64   // diagonal value used for the multipliers
		row      []float64 // current buffer row (shared storage)
	)
	for j = 0; j < n; j++ {
		// Copy column j into the scratch vector.
		for i = 0; i < m; i++ {
			colJ[i] = lu.store.RawRow(i)[j]
		}

		// Apply previous transformations.
		for i = 0; i < m; i++ {
			row = lu.store.RawRow(i)
			limit = i
			if j < limit {
				limit = j
			}
			// Most of the time is spent in the following dot product.
			colJ[i] -= matrix.Dot(row, colJ, 0, limit)
			row[j] = colJ[i]
		}

		// Find pivot and exchange if necessary.
		if pivoting && j < m {
			p = j
			valP = math.Abs(colJ[p])
			for i = j + 1; i < m; i++ {
				if math.Abs(colJ[i]) > valP { // strict >: lowest index wins ties
					p = i
					valP = math.Abs(colJ[i])
				}
			}
			if p != j {
				_ = matrix.ExchangeRows(lu.store, j, p) // indices are in range by construction
				lu.pivot.Exchange(j, p)
			}
		}

		// Compute multipliers.
		if j < m {
			pivotVal = lu.store.RawRow(j)[j]
			if pivotVal != 0 { // zero pivot: leave the column unscaled, detect singularity later
				for i = j + 1; i < m; i++ {
					lu.store.RawRow(i)[j] /= pivotVal
				}
			}
		}
	}
}

// Reset discards the factored state. The buffer and pivot are only valid
// together, so both go at once; the instance can then ingest a matrix of a
// different shape.
// Complexity: O(1).
func (lu *LU) Reset() {
	lu.store = nil
	lu.pivot = nil
	lu.computed = false
}

// IsComputed reports whether a factorization has completed on this instance.
// Complexity: O(1).
func (lu *LU) IsComputed() bool { return lu.computed }

// IsPivoted reports whether the factorization performed at least one row
// exchange. False before any factorization.
// Complexity: O(1).
func (lu *LU) IsPivoted() bool { return lu.computed && lu.pivot.IsModified() }

// PivotOrder returns the permutation as original row indices (order[i] is
// the original row now at position i), or nil before any factorization.
// Complexity: Time O(m), Space O(m).
func (lu *LU) PivotOrder() []int {
	if !lu.computed {
		return nil
	}

	return lu.pivot.Order()
}

// L returns the unit-lower-triangular factor as a read-only view over the
// working buffer (m×min(m,n); implicit unit diagonal).
//
// Errors:
//   - ErrNotComputed before any factorization.
func (lu *LU) L() (matrix.Source, error) {
	if !lu.computed {
		return nil, luErrorf(opL, ErrNotComputed)
	}

	return matrix.LowerUnit(lu.store), nil
}

// U returns the upper-triangular factor as a read-only view over the
// working buffer (min(m,n)×n; diagonal from the buffer).
//
// Errors:
//   - ErrNotComputed before any factorization.
func (lu *LU) U() (matrix.Source, error) {
	if !lu.computed {
		return nil, luErrorf(opU, ErrNotComputed)
	}

	return matrix.Upper(lu.store), nil
}

// Determinant computes pivotSign · Π U[j][j] of the factored matrix.
// Zero diagonal entries naturally drive the product to zero.
//
// Errors:
//   - ErrNotComputed before any factorization; ErrNonSquare for a
//     rectangular factored input.
//
// Complexity:
//   - Time O(n), Space O(1).
func (lu *LU) Determinant() (float64, error) {
	if !lu.computed {
		return 0, luErrorf(opDeterminant, ErrNotComputed)
	}
	if err := matrix.ValidateSquare(lu.store); err != nil {
		return 0, luErrorf(opDeterminant, err)
	}

	n := lu.store.Cols()
	d := float64(lu.pivot.Signum())
	for j := 0; j < n; j++ {
		d *= lu.store.RawRow(j)[j]
	}

	return d, nil
}

// Rank counts the diagonal entries of U that are NOT small relative to the
// largest diagonal magnitude (shared smallness policy, unscaled reference).
// Returns 0 before any factorization.
// Complexity: Time O(min(m,n)), Space O(1).
func (lu *LU) Rank() int {
	if !lu.computed {
		return 0
	}

	largest := lu.largestOnDiagonal()
	rank := 0
	for ij, limit := 0, lu.minDim(); ij < limit; ij++ {
		if !matrix.IsSmall(largest, lu.store.RawRow(ij)[ij]) {
			rank++
		}
	}

	return rank
}

// IsFullRank reports whether every diagonal entry of U is non-negligible
// relative to sqrt(largest diagonal magnitude).
//
// Note: the magnitude reference deliberately differs from Rank's (sqrt of
// the largest vs the largest itself); both behaviors are kept as-is.
// Returns false before any factorization.
// Complexity: Time O(min(m,n)), Space O(1).
func (lu *LU) IsFullRank() bool {
	if !lu.computed {
		return false
	}

	threshold := math.Sqrt(lu.largestOnDiagonal())
	for ij, limit := 0, lu.minDim(); ij < limit; ij++ {
		if matrix.IsSmall(threshold, lu.store.RawRow(ij)[ij]) {
			return false
		}
	}

	return true
}

// IsSolvable reports whether the factored system admits Solve/Invert:
// square and full rank.
// Complexity: Time O(min(m,n)), Space O(1).
func (lu *LU) IsSolvable() bool {
	return lu.computed && lu.store.Rows() == lu.store.Cols() && lu.IsFullRank()
}

// PreallocateSolution allocates the rhsRows×rhsCols output buffer for Solve.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrInvalidDimensions from validation.
func (lu *LU) PreallocateSolution(rhs matrix.Source) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(rhs); err != nil {
		return nil, luErrorf(opPreallocate, err)
	}

	out, err := matrix.NewDense(rhs.Rows(), rhs.Cols())
	if err != nil {
		return nil, luErrorf(opPreallocate, err)
	}

	return out, nil
}

// PreallocateInverse allocates the rows×rows output buffer for Invert.
//
// Errors:
//   - ErrNotComputed before any factorization.
func (lu *LU) PreallocateInverse() (*matrix.Dense, error) {
	if !lu.computed {
		return nil, luErrorf(opPreallocate, ErrNotComputed)
	}

	out, err := matrix.NewDense(lu.store.Rows(), lu.store.Rows())
	if err != nil {
		return nil, luErrorf(opPreallocate, err)
	}

	return out, nil
}

// Solve computes X with A·X = B from the factored state, writing into the
// caller-provided buffer.
//
// Implementation:
//   - Stage 1: fail fast unless IsSolvable (never substitute against a
//     matrix known to be singular); validate shapes.
//   - Stage 2: permute B's rows by the pivot order into preallocated
//     (row i of the permuted RHS = row order[i] of the original).
//   - Stage 3: forward-substitute against the unit-lower triangle, then
//     backward-substitute against the upper triangle, both in place.
//
// Inputs:
//   - rhs: right-hand side, rows must equal the factored row count.
//   - preallocated: output buffer shaped rhsRows×rhsCols (see
//     PreallocateSolution); mutated in place and returned.
//
// Errors:
//   - ErrNotSolvable (rank-deficient or non-square body, or nothing
//     factored yet); matrix.ErrNilMatrix / matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²·rhsCols), Space O(1) beyond the caller's buffer.
func (lu *LU) Solve(rhs matrix.Source, preallocated *matrix.Dense) (*matrix.Dense, error) {
	if !lu.IsSolvable() {
		return nil, luErrorf(opSolve, ErrNotSolvable)
	}
	if err := matrix.ValidateNotNil(rhs); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	if preallocated == nil {
		return nil, luErrorf(opSolve, matrix.ErrNilMatrix)
	}
	if rhs.Rows() != lu.store.Rows() {
		return nil, luErrorf(opSolve, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateSameShape(rhs, preallocated); err != nil {
		return nil, luErrorf(opSolve, err)
	}

	// Permute the RHS rows by the pivot order into the output buffer.
	if err := lu.permuteInto(rhs, preallocated); err != nil {
		return nil, luErrorf(opSolve, err)
	}

	// Forward: unit-lower triangle, diagonal implicitly 1 (never read U's diagonal).
	if err := matrix.SubstituteForwards(preallocated, lu.store, true, false); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	// Backward: upper triangle, diagonal from U.
	if err := matrix.SubstituteBackwards(preallocated, lu.store, false); err != nil {
		return nil, luErrorf(opSolve, err)
	}

	return preallocated, nil
}

// Invert computes A⁻¹ from the factored state, writing into the
// caller-provided n×n buffer.
//
// Implementation:
//   - Stage 1: fail fast unless IsSolvable; validate the buffer shape.
//   - Stage 2: seed the buffer with P^T applied to the identity — a 1 at
//     column order[i] of row i — so the pivot is already baked into the RHS.
//   - Stage 3: run the same forward/backward substitution as Solve; when the
//     matrix was never pivoted the seeded RHS is exactly the identity, and
//     the forward step exploits that (identity flag) to skip known zeros.
//
// Errors:
//   - ErrNotInvertible (rank-deficient or non-square, or nothing factored
//     yet); matrix.ErrNilMatrix / matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(1) beyond the caller's buffer.
func (lu *LU) Invert(preallocated *matrix.Dense) (*matrix.Dense, error) {
	if !lu.IsSolvable() {
		return nil, luErrorf(opInvert, ErrNotInvertible)
	}
	if preallocated == nil {
		return nil, luErrorf(opInvert, matrix.ErrNilMatrix)
	}
	n := lu.store.Rows()
	if preallocated.Rows() != n || preallocated.Cols() != n {
		return nil, luErrorf(opInvert, matrix.ErrDimensionMismatch)
	}

	// Seed P^T·I: row i holds a single 1 at column order[i].
	order := lu.pivot.order
	var row []float64
	var i, k int
	for i = 0; i < n; i++ {
		row = preallocated.RawRow(i)
		for k = range row { // clear: the buffer may be reused
			row[k] = 0
		}
		row[order[i]] = 1.0
	}

	// Forward: unit-lower triangle; skip the internal reordering when unpivoted.
	if err := matrix.SubstituteForwards(preallocated, lu.store, true, !lu.pivot.IsModified()); err != nil {
		return nil, luErrorf(opInvert, err)
	}
	// Backward: upper triangle, diagonal from U.
	if err := matrix.SubstituteBackwards(preallocated, lu.store, false); err != nil {
		return nil, luErrorf(opInvert, err)
	}

	return preallocated, nil
}

// permuteInto writes rhs rows into dst in pivot order: dst row i = rhs row
// order[i]. Fast path for *Dense sources; interface fallback otherwise.
func (lu *LU) permuteInto(rhs matrix.Source, dst *matrix.Dense) error {
	order := lu.pivot.order
	rows, cols := dst.Shape()

	// Fast path: *Dense source → whole-row copies.
	if dr, ok := rhs.(*matrix.Dense); ok {
		for i := 0; i < rows; i++ {
			copy(dst.RawRow(i), dr.RawRow(order[i]))
		}

		return nil
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j int
		v    float64
		err  error
		row  []float64
	)
	for i = 0; i < rows; i++ {
		row = dst.RawRow(i)
		for j = 0; j < cols; j++ {
			v, err = rhs.At(order[i], j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", order[i], j, err)
			}
			row[j] = v
		}
	}

	return nil
}

// minDim returns min(rows, cols) of the working buffer.
func (lu *LU) minDim() int {
	if lu.store.Rows() < lu.store.Cols() {
		return lu.store.Rows()
	}

	return lu.store.Cols()
}

// largestOnDiagonal returns the largest absolute value on the diagonal of
// the working buffer (0 for an all-zero diagonal).
func (lu *LU) largestOnDiagonal() float64 {
	largest := 0.0
	var v float64
	for ij, limit := 0, lu.minDim(); ij < limit; ij++ {
		v = math.Abs(lu.store.RawRow(ij)[ij])
		if v > largest {
			largest = v
		}
	}

	return largest
}

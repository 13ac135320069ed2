// SPDX-License-Identifier: MIT

// Package matrix: low-level numeric primitives (dot product, row exchange,
// triangular substitution).
//
// Purpose:
//   - Declare the canonical kernels the decomposition core is built on.
//   - Keep hot loops on flat row-major slices; no interface dispatch inside.
//
// Determinism & Performance:
//   - All kernels use fixed loop orders; results are stable across runs.
//   - Substitution kernels mutate the RHS in place (caller owns the buffer).
//
// AI-Hints:
//   - Dot over [first,limit) is the inner loop of the factorization; keep the
//     operands contiguous (RawRow) to stay bandwidth-bound.
//   - SubstituteForwards/SubstituteBackwards expect the combined L\U buffer
//     as body; the unitDiagonal flag selects which triangle's diagonal rule applies.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products and substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opExchangeRows = "ExchangeRows"
	opSubstFwd     = "SubstituteForwards"
	opSubstBwd     = "SubstituteBackwards"
	opCopyInto     = "CopyInto"
)

// kernelErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil; callers still match the sentinel with errors.Is.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns the sum of a[k]*b[k] for k in the half-open range [first, limit).
// This is the fused multiply-accumulate primitive of the factorization's
// inner loop.
//
// Contract: 0 <= first <= limit <= min(len(a), len(b)); the caller guarantees
// the range (programmer-error surface, mirrors RawRow).
// Determinism: fixed left-to-right accumulation order.
// Complexity: Time O(limit-first), Space O(1).
func Dot(a, b []float64, first, limit int) float64 {
	sum := ZeroSum
	for k := first; k < limit; k++ { // deterministic left-to-right accumulation
		sum += a[k] * b[k]
	}

	return sum
}

// ExchangeRows swaps rows i and j of m in place.
// Used by the decomposition engine when a pivot exchange is required.
//
// Errors:
//   - ErrNilMatrix when m is nil; ErrOutOfRange for invalid row indices.
//
// Complexity:
//   - Time O(cols), Space O(1).
func ExchangeRows(m *Dense, i, j int) error {
	if m == nil {
		return kernelErrorf(opExchangeRows, ErrNilMatrix)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return kernelErrorf(opExchangeRows, ErrOutOfRange)
	}
	if i == j {
		return nil // nothing to do
	}

	ri, rj := m.RawRow(i), m.RawRow(j)
	var v float64
	for k := 0; k < m.c; k++ {
		v = ri[k]
		ri[k] = rj[k]
		rj[k] = v
	}

	return nil
}

// SubstituteForwards solves the lower-triangular system L·X = B in place:
// on return, rhs holds X. The lower triangle of body supplies L.
//
// Implementation:
//   - Stage 1: validate operands and the row contract (rhs rows >= diag dim).
//   - Stage 2: for each row i (top-down) and each RHS column s, subtract the
//     dot of body's row i (cols [first, i)) against the already-solved rows,
//     then divide by the diagonal unless unitDiagonal.
//
// Behavior highlights:
//   - unitDiagonal=true treats diag(L) as an implicit 1 and never reads
//     body's diagonal (which stores U's diagonal in the compact L\U layout).
//   - identity=true treats rhs as the implicit identity matrix: leading rows
//     of column s are known zeros (skipped) and the diagonal contributes 1.
//     Only valid when rhs really is the identity, i.e. an unpivoted inverse seed.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (rhs too short).
//
// Determinism:
//   - Fixed i→s→j loops; stable accumulation.
//
// Complexity:
//   - Time O(d²·rhsCols) with d = min(body rows, body cols), Space O(1).
func SubstituteForwards(rhs, body *Dense, unitDiagonal, identity bool) error {
	if rhs == nil || body == nil {
		return kernelErrorf(opSubstFwd, ErrNilMatrix)
	}
	diagDim := body.r
	if body.c < diagDim {
		diagDim = body.c
	}
	if rhs.r < diagDim {
		return kernelErrorf(opSubstFwd, ErrDimensionMismatch)
	}

	nCols := rhs.c
	var (
		i, j, s, first int       // loop indices and range start
		sum            float64   // accumulator
		bodyRow        []float64 // current row of the triangular body
	)
	for i = 0; i < diagDim; i++ {
		bodyRow = body.RawRow(i)
		for s = 0; s < nCols; s++ {
			first = 0
			if identity {
				first = s // rows above s are known zeros of the identity RHS
			}
			sum = ZeroSum
			for j = first; j < i; j++ {
				sum += bodyRow[j] * rhs.data[j*nCols+s]
			}
			if identity {
				if i == s {
					sum = 1.0 - sum
				} else {
					sum = -sum
				}
			} else {
				sum = rhs.data[i*nCols+s] - sum
			}
			if !unitDiagonal {
				sum /= bodyRow[i]
			}
			rhs.data[i*nCols+s] = sum
		}
	}

	return nil
}

// SubstituteBackwards solves the upper-triangular system U·X = B in place:
// on return, rhs holds X. The upper triangle of body supplies U.
//
// Implementation:
//   - Stage 1: validate operands and the row contract (rhs rows >= diag dim).
//   - Stage 2: for each row i (bottom-up) and each RHS column s, subtract the
//     dot of body's row i (cols (i, d)) against the already-solved rows,
//     then divide by U's diagonal unless unitDiagonal.
//
// Behavior highlights:
//   - Callers must fail fast on singular bodies before invoking this kernel;
//     a zero diagonal here would propagate non-finite values.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (rhs too short).
//
// Determinism:
//   - Fixed i↓→s→j loops; stable accumulation.
//
// Complexity:
//   - Time O(d²·rhsCols) with d = min(body rows, body cols), Space O(1).
func SubstituteBackwards(rhs, body *Dense, unitDiagonal bool) error {
	if rhs == nil || body == nil {
		return kernelErrorf(opSubstBwd, ErrNilMatrix)
	}
	diagDim := body.r
	if body.c < diagDim {
		diagDim = body.c
	}
	if rhs.r < diagDim {
		return kernelErrorf(opSubstBwd, ErrDimensionMismatch)
	}

	nCols := rhs.c
	var (
		i, j, s int       // loop indices
		sum     float64   // accumulator
		bodyRow []float64 // current row of the triangular body
	)
	for i = diagDim - 1; i >= 0; i-- {
		bodyRow = body.RawRow(i)
		for s = 0; s < nCols; s++ {
			sum = ZeroSum
			for j = i + 1; j < diagDim; j++ {
				sum += bodyRow[j] * rhs.data[j*nCols+s]
			}
			sum = rhs.data[i*nCols+s] - sum
			if !unitDiagonal {
				sum /= bodyRow[i]
			}
			rhs.data[i*nCols+s] = sum
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package decompose — public API facades.
//
// Purpose:
//   - Provide one-shot entry points for callers who need a single result and
//     do not want to manage a decomposition session themselves.
//   - Avoid any logic duplication — each facade composes Decompose with the
//     corresponding derived operation.
//
// Determinism & Policy:
//   - Facades always factor with partial pivoting (the numerically stable
//     default); use an explicit LU session for the unpivoted engine.

package decompose

import "github.com/MootezSaaD/ojAlgo/matrix"

// CalculateDeterminant factors src with partial pivoting and returns its
// determinant in one call.
//
// Errors:
//   - validation/ingestion errors from Decompose; ErrNonSquare for a
//     rectangular src.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func CalculateDeterminant(src matrix.Source) (float64, error) {
	lu := New()
	if err := lu.Decompose(src); err != nil {
		return 0, err
	}

	return lu.Determinant()
}

// SolveSystem factors body with partial pivoting and solves body·X = rhs.
// When preallocated is nil an rhsRows×rhsCols buffer is allocated; otherwise
// the caller's buffer is used and returned.
//
// Errors:
//   - ErrNotSolvable when body is rank-deficient or non-square; validation
//     errors from Decompose/Solve.
//
// Complexity:
//   - Time O(n³ + n²·rhsCols), Space O(n²) for the working copy.
func SolveSystem(body, rhs matrix.Source, preallocated *matrix.Dense) (*matrix.Dense, error) {
	lu := New()
	if err := lu.Decompose(body); err != nil {
		return nil, err
	}

	if preallocated == nil {
		var err error
		if preallocated, err = lu.PreallocateSolution(rhs); err != nil {
			return nil, err
		}
	}

	return lu.Solve(rhs, preallocated)
}

// InvertMatrix factors original with partial pivoting and returns its
// inverse. When preallocated is nil an n×n buffer is allocated; otherwise
// the caller's buffer is used and returned.
//
// Errors:
//   - ErrNotInvertible when original is rank-deficient or non-square;
//     validation errors from Decompose/Invert.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func InvertMatrix(original matrix.Source, preallocated *matrix.Dense) (*matrix.Dense, error) {
	lu := New()
	if err := lu.Decompose(original); err != nil {
		return nil, err
	}

	if preallocated == nil {
		var err error
		if preallocated, err = lu.PreallocateInverse(); err != nil {
			return nil, err
		}
	}

	return lu.Invert(preallocated)
}

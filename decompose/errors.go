// SPDX-License-Identifier: MIT
// Package decompose: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// decompose package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package decompose

import "errors"

var (
	// ErrNotComputed indicates that a derived operation was requested before
	// any successful factorization (or after Reset).
	ErrNotComputed = errors.New("decompose: not decomposed")

	// ErrNonSquare signals that a square factored matrix was required
	// (determinant, inverse) but the decomposed input was rectangular.
	ErrNonSquare = errors.New("decompose: matrix must be square")

	// ErrNotSolvable is returned by Solve when the factored system cannot be
	// solved: rank-deficient or non-square body.
	ErrNotSolvable = errors.New("decompose: equation system not solvable")

	// ErrNotInvertible is returned by Invert for the same deficiency, raised
	// from the inversion entry point so callers can distinguish intent.
	ErrNotInvertible = errors.New("decompose: matrix not invertible")
)

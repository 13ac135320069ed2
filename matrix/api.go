// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/ZerosLike to build matrices with explicit shape and neutral elements.

package matrix

import "fmt"

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as src.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(src Source) (*Dense, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}

	// Read shape once and call NewDense with the same dimensions.
	return NewDense(src.Rows(), src.Cols()) // errors (if any) bubble up
}

// CopyInto bulk-copies src into dst. Shapes must match exactly.
//
// Implementation:
//   - Stage 1: validate non-nil operands and identical shapes.
//   - Stage 2: fast-path if src is *Dense — single flat copy.
//     Otherwise, fallback At with fixed i→j order.
//
// Behavior highlights:
//   - dst's numeric policy is bypassed on the fast path (src was already a
//     Dense under the same policy) and unenforced on the fallback: ingestion
//     accepts whatever the source holds; factorization tolerates any finite input.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch),
//     plus wrapped At errors from misbehaving sources.
//
// Determinism:
//   - Flat copy on the fast path; fixed i→j loops on the fallback.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func CopyInto(src Source, dst *Dense) error {
	if src == nil || dst == nil {
		return kernelErrorf(opCopyInto, ErrNilMatrix)
	}
	if src.Rows() != dst.r || src.Cols() != dst.c {
		return kernelErrorf(opCopyInto, ErrDimensionMismatch)
	}

	// Fast path: *Dense source → single flat copy.
	if ds, ok := src.(*Dense); ok {
		copy(dst.data, ds.data)

		return nil
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return kernelErrorf(opCopyInto, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			dst.data[i*dst.c+j] = v
		}
	}

	return nil
}

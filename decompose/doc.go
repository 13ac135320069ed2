// Package decompose implements the dense LU factorization core and the
// operations derived from it.
//
// The decompose package provides:
//
//   - LU: one factorization session owning a working copy of the input (the
//     compact L\U buffer) together with its pivot bookkeeping.
//   - Left-looking Crout/Doolittle factorization with optional partial
//     pivoting (largest-magnitude pivot, stable lowest-index tie-break).
//   - Derived operations that read the factored state: determinant, rank,
//     full-rank test, linear-system solve and matrix inversion.
//   - Pivot: the permutation record (order, sign, modified flag).
//
// Factorization itself never fails on finite input — exact-zero pivots are
// tolerated by skipping the multiplier division, and singularity surfaces
// later through Rank/IsFullRank/IsSolvable. Solve and Invert fail fast with
// ErrNotSolvable / ErrNotInvertible; they never substitute against a matrix
// known to be singular.
//
// A single LU instance is not safe for concurrent use. Operations run to
// completion synchronously; callers needing parallel factorizations use
// independent instances.
package decompose

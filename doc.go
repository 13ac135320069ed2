// Package ojalgo is a small, deterministic linear-algebra core built around
// a single idea: compute one LU factorization and derive everything else
// from it.
//
// 🚀 What is ojAlgo/go?
//
//	A pure-Go dense linear-algebra kernel that brings together:
//		• Dense storage: row-major float64 matrices with safe accessors
//		• Primitives: ranged dot products, row exchange, triangular substitution
//		• Decomposition: left-looking Crout/Doolittle LU with partial pivoting
//		• Derived operations: determinant, rank, full-rank test, solve, invert
//		• Views: read-only unit-lower L and upper U windows over one buffer
//
// ✨ Why choose it?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, stable pivot tie-breaking
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/    — dense storage, capability interfaces, numeric policy,
//	             dot-product and triangular-substitution primitives
//	decompose/ — the LU engine, pivot bookkeeping and the derived
//	             determinant/rank/solve/invert operations
//
// Quick sketch:
//
//	A ──copy──▶ working buffer ──factor──▶ L\U (one buffer) + pivot order
//	                                        │
//	            determinant ◀── diagonal ───┤
//	            solve/invert ◀── substitution primitives
//
// A single decomposition session owns its working buffer and pivot state;
// use independent instances for concurrent factorizations.
package ojalgo

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/MootezSaaD/ojAlgo/matrix"
)

// hide WRAPS any Source to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths in kernels
// that fast-path on the concrete type.
type hide struct{ matrix.Source }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Source, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// FromRows BUILDS a *Dense from row slices (all rows must share one length).
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, len(rows), len(rows[0]))
	for i, r := range rows {
		if len(r) != len(rows[0]) {
			t.Fatalf("FromRows: ragged row %d", i)
		}
		for j, v := range r {
			MustSet(t, m, i, j, v)
		}
	}

	return m
}

// CompareClose FAILS the test unless every element of got matches want
// within tol (absolute).
func CompareClose(t *testing.T, want [][]float64, got matrix.Source, tol float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d", len(want), len(want[0]), got.Rows(), got.Cols())
	}
	var diff float64
	for i := range want {
		for j := range want[i] {
			diff = MustAt(t, got, i, j) - want[i][j]
			if diff < 0 {
				diff = -diff
			}
			if diff > tol {
				t.Fatalf("element [%d,%d]: want %v, got %v (tol %v)", i, j, want[i][j], MustAt(t, got, i, j), tol)
			}
		}
	}
}

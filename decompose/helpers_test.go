// SPDX-License-Identifier: MIT
// Package decompose_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and reference computations
//     (naive multiplication, cofactor determinants) for the LU suites.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package decompose_test

import (
	"testing"

	"github.com/MootezSaaD/ojAlgo/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Source to hide its concrete type from type assertions,
// forcing the interface-fallback ingestion path in Decompose.
type hide struct{ matrix.Source }

// fromRows BUILDS a *Dense from row slices (all rows must share one length).
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, r := range rows {
		require.Len(t, r, len(rows[0]), "ragged row %d", i)
		for j, v := range r {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// at READS (i,j) or fails the test.
func at(t *testing.T, m matrix.Source, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// mul MULTIPLIES a×b naively via the Source interface (reference only;
// matrix multiplication is deliberately not part of the public surface).
func mul(t *testing.T, a, b matrix.Source) [][]float64 {
	t.Helper()
	require.Equal(t, a.Cols(), b.Rows(), "inner dimensions must match")

	out := make([][]float64, a.Rows())
	var i, j, k int
	var sum float64
	for i = 0; i < a.Rows(); i++ {
		out[i] = make([]float64, b.Cols())
		for j = 0; j < b.Cols(); j++ {
			sum = 0
			for k = 0; k < a.Cols(); k++ {
				sum += at(t, a, i, k) * at(t, b, k, j)
			}
			out[i][j] = sum
		}
	}

	return out
}

// permuteRows APPLIES the pivot order to a: row i of the result is row
// order[i] of a (that is, P·A for the permutation implied by the order).
func permuteRows(t *testing.T, a matrix.Source, order []int) [][]float64 {
	t.Helper()
	require.Len(t, order, a.Rows())

	out := make([][]float64, a.Rows())
	for i, src := range order {
		out[i] = make([]float64, a.Cols())
		for j := 0; j < a.Cols(); j++ {
			out[i][j] = at(t, a, src, j)
		}
	}

	return out
}

// cofactorDet COMPUTES the determinant by cofactor expansion along the
// first row. Exponential; reference for small (≤4×4) matrices only.
func cofactorDet(a [][]float64) float64 {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}

	det := 0.0
	sign := 1.0
	for j := 0; j < n; j++ {
		// minor of (0, j)
		minor := make([][]float64, 0, n-1)
		for i := 1; i < n; i++ {
			row := make([]float64, 0, n-1)
			for k := 0; k < n; k++ {
				if k != j {
					row = append(row, a[i][k])
				}
			}
			minor = append(minor, row)
		}
		det += sign * a[0][j] * cofactorDet(minor)
		sign = -sign
	}

	return det
}

// requireClose FAILS the test unless every element of got matches want
// within tol (absolute).
func requireClose(t *testing.T, want [][]float64, got matrix.Source, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "col count")
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], at(t, got, i, j), tol, "element [%d,%d]", i, j)
		}
	}
}

// requireCloseSlices FAILS the test unless two row-slice matrices match
// within tol (absolute).
func requireCloseSlices(t *testing.T, want, got [][]float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), len(got), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), len(got[i]), "col count in row %d", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], got[i][j], tol, "element [%d,%d]", i, j)
		}
	}
}

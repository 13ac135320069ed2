// Package matrix_test contains unit tests for the numeric policy (the
// shared smallness predicate and its configuration constant).
package matrix_test

import (
	"math"
	"testing"

	"github.com/MootezSaaD/ojAlgo/matrix"
)

func TestIsSmall(t *testing.T) {
	for _, tc := range []struct {
		name       string
		comparedTo float64
		value      float64
		want       bool
	}{
		{"zero vs zero", 0, 0, true},
		{"zero reference rejects nonzero", 0, 1e-300, false},
		{"well below tolerance", 1, 1e-12, true},
		{"exactly at tolerance", 1, matrix.DefaultEpsilon, true},
		{"above tolerance", 1, 1e-6, false},
		{"sign of value ignored", 1, -1e-12, true},
		{"sign of reference ignored", -1, 1e-12, true},
		{"scales with reference", 1e6, 1e-4, true},
		{"NaN value never small", 1, math.NaN(), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := matrix.IsSmall(tc.comparedTo, tc.value); got != tc.want {
				t.Fatalf("IsSmall(%v, %v): want %v, got %v", tc.comparedTo, tc.value, tc.want, got)
			}
		})
	}
}

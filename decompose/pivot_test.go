// Package decompose_test contains unit tests for the pivot bookkeeping.
package decompose_test

import (
	"testing"

	"github.com/MootezSaaD/ojAlgo/decompose"
	"github.com/stretchr/testify/require"
)

func TestNewPivot_Identity(t *testing.T) {
	p := decompose.NewPivot(4)

	require.Equal(t, []int{0, 1, 2, 3}, p.Order())
	require.Equal(t, 1, p.Signum())
	require.False(t, p.IsModified())
}

func TestPivot_Exchange(t *testing.T) {
	p := decompose.NewPivot(3)

	p.Exchange(0, 2)
	require.Equal(t, []int{2, 1, 0}, p.Order())
	require.Equal(t, -1, p.Signum())
	require.True(t, p.IsModified())

	// A second exchange flips the sign back; modified stays sticky.
	p.Exchange(1, 2)
	require.Equal(t, []int{2, 0, 1}, p.Order())
	require.Equal(t, 1, p.Signum())
	require.True(t, p.IsModified())
}

func TestPivot_OrderIsDefensiveCopy(t *testing.T) {
	p := decompose.NewPivot(2)

	got := p.Order()
	got[0] = 99
	require.Equal(t, []int{0, 1}, p.Order(), "internal order must not be mutable through the copy")
}

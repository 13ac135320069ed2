// SPDX-License-Identifier: MIT

// Package decompose: pivot bookkeeping for row exchanges.
//
// Purpose:
//   - Record the permutation applied to rows during factorization and its sign.
//   - Pure bookkeeping: no failure modes, no numeric work.

package decompose

// Pivot records the row permutation of one factorization session.
//   - order[i] is the original row index now occupying position i.
//   - sign is ±1 and flips on every exchange (used by the determinant).
//   - modified is true iff at least one exchange occurred.
//
// A fresh Pivot is created at the start of every factorization — even when
// pivoting is disabled, so the derived operations always have a (identity)
// permutation to read. Once factorization completes the Pivot is never
// mutated again.
type Pivot struct {
	order    []int // order[i] = original row index now at position i
	sign     int   // ±1, flips on each exchange
	modified bool  // true iff at least one exchange occurred
}

// NewPivot returns the identity permutation over n rows: order [0..n),
// sign +1, unmodified.
// Complexity: Time O(n), Space O(n).
func NewPivot(n int) *Pivot {
	order := make([]int, n)
	for i := range order { // fixed order guarantees reproducibility
		order[i] = i
	}

	return &Pivot{order: order, sign: 1}
}

// Exchange swaps order[i] and order[j], flips the sign and marks the pivot
// as modified. Callers only invoke it when i != j (the engine guards the
// no-op case, so every call really changes the permutation).
// Complexity: O(1).
func (p *Pivot) Exchange(i, j int) {
	p.order[i], p.order[j] = p.order[j], p.order[i]
	p.sign = -p.sign
	p.modified = true
}

// Signum returns the current sign of the permutation (±1).
// Complexity: O(1).
func (p *Pivot) Signum() int { return p.sign }

// Order returns the permutation as an ordered sequence of original row
// indices. The slice is a defensive copy: the internal record stays
// immutable after factorization.
// Complexity: Time O(n), Space O(n).
func (p *Pivot) Order() []int {
	cp := make([]int, len(p.order))
	copy(cp, p.order)

	return cp
}

// IsModified reports whether at least one exchange occurred.
// Complexity: O(1).
func (p *Pivot) IsModified() bool { return p.modified }

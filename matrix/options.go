// SPDX-License-Identifier: MIT

// Package matrix: numeric policy — documented defaults and the shared
// smallness predicate.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Single source of truth: every tolerance used across the module is an
//     exported constant defined here.
//   - Safe by construction: the policy is consulted by Set/ingestion and by
//     the rank/full-rank decisions in the decompose package.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the relative tolerance used by IsSmall. A value is
	// negligible when its magnitude does not exceed the reference magnitude
	// scaled by this constant.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set
	// and ingestion (CopyInto targets inherit the destination's policy).
	DefaultValidateNaNInf = true
)

// IsSmall reports whether value is negligible relative to comparedTo.
//
// Behavior highlights:
//   - |value| <= |comparedTo| * DefaultEpsilon.
//   - comparedTo == 0 degenerates to an exact-zero test on value.
//   - NaN in either operand yields false (never silently small).
//
// Inputs:
//   - comparedTo: reference magnitude (sign ignored).
//   - value: candidate magnitude (sign ignored).
//
// Determinism:
//   - Pure function of its arguments; no state.
//
// Complexity:
//   - Time O(1), Space O(1).
func IsSmall(comparedTo, value float64) bool {
	return math.Abs(value) <= math.Abs(comparedTo)*DefaultEpsilon
}

// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide a single source of truth for length and shape checks.
//   - Keep kernels minimal by delegating guard logic here.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//     with their own operation name.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package linalg

import "math"

// ValidateSameLen ensures a and b have equal length.
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func ValidateSameLen(a, b Vector) error {
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateUniformLen ensures every vector in vs has the length of vs[0].
// Empty lists pass; emptiness policy belongs to the caller.
// Complexity: O(len(vs)).
func ValidateUniformLen(vs []Vector) error {
	if len(vs) == 0 {
		return nil
	}
	n := len(vs[0])
	for _, v := range vs[1:] {
		if len(v) != n {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// ValidateRectangular checks the Matrix invariant: all rows equal length.
// A matrix without rows is rectangular. Returns ErrNotRectangular.
// Complexity: O(rows).
func ValidateRectangular(m Matrix) error {
	if ValidateUniformLen(m) != nil {
		return ErrNotRectangular
	}

	return nil
}

// AllClose reports whether a and b have equal length and every pair of
// elements differs by at most tol. NaN never compares close.
// Complexity: O(n).
func AllClose(a, b Vector, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= tol) {
			return false
		}
	}

	return true
}

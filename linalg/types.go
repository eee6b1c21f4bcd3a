// SPDX-License-Identifier: MIT

// Package linalg: value types.
// Vector and Matrix are plain slice types so callers can build them from
// literals. Operations treat them as values: inputs are never written to and
// every result is freshly allocated.
package linalg

// Vector is an ordered, fixed-length sequence of reals. Index = dimension.
type Vector []float64

// Matrix is an ordered sequence of rows.
// Invariant: every row has the same length (rectangularity). NewMatrix and
// ValidateRectangular enforce it; Shape trusts it.
type Matrix []Vector

// Clone returns an independent copy of v. A nil vector clones to nil.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	cp := make(Vector, len(v))
	copy(cp, v)

	return cp
}

// Clone returns a deep copy of m; no row is shared with the original.
// Complexity: O(rows*cols).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	cp := make(Matrix, len(m))
	for i, row := range m {
		cp[i] = row.Clone()
	}

	return cp
}

// NewMatrix assembles a Matrix from rows, copying each one.
// MAIN DESCRIPTION:
//   - Public constructor that enforces rectangularity up front, so later
//     row/column/shape queries can trust the invariant.
//
// Implementation:
//   - Stage 1: validate that all rows share the first row's length.
//   - Stage 2: deep-copy rows so the caller's slices stay unaliased.
//
// Errors:
//   - ErrNotRectangular when any row length differs from the first.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewMatrix(rows ...Vector) (Matrix, error) {
	m := Matrix(rows)
	if err := ValidateRectangular(m); err != nil {
		return nil, opErrorf(opNewMatrix, err)
	}

	return m.Clone(), nil
}

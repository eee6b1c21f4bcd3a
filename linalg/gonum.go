// SPDX-License-Identifier: MIT

// Package linalg: interop with gonum.
// ToDense/FromDense move values across the boundary to gonum.org/v1/gonum/mat
// for callers that outgrow this package (factorizations, solvers). Both
// directions copy; no storage is shared.
package linalg

import "gonum.org/v1/gonum/mat"

const opToDense = "ToDense"

// ToDense copies a rectangular, non-empty m into a row-major *mat.Dense.
//
// Errors:
//   - ErrNotRectangular when rows differ in length.
//   - ErrInvalidDimensions when m has no rows or no columns (gonum rejects
//     zero-sized matrices by panicking, so the check happens here).
//
// Complexity: O(rows*cols).
func ToDense(m Matrix) (*mat.Dense, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, opErrorf(opToDense, err)
	}
	r, c := Shape(m)
	if r == 0 || c == 0 {
		return nil, opErrorf(opToDense, ErrInvalidDimensions)
	}

	data := make([]float64, 0, r*c)
	for _, row := range m {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}

// FromDense copies any gonum matrix into a Matrix, row by row.
func FromDense(a mat.Matrix) Matrix {
	r, c := a.Dims()
	out := make(Matrix, r)
	var i, j int
	for i = 0; i < r; i++ {
		row := make(Vector, c)
		for j = 0; j < c; j++ {
			row[j] = a.At(i, j)
		}
		out[i] = row
	}

	return out
}

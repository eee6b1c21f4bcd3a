// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Shape queries (Shape), row/column extraction (Row, Col) and
//     construction (MakeMatrix, Identity).
//
// Conventions:
//   - Row-major everywhere: the first index is the row, the second the column.
//   - MakeMatrix runs rows in the outer loop and cols in the inner loop and
//     calls fn(row, col).

package linalg

const (
	opNewMatrix  = "NewMatrix"
	opRow        = "Row"
	opCol        = "Col"
	opMakeMatrix = "MakeMatrix"
	opIdentity   = "Identity"
)

// Shape returns the row count and the length of the first row (0 when m
// has no rows). It does not validate rectangularity.
// Complexity: O(1).
func Shape(m Matrix) (rows, cols int) {
	rows = len(m)
	if rows > 0 {
		cols = len(m[0])
	}

	return rows, cols
}

// Row returns a copy of row i (zero-based).
// Errors: ErrOutOfRange when i is outside [0, rows).
func Row(m Matrix, i int) (Vector, error) {
	if i < 0 || i >= len(m) {
		return nil, opErrorf(opRow, ErrOutOfRange)
	}

	return m[i].Clone(), nil
}

// Col collects element j of every row into a new Vector.
// Implementation:
//   - Stage 1: single pass over rows; each row is bounds-checked on its own,
//     so a ragged matrix fails instead of panicking.
//
// Errors:
//   - ErrOutOfRange when j < 0 or j is outside any row.
//
// Complexity:
//   - Time O(rows), Space O(rows).
func Col(m Matrix, j int) (Vector, error) {
	if j < 0 {
		return nil, opErrorf(opCol, ErrOutOfRange)
	}
	out := make(Vector, len(m))
	for i, row := range m {
		if j >= len(row) {
			return nil, opErrorf(opCol, ErrOutOfRange)
		}
		out[i] = row[j]
	}

	return out, nil
}

// MakeMatrix builds a rows×cols matrix whose cell (i, j) is fn(i, j).
// MAIN DESCRIPTION:
//   - Generator-driven constructor; the result is rectangular by construction.
//
// Implementation:
//   - Stage 1: validate rows >= 0, cols >= 0 and fn != nil.
//   - Stage 2: row-major fill, rows outer, cols inner.
//
// Behavior highlights:
//   - rows == 0 yields an empty (non-nil) Matrix; cols == 0 yields rows empty rows.
//   - fn is invoked exactly rows*cols times in row-major order.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
//   - ErrNilGenerator when fn is nil.
//
// Complexity:
//   - Time O(rows*cols) calls to fn, Space O(rows*cols).
func MakeMatrix(rows, cols int, fn func(i, j int) float64) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, opErrorf(opMakeMatrix, ErrInvalidDimensions)
	}
	if fn == nil {
		return nil, opErrorf(opMakeMatrix, ErrNilGenerator)
	}

	m := make(Matrix, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		row := make(Vector, cols)
		for j = 0; j < cols; j++ {
			row[j] = fn(i, j)
		}
		m[i] = row
	}

	return m, nil
}

// Identity returns the n×n identity matrix (1 on the diagonal, 0 elsewhere).
// Identity(0) is an empty matrix.
// Errors: ErrInvalidDimensions for n < 0.
func Identity(n int) (Matrix, error) {
	if n < 0 {
		return nil, opErrorf(opIdentity, ErrInvalidDimensions)
	}

	// n >= 0 and the generator is non-nil, so MakeMatrix cannot fail here.
	m, _ := MakeMatrix(n, n, identityCell)

	return m, nil
}

// identityCell is the Identity generator: 1 on the diagonal, 0 elsewhere.
func identityCell(i, j int) float64 {
	if i == j {
		return 1
	}

	return 0
}

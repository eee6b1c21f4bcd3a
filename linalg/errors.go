// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across linalg.
// Every operation returns one of these (wrapped with the operation name) and
// tests check them via errors.Is. No operation panics on user input.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for easy grepping. Operations
// wrap the sentinel once at the detection site with opErrorf, so a returned
// error reads "Add: linalg: dimension mismatch".
//
// ERROR PRIORITY (enforced in tests):
// shape arguments -> empty input -> dimension mismatch -> index range.

var (
	// ErrDimensionMismatch indicates operands whose lengths must agree do not,
	// e.g. Add on vectors of length 2 and 3, or a ragged list in ComponentwiseSum.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside matrix bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrEmptyInput is returned by list reductions (ComponentwiseSum, VectorMean)
	// called with zero vectors.
	ErrEmptyInput = errors.New("linalg: empty input")

	// ErrNotRectangular signals a matrix whose rows do not all share one length.
	ErrNotRectangular = errors.New("linalg: matrix is not rectangular")

	// ErrInvalidDimensions indicates a negative requested size, or an empty
	// matrix handed to a consumer that needs at least one cell.
	ErrInvalidDimensions = errors.New("linalg: invalid dimensions")

	// ErrNilGenerator is returned by MakeMatrix when the cell generator is nil.
	ErrNilGenerator = errors.New("linalg: nil generator")
)

// ErrIndexOutOfRange names the same condition as ErrOutOfRange.
var ErrIndexOutOfRange = ErrOutOfRange

// opErrorf tags err with the operation that detected it.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

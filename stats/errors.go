// SPDX-License-Identifier: MIT
// Package stats: sentinel error set.
// Operations wrap these with their name ("Variance: stats: ...") and callers
// match them via errors.Is. No function panics on user input.

package stats

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecstat/linalg"
)

var (
	// ErrEmptyDataset is returned when a statistic needs at least one element.
	ErrEmptyDataset = errors.New("stats: empty dataset")

	// ErrInsufficientData is returned when a sample statistic (Variance and
	// everything built on it) gets fewer than two observations.
	ErrInsufficientData = errors.New("stats: need at least two observations")

	// ErrInvalidArgument is returned for a quantile probability outside [0, 1]
	// (NaN included).
	ErrInvalidArgument = errors.New("stats: invalid argument")
)

// ErrDimensionMismatch is linalg.ErrDimensionMismatch, so one errors.Is
// matches whichever layer detected the unequal lengths.
var ErrDimensionMismatch = linalg.ErrDimensionMismatch

// statsErrorf tags err with the operation that detected it.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

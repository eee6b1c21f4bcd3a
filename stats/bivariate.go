// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Paired statistics over two equal-length datasets: Covariance and
//     Pearson Correlation.
//
// Error priority:
//   - length mismatch -> too few observations. Mismatch is reported first so
//     the caller learns about the structural problem before the size problem.

package stats

import (
	"math"

	"github.com/katalvlaran/vecstat/linalg"
)

const (
	opCovariance  = "Covariance"
	opCorrelation = "Correlation"
)

// validatePaired applies the paired-statistic preconditions in priority order.
func validatePaired(ds1, ds2 []float64) error {
	if err := linalg.ValidateSameLen(ds1, ds2); err != nil {
		return err
	}
	if len(ds1) < 2 {
		return ErrInsufficientData
	}

	return nil
}

// Covariance returns the sample covariance
// Dot(MeanDiff(ds1), MeanDiff(ds2)) / (n - 1).
//
// Behavior highlights:
//   - Covariance(ds, ds) equals Variance(ds) exactly (same kernels, same order).
//   - A constant side yields exactly 0.
//
// Errors:
//   - ErrDimensionMismatch when the lengths differ.
//   - ErrInsufficientData when n < 2.
//
// Complexity:
//   - Time O(n), Space O(n).
func Covariance(ds1, ds2 []float64) (float64, error) {
	if err := validatePaired(ds1, ds2); err != nil {
		return 0, statsErrorf(opCovariance, err)
	}

	return covariance(ds1, ds2), nil
}

// covariance is the unchecked kernel; equal lengths, n >= 2.
func covariance(ds1, ds2 []float64) float64 {
	// Both centered vectors have len(ds1) elements, so Dot cannot fail.
	cross, _ := linalg.Dot(meanDiff(ds1), meanDiff(ds2))

	return cross / float64(len(ds1)-1)
}

// Correlation returns the Pearson coefficient Covariance / (sd1 * sd2).
//
// Behavior highlights:
//   - Returns exactly 0 when either standard deviation is <= 0 (a constant
//     dataset), instead of dividing by zero.
//   - The result is clamped into [-1, 1] to absorb rounding in sd1*sd2.
//
// Errors:
//   - ErrDimensionMismatch, ErrInsufficientData (as Covariance).
func Correlation(ds1, ds2 []float64) (float64, error) {
	if err := validatePaired(ds1, ds2); err != nil {
		return 0, statsErrorf(opCorrelation, err)
	}

	sd1 := math.Sqrt(variance(ds1))
	sd2 := math.Sqrt(variance(ds2))
	if sd1 <= 0 || sd2 <= 0 {
		return 0, nil
	}

	return clampUnit(covariance(ds1, ds2) / (sd1 * sd2)), nil
}

// clampUnit limits r to [-1, 1]. NaN passes through.
func clampUnit(r float64) float64 {
	switch {
	case r > 1:
		return 1
	case r < -1:
		return -1
	default:
		return r
	}
}

// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Measures of spread: DataRange, MeanDiff, Variance, StandardDeviation,
//     InterquartileRange.
//   - Variance is composed from linalg kernels: center with linalg.Subtract,
//     reduce with linalg.SumOfSquares, divide by n-1 (Bessel's correction).
//   - Exported functions validate once and wrap once; the lowercase kernels
//     assume their preconditions hold.

package stats

import (
	"math"
	"slices"

	"github.com/katalvlaran/vecstat/linalg"
)

const (
	opDataRange          = "DataRange"
	opMeanDiff           = "MeanDiff"
	opVariance           = "Variance"
	opStandardDeviation  = "StandardDeviation"
	opInterquartileRange = "InterquartileRange"
)

// Quartile probabilities used by InterquartileRange.
const (
	lowerQuartile = 0.25
	upperQuartile = 0.75
)

// DataRange returns max(ds) - min(ds).
// Errors: ErrEmptyDataset.
func DataRange(ds []float64) (float64, error) {
	if len(ds) == 0 {
		return 0, statsErrorf(opDataRange, ErrEmptyDataset)
	}

	return slices.Max(ds) - slices.Min(ds), nil
}

// MeanDiff centers ds: out[i] = ds[i] - Mean(ds).
// Implementation:
//   - Stage 1: reject empty input.
//   - Stage 2: constant data centers to an all-zero vector. The rounded mean
//     of a non-representable constant can miss the value by one ulp.
//   - Stage 3: broadcast the mean into a vector of len(ds) and subtract.
//
// Errors:
//   - ErrEmptyDataset.
//
// Complexity:
//   - Time O(n), Space O(n).
func MeanDiff(ds []float64) (linalg.Vector, error) {
	if len(ds) == 0 {
		return nil, statsErrorf(opMeanDiff, ErrEmptyDataset)
	}

	return meanDiff(ds), nil
}

// meanDiff is the unchecked kernel behind MeanDiff; len(ds) > 0.
func meanDiff(ds []float64) linalg.Vector {
	if isConstant(ds) {
		return make(linalg.Vector, len(ds))
	}
	// Equal lengths by construction, so Subtract cannot fail.
	centered, _ := linalg.Subtract(ds, broadcast(mean(ds), len(ds)))

	return centered
}

// isConstant reports whether every element equals ds[0]; len(ds) > 0.
func isConstant(ds []float64) bool {
	for _, x := range ds[1:] {
		if x != ds[0] {
			return false
		}
	}

	return true
}

// broadcast returns a vector of n copies of x.
func broadcast(x float64, n int) linalg.Vector {
	v := make(linalg.Vector, n)
	for i := range v {
		v[i] = x
	}

	return v
}

// Variance returns the sample variance Σ(x - mean)² / (n - 1).
// Constant data yields exactly 0.
// Errors: ErrInsufficientData when len(ds) < 2.
func Variance(ds []float64) (float64, error) {
	if len(ds) < 2 {
		return 0, statsErrorf(opVariance, ErrInsufficientData)
	}

	return variance(ds), nil
}

// variance is the unchecked kernel behind Variance; len(ds) >= 2.
func variance(ds []float64) float64 {
	return linalg.SumOfSquares(meanDiff(ds)) / float64(len(ds)-1)
}

// StandardDeviation returns sqrt(Variance(ds)).
// Errors: ErrInsufficientData when len(ds) < 2.
func StandardDeviation(ds []float64) (float64, error) {
	if len(ds) < 2 {
		return 0, statsErrorf(opStandardDeviation, ErrInsufficientData)
	}

	return math.Sqrt(variance(ds)), nil
}

// InterquartileRange returns Quantile(ds, 0.75) - Quantile(ds, 0.25).
// Errors: ErrEmptyDataset.
func InterquartileRange(ds []float64) (float64, error) {
	if len(ds) == 0 {
		return 0, statsErrorf(opInterquartileRange, ErrEmptyDataset)
	}

	sorted := sortedCopy(ds)

	return quantile(sorted, upperQuartile) - quantile(sorted, lowerQuartile), nil
}

// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Measures of location: Mean, Median, Quantile, Mode, plus Min and Max.
//   - Order statistics work on a sorted copy; the caller's slice is never
//     reordered.

package stats

import (
	"math"
	"slices"
)

const (
	opMean     = "Mean"
	opMedian   = "Median"
	opQuantile = "Quantile"
	opMode     = "Mode"
	opMin      = "Min"
	opMax      = "Max"
)

// Mean returns the arithmetic mean of ds.
// Errors: ErrEmptyDataset.
func Mean(ds []float64) (float64, error) {
	if len(ds) == 0 {
		return 0, statsErrorf(opMean, ErrEmptyDataset)
	}

	return mean(ds), nil
}

// mean is the unchecked kernel; len(ds) > 0.
func mean(ds []float64) float64 {
	var s float64
	for _, x := range ds {
		s += x
	}

	return s / float64(len(ds))
}

// sortedCopy returns an ascending copy of ds.
func sortedCopy(ds []float64) []float64 {
	cp := slices.Clone(ds)
	slices.Sort(cp)

	return cp
}

// Median returns the middle value of sorted ds, or the mean of the two
// middle values when len(ds) is even.
// Errors: ErrEmptyDataset.
// Complexity: O(n log n) for the sort.
func Median(ds []float64) (float64, error) {
	n := len(ds)
	if n == 0 {
		return 0, statsErrorf(opMedian, ErrEmptyDataset)
	}

	s := sortedCopy(ds)
	mid := (n - 1) / 2
	if n%2 == 1 {
		return s[mid], nil
	}

	return (s[mid] + s[mid+1]) / 2, nil
}

// Quantile returns the element at sorted position ceil(len(ds)*p).
// MAIN DESCRIPTION:
//   - Nearest-rank style quantile without interpolation.
//
// Behavior highlights:
//   - The index is clamped to len(ds)-1, so p == 1 yields the maximum and
//     p == 0 the minimum.
//   - Monotone in p.
//
// Errors:
//   - ErrInvalidArgument when p is NaN or outside [0, 1] (checked first).
//   - ErrEmptyDataset.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func Quantile(ds []float64, p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, statsErrorf(opQuantile, ErrInvalidArgument)
	}
	n := len(ds)
	if n == 0 {
		return 0, statsErrorf(opQuantile, ErrEmptyDataset)
	}

	return quantile(sortedCopy(ds), p), nil
}

// quantile is the unchecked kernel: sorted is ascending and non-empty,
// p is in [0, 1].
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	idx := int(math.Ceil(float64(n) * p))
	if idx > n-1 {
		idx = n - 1
	}

	return sorted[idx]
}

// Mode returns every value that reaches the highest frequency in ds, in
// ascending order. NaN values never equal each other, so each NaN counts once.
// Errors: ErrEmptyDataset.
func Mode(ds []float64) ([]float64, error) {
	if len(ds) == 0 {
		return nil, statsErrorf(opMode, ErrEmptyDataset)
	}

	counts := make(map[float64]int, len(ds))
	best := 0
	for _, x := range ds {
		counts[x]++
		if counts[x] > best {
			best = counts[x]
		}
	}

	modes := make([]float64, 0, 1)
	for x, c := range counts {
		if c == best {
			modes = append(modes, x)
		}
	}
	slices.Sort(modes)

	return modes, nil
}

// Min returns the smallest element of ds.
// Errors: ErrEmptyDataset.
func Min(ds []float64) (float64, error) {
	if len(ds) == 0 {
		return 0, statsErrorf(opMin, ErrEmptyDataset)
	}

	return slices.Min(ds), nil
}

// Max returns the largest element of ds.
// Errors: ErrEmptyDataset.
func Max(ds []float64) (float64, error) {
	if len(ds) == 0 {
		return 0, statsErrorf(opMax, ErrEmptyDataset)
	}

	return slices.Max(ds), nil
}

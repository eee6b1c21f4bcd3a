// Package stats computes descriptive statistics over one-dimensional
// datasets ([]float64), built on the linalg reductions.
//
// Location: Mean, Median, Quantile, Mode, Min, Max.
// Spread:   DataRange, MeanDiff, Variance, StandardDeviation, InterquartileRange.
// Paired:   Covariance, Correlation.
// Bundle:   Describe.
//
// Variance and Covariance are sample estimators (divide by n-1). Quantile
// uses the nearest-rank position ceil(n*p), clamped to the last element.
// Correlation returns 0 when either dataset has zero spread.
//
// Inputs are never modified; order statistics sort a private copy. Errors are
// sentinels (ErrEmptyDataset, ErrInsufficientData, ErrInvalidArgument,
// ErrDimensionMismatch) matched with errors.Is.
//
//	sd, err := stats.StandardDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9})
package stats

// SPDX-License-Identifier: MIT
// Package stats_test contains unit tests for the spread statistics.
package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecstat/linalg"
	"github.com/katalvlaran/vecstat/stats"
	"github.com/stretchr/testify/require"
)

func TestDataRange(t *testing.T) {
	t.Parallel()

	got, err := stats.DataRange([]float64{4, -2, 9, 0})
	require.NoError(t, err)
	require.Equal(t, 11.0, got)

	got, err = stats.DataRange([]float64{3})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)

	_, err = stats.DataRange(nil)
	require.ErrorIs(t, err, stats.ErrEmptyDataset)
}

func TestMeanDiff(t *testing.T) {
	t.Parallel()

	ds := []float64{1, 2, 3, 6}
	got, err := stats.MeanDiff(ds)
	require.NoError(t, err)
	require.Equal(t, linalg.Vector{-2, -1, 0, 3}, got)
	require.Equal(t, []float64{1, 2, 3, 6}, ds)

	// Centered data sums to zero.
	var s float64
	for _, x := range got {
		s += x
	}
	require.InDelta(t, 0, s, epsTight)

	// Constant data centers to exact zeros even when the mean rounds.
	got, err = stats.MeanDiff([]float64{0.1, 0.1, 0.1})
	require.NoError(t, err)
	require.Equal(t, linalg.Vector{0, 0, 0}, got)

	_, err = stats.MeanDiff(nil)
	require.ErrorIs(t, err, stats.ErrEmptyDataset)
}

func TestVariance(t *testing.T) {
	t.Parallel()

	// Σ(x-5)² = 32 over n-1 = 7.
	ds := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	v, err := stats.Variance(ds)
	require.NoError(t, err)
	require.InDelta(t, 32.0/7.0, v, epsTight)

	sd, err := stats.StandardDeviation(ds)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(32.0/7.0), sd, epsTight)

	v, err = stats.Variance([]float64{1, 3})
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = stats.Variance([]float64{3, 3, 3, 3})
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestVariance_InsufficientData(t *testing.T) {
	t.Parallel()

	for _, ds := range [][]float64{nil, {}, {1}} {
		_, err := stats.Variance(ds)
		require.ErrorIs(t, err, stats.ErrInsufficientData, "ds=%v", ds)

		_, err = stats.StandardDeviation(ds)
		require.ErrorIs(t, err, stats.ErrInsufficientData, "ds=%v", ds)
	}
}

func TestInterquartileRange(t *testing.T) {
	t.Parallel()

	// sorted: [1 1 2 3 4 5 6 9]; q(0.75)=6, q(0.25)=2.
	got, err := stats.InterquartileRange([]float64{3, 1, 4, 1, 5, 9, 2, 6})
	require.NoError(t, err)
	require.Equal(t, 4.0, got)

	got, err = stats.InterquartileRange([]float64{7})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)

	_, err = stats.InterquartileRange(nil)
	require.ErrorIs(t, err, stats.ErrEmptyDataset)
}

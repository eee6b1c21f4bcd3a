// SPDX-License-Identifier: MIT
// Package stats_test cross-checks the statistics against gonum's stat and
// floats packages on random data.
package stats_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecstat/linalg"
	"github.com/katalvlaran/vecstat/stats"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// relTol scales an absolute tolerance by the magnitude of want.
func relTol(want float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(want))
}

func TestAgainstGonum_Univariate(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(31337))
	for n := 2; n <= 64; n++ {
		ds := randDataset(rng, n)

		m, err := stats.Mean(ds)
		require.NoError(t, err)
		want := stat.Mean(ds, nil)
		require.InDelta(t, want, m, relTol(want), "mean n=%d", n)

		v, err := stats.Variance(ds)
		require.NoError(t, err)
		want = stat.Variance(ds, nil)
		require.InDelta(t, want, v, relTol(want), "variance n=%d", n)

		sd, err := stats.StandardDeviation(ds)
		require.NoError(t, err)
		want = stat.StdDev(ds, nil)
		require.InDelta(t, want, sd, relTol(want), "stddev n=%d", n)

		lo, err := stats.Min(ds)
		require.NoError(t, err)
		require.Equal(t, floats.Min(ds), lo)

		rg, err := stats.DataRange(ds)
		require.NoError(t, err)
		require.Equal(t, floats.Max(ds)-floats.Min(ds), rg)
	}
}

func TestAgainstGonum_Bivariate(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8080))
	for n := 2; n <= 64; n++ {
		a := randDataset(rng, n)
		b := randDataset(rng, n)

		cov, err := stats.Covariance(a, b)
		require.NoError(t, err)
		want := stat.Covariance(a, b, nil)
		require.InDelta(t, want, cov, relTol(want), "covariance n=%d", n)

		r, err := stats.Correlation(a, b)
		require.NoError(t, err)
		want = stat.Correlation(a, b, nil)
		require.InDelta(t, want, r, 1e-9, "correlation n=%d", n)
	}
}

// TestAgainstGonum_Kernels checks the linalg reductions the statistics rely on.
func TestAgainstGonum_Kernels(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for n := 1; n <= 64; n++ {
		a := randDataset(rng, n)
		b := randDataset(rng, n)

		d, err := linalg.Dot(a, b)
		require.NoError(t, err)
		want := floats.Dot(a, b)
		require.InDelta(t, want, d, relTol(want), "dot n=%d", n)

		dist, err := linalg.Distance(a, b)
		require.NoError(t, err)
		want = floats.Distance(a, b, 2)
		require.InDelta(t, want, dist, relTol(want), "distance n=%d", n)

		want = floats.Norm(a, 2)
		require.InDelta(t, want, linalg.Magnitude(a), relTol(want), "norm n=%d", n)
	}
}

// SPDX-License-Identifier: MIT
// Package linalg_test contains round-trip tests for the gonum interop.
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/vecstat/linalg"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToDense(t *testing.T) {
	t.Parallel()

	m := linalg.Matrix{{1, 2, 3}, {4, 5, 6}}
	d, err := linalg.ToDense(m)
	require.NoError(t, err)

	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 4.0, d.At(1, 0))
	require.Equal(t, 3.0, d.At(0, 2))

	// No shared storage with the source rows.
	d.Set(0, 0, 100)
	require.Equal(t, 1.0, m[0][0])
}

func TestToDense_Errors(t *testing.T) {
	t.Parallel()

	_, err := linalg.ToDense(nil)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)

	_, err = linalg.ToDense(linalg.Matrix{{}, {}})
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)

	_, err = linalg.ToDense(linalg.Matrix{{1, 2}, {3}})
	require.ErrorIs(t, err, linalg.ErrNotRectangular)
}

func TestFromDense_RoundTrip(t *testing.T) {
	t.Parallel()

	m := linalg.Matrix{{1, -2}, {0.5, 4}, {7, 8}}
	d, err := linalg.ToDense(m)
	require.NoError(t, err)
	require.Equal(t, m, linalg.FromDense(d))

	// gonum's transpose view converts like any other mat.Matrix.
	require.Equal(t, linalg.Matrix{{1, 0.5, 7}, {-2, 4, 8}}, linalg.FromDense(d.T()))
}

// TestIdentity_GonumProduct multiplies by Identity through gonum and expects
// the operand back unchanged.
func TestIdentity_GonumProduct(t *testing.T) {
	t.Parallel()

	a, err := linalg.ToDense(linalg.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	idM, err := linalg.Identity(3)
	require.NoError(t, err)
	id, err := linalg.ToDense(idM)
	require.NoError(t, err)

	var prod mat.Dense
	prod.Mul(a, id)
	require.True(t, mat.Equal(a, &prod))
}

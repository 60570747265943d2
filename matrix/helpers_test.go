// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures for the algebra and fill tests.
//   - hide wraps a Matrix so operations take the At/Set fallback path.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

// hide masks the concrete *Dense type so code under test cannot take the
// flat-slice fast path.
type hide struct{ matrix.Matrix }

// grid builds a matrix from textual cells or fails the test.
func grid(t *testing.T, rows ...[]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromStrings(rows)
	require.NoError(t, err)

	return m
}

// mustDense allocates an r×c zero matrix or fails the test.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) scalar.Value {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// display returns the display strings of m.
func display(m *matrix.Dense) [][]string { return m.DisplayGrid() }

// randomExact returns an r×c matrix mixing Integer and Rational cells.
func randomExact(t *testing.T, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	m := mustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var v scalar.Value
			if rng.Intn(2) == 0 {
				v = scalar.Int(rng.Int63n(41) - 20)
			} else {
				v = scalar.MustRat(rng.Int63n(41)-20, rng.Int63n(9)+1)
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// randomFloat returns an r×c matrix of Float cells in [-10, 10).
func randomFloat(t *testing.T, seed int64, r, c int) *matrix.Dense {
	t.Helper()
	m := mustDense(t, r, c)
	require.NoError(t, m.FillRandom(matrix.NewGenerator(seed, matrix.FloatElements), -10, 10))

	return m
}

// sameCells asserts exact numeric equality cell by cell.
func sameCells(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := mustAt(t, want, i, j), mustAt(t, got, i, j)
			require.Truef(t, scalar.Equal(w, g), "cell (%d,%d): want %s, got %s", i, j, w, g)
		}
	}
}

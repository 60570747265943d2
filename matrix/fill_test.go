// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Fill, FillStrings, FillFloats and FillRandom.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

func TestFillMixedCells(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3)
	err := m.Fill([][]any{
		{"1/2", 3, int64(-4)},
		{2.5, scalar.MustRat(2, 6), " 7 "},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1/2", "3", "-4"}, {"2.5", "1/3", "7"}}, display(m))
	assert.Equal(t, scalar.Float, mustAt(t, m, 1, 0).Kind())
}

func TestFillShapeMismatch(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2)
	for name, g := range map[string][][]any{
		"too few rows":  {{1, 2}},
		"too many rows": {{1, 2}, {3, 4}, {5, 6}},
		"short row":     {{1, 2}, {3}},
		"long row":      {{1, 2, 3}, {4, 5}},
		"nil grid":      nil,
	} {
		err := m.Fill(g)
		assert.ErrorIs(t, err, matrix.ErrShapeMismatch, name)
	}
}

func TestFillInvalidElement(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		cell     any
		row, col int
		cause    error
	}{
		{"zero denominator", "1/0", 1, 0, scalar.ErrInvalidFraction},
		{"bad fraction", "1/x", 1, 0, scalar.ErrInvalidFraction},
		{"garbage", "abc", 1, 0, scalar.ErrInvalidNumber},
		{"empty", "  ", 1, 0, scalar.ErrInvalidNumber},
		{"nan", math.NaN(), 1, 0, scalar.ErrInvalidNumber},
		{"unsupported type", []int{1}, 1, 0, scalar.ErrInvalidNumber},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := mustDense(t, 2, 2)
			err := m.Fill([][]any{{1, 2}, {tc.cell, 4}})
			require.ErrorIs(t, err, matrix.ErrInvalidElement)
			require.ErrorIs(t, err, tc.cause)

			var ee *matrix.ElementError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, tc.row, ee.Row)
			assert.Equal(t, tc.col, ee.Col)
		})
	}
}

// TestFillAtomic checks that a failed fill leaves the prior content intact.
func TestFillAtomic(t *testing.T) {
	t.Parallel()

	m := grid(t, []string{"1", "2"}, []string{"3", "4"})
	before := m.Values()

	require.Error(t, m.FillStrings([][]string{{"9", "9"}, {"9", "oops"}}))
	assert.Equal(t, before, m.Values())

	require.Error(t, m.Fill([][]any{{9, 9}}))
	assert.Equal(t, before, m.Values())

	require.Error(t, m.FillFloats([][]float64{{1, 2}, {math.Inf(1), 0}}))
	assert.Equal(t, before, m.Values())

	require.Error(t, m.FillRandom(matrix.NewGenerator(1, matrix.IntElements), 5, 1))
	assert.Equal(t, before, m.Values())
}

func TestFillFloats(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 1, 3)
	require.NoError(t, m.FillFloats([][]float64{{1, -0.5, 1e-7}}))
	assert.Equal(t, [][]string{{"1", "-0.5", "0"}}, display(m))
	assert.False(t, matrix.IsExact(m))
}

func TestFromStringsAndValues(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromValues([][]any{{1, "2/4"}})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "1/2"}}, display(m))

	_, err = matrix.FromStrings(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromStrings([][]string{{"1", "2"}, {"3"}})
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.FromStrings([][]string{{"1", "2", "3"}}, matrix.WithMaxDim(2))
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFillNilReceiver(t *testing.T) {
	t.Parallel()

	var m *matrix.Dense
	assert.ErrorIs(t, m.Fill(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, m.FillRandom(matrix.NewGenerator(1, matrix.IntElements), 0, 1), matrix.ErrNilMatrix)
	assert.ErrorIs(t, mustDense(t, 1, 1).FillRandom(nil, 0, 1), matrix.ErrNilMatrix)
}

func TestFillRandomDeterministic(t *testing.T) {
	t.Parallel()

	for _, kind := range []matrix.ElementKind{matrix.IntElements, matrix.FloatElements} {
		a, b := mustDense(t, 4, 5), mustDense(t, 4, 5)
		require.NoError(t, a.FillRandom(matrix.NewGenerator(42, kind), -3, 3))
		require.NoError(t, b.FillRandom(matrix.NewGenerator(42, kind), -3, 3))
		assert.Equal(t, a.Values(), b.Values(), kind.String())

		// Seed 0 is normalized to the fixed default seed 1.
		z, one := mustDense(t, 4, 5), mustDense(t, 4, 5)
		require.NoError(t, z.FillRandom(matrix.NewGenerator(0, kind), -3, 3))
		require.NoError(t, one.FillRandom(matrix.NewGenerator(1, kind), -3, 3))
		assert.Equal(t, one.Values(), z.Values(), kind.String())
	}
}

func TestFillRandomRanges(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 10, 10)

	require.NoError(t, m.FillRandom(matrix.NewGenerator(3, matrix.IntElements), -2.5, 2.5))
	seen := map[int64]bool{}
	m.Do(func(_, _ int, v scalar.Value) bool {
		n, ok := v.Int64()
		require.True(t, ok)
		require.Equal(t, scalar.Integer, v.Kind())
		require.True(t, n >= -2 && n <= 2, "draw %d outside [-2, 2]", n)
		seen[n] = true
		return true
	})
	assert.Len(t, seen, 5, "100 draws should cover all five integers")

	require.NoError(t, m.FillRandom(matrix.NewGenerator(3, matrix.FloatElements), 1, 2))
	m.Do(func(_, _ int, v scalar.Value) bool {
		require.Equal(t, scalar.Float, v.Kind())
		f := v.Float64()
		require.True(t, f >= 1 && f <= 2, "draw %v outside [1, 2]", f)
		return true
	})

	// Degenerate range.
	require.NoError(t, m.FillRandom(matrix.NewGenerator(3, matrix.IntElements), 7, 7))
	assert.Equal(t, "7", mustAt(t, m, 9, 9).String())
}

func TestFillRandomInvalidRange(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2)
	ig := matrix.NewGenerator(1, matrix.IntElements)
	fg := matrix.NewGenerator(1, matrix.FloatElements)

	for name, err := range map[string]error{
		"min > max":       m.FillRandom(ig, 3, 1),
		"no integer":      m.FillRandom(ig, 0.2, 0.8),
		"nan":             m.FillRandom(fg, math.NaN(), 1),
		"inf":             m.FillRandom(fg, 0, math.Inf(1)),
		"float min > max": m.FillRandom(fg, 1, 0),
		"int overflow":    m.FillRandom(ig, 0, math.MaxInt64),
	} {
		assert.ErrorIs(t, err, matrix.ErrInvalidRange, name)
	}
}

func TestParseElementKind(t *testing.T) {
	t.Parallel()

	k, err := matrix.ParseElementKind("float")
	require.NoError(t, err)
	assert.Equal(t, matrix.FloatElements, k)
	assert.Equal(t, "float", k.String())

	k, err = matrix.ParseElementKind("integer")
	require.NoError(t, err)
	assert.Equal(t, matrix.IntElements, k)

	_, err = matrix.ParseElementKind("complex")
	assert.Error(t, err)

	assert.Equal(t, matrix.FloatElements, matrix.NewGenerator(5, matrix.FloatElements).Kind())
}

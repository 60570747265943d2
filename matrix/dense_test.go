// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction and accessors.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

// TestNewDenseInvalidDimensions covers zero, negative and over-limit shapes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"negative", -1, 3},
		{"rows over limit", 101, 5},
		{"cols over limit", 5, 101},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestNewDenseLimitOptions(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(100, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, m.Rows())

	_, err = matrix.NewDense(101, 1, matrix.WithUnbounded())
	require.NoError(t, err)

	_, err = matrix.NewDense(4, 4, matrix.WithMaxDim(3))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(0, 4, matrix.WithUnbounded())
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	assert.Panics(t, func() { matrix.WithMaxDim(-1) })
}

func TestNewDenseZeroFilled(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3)
	r, c := m.Shape()
	assert.Equal(t, []int{2, 3}, []int{r, c})
	assert.False(t, m.IsSquare())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := mustAt(t, m, i, j)
			assert.Equal(t, scalar.Integer, v.Kind())
			assert.True(t, v.IsZero())
		}
	}
}

func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 2)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "At%v", idx)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		err = m.Set(idx[0], idx[1], scalar.One())
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "Set%v", idx)
	}
}

func TestSetGet(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, scalar.MustRat(3, 4)))
	v := mustAt(t, m, 1, 2)
	assert.Equal(t, "3/4", v.String())
	assert.Equal(t, scalar.Rational, v.Kind())
}

func TestSetRejectsNonFinite(t *testing.T) {
	t.Parallel()

	inf := scalar.Mul(scalar.MustFloat(1e200), scalar.MustFloat(1e200))
	require.False(t, inf.IsFinite())

	m := mustDense(t, 1, 2)
	err := m.Set(0, 1, inf)
	require.ErrorIs(t, err, matrix.ErrInvalidElement)
	assert.ErrorIs(t, err, scalar.ErrInvalidNumber)
	assert.Equal(t, "0", mustAt(t, m, 0, 1).String())

	err = m.Fill([][]any{{scalar.One(), inf}})
	require.ErrorIs(t, err, matrix.ErrInvalidElement)
	assert.Contains(t, err.Error(), "at (0,1)")
	assert.Equal(t, [][]string{{"0", "0"}}, display(m))
}

func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := grid(t, []string{"1", "2"}, []string{"3", "4"})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, scalar.Int(9)))
	assert.Equal(t, "1", mustAt(t, m, 0, 0).String())
	assert.Equal(t, "9", mustAt(t, cp, 0, 0).String())

	cp2, err := matrix.Copy(hide{m})
	require.NoError(t, err)
	require.NoError(t, cp2.Set(1, 1, scalar.Int(0)))
	assert.Equal(t, "4", mustAt(t, m, 1, 1).String())
}

func TestSameShape(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 3)
	assert.True(t, a.SameShape(mustDense(t, 2, 3)))
	assert.False(t, a.SameShape(mustDense(t, 3, 2)))
	assert.False(t, a.SameShape(nil))
}

func TestDoVisitsRowMajor(t *testing.T) {
	t.Parallel()

	m := grid(t, []string{"1", "2"}, []string{"3", "4"})
	var seen []string
	m.Do(func(i, j int, v scalar.Value) bool {
		seen = append(seen, v.String())
		return len(seen) < 3
	})
	assert.Equal(t, []string{"1", "2", "3"}, seen)
}

func TestNormalizeAndRationalize(t *testing.T) {
	t.Parallel()

	m := grid(t, []string{"4/2", "0.25"})
	assert.Equal(t, scalar.Rational, mustAt(t, m, 0, 0).Kind())
	m.Normalize()
	assert.Equal(t, scalar.Integer, mustAt(t, m, 0, 0).Kind())

	m.Rationalize(0)
	assert.Equal(t, "1/4", mustAt(t, m, 0, 1).String())
	assert.True(t, matrix.IsExact(m))
}

func TestBuilders(t *testing.T) {
	t.Parallel()

	z, err := matrix.NewZeros(2, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "0"}, {"0", "0"}}, display(z))

	o, err := matrix.NewOnes(1, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "1", "1"}}, display(o))

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "0", "0"}, {"0", "1", "0"}, {"0", "0", "1"}}, display(id))

	d, err := matrix.NewDiagonal([]scalar.Value{scalar.Int(2), scalar.MustRat(1, 3)})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2", "0"}, {"0", "1/3"}}, display(d))

	for _, fn := range []func() (*matrix.Dense, error){
		func() (*matrix.Dense, error) { return matrix.NewZeros(0, 1) },
		func() (*matrix.Dense, error) { return matrix.NewOnes(1, 101) },
		func() (*matrix.Dense, error) { return matrix.NewIdentity(101) },
		func() (*matrix.Dense, error) { return matrix.NewDiagonal(nil) },
	} {
		_, err = fn()
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}

	zl, err := matrix.ZerosLike(o)
	require.NoError(t, err)
	assert.True(t, zl.SameShape(o))

	_, err = matrix.IdentityLike(o)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ZerosLike(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

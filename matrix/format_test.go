// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for display, equality and validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

func TestStringOutput(t *testing.T) {
	t.Parallel()

	m := grid(t, []string{"1", "-2/4"}, []string{"0.125", "-0.0"})
	assert.Equal(t, "[ 1  -1/2 ]\n[ 0.125  0 ]", m.String())

	var nilM *matrix.Dense
	assert.Equal(t, "<nil>", nilM.String())
	assert.Equal(t, "<nil>", nilM.Format())
}

func TestFormatAligned(t *testing.T) {
	t.Parallel()

	m := grid(t, []string{"1", "22"}, []string{"-1/3", "4"})
	assert.Equal(t, "[    1    22 ]\n[ -1/3     4 ]", m.Format())

	wide := grid(t, []string{"123456", "1"})
	assert.Equal(t, "[ 123456       1 ]", wide.Format())
}

func TestDisplayGridAndValues(t *testing.T) {
	t.Parallel()

	m := grid(t, []string{"2.50", "3/1"})
	assert.Equal(t, [][]string{{"2.5", "3"}}, m.DisplayGrid())

	vals := m.Values()
	require.Len(t, vals, 1)
	v, ok := vals[0][1].(scalar.Value)
	require.True(t, ok)
	assert.Equal(t, scalar.Rational, v.Kind())
}

func TestEqualWithinPolicy(t *testing.T) {
	t.Parallel()

	a := grid(t, []string{"1/3"})
	b := grid(t, []string{"0.3333333333333333"})
	assert.True(t, matrix.Equal(a, b), "exact values compare through float64")

	assert.False(t, matrix.Equal(a, mustDense(t, 1, 2)), "shape difference")
	assert.True(t, matrix.EqualWithin(grid(t, []string{"1"}), grid(t, []string{"1.5"}), -0.5), "negative tolerance uses |tol|")
	assert.False(t, matrix.EqualWithin(a, a, math.NaN()))
	assert.False(t, matrix.Equal(nil, nil))
}

func TestIsSymmetricAndExact(t *testing.T) {
	t.Parallel()

	s := grid(t, []string{"1", "1/2"}, []string{"0.5", "3"})
	assert.True(t, matrix.IsSymmetric(s, 0))
	assert.True(t, matrix.IsSymmetric(hide{s}, 0))
	assert.False(t, matrix.IsSymmetric(grid(t, []string{"1", "2"}, []string{"3", "4"}), 0.5))
	assert.False(t, matrix.IsSymmetric(mustDense(t, 1, 2), 1))
	assert.False(t, matrix.IsSymmetric(nil, 1))

	assert.False(t, matrix.IsExact(s))
	assert.True(t, matrix.IsExact(grid(t, []string{"1", "1/2"})))
	assert.False(t, matrix.IsExact(nil))
}

func TestValidators(t *testing.T) {
	t.Parallel()

	a23, b23, c32 := mustDense(t, 2, 3), mustDense(t, 2, 3), mustDense(t, 3, 2)
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"NotNil ok", matrix.ValidateNotNil(a23), nil},
		{"NotNil nil", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"NotNil typed nil", matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix},
		{"SameShape ok", matrix.ValidateSameShape(a23, b23), nil},
		{"SameShape mismatch", matrix.ValidateSameShape(a23, c32), matrix.ErrDimensionMismatch},
		{"Square mismatch", matrix.ValidateSquare(a23), matrix.ErrDimensionMismatch},
		{"Binary nil", matrix.ValidateBinarySameShape(a23, nil), matrix.ErrNilMatrix},
		{"SquareNonNil nil", matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix},
		{"Mul ok", matrix.ValidateMulCompatible(a23, c32), nil},
		{"Mul mismatch", matrix.ValidateMulCompatible(a23, b23), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		if tc.wantErr == nil {
			assert.NoError(t, tc.err, tc.name)
			continue
		}
		assert.ErrorIs(t, tc.err, tc.wantErr, tc.name)
	}
}

func TestElementErrorMessage(t *testing.T) {
	t.Parallel()

	err := mustDense(t, 1, 1).FillStrings([][]string{{"1/0"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at (0,0)")
	assert.Contains(t, err.Error(), "FillStrings")
}

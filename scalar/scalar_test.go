// SPDX-License-Identifier: MIT
// Package scalar_test contains black-box tests for Value parsing, promotion and display.

package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matrixgen/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseVariants pins the variant selected for each token shape.
func TestParseVariants(t *testing.T) {
	cases := []struct {
		in   string
		kind scalar.Kind
		disp string
	}{
		{"42", scalar.Integer, "42"},
		{"  -7 ", scalar.Integer, "-7"},
		{"+3", scalar.Integer, "3"},
		{"3.25", scalar.Float, "3.25"},
		{"-0.5", scalar.Float, "-0.5"},
		{"2.0", scalar.Float, "2"},
		{"1e-3", scalar.Float, "0.001"},
		{"1/2", scalar.Rational, "1/2"},
		{"-6/8", scalar.Rational, "-3/4"},
		{"+6/8", scalar.Rational, "3/4"},
		{"4/2", scalar.Rational, "2"},
		{"99999999999999999999", scalar.Float, "100000000000000000000"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := scalar.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
			assert.Equal(t, tc.disp, v.String())
		})
	}
}

// TestParseErrors checks the error kind returned for each malformed token.
func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", scalar.ErrInvalidNumber},
		{"   ", scalar.ErrInvalidNumber},
		{"abc", scalar.ErrInvalidNumber},
		{"inf", scalar.ErrInvalidNumber},
		{"NaN", scalar.ErrInvalidNumber},
		{"0x10", scalar.ErrInvalidNumber},
		{"1e400", scalar.ErrInvalidNumber},
		{"1/0", scalar.ErrInvalidFraction},
		{"1/", scalar.ErrInvalidFraction},
		{"/3", scalar.ErrInvalidFraction},
		{"1.5/2", scalar.ErrInvalidFraction},
		{"1/2/3", scalar.ErrInvalidFraction},
		{"a/b", scalar.ErrInvalidFraction},
		{"6/-8", scalar.ErrInvalidFraction},
		{"-1/-2", scalar.ErrInvalidFraction},
		{"1/+2", scalar.ErrInvalidFraction},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := scalar.Parse(tc.in)
			require.ErrorIs(t, err, tc.want)
			assert.False(t, scalar.IsValid(tc.in))
		})
	}
}

// TestRationalReduced verifies reduction and sign normalization of NewRat.
func TestRationalReduced(t *testing.T) {
	v, err := scalar.NewRat(10, -4)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), v.Num())
	assert.Equal(t, int64(2), v.Den())

	_, err = scalar.NewRat(1, 0)
	require.ErrorIs(t, err, scalar.ErrInvalidFraction)
}

// TestPromotionTable covers every row of the promotion table.
func TestPromotionTable(t *testing.T) {
	i2 := scalar.Int(2)
	f := scalar.MustFloat(0.5)
	half := scalar.MustRat(1, 2)

	assert.Equal(t, scalar.Integer, scalar.Add(i2, i2).Kind())
	assert.Equal(t, scalar.Float, scalar.Add(i2, f).Kind())
	assert.Equal(t, scalar.Float, scalar.Mul(f, half).Kind())
	assert.Equal(t, scalar.Rational, scalar.Add(i2, half).Kind())
	assert.Equal(t, scalar.Rational, scalar.Mul(half, half).Kind())

	assert.Equal(t, "5/2", scalar.Add(i2, half).String())
	assert.Equal(t, "1/4", scalar.Mul(half, half).String())
	assert.Equal(t, "3/2", scalar.Sub(i2, half).String())
	assert.Equal(t, 0.25, scalar.Mul(f, half).Float64())
}

// TestRationalTagPreserved checks that den==1 results keep the Rational tag
// while comparing and printing like Integer.
func TestRationalTagPreserved(t *testing.T) {
	v := scalar.Mul(scalar.MustRat(1, 2), scalar.Int(2))
	assert.Equal(t, scalar.Rational, v.Kind())
	assert.Equal(t, "1", v.String())
	assert.True(t, scalar.Equal(v, scalar.One()))

	n := scalar.Normalize(v)
	assert.Equal(t, scalar.Integer, n.Kind())
	assert.Equal(t, scalar.One(), n)
}

// TestExactCommutativity asserts bit-identical results for swapped exact operands.
func TestExactCommutativity(t *testing.T) {
	vals := []scalar.Value{
		scalar.Int(-3), scalar.Int(7), scalar.MustRat(2, 3), scalar.MustRat(-5, 7),
	}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, scalar.Add(a, b), scalar.Add(b, a))
			assert.Equal(t, scalar.Mul(a, b), scalar.Mul(b, a))
		}
	}
}

// TestIntegerOverflowPromotes checks that int64 overflow yields a Float.
func TestIntegerOverflowPromotes(t *testing.T) {
	big := scalar.Int(math.MaxInt64)
	sum := scalar.Add(big, scalar.One())
	assert.Equal(t, scalar.Float, sum.Kind())
	assert.InDelta(t, 9.223372036854775808e18, sum.Float64(), 1)

	prod := scalar.Mul(big, scalar.Int(2))
	assert.Equal(t, scalar.Float, prod.Kind())

	neg := scalar.Neg(scalar.Int(math.MinInt64))
	assert.Equal(t, scalar.Float, neg.Kind())

	diff := scalar.Sub(scalar.Int(0), scalar.Int(math.MinInt64))
	assert.Equal(t, scalar.Float, diff.Kind())

	// in-range results stay Integer
	assert.Equal(t, scalar.Int(-1), scalar.Add(scalar.Int(math.MaxInt64), scalar.Int(math.MinInt64)))
}

// TestFloatDisplay pins the float formatting rules.
func TestFloatDisplay(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4.0, "4"},
		{-4.0, "-4"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.333333"},
		{2.5000, "2.5"},
		{1.0000001, "1"},
		{1e-7, "0"},
		{-1e-7, "0"},
		{math.Copysign(0, -1), "0"},
		{123456.789, "123456.789"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scalar.MustFloat(tc.in).String(), "input %v", tc.in)
	}
}

// TestNewFloatRejectsNonFinite checks the finite-only constructor policy.
func TestNewFloatRejectsNonFinite(t *testing.T) {
	_, err := scalar.NewFloat(math.NaN())
	require.ErrorIs(t, err, scalar.ErrInvalidNumber)
	_, err = scalar.NewFloat(math.Inf(-1))
	require.ErrorIs(t, err, scalar.ErrInvalidNumber)
}

// TestRoundTrip parses the display string of literal values back.
func TestRoundTrip(t *testing.T) {
	literals := []scalar.Value{
		scalar.Int(0), scalar.Int(-12), scalar.Int(math.MaxInt64),
		scalar.MustRat(3, 4), scalar.MustRat(-7, 3), scalar.MustRat(8, 4),
		scalar.MustFloat(2.5), scalar.MustFloat(-0.125), scalar.MustFloat(10),
	}
	for _, v := range literals {
		back, err := scalar.Parse(v.String())
		require.NoError(t, err, v.String())
		if v.IsExact() {
			assert.True(t, scalar.Equal(v, back), "exact round trip of %s", v)
			continue
		}
		assert.InDelta(t, v.Float64(), back.Float64(), 1e-12)
	}
}

// TestRoundTripBelowDisplayPrecision pins the known loss: display keeps six
// fractional digits, so smaller Float detail does not survive re-parsing.
func TestRoundTripBelowDisplayPrecision(t *testing.T) {
	cases := []struct {
		in   float64
		disp string
		kind scalar.Kind
	}{
		{1e-7, "0", scalar.Integer},
		{-4e-9, "0", scalar.Integer},
		{1.0000001, "1", scalar.Integer},
		{0.1234567, "0.123457", scalar.Float},
	}
	for _, tc := range cases {
		v := scalar.MustFloat(tc.in)
		require.Equal(t, tc.disp, v.String())
		back, err := scalar.Parse(v.String())
		require.NoError(t, err)
		assert.Equal(t, tc.kind, back.Kind(), "%v re-parses as %s", tc.in, back.Kind())
		assert.NotEqual(t, tc.in, back.Float64(), "detail below 1e-6 is dropped")
		assert.InDelta(t, tc.in, back.Float64(), 5e-7)
	}
}

// TestIsFinite covers Float overflow from ordinary arithmetic.
func TestIsFinite(t *testing.T) {
	big := scalar.MustFloat(1e200)
	assert.True(t, big.IsFinite())
	assert.True(t, scalar.Int(math.MaxInt64).IsFinite())
	assert.True(t, scalar.MustRat(1, 3).IsFinite())

	inf := scalar.Mul(big, big)
	assert.Equal(t, scalar.Float, inf.Kind())
	assert.False(t, inf.IsFinite())
	assert.False(t, scalar.Neg(inf).IsFinite())
	assert.False(t, scalar.Sub(inf, inf).IsFinite(), "Inf - Inf is NaN")

	_, err := scalar.NewFloat(inf.Float64())
	assert.ErrorIs(t, err, scalar.ErrInvalidNumber)
}

// TestEqualMixed compares across variants.
func TestEqualMixed(t *testing.T) {
	assert.True(t, scalar.Equal(scalar.MustRat(1, 2), scalar.MustFloat(0.5)))
	assert.True(t, scalar.Equal(scalar.Int(3), scalar.MustFloat(3)))
	assert.False(t, scalar.Equal(scalar.MustRat(1, 3), scalar.MustFloat(0.3333)))
}

// TestRationalize checks float → fraction recovery.
func TestRationalize(t *testing.T) {
	v := scalar.Rationalize(scalar.MustFloat(0.5), 0)
	assert.Equal(t, scalar.Rational, v.Kind())
	assert.Equal(t, "1/2", v.String())

	v = scalar.Rationalize(scalar.MustFloat(1.0/3.0), 0)
	assert.Equal(t, "1/3", v.String())

	pi := scalar.MustFloat(math.Pi)
	assert.Equal(t, pi, scalar.Rationalize(pi, 0))

	i := scalar.Int(4)
	assert.Equal(t, i, scalar.Rationalize(i, 0))
}

// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/big"
)

const (
	// DefaultMaxDenominator bounds the denominator searched by Rationalize.
	DefaultMaxDenominator int64 = 10000

	// rationalizeTol is the largest |approx − f| accepted by Rationalize.
	rationalizeTol = 1e-10
)

// Rationalize converts a Float into the closest Rational whose denominator
// does not exceed maxDen, provided that fraction lies within 1e-10 of the
// float. Integer and Rational values, non-finite floats and floats without a
// close enough fraction are returned unchanged. maxDen < 1 selects
// DefaultMaxDenominator.
func Rationalize(v Value, maxDen int64) Value {
	if v.kind != Float || math.IsNaN(v.f) || math.IsInf(v.f, 0) {
		return v
	}
	if maxDen < 1 {
		maxDen = DefaultMaxDenominator
	}
	exact := new(big.Rat).SetFloat64(v.f)
	approx := limitDenominator(exact, big.NewInt(maxDen))
	if !approx.Num().IsInt64() || !approx.Denom().IsInt64() {
		return v
	}
	back, _ := approx.Float64()
	if math.Abs(back-v.f) >= rationalizeTol {
		return v
	}

	return fromBigRat(approx)
}

// limitDenominator returns the best rational approximation of x with
// denominator ≤ maxDen, walking the continued-fraction convergents and
// choosing between the last convergent and the best semiconvergent.
func limitDenominator(x *big.Rat, maxDen *big.Int) *big.Rat {
	if x.Denom().Cmp(maxDen) <= 0 {
		return new(big.Rat).Set(x)
	}
	var (
		p0, q0 = big.NewInt(0), big.NewInt(1)
		p1, q1 = big.NewInt(1), big.NewInt(0)
		n      = new(big.Int).Set(x.Num())
		d      = new(big.Int).Set(x.Denom())
		a, q2  = new(big.Int), new(big.Int)
		tmp    = new(big.Int)
	)
	for d.Sign() != 0 {
		a.Div(n, d) // floor for d > 0
		q2.Add(q0, tmp.Mul(a, q1))
		if q2.Cmp(maxDen) > 0 {
			break
		}
		np1 := new(big.Int).Add(p0, tmp.Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, np1, new(big.Int).Set(q2)
		rem := new(big.Int).Sub(n, tmp.Mul(a, d))
		n, d = d, rem
	}
	// k = (maxDen − q0) / q1
	k := new(big.Int).Div(new(big.Int).Sub(maxDen, q0), q1)
	bound1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	bound2 := new(big.Rat).SetFrac(p1, q1)
	diff1 := new(big.Rat).Abs(new(big.Rat).Sub(bound1, x))
	diff2 := new(big.Rat).Abs(new(big.Rat).Sub(bound2, x))
	if diff2.Cmp(diff1) <= 0 {
		return bound2
	}

	return bound1
}

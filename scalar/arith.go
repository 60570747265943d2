// SPDX-License-Identifier: MIT

// Package scalar - arithmetic with numeric promotion.
//
// Determinism:
//   - Integer and Rational results are exact, hence independent of operand order
//     for Add and Mul.
//   - Float results follow IEEE-754 semantics and may overflow to ±Inf;
//     callers that store results check Value.IsFinite.

package scalar

import (
	"math"
	"math/big"
)

type binop uint8

const (
	opAdd binop = iota
	opSub
	opMul
)

// Add returns a + b under the promotion table.
func Add(a, b Value) Value { return combine(a, b, opAdd) }

// Sub returns a − b under the promotion table.
func Sub(a, b Value) Value { return combine(a, b, opSub) }

// Mul returns a × b under the promotion table.
func Mul(a, b Value) Value { return combine(a, b, opMul) }

// Neg returns −v, keeping the variant (Integer overflow promotes to Float).
func Neg(v Value) Value {
	switch v.kind {
	case Float:
		return Value{kind: Float, f: -v.f}
	case Integer:
		if v.num == math.MinInt64 {
			return fromBigInt(new(big.Int).Neg(big.NewInt(v.num)))
		}
		return Int(-v.num)
	default:
		return fromBigRat(new(big.Rat).Neg(v.rat()))
	}
}

// Normalize collapses a Rational with denominator 1 into the Integer of the
// same numerator. All other values are returned unchanged.
func Normalize(v Value) Value {
	if v.kind == Rational && v.den == 1 {
		return Int(v.num)
	}

	return v
}

// Equal reports numeric equality. Two exact values compare exactly, so
// Rational(4/1) equals Integer(4); any Float operand compares as float64.
func Equal(a, b Value) bool {
	if a.IsExact() && b.IsExact() {
		return a.Num() == b.Num() && a.Den() == b.Den()
	}

	return a.Float64() == b.Float64()
}

// combine dispatches on the promotion table.
func combine(a, b Value, op binop) Value {
	switch {
	case a.kind == Float || b.kind == Float:
		return Value{kind: Float, f: applyFloat(a.Float64(), b.Float64(), op)}
	case a.kind == Integer && b.kind == Integer:
		return applyInt(a.num, b.num, op)
	default:
		return applyRat(a.rat(), b.rat(), op)
	}
}

func applyFloat(x, y float64, op binop) float64 {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	default:
		return x * y
	}
}

// applyInt computes on int64 and falls back to big.Int when the result overflows.
func applyInt(x, y int64, op binop) Value {
	switch op {
	case opAdd:
		s := x + y
		if (x >= 0) == (y >= 0) && (s >= 0) != (x >= 0) {
			return fromBigInt(new(big.Int).Add(big.NewInt(x), big.NewInt(y)))
		}
		return Int(s)
	case opSub:
		d := x - y
		if (x >= 0) != (y >= 0) && (d >= 0) != (x >= 0) {
			return fromBigInt(new(big.Int).Sub(big.NewInt(x), big.NewInt(y)))
		}
		return Int(d)
	default:
		if x == 0 || y == 0 {
			return Int(0)
		}
		p := x * y
		if p/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return fromBigInt(new(big.Int).Mul(big.NewInt(x), big.NewInt(y)))
		}
		return Int(p)
	}
}

// applyRat computes exactly; the result keeps the Rational tag.
func applyRat(x, y *big.Rat, op binop) Value {
	z := new(big.Rat)
	switch op {
	case opAdd:
		z.Add(x, y)
	case opSub:
		z.Sub(x, y)
	default:
		z.Mul(x, y)
	}

	return fromBigRat(z)
}

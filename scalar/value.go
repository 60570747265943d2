// SPDX-License-Identifier: MIT

// Package scalar - Value layout, constructors and accessors.
//
// Layout:
//   - kind selects the active payload.
//   - num holds the Integer value or the Rational numerator.
//   - den holds the Rational denominator (> 0); unused for Integer/Float.
//   - f holds the Float payload.
//
// The zero Value is Integer(0).

package scalar

import (
	"fmt"
	"math"
	"math/big"
)

// Kind tags the active variant of a Value.
type Kind uint8

const (
	// Integer is a whole number in the int64 range.
	Integer Kind = iota
	// Float is an IEEE-754 double.
	Float
	// Rational is an exact reduced fraction with a positive denominator.
	Rational
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Rational:
		return "rational"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a tagged numeric value: exactly one of Integer, Float, Rational.
type Value struct {
	kind Kind
	num  int64   // Integer value or Rational numerator
	den  int64   // Rational denominator (> 0)
	f    float64 // Float payload
}

// Int returns Integer(n).
func Int(n int64) Value { return Value{kind: Integer, num: n} }

// Zero returns Integer(0), the neutral element of Add.
func Zero() Value { return Value{} }

// One returns Integer(1), the neutral element of Mul.
func One() Value { return Int(1) }

// NewFloat returns Float(f). Non-finite input is rejected with ErrInvalidNumber.
func NewFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: non-finite float %v", ErrInvalidNumber, f)
	}

	return Value{kind: Float, f: f}, nil
}

// MustFloat is NewFloat for literals known to be finite; it panics otherwise.
func MustFloat(f float64) Value {
	v, err := NewFloat(f)
	if err != nil {
		panic(err)
	}

	return v
}

// NewRat returns the reduced Rational num/den with a positive denominator.
// A zero denominator is rejected with ErrInvalidFraction. The variant tag is
// Rational even when the reduced denominator is 1.
func NewRat(num, den int64) (Value, error) {
	if den == 0 {
		return Value{}, fmt.Errorf("%w: %d/0: zero denominator", ErrInvalidFraction, num)
	}

	return fromBigRat(new(big.Rat).SetFrac64(num, den)), nil
}

// MustRat is NewRat for literals known to be valid; it panics otherwise.
func MustRat(num, den int64) Value {
	v, err := NewRat(num, den)
	if err != nil {
		panic(err)
	}

	return v
}

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsExact reports whether v is Integer or Rational.
func (v Value) IsExact() bool { return v.kind != Float }

// Num returns the numerator: the Integer value, the Rational numerator, or 0 for Float.
func (v Value) Num() int64 {
	if v.kind == Float {
		return 0
	}

	return v.num
}

// Den returns the denominator: 1 for Integer, the Rational denominator, or 0 for Float.
func (v Value) Den() int64 {
	switch v.kind {
	case Integer:
		return 1
	case Rational:
		return v.den
	default:
		return 0
	}
}

// Int64 returns the exact whole-number value of v. ok is false for Float and
// for Rational values whose denominator is not 1.
func (v Value) Int64() (n int64, ok bool) {
	switch v.kind {
	case Integer:
		return v.num, true
	case Rational:
		if v.den == 1 {
			return v.num, true
		}
	}

	return 0, false
}

// Float64 returns the floating-point approximation of v.
// Rational values are converted with correct rounding of num/den.
func (v Value) Float64() float64 {
	switch v.kind {
	case Integer:
		return float64(v.num)
	case Rational:
		f, _ := new(big.Rat).SetFrac64(v.num, v.den).Float64()
		return f
	default:
		return v.f
	}
}

// IsFinite reports whether v is a finite number. Exact values always are;
// a Float produced by Add, Sub or Mul may have overflowed to ±Inf.
func (v Value) IsFinite() bool {
	if v.kind != Float {
		return true
	}

	return !math.IsInf(v.f, 0) && !math.IsNaN(v.f)
}

// IsZero reports whether v is numerically zero.
func (v Value) IsZero() bool {
	if v.kind == Float {
		return v.f == 0
	}

	return v.num == 0
}

// rat returns the exact value of an Integer/Rational as a fresh *big.Rat.
// Callers must not pass Float values.
func (v Value) rat() *big.Rat {
	if v.kind == Integer {
		return new(big.Rat).SetInt64(v.num)
	}

	return new(big.Rat).SetFrac64(v.num, v.den)
}

// fromBigRat converts an exact rational into a Rational Value, or into a
// Float when the reduced numerator/denominator leave the int64 range.
func fromBigRat(r *big.Rat) Value {
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		return Value{kind: Rational, num: r.Num().Int64(), den: r.Denom().Int64()}
	}
	f, _ := r.Float64()

	return Value{kind: Float, f: f}
}

// fromBigInt converts an exact integer into an Integer Value, or a Float on overflow.
func fromBigInt(z *big.Int) Value {
	if z.IsInt64() {
		return Int(z.Int64())
	}
	f, _ := new(big.Float).SetInt(z).Float64()

	return Value{kind: Float, f: f}
}

// SPDX-License-Identifier: MIT

// Package scalar implements the tagged numeric cell value used by matrixgen.
//
// A Value is exactly one of:
//
//   - Integer  — a whole number in the int64 range;
//   - Float    — an IEEE-754 double;
//   - Rational — an exact fraction num/den, reduced, with den > 0.
//
// Arithmetic between two values follows a fixed promotion table:
//
//	Integer ⊕ Integer   → Integer
//	Integer ⊕ Rational  → Rational
//	Rational ⊕ Rational → Rational
//	Float ⊕ anything    → Float (Rational is converted first)
//
// Exact results that leave the int64 range are promoted to Float instead of
// wrapping around.
//
// Text encoding (the one bit-exact contract shared by every front-end):
//
//	"-12"    → Integer
//	"3.25"   → Float
//	"-6/8"   → Rational(-3/4)   (the sign goes on the numerator)
//
// Display encoding (String):
//
//	Integer(7)        → "7"
//	Float(2.5000)     → "2.5"
//	Float(4.0)        → "4"
//	Float(1/3)        → "0.333333"
//	Rational(1/2)     → "1/2"
//	Rational(4/1)     → "4"
//
// Values are small immutable structs; pass them by value.
package scalar

// SPDX-License-Identifier: MIT

// Package scalar - text → Value.
//
// Grammar (after trimming surrounding whitespace):
//
//	integer  = [+-] digits
//	float    = [+-] digits "." digits   (exponent forms such as 1e-3 also accepted)
//	rational = integer "/" digits        (denominator ≠ 0, unsigned)
//
// Non-finite spellings (inf, nan) and hexadecimal floats are rejected.

package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fractionSep separates numerator and denominator in a rational token.
const fractionSep = "/"

// Parse converts a textual cell into a Value.
//
// Implementation:
//   - Stage 1: trim; empty → ErrInvalidNumber.
//   - Stage 2: a token containing "/" is parsed as Rational (ErrInvalidFraction on failure).
//   - Stage 3: integer parse, then float parse; neither → ErrInvalidNumber.
//
// Integers outside the int64 range parse as Float.
func Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}
	if strings.Contains(s, fractionSep) {
		return parseFraction(s)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), nil
	}
	if !isDecimalLiteral(s) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	return Value{kind: Float, f: f}, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return v
}

// IsValid reports whether text parses as a Value.
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// parseFraction parses "num/den": a signed int64 numerator over an unsigned
// int64 denominator.
func parseFraction(s string) (Value, error) {
	parts := strings.Split(s, fractionSep)
	if len(parts) != 2 {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidFraction, s)
	}
	if strings.HasPrefix(parts[1], "-") || strings.HasPrefix(parts[1], "+") {
		return Value{}, fmt.Errorf("%w: %q: signed denominator", ErrInvalidFraction, s)
	}
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: numerator", ErrInvalidFraction, s)
	}
	den, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: denominator", ErrInvalidFraction, s)
	}
	if den == 0 {
		return Value{}, fmt.Errorf("%w: %q: zero denominator", ErrInvalidFraction, s)
	}

	return NewRat(num, den)
}

// isDecimalLiteral limits float tokens to digits, sign, point and exponent.
func isDecimalLiteral(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return false
		}
	}

	return true
}

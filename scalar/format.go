// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
	"strings"
)

// floatDigits is the maximum number of fractional digits printed for Float.
const floatDigits = 6

// String renders v for display.
//
//   - Integer: plain decimal.
//   - Float: integral values without a decimal point; otherwise up to six
//     fractional digits with trailing zeros and a trailing point stripped.
//   - Rational: "num/den", or "num" when den == 1.
func (v Value) String() string {
	switch v.kind {
	case Integer:
		return strconv.FormatInt(v.num, 10)
	case Rational:
		if v.den == 1 {
			return strconv.FormatInt(v.num, 10)
		}
		return strconv.FormatInt(v.num, 10) + fractionSep + strconv.FormatInt(v.den, 10)
	default:
		return formatFloat(v.f)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == math.Trunc(f):
		if f == 0 {
			return "0" // covers -0
		}
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	s := strconv.FormatFloat(f, 'f', floatDigits, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}

	return s
}

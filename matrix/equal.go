// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/matrixgen/scalar"
)

// Equal reports whether a and b have the same shape and every cell pair
// differs by at most DefaultTolerance (1e-10) after conversion to float64.
func Equal(a, b Matrix) bool { return EqualWithin(a, b, DefaultTolerance) }

// EqualWithin reports whether a and b have the same shape and
// |float(a[i,j]) − float(b[i,j])| ≤ tol for every cell.
//
// Policy:
//   - A nil operand, a shape difference or a NaN tolerance yields false.
//   - tol is treated as |tol|.
//   - Exact values are compared through their float approximations, so two
//     Rationals closer than tol compare equal.
//
// Complexity: O(r*c), early exit on the first violation.
func EqualWithin(a, b Matrix, tol float64) bool {
	if ValidateBinarySameShape(a, b) != nil || math.IsNaN(tol) {
		return false
	}
	tol = math.Abs(tol)

	av, err := view(a)
	if err != nil {
		return false
	}
	bv, err := view(b)
	if err != nil {
		return false
	}
	for idx := range av {
		if !(math.Abs(av[idx].Float64()-bv[idx].Float64()) <= tol) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m is square and |m[i,j] − m[j,i]| ≤ tol for all i < j.
// Scans only the upper triangle. A nil matrix is not symmetric.
func IsSymmetric(m Matrix, tol float64) bool {
	if ValidateSquareNonNil(m) != nil {
		return false
	}
	mv, err := view(m)
	if err != nil {
		return false
	}
	tol = math.Abs(tol)
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !(math.Abs(mv[i*n+j].Float64()-mv[j*n+i].Float64()) <= tol) {
				return false
			}
		}
	}

	return true
}

// IsExact reports whether every cell of m is Integer or Rational.
func IsExact(m Matrix) bool {
	if ValidateNotNil(m) != nil {
		return false
	}
	mv, err := view(m)
	if err != nil {
		return false
	}
	for _, v := range mv {
		if v.Kind() == scalar.Float {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

// Package matrix - algebraic operations over immutable operands.
//
// Every operation validates its operands, allocates a fresh *Dense and never
// mutates its inputs. Operands that are *Dense take a flat-slice fast path;
// any other Matrix implementation goes through At/Set in fixed i→j order.
//
// Exactness:
//   - Cells combine through scalar.Add/Sub/Mul, so Integer and Rational inputs
//     produce exact, operand-order independent results.
//   - Mul accumulates every dot product left to right from Integer(0) and does
//     not skip zero terms, so a Float zero still promotes the cell to Float.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matrixgen/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opPower     = "Power"
	opCopy      = "Copy"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// view returns the flat row-major cells of m: the backing slice for *Dense,
// or a materialized copy read through At for other implementations.
func view(m Matrix) ([]scalar.Value, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]scalar.Value, rows*cols)
	var (
		i, j int
		v    scalar.Value
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// elementwise computes out[idx] = f(a[idx], b[idx]) for same-shape operands.
func elementwise(a, b Matrix, f func(x, y scalar.Value) scalar.Value, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	av, err := view(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bv, err := view(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(a.Rows(), a.Cols())
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = f(av[idx], bv[idx])
	}
	if err = checkFinite(res); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// checkFinite returns ErrNonFinite naming the first cell of res that left
// the float64 range.
func checkFinite(res *Dense) error {
	for idx, v := range res.data {
		if !v.IsFinite() {
			return fmt.Errorf("%w at (%d,%d)", ErrNonFinite, idx/res.c, idx%res.c)
		}
	}

	return nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//   - ErrNonFinite (a Float cell overflowed).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return elementwise(a, b, scalar.Add, opAdd) }

// Sub computes the element-wise difference C = A − B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch),
//     ErrNonFinite.
func Sub(a, b Matrix) (*Dense, error) { return elementwise(a, b, scalar.Sub, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: read both operands as flat row-major slices.
//   - Stage 3: i→j→k triple loop; each C[i,j] starts at Integer(0) and
//     accumulates A[i,k]·B[k,j] for k = 0..n−1 in order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//   - ErrNonFinite (a Float cell overflowed).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	av, err := view(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bv, err := view(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := mulFlat(av, bv, a.Rows(), a.Cols(), b.Cols())
	if err = checkFinite(res); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// mulFlat multiplies row-major a (r×n) by b (n×c).
func mulFlat(a, b []scalar.Value, r, n, c int) *Dense {
	res := newDense(r, c)
	var (
		i, j, k int
		acc     scalar.Value
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			acc = scalar.Zero()
			for k = 0; k < n; k++ {
				acc = scalar.Add(acc, scalar.Mul(a[i*n+k], b[k*c+j]))
			}
			res.data[i*c+j] = acc
		}
	}

	return res
}

// Scale returns C = A ⊗ s. Each cell is A[i,j]·s, so the
// promotion table decides the result variant per cell.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonFinite (a Float cell overflowed).
func Scale(a Matrix, s scalar.Value) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	av, err := view(a)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense(a.Rows(), a.Cols())
	for idx := range res.data {
		res.data[idx] = scalar.Mul(av[idx], s)
	}
	if err = checkFinite(res); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Transpose returns a new (cols×rows) matrix with res[j,i] = a[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	av, err := view(a)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(cols, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = av[i*cols+j]
		}
	}

	return res, nil
}

// Copy returns a deep copy of a as a *Dense with independent storage.
//
// Errors:
//   - ErrNilMatrix (nil input).
func Copy(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	if d, ok := a.(*Dense); ok {
		return d.clone(), nil
	}
	av, err := view(a)
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}

	return &Dense{r: a.Rows(), c: a.Cols(), data: av}, nil
}

// Power returns Aⁿ for square A and n ≥ 0.
//
// Implementation:
//   - n == 0 → identity of A's size.
//   - n == 1 → copy of A.
//   - n > 1  → repeated multiplication A^(k) = A^(k−1)·A, performed n−1 times;
//     Float results match the equivalent chain of Mul calls bit for bit.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (not square),
//     ErrInvalidExponent (n < 0), ErrNonFinite (a Float cell overflowed;
//     checked after every step, so the loop stops at the first overflow).
//
// Complexity:
//   - Time O((n−1)·k³) for a k×k matrix, Space O(k²).
func Power(a Matrix, n int) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPower, fmt.Errorf("%w: %d", ErrInvalidExponent, n))
	}

	size := a.Rows()
	if n == 0 {
		return identity(size), nil
	}
	base, err := Copy(a)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}

	res := base.clone()
	for step := 1; step < n; step++ {
		res = mulFlat(res.data, base.data, size, size, size)
		if err = checkFinite(res); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return res, nil
}

// PowerValue is Power with a scalar exponent. The exponent must denote a
// non-negative whole number: Integer, or Rational with denominator 1.
// Float exponents are rejected even when integral.
//
// Errors:
//   - ErrInvalidExponent (Float, fractional or negative exponent) plus
//     every error of Power.
func PowerValue(a Matrix, e scalar.Value) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	n, ok := e.Int64()
	if !ok {
		return nil, matrixErrorf(opPower, fmt.Errorf("%w: %s exponent %s", ErrInvalidExponent, e.Kind(), e))
	}
	if n < 0 || n > int64(maxPowerExponent) {
		return nil, matrixErrorf(opPower, fmt.Errorf("%w: %d outside [0, %d]", ErrInvalidExponent, n, maxPowerExponent))
	}

	return Power(a, int(n))
}

// maxPowerExponent caps PowerValue so the exponent fits in int on every platform.
const maxPowerExponent = 1<<31 - 1

// Sum, Diff and Product are named aliases of Add, Sub and Mul.

// Sum returns A + B.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff returns A − B.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product returns A × B.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is shorthand for Transpose.
func T(a Matrix) (*Dense, error) { return Transpose(a) }

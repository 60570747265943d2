// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of scalar.Value with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matrixgen/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxNew = "NewDense"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of scalar.Value.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value of scalar.Value is Integer(0), so a fresh buffer is already
// the all-zero matrix.
type Dense struct {
	r, c int            // row and column counts
	data []scalar.Value // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix with every element Integer(0).
//
// Implementation:
//   - Stage 1: resolve options (dimension limit, default DefaultMaxDim).
//   - Stage 2: validate 1 ≤ rows, cols ≤ limit; else ErrInvalidDimensions.
//   - Stage 3: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateDims(rows, cols, o.maxDim); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}

	return newDense(rows, cols), nil
}

// validateDims enforces 1 ≤ rows, cols and, when limit > 0, rows, cols ≤ limit.
func validateDims(rows, cols, limit int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if limit > 0 && (rows > limit || cols > limit) {
		return ErrInvalidDimensions
	}

	return nil
}

// newDense allocates without validation. Used by operations whose result
// shape is derived from already validated operands.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]scalar.Value, rows*cols)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// SameShape reports whether m and other have identical dimensions.
// A nil other never matches.
func (m *Dense) SameShape(other Matrix) bool {
	if other == nil {
		return false
	}

	return m.r == other.Rows() && m.c == other.Cols()
}

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// Never panics on out-of-range indices. Complexity: O(1).
func (m *Dense) At(row, col int) (scalar.Value, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return scalar.Value{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). It returns ErrIndexOutOfRange for a bad index
// and an *ElementError (ErrInvalidElement) for a non-finite Float.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v scalar.Value) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !v.IsFinite() {
		return denseErrorf(ctxSet, row, col, &ElementError{Row: row, Col: col, Err: errNonFiniteCell(v)})
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer). The dynamic type is *Dense.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	cp := make([]scalar.Value, len(m.data))
	copy(cp, m.data) // scalar.Value holds no pointers; a shallow copy is deep

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v scalar.Value) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Normalize collapses every Rational cell with denominator 1 into an Integer
// in place (see scalar.Normalize).
func (m *Dense) Normalize() {
	for idx := range m.data {
		m.data[idx] = scalar.Normalize(m.data[idx])
	}
}

// Rationalize replaces every Float cell that has a close fraction
// (denominator ≤ maxDen, |diff| < 1e-10) with that Rational, in place.
// maxDen < 1 selects scalar.DefaultMaxDenominator.
func (m *Dense) Rationalize(maxDen int64) {
	for idx := range m.data {
		m.data[idx] = scalar.Rationalize(m.data[idx], maxDen)
	}
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixgen/scalar"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operation boundaries wrap with
// fmt.Errorf("<Op>: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> element content -> exponent/range.

var (
	// ErrInvalidDimensions indicates a non-positive or over-limit row/column count.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrShapeMismatch indicates that bulk fill data does not match the declared shape.
	ErrShapeMismatch = errors.New("matrix: grid shape does not match matrix")

	// ErrInvalidElement indicates that a single cell cannot be normalized to a scalar.Value.
	// Returned wrapped inside *ElementError, which carries the coordinates.
	ErrInvalidElement = errors.New("matrix: invalid element")

	// ErrIndexOutOfRange indicates that a row or column index lies outside [0, count).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operand shapes incompatible for the requested
	// operation: Add/Sub need equal shapes, Mul needs a.Cols == b.Rows, Power needs square.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidExponent indicates a negative or non-integral exponent passed to Power.
	ErrInvalidExponent = errors.New("matrix: invalid exponent")

	// ErrInvalidRange indicates unusable random-fill bounds (min > max, non-finite,
	// or an integer range that contains no integer).
	ErrInvalidRange = errors.New("matrix: invalid random range")

	// ErrNonFinite indicates that a Float result cell overflowed to ±Inf or NaN.
	ErrNonFinite = errors.New("matrix: non-finite result")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrOutOfRange names the same condition as ErrIndexOutOfRange.
var ErrOutOfRange = ErrIndexOutOfRange

// ElementError reports the cell that failed normalization during a fill.
// It matches ErrInvalidElement and the underlying cause via errors.Is.
type ElementError struct {
	Row, Col int   // zero-based coordinates of the offending cell
	Err      error // reason (e.g. scalar.ErrInvalidFraction)
}

// Error implements error.
func (e *ElementError) Error() string {
	return fmt.Sprintf("%s at (%d,%d): %v", ErrInvalidElement, e.Row, e.Col, e.Err)
}

// Unwrap exposes both the category sentinel and the concrete cause.
func (e *ElementError) Unwrap() []error { return []error{ErrInvalidElement, e.Err} }

// errNonFiniteCell is the cause recorded for a ±Inf or NaN cell value.
func errNonFiniteCell(v scalar.Value) error {
	return fmt.Errorf("%w: non-finite float %v", scalar.ErrInvalidNumber, v.Float64())
}

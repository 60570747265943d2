// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Every backend returns these sentinels (wrapped with an operation tag) so
// callers can match with errors.Is regardless of the backend in use.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a grid with zero rows or zero columns.
	ErrEmpty = errors.New("linalg: empty matrix")

	// ErrDimensionMismatch indicates ragged input rows or a data slice whose
	// length differs from rows*cols.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrIndexOutOfRange indicates an element index outside the grid.
	ErrIndexOutOfRange = errors.New("linalg: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when an inverse is requested for a singular matrix.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNotSymmetric signals that a symmetric matrix was required.
	ErrNotSymmetric = errors.New("linalg: matrix is not symmetric")

	// ErrNotPositiveDefinite signals a Cholesky factorization failure.
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")

	// ErrComplexEigen signals eigenvalues with a non-zero imaginary part,
	// which the real-valued result type cannot carry.
	ErrComplexEigen = errors.New("linalg: complex eigenvalues")

	// ErrNoConvergence indicates an iterative kernel exhausted its iteration budget.
	ErrNoConvergence = errors.New("linalg: iteration did not converge")

	// ErrUnknownNorm indicates an unsupported NormKind.
	ErrUnknownNorm = errors.New("linalg: unknown norm kind")

	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("linalg: unknown backend")
)

// Operation name constants for unified error wrapping.
const (
	opDet      = "Determinant"
	opInverse  = "Inverse"
	opEigen    = "Eigen"
	opSVD      = "SVD"
	opQR       = "QR"
	opCholesky = "Cholesky"
	opRank     = "Rank"
	opNorm     = "Norm"
	opCond     = "Cond"
	opConvert  = "Convert"
	opLU       = "LU"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

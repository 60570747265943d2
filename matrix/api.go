// SPDX-License-Identifier: MIT

// Package matrix - builders.
//
// Every builder goes through the same dimension validation as NewDense and
// accepts the same options.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matrixgen/scalar"
)

const opDiagonal = "NewDiagonal"

// NewZeros returns an r×c matrix of Integer(0). Alias of NewDense.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewOnes returns an r×c matrix of Integer(1).
func NewOnes(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = scalar.One()
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix (Integer 1 on the diagonal, 0 elsewhere).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	if _, err := NewDense(n, n, opts...); err != nil {
		return nil, err
	}

	return identity(n), nil
}

// identity builds I(n) without validation.
func identity(n int) *Dense {
	m := newDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = scalar.One()
	}

	return m
}

// NewDiagonal returns the len(values)×len(values) matrix with values on the
// main diagonal and Integer(0) elsewhere.
func NewDiagonal(values []scalar.Value, opts ...Option) (*Dense, error) {
	n := len(values)
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDiagonal, err)
	}
	for i, v := range values {
		m.data[i*n+i] = v
	}

	return m, nil
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newDense(m.Rows(), m.Cols()), nil
}

// IdentityLike returns the identity matching a square m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return identity(m.Rows()), nil
}

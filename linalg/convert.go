// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

// FromMatrix converts any matrix.Matrix to a float64 grid.
// Rational and Integer cells convert through Value.Float64.
func FromMatrix(m matrix.Matrix) (*Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opConvert, err)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, linalgErrorf(opConvert, ErrEmpty)
	}
	d := zeros(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, linalgErrorf(opConvert, err)
			}
			d.data[i*c+j] = v.Float64()
		}
	}

	return d, nil
}

// ToMatrix converts a grid back to a matrix.Dense of Float cells, ignoring
// the construction dimension limit. Non-finite values are rejected with
// matrix.ErrInvalidElement.
func ToMatrix(d *Dense) (*matrix.Dense, error) {
	if d == nil {
		return nil, linalgErrorf(opConvert, ErrEmpty)
	}
	out, err := matrix.NewDense(d.r, d.c, matrix.WithUnbounded())
	if err != nil {
		return nil, linalgErrorf(opConvert, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, ferr := scalar.NewFloat(d.data[i*d.c+j])
			if ferr != nil {
				return nil, linalgErrorf(opConvert, &matrix.ElementError{Row: i, Col: j, Err: ferr})
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, linalgErrorf(opConvert, err)
			}
		}
	}

	return out, nil
}

// VectorToMatrix wraps xs as a 1×len(xs) matrix of Float cells
// (eigenvalues, singular values).
func VectorToMatrix(xs []float64) (*matrix.Dense, error) {
	if len(xs) == 0 {
		return nil, linalgErrorf(opConvert, ErrEmpty)
	}
	d, err := NewDenseData(1, len(xs), xs)
	if err != nil {
		return nil, linalgErrorf(opConvert, fmt.Errorf("vector: %w", err))
	}

	return ToMatrix(d)
}

// SPDX-License-Identifier: MIT

// Package matrix - wholesale content replacement.
//
// Atomicity:
//   - Every Fill* validates the full grid into a scratch buffer first and
//     swaps it in only on success, so a failed fill leaves the matrix in its
//     prior state.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matrixgen/scalar"
)

const (
	opFill        = "Fill"
	opFillStrings = "FillStrings"
	opFillFloats  = "FillFloats"
)

// Fill replaces every element from grid.
//
// Accepted cell types: string (parsed with scalar.Parse), int, int32, int64,
// float32, float64 (finite only) and scalar.Value.
//
// Implementation:
//   - Stage 1: shape check: len(grid) == Rows and every row has Cols cells.
//   - Stage 2: convert each cell in row-major order into a scratch buffer.
//   - Stage 3: commit the scratch buffer.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrShapeMismatch when the grid shape differs.
//   - *ElementError (matches ErrInvalidElement) for the first bad cell.
func (m *Dense) Fill(grid [][]any) error {
	return fillFrom(m, opFill, grid, cellValue)
}

// FillStrings is Fill for a grid of textual cells.
func (m *Dense) FillStrings(grid [][]string) error {
	return fillFrom(m, opFillStrings, grid, scalar.Parse)
}

// FillFloats is Fill for a grid of float64 cells; every cell becomes a Float.
func (m *Dense) FillFloats(grid [][]float64) error {
	return fillFrom(m, opFillFloats, grid, scalar.NewFloat)
}

// fillFrom carries the shared validate-then-commit sequence.
func fillFrom[T any](m *Dense, op string, grid [][]T, conv func(T) (scalar.Value, error)) error {
	if m == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if len(grid) != m.r {
		return matrixErrorf(op, fmt.Errorf("%w: got %d rows, want %d", ErrShapeMismatch, len(grid), m.r))
	}
	for i, row := range grid {
		if len(row) != m.c {
			return matrixErrorf(op, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, i, len(row), m.c))
		}
	}

	scratch := make([]scalar.Value, m.r*m.c)
	var (
		v   scalar.Value
		err error
	)
	for i, row := range grid {
		for j, cell := range row {
			if v, err = conv(cell); err != nil {
				return matrixErrorf(op, &ElementError{Row: i, Col: j, Err: err})
			}
			scratch[i*m.c+j] = v
		}
	}
	m.data = scratch

	return nil
}

// cellValue normalizes one dynamically typed cell.
func cellValue(cell any) (scalar.Value, error) {
	switch x := cell.(type) {
	case scalar.Value:
		if !x.IsFinite() {
			return scalar.Value{}, errNonFiniteCell(x)
		}
		return x, nil
	case string:
		return scalar.Parse(x)
	case int:
		return scalar.Int(int64(x)), nil
	case int32:
		return scalar.Int(int64(x)), nil
	case int64:
		return scalar.Int(x), nil
	case float32:
		return scalar.NewFloat(float64(x))
	case float64:
		return scalar.NewFloat(x)
	case nil:
		return scalar.Value{}, fmt.Errorf("%w: nil cell", scalar.ErrInvalidNumber)
	default:
		return scalar.Value{}, fmt.Errorf("%w: unsupported cell type %T", scalar.ErrInvalidNumber, cell)
	}
}

// FromStrings builds a matrix shaped after grid and fills it from textual cells.
// The grid must be non-empty and rectangular.
func FromStrings(grid [][]string, opts ...Option) (*Dense, error) {
	rows, cols := gridShape(grid)
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.FillStrings(grid); err != nil {
		return nil, err
	}

	return m, nil
}

// FromValues builds a matrix shaped after grid and fills it with Fill.
func FromValues(grid [][]any, opts ...Option) (*Dense, error) {
	rows, cols := gridShape(grid)
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(grid); err != nil {
		return nil, err
	}

	return m, nil
}

// gridShape reports len(grid) and the length of its first row (0 when empty).
func gridShape[T any](grid [][]T) (rows, cols int) {
	if len(grid) == 0 {
		return 0, 0
	}

	return len(grid), len(grid[0])
}

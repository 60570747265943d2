// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Operations accept any Matrix and return a concrete *Dense. *Dense operands
// unlock flat-slice fast paths; other implementations go through At/Set.
package matrix

import "github.com/katalvlaran/matrixgen/scalar"

// Matrix represents a two-dimensional mutable grid of scalar.Value.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (scalar.Value, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfRange if indices are invalid.
	Set(i, j int, v scalar.Value) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}

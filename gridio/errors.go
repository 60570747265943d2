// SPDX-License-Identifier: MIT

package gridio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input holds no data rows.
	ErrEmptyGrid = errors.New("gridio: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridio: all rows must have the same length")

	// ErrEmptyCell indicates a comma-separated line with a blank cell.
	ErrEmptyCell = errors.New("gridio: empty cell")
)

// lineErrorf wraps err with the 1-based input line it was found on.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("gridio: line %d: %w", line, err)
}

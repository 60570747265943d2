// SPDX-License-Identifier: MIT

// Package linalg - float64 row-major grid exchanged with backends.
//
// Layout mirrors matrix.Dense: data[i*cols+j], len(data) == rows*cols.

package linalg

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a rows×cols grid of float64 values in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zero rows×cols grid.
// Errors: ErrEmpty when rows ≤ 0 or cols ≤ 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmpty
	}

	return zeros(rows, cols), nil
}

// NewDenseData wraps a copy of data as a rows×cols grid.
// Errors: ErrEmpty, ErrDimensionMismatch when len(data) != rows*cols.
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmpty
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %d×%d", ErrDimensionMismatch, len(data), rows, cols)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a grid from a rectangular slice of rows.
// Errors: ErrEmpty, ErrDimensionMismatch (ragged rows).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	r, c := len(rows), len(rows[0])
	d := zeros(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, i, len(row), c)
		}
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d, nil
}

// MustFromRows is FromRows for literals known to be valid; it panics otherwise.
func MustFromRows(rows [][]float64) *Dense {
	d, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return d
}

func zeros(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

func eye(n int) *Dense {
	d := zeros(n, n)
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.c }

// Dims returns (rows, cols).
func (d *Dense) Dims() (rows, cols int) { return d.r, d.c }

// IsSquare reports whether rows == cols.
func (d *Dense) IsSquare() bool { return d.r == d.c }

// At returns element (i, j) or ErrIndexOutOfRange.
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set stores v at (i, j) or returns ErrIndexOutOfRange.
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Data returns a copy of the row-major buffer.
func (d *Dense) Data() []float64 {
	out := make([]float64, len(d.data))
	copy(out, d.data)

	return out
}

// Grid returns a copy of the values as rows.
func (d *Dense) Grid() [][]float64 {
	out := make([][]float64, d.r)
	for i := range out {
		row := make([]float64, d.c)
		copy(row, d.data[i*d.c:(i+1)*d.c])
		out[i] = row
	}

	return out
}

// Clone returns an independent copy.
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{r: d.r, c: d.c, data: cp}
}

// T returns the transpose as a new grid.
func (d *Dense) T() *Dense {
	t := zeros(d.c, d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			t.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return t
}

// Mul returns d × o. Errors: ErrDimensionMismatch when d.Cols != o.Rows.
func (d *Dense) Mul(o *Dense) (*Dense, error) {
	if d.c != o.r {
		return nil, fmt.Errorf("%w: %d×%d by %d×%d", ErrDimensionMismatch, d.r, d.c, o.r, o.c)
	}

	return mulDense(d, o), nil
}

// mulDense is the i→k→j kernel with zero skipping; shapes are trusted.
func mulDense(a, b *Dense) *Dense {
	res := zeros(a.r, b.c)
	var i, j, k int
	var av float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return res
}

// String provides a readable row-wise dump for diagnostics.
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", d.data[i*d.c+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// maxAbs returns max |d[i,j]|.
func (d *Dense) maxAbs() float64 {
	var m float64
	for _, v := range d.data {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}

	return m
}

// isSymmetric reports |d[i,j] − d[j,i]| ≤ tol·max(1, maxAbs) for all i < j.
func (d *Dense) isSymmetric(tol float64) bool {
	if d.r != d.c {
		return false
	}
	scale := d.maxAbs()
	if scale < 1 {
		scale = 1
	}
	lim := tol * scale
	n := d.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			diff := d.data[i*n+j] - d.data[j*n+i]
			if diff > lim || diff < -lim {
				return false
			}
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

// Package matrix - display encoding.
//
// Layout: one line per row, "[ " + cells joined by two spaces + " ]",
// rows joined by "\n" with no trailing newline. Cells use scalar.Value.String.

package matrix

import (
	"strings"
	"unicode/utf8"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "[ "
	_fmtRowClose = " ]"
	_fmtSep      = "  "
	_fmtRowSep   = "\n"

	// minCellWidth is the narrowest column produced by Format.
	minCellWidth = 4
)

// String renders the matrix with unpadded cells, e.g. "[ 1  2 ]\n[ 3  4 ]".
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.render(0)
}

// Format renders the matrix with every cell right-aligned to the width of the
// widest cell, but never narrower than four characters.
func (m *Dense) Format() string {
	if m == nil {
		return "<nil>"
	}
	width := minCellWidth
	for _, v := range m.data {
		if w := utf8.RuneCountInString(v.String()); w > width {
			width = w
		}
	}

	return m.render(width)
}

// render writes rows in fixed i→j order; width 0 disables padding.
func (m *Dense) render(width int) string {
	var b strings.Builder
	var i, j int
	var cell string
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			cell = m.data[i*m.c+j].String()
			if pad := width - utf8.RuneCountInString(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(cell)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// DisplayGrid exports the matrix as rows of display strings.
func (m *Dense) DisplayGrid() [][]string {
	out := make([][]string, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]string, m.c)
		for j := range row {
			row[j] = m.data[i*m.c+j].String()
		}
		out[i] = row
	}

	return out
}

// Values exports a copy of the cells as rows.
func (m *Dense) Values() [][]any {
	out := make([][]any, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]any, m.c)
		for j := range row {
			row[j] = m.data[i*m.c+j]
		}
		out[i] = row
	}

	return out
}

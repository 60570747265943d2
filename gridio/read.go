// SPDX-License-Identifier: MIT

package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/matrixgen/matrix"
)

const (
	commentPrefix = "#"
	cellSep       = ","
	maxLineBytes  = 1 << 20
)

// ReadGrid parses r into rows of raw cell tokens.
//
// Implementation:
//   - Stage 1: scan line by line, skipping blank and comment lines.
//   - Stage 2: split on commas if present, otherwise on whitespace.
//   - Stage 3: require every row to match the width of the first.
//
// Errors:
//   - ErrEmptyGrid when no data row is found.
//   - ErrNonRectangular and ErrEmptyCell, wrapped with the line number.
//   - Any read error from r.
func ReadGrid(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var rows [][]string
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		cells, err := splitLine(text)
		if err != nil {
			return nil, lineErrorf(line, err)
		}
		if len(rows) > 0 && len(cells) != len(rows[0]) {
			return nil, lineErrorf(line, fmt.Errorf("%w: got %d cells, want %d",
				ErrNonRectangular, len(cells), len(rows[0])))
		}
		rows = append(rows, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	return rows, nil
}

// ParseRow splits one line of a grid into cell tokens using the same rules
// as ReadGrid. A blank line yields no cells.
func ParseRow(line string) ([]string, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil, nil
	}

	return splitLine(text)
}

func splitLine(text string) ([]string, error) {
	if !strings.Contains(text, cellSep) {
		return strings.Fields(text), nil
	}
	parts := strings.Split(text, cellSep)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: column %d", ErrEmptyCell, i)
		}
		parts[i] = p
	}

	return parts, nil
}

// Read parses r into a Dense matrix. Options are passed to matrix.FromStrings,
// so the default dimension limit applies unless overridden.
func Read(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	rows, err := ReadGrid(r)
	if err != nil {
		return nil, err
	}

	return matrix.FromStrings(rows, opts...)
}

// LoadFile reads a matrix from the file at path.
func LoadFile(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: open: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// SPDX-License-Identifier: MIT

package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

const defaultDelimiter = ", "

// WriteOption customizes Write.
type WriteOption func(*writeOptions)

type writeOptions struct {
	delim  string
	header string
}

// WithDelimiter sets the separator placed between cells. It must contain a
// comma or consist only of whitespace so that Read accepts the output.
// Panics on any other value.
func WithDelimiter(d string) WriteOption {
	if d == "" || (!strings.Contains(d, cellSep) && strings.TrimSpace(d) != "") {
		panic(fmt.Sprintf("gridio: WithDelimiter: unreadable delimiter %q", d))
	}

	return func(o *writeOptions) { o.delim = d }
}

// WithHeader writes text as a leading comment line.
func WithHeader(text string) WriteOption {
	return func(o *writeOptions) { o.header = text }
}

// Write encodes m as a text grid, one row per line.
func Write(w io.Writer, m *matrix.Dense, opts ...WriteOption) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("gridio: write: %w", err)
	}
	o := writeOptions{delim: defaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	if o.header != "" {
		for _, line := range strings.Split(o.header, "\n") {
			fmt.Fprintf(bw, "%s %s\n", commentPrefix, line)
		}
	}
	cols := m.Cols()
	m.Do(func(_, j int, v scalar.Value) bool {
		bw.WriteString(EncodeCell(v))
		if j == cols-1 {
			bw.WriteByte('\n')
		} else {
			bw.WriteString(o.delim)
		}
		return true
	})
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gridio: write: %w", err)
	}

	return nil
}

// SaveFile writes m to path, creating or truncating the file.
func SaveFile(path string, m *matrix.Dense, opts ...WriteOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("gridio: close: %w", cerr)
		}
	}()

	return Write(f, m, opts...)
}

// EncodeCell renders v so that scalar.Parse returns the same kind and value.
// Rationals always keep their "/den" part; Floats always carry a point or
// exponent.
func EncodeCell(v scalar.Value) string {
	switch v.Kind() {
	case scalar.Rational:
		return strconv.FormatInt(v.Num(), 10) + "/" + strconv.FormatInt(v.Den(), 10)
	case scalar.Float:
		s := strconv.FormatFloat(v.Float64(), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return v.String()
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/matrixgen/internal/ops"
	"github.com/katalvlaran/matrixgen/internal/registry"
	"github.com/katalvlaran/matrixgen/matrix"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#5C7A84")
	colorError  = lipgloss.Color("#E74C3C")
)

// renderer formats results for the terminal. Styling is applied only when
// enabled and the writer is a terminal; otherwise output is plain text.
type renderer struct {
	styled bool
	label  lipgloss.Style
	box    lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

func newRenderer(w io.Writer, allowStyle bool) renderer {
	styled := false
	if f, ok := w.(*os.File); ok && allowStyle {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return renderer{
		styled: styled,
		label:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		muted: lipgloss.NewStyle().Foreground(colorMuted),
		err:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}

	return s.Render(text)
}

// Matrix renders "name =" followed by the aligned grid.
func (r renderer) Matrix(name string, m *matrix.Dense) string {
	body := m.Format()
	if r.styled {
		body = r.box.Render(body)
	}
	if name == "" {
		return body + "\n"
	}

	return r.style(r.label, name+" =") + "\n" + body + "\n"
}

// Scalar renders "name = value".
func (r renderer) Scalar(name, value string) string {
	return r.style(r.label, name+" =") + " " + value + "\n"
}

// Error renders an error line.
func (r renderer) Error(err error) string {
	return r.style(r.err, "error:") + " " + err.Error() + "\n"
}

// Muted renders secondary text.
func (r renderer) Muted(text string) string {
	return r.style(r.muted, text) + "\n"
}

// Result renders an operation result. name labels a matrix result.
func (r renderer) Result(name string, res ops.Result) string {
	var b strings.Builder
	switch res.Op {
	case ops.Det, ops.Norm, ops.Cond:
		b.WriteString(r.Scalar(string(res.Op), formatNumber(res.Number)))
	case ops.Rank:
		b.WriteString(r.Scalar("rank", strconv.Itoa(res.Count)))
	case ops.Equal:
		b.WriteString(r.Scalar("equal", strconv.FormatBool(res.Flag)))
	case ops.Eigen:
		b.WriteString(r.Scalar("values", formatNumbers(res.Values)))
		b.WriteString(r.Matrix("vectors", res.Factors["vectors"]))
	case ops.SVD:
		b.WriteString(r.Scalar("s", formatNumbers(res.Values)))
		b.WriteString(r.Matrix("u", res.Factors["u"]))
		b.WriteString(r.Matrix("vt", res.Factors["vt"]))
	case ops.QR:
		b.WriteString(r.Matrix("q", res.Factors["q"]))
		b.WriteString(r.Matrix("r", res.Factors["r"]))
	default:
		if res.Matrix != nil {
			b.WriteString(r.Matrix(name, res.Matrix))
		}
	}

	return b.String()
}

// Entries renders the registry listing.
func (r renderer) Entries(entries []registry.Entry) string {
	if len(entries) == 0 {
		return r.Muted("(no matrices)")
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", r.style(r.label, e.Name), r.style(r.muted, fmt.Sprintf("%dx%d", e.Rows, e.Cols)))
	}

	return b.String()
}

// History renders history records, one per line.
func (r renderer) History(recs []registry.Record) string {
	if len(recs) == 0 {
		return r.Muted("(no history)")
	}
	var b strings.Builder
	for _, rec := range recs {
		line := fmt.Sprintf("%4d  %-9s %s", rec.Seq, rec.Op, strings.Join(rec.Operands, " "))
		if rec.OK() {
			if rec.Result != "" {
				line += " -> " + rec.Result
			}
			b.WriteString(line + "\n")
			continue
		}
		b.WriteString(line + "  " + r.style(r.err, "failed: "+rec.Err) + "\n")
	}

	return b.String()
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.Abs(f) < 1e-12:
		return "0"
	}

	return strconv.FormatFloat(f, 'g', 10, 64)
}

func formatNumbers(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatNumber(x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixgen/gridio"
	"github.com/katalvlaran/matrixgen/internal/ops"
	"github.com/katalvlaran/matrixgen/linalg"
	"github.com/katalvlaran/matrixgen/matrix"
)

const (
	shellPrompt = "matrixgen> "
	defaultDest = "ans"
)

var (
	errQuit  = errors.New("quit")
	errUsage = errors.New("usage")
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over named matrices (type 'help')",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			interactive := false
			if f, ok := in.(*os.File); ok {
				interactive = isatty.IsTerminal(f.Fd())
			}

			return newShell(a, in, cmd.OutOrStdout(), interactive).run()
		},
	}
}

// shell is a line-oriented REPL. Results of matrix operations are stored
// under an optional destination name, "ans" by default.
type shell struct {
	a           *app
	sc          *bufio.Scanner
	out         io.Writer
	interactive bool
	seq         int64
	verbs       map[string]verb
}

type verb struct {
	usage string
	help  string
	run   func(s *shell, args []string) error
}

func newShell(a *app, in io.Reader, out io.Writer, interactive bool) *shell {
	s := &shell{a: a, sc: bufio.NewScanner(in), out: out, interactive: interactive}
	s.verbs = map[string]verb{
		"new":     {"new NAME ROWS COLS", "create a zero matrix", (*shell).cmdNew},
		"fill":    {"fill NAME", "read ROWS lines of cells into NAME", (*shell).cmdFill},
		"random":  {"random NAME ROWS COLS [MIN MAX [int|float]]", "create a random matrix", (*shell).cmdRandom},
		"show":    {"show NAME", "print a matrix", (*shell).cmdShow},
		"list":    {"list", "list stored matrices", (*shell).cmdList},
		"del":     {"del NAME", "delete a matrix", (*shell).cmdDel},
		"load":    {"load NAME PATH", "read a grid file into NAME", (*shell).cmdLoad},
		"save":    {"save NAME PATH", "write NAME to a grid file", (*shell).cmdSave},
		"history": {"history", "show the operation history", (*shell).cmdHistory},
		"help":    {"help", "show this help", (*shell).cmdHelp},
		"quit":    {"quit", "leave the shell", func(*shell, []string) error { return errQuit }},
	}
	s.verbs["exit"] = s.verbs["quit"]

	return s
}

func (s *shell) run() error {
	if s.interactive {
		fmt.Fprint(s.out, s.a.render.Muted("matrixgen shell, backend "+s.a.eng.Backend().Name()+"; type 'help'"))
	}
	for {
		if s.interactive {
			fmt.Fprint(s.out, shellPrompt)
		}
		if !s.sc.Scan() {
			return s.sc.Err()
		}
		line := strings.TrimSpace(s.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err := s.exec(strings.Fields(line))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprint(s.out, s.a.render.Error(err))
		}
	}
}

// exec dispatches one command line.
func (s *shell) exec(fields []string) error {
	name, args := strings.ToLower(fields[0]), fields[1:]
	if v, ok := s.verbs[name]; ok {
		return v.run(s, args)
	}
	op, err := ops.Parse(name)
	if err != nil {
		return fmt.Errorf("unknown command %q (try 'help')", name)
	}

	return s.cmdOp(op, args)
}

// cmdOp runs OP OPERAND... [EXTRA] [DEST].
func (s *shell) cmdOp(op ops.Op, args []string) error {
	n, extra := op.Arity(), extraArgs(op)
	limit := n + extra
	if op == ops.Equal || op == ops.Norm || producesMatrix(op) {
		limit++
	}
	if len(args) < n+extra || len(args) > limit {
		return fmt.Errorf("%w: %s", errUsage, shellUsage(op))
	}

	req := ops.Request{Op: op, Names: args[:n]}
	for _, name := range args[:n] {
		m, err := s.a.reg.Get(name)
		if err != nil {
			return err
		}
		req.Operands = append(req.Operands, m)
	}
	if err := fillArgs(&req, args[n:n+extra]); err != nil {
		return err
	}
	rest := args[n+extra:]
	switch op {
	case ops.Equal:
		if len(rest) > 0 {
			tol, err := strconv.ParseFloat(rest[0], 64)
			if err != nil {
				return fmt.Errorf("tolerance %q: %w", rest[0], err)
			}
			req.Tolerance = &tol
		}
		rest = nil
	case ops.Norm:
		kind := ""
		if len(rest) > 0 {
			kind = rest[0]
		}
		k, err := linalg.ParseNormKind(kind)
		if err != nil {
			return err
		}
		req.Norm = k
		rest = nil
	}

	dest := ""
	if producesMatrix(op) {
		dest = defaultDest
		if len(rest) > 0 {
			dest = rest[0]
		}
		req.Store = dest
	}

	res, err := s.a.eng.Do(req)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, s.a.render.Result(dest, res))

	return nil
}

func shellUsage(op ops.Op) string {
	usage := opDocs[op].use
	switch {
	case op == ops.Equal:
		usage += " [TOL]"
	case op == ops.Norm:
		usage += " [KIND]"
	case producesMatrix(op):
		usage += " [DEST]"
	}

	return usage
}

func producesMatrix(op ops.Op) bool {
	switch op {
	case ops.Equal, ops.Det, ops.Rank, ops.Norm, ops.Cond, ops.Eigen, ops.SVD, ops.QR:
		return false
	}

	return true
}

func (s *shell) cmdNew(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: new NAME ROWS COLS", errUsage)
	}
	rows, cols, err := dims(args[1], args[2])
	if err != nil {
		return err
	}
	m, err := matrix.NewDense(rows, cols, s.a.cfg.MatrixOptions()...)
	if err != nil {
		return err
	}

	return s.store("new", args[0], m)
}

// cmdFill reads one line per row of NAME from the shell input.
// The fill is atomic: any bad cell leaves NAME unchanged.
func (s *shell) cmdFill(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: fill NAME", errUsage)
	}
	m, err := s.a.reg.Get(args[0])
	if err != nil {
		return err
	}
	grid := make([][]string, 0, m.Rows())
	for len(grid) < m.Rows() {
		if s.interactive {
			fmt.Fprintf(s.out, "row %d/%d> ", len(grid)+1, m.Rows())
		}
		if !s.sc.Scan() {
			return fmt.Errorf("fill %s: input ended after %d of %d rows", args[0], len(grid), m.Rows())
		}
		cells, err := gridio.ParseRow(s.sc.Text())
		if err != nil {
			return err
		}
		if cells == nil {
			continue
		}
		grid = append(grid, cells)
	}
	if err := m.FillStrings(grid); err != nil {
		return err
	}

	return s.store("fill", args[0], m)
}

func (s *shell) cmdRandom(args []string) error {
	if len(args) != 3 && len(args) != 5 && len(args) != 6 {
		return fmt.Errorf("%w: %s", errUsage, s.verbs["random"].usage)
	}
	rows, cols, err := dims(args[1], args[2])
	if err != nil {
		return err
	}
	var f randomFlags
	set := map[string]bool{}
	if len(args) >= 5 {
		if f.min, err = strconv.ParseFloat(args[3], 64); err != nil {
			return fmt.Errorf("min %q: %w", args[3], err)
		}
		if f.max, err = strconv.ParseFloat(args[4], 64); err != nil {
			return fmt.Errorf("max %q: %w", args[4], err)
		}
		set["min"], set["max"] = true, true
	}
	if len(args) == 6 {
		f.kind = args[5]
		set["kind"] = true
	}
	// Consecutive random matrices in one session differ even with a fixed seed.
	s.seq++
	if s.a.cfg.Random.Seed != 0 {
		f.seed = s.a.cfg.Random.Seed + s.seq - 1
	}
	gen, lo, hi, err := f.generator(s.a, func(name string) bool { return set[name] })
	if err != nil {
		return err
	}
	m, err := matrix.NewDense(rows, cols, s.a.cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	if err := m.FillRandom(gen, lo, hi); err != nil {
		return err
	}

	return s.store("random", args[0], m)
}

func (s *shell) cmdShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show NAME", errUsage)
	}
	m, err := s.a.reg.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, s.a.render.Matrix(args[0], m))

	return nil
}

func (s *shell) cmdList(args []string) error {
	fmt.Fprint(s.out, s.a.render.Entries(s.a.reg.List()))
	return nil
}

func (s *shell) cmdDel(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: del NAME", errUsage)
	}
	err := s.a.reg.Delete(args[0])
	s.a.reg.Record("del", args, "", err)

	return err
}

func (s *shell) cmdLoad(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: load NAME PATH", errUsage)
	}
	m, err := gridio.LoadFile(args[1], s.a.cfg.MatrixOptions()...)
	if err != nil {
		s.a.reg.Record("load", args[1:], "", err)
		return err
	}

	return s.store("load", args[0], m)
}

func (s *shell) cmdSave(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: save NAME PATH", errUsage)
	}
	m, err := s.a.reg.Get(args[0])
	if err == nil {
		err = gridio.SaveFile(args[1], m, gridio.WithHeader(fmt.Sprintf("%s %dx%d", args[0], m.Rows(), m.Cols())))
	}
	s.a.reg.Record("save", args[:1], args[1], err)

	return err
}

func (s *shell) cmdHistory(args []string) error {
	fmt.Fprint(s.out, s.a.render.History(s.a.reg.History()))
	return nil
}

func (s *shell) cmdHelp(args []string) error {
	var lines []string
	for name, v := range s.verbs {
		if name == "exit" {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-44s %s", v.usage, v.help))
	}
	for op, doc := range opDocs {
		lines = append(lines, fmt.Sprintf("  %-44s %s", shellUsage(op), doc.short))
	}
	sort.Strings(lines)
	fmt.Fprintln(s.out, "commands:")
	fmt.Fprintln(s.out, strings.Join(lines, "\n"))

	return nil
}

// store saves m under name and records the verb.
func (s *shell) store(verbName, name string, m *matrix.Dense) error {
	_, err := s.a.reg.Put(name, m)
	s.a.reg.Record(verbName, nil, name, err)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, s.a.render.Matrix(name, m))

	return nil
}

func dims(r, c string) (int, int, error) {
	rows, err := strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("rows %q: %w", r, matrix.ErrInvalidDimensions)
	}
	cols, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, fmt.Errorf("cols %q: %w", c, matrix.ErrInvalidDimensions)
	}

	return rows, cols, nil
}

// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixgen/gridio"
	"github.com/katalvlaran/matrixgen/matrix"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", ""}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func writeGrid(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestOpCommands(t *testing.T) {
	dir := t.TempDir()
	a := writeGrid(t, dir, "a.txt", "1 2\n3 4\n")
	b := writeGrid(t, dir, "b.txt", "5, 6\n7, 8\n")

	out, err := run(t, "", "mul", a, b)
	require.NoError(t, err)
	assert.Equal(t, "[   19    22 ]\n[   43    50 ]\n", out)

	out, err = run(t, "1 2 3\n", "t", "-")
	require.NoError(t, err)
	assert.Equal(t, "[    1 ]\n[    2 ]\n[    3 ]\n", out)

	out, err = run(t, "", "scale", a, "1/2")
	require.NoError(t, err)
	assert.Equal(t, "[  1/2     1 ]\n[  3/2     2 ]\n", out)

	out, err = run(t, "", "det", a)
	require.NoError(t, err)
	assert.Equal(t, "det = -2\n", out)

	out, err = run(t, "", "rank", a)
	require.NoError(t, err)
	assert.Equal(t, "rank = 2\n", out)

	out, err = run(t, "", "norm", a, "--kind", "1")
	require.NoError(t, err)
	assert.Equal(t, "norm = 6\n", out)

	out, err = run(t, "", "eq", a, a)
	require.NoError(t, err)
	assert.Equal(t, "equal = true\n", out)

	out, err = run(t, "", "equal", a, b, "--tol", "4")
	require.NoError(t, err)
	assert.Equal(t, "equal = true\n", out)

	out, err = run(t, "", "qr", a, "--backend", "gonum")
	require.NoError(t, err)
	assert.Contains(t, out, "q =\n")
	assert.Contains(t, out, "r =\n")
}

func TestOpOutputFile(t *testing.T) {
	dir := t.TempDir()
	a := writeGrid(t, dir, "a.txt", "1 1\n0 1\n")
	dst := filepath.Join(dir, "p.txt")

	out, err := run(t, "", "pow", a, "5", "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	m, err := gridio.LoadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "5"}, {"0", "1"}}, m.DisplayGrid())

	_, err = run(t, "", "det", a, "-o", dst)
	assert.Error(t, err, "scalar results cannot be written as a grid")
}

func TestOpErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeGrid(t, dir, "a.txt", "1 2\n3 4\n")
	wide := writeGrid(t, dir, "w.txt", "1 2 3\n")

	_, err := run(t, "", "pow", a, "2.5")
	assert.ErrorIs(t, err, matrix.ErrInvalidExponent)

	_, err = run(t, "", "pow", a, "--", "-1")
	assert.ErrorIs(t, err, matrix.ErrInvalidExponent)

	_, err = run(t, "", "pow", a, "1025")
	assert.ErrorIs(t, err, matrix.ErrInvalidExponent, "default max_exponent is 1024")

	_, err = run(t, "", "mul", wide, wide)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = run(t, "", "add", a)
	assert.Error(t, err, "arity is enforced by cobra")

	_, err = run(t, "", "show", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "", "det", a, "--backend", "lapack")
	assert.Error(t, err)
}

func TestRandomCommand(t *testing.T) {
	first, err := run(t, "", "random", "3", "4", "--seed", "9", "--min", "-5", "--max", "5")
	require.NoError(t, err)
	second, err := run(t, "", "random", "3", "4", "--seed", "9", "--min", "-5", "--max", "5")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 3)

	_, err = run(t, "", "random", "0", "4")
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = run(t, "", "random", "2", "2", "--min", "3", "--max", "1")
	assert.ErrorIs(t, err, matrix.ErrInvalidRange)
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "backend: native")
	assert.Contains(t, out, "max_dim: 100")
	assert.Contains(t, out, "max_exponent: 1024")

	dir := t.TempDir()
	cfg := writeGrid(t, dir, "cfg.yaml", "max_dim: 2\nbackend: gonum\n")
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "config"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "backend: gonum")

	a := writeGrid(t, dir, "a.txt", "1 2 3\n")
	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "show", a})
	assert.ErrorIs(t, cmd.Execute(), matrix.ErrInvalidDimensions, "config max_dim applies to loaded grids")
}

func TestShellSession(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "b.txt")
	script := strings.Join([]string{
		"new A 2 2",
		"fill A",
		"1 2",
		"3, 4",
		"t A B",
		"mul A B",
		"det A",
		"# comment",
		"eq A A 0",
		"show ans",
		"save B " + saved,
		"load C " + saved,
		"del C",
		"list",
		"bogus",
		"add A",
		"inv X",
		"history",
		"quit",
		"show A",
	}, "\n")

	out, err := run(t, script, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "B =\n[    1     3 ]\n[    2     4 ]\n")
	assert.Contains(t, out, "ans =\n[    5    11 ]\n[   11    25 ]\n")
	assert.Contains(t, out, "det = -2\n")
	assert.Contains(t, out, "equal = true\n")
	assert.Contains(t, out, "A 2x2\nB 2x2\nans 2x2\n")
	assert.Contains(t, out, `error: unknown command "bogus"`)
	assert.Contains(t, out, "error: usage: add A B [DEST]")
	assert.Contains(t, out, "registry: matrix not found")
	assert.Contains(t, out, "-> ans")
	assert.Equal(t, 2, strings.Count(out, "A =\n"), "new and fill print A; show after quit is not run")

	m, err := gridio.LoadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "3"}, {"2", "4"}}, m.DisplayGrid())
}

func TestShellFillErrors(t *testing.T) {
	out, err := run(t, "new A 1 2\nfill A\n1 x\nshow A\nfill A\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "matrix: invalid element at (0,1)")
	assert.Contains(t, out, "A =\n[    0     0 ]\n", "failed fill leaves A unchanged")
	assert.Contains(t, out, "input ended after 0 of 1 rows")
}

func TestShellHelp(t *testing.T) {
	out, err := run(t, "help\n", "shell")
	require.NoError(t, err)
	for _, want := range []string{"new NAME ROWS COLS", "pow A N [DEST]", "equal A B [TOL]", "norm A [KIND]", "det A "} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, strings.Count(out, "leave the shell"))
}

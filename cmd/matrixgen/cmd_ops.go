// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixgen/gridio"
	"github.com/katalvlaran/matrixgen/internal/ops"
	"github.com/katalvlaran/matrixgen/linalg"
	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

type opDoc struct {
	use     string
	short   string
	aliases []string
}

var opDocs = map[ops.Op]opDoc{
	ops.Add:       {"add A B", "Element-wise sum A + B", nil},
	ops.Sub:       {"sub A B", "Element-wise difference A - B", nil},
	ops.Mul:       {"mul A B", "Matrix product A · B", nil},
	ops.Scale:     {"scale A SCALAR", "Multiply every element by SCALAR (e.g. 3, 0.5, -1/2)", nil},
	ops.Pow:       {"pow A N", "Raise square A to the whole power N >= 0", []string{"power"}},
	ops.Transpose: {"transpose A", "Transpose A", []string{"t"}},
	ops.Equal:     {"equal A B", "Compare A and B within a tolerance", []string{"eq"}},
	ops.Det:       {"det A", "Determinant of square A", nil},
	ops.Inv:       {"inv A", "Inverse of square A", []string{"inverse"}},
	ops.Rank:      {"rank A", "Numerical rank of A", nil},
	ops.Norm:      {"norm A", "Matrix norm of A (see --kind)", nil},
	ops.Eigen:     {"eigen A", "Eigenvalues and eigenvectors of square A", nil},
	ops.SVD:       {"svd A", "Thin singular value decomposition of A", nil},
	ops.QR:        {"qr A", "Reduced QR factorization of A", nil},
	ops.Cholesky:  {"cholesky A", "Cholesky factor L of symmetric positive-definite A", []string{"chol"}},
	ops.Cond:      {"cond A", "2-norm condition number of A", nil},
}

// extraArgs counts positional arguments beyond the matrix operands.
func extraArgs(op ops.Op) int {
	if op == ops.Scale || op == ops.Pow {
		return 1
	}

	return 0
}

// newOpCmd builds the subcommand for op. Matrix operands are grid file
// paths, or "-" for stdin.
func newOpCmd(a *app, op ops.Op) *cobra.Command {
	doc := opDocs[op]
	var (
		output string
		tol    float64
		kind   string
	)
	cmd := &cobra.Command{
		Use:     doc.use,
		Short:   doc.short,
		Aliases: doc.aliases,
		Args:    cobra.ExactArgs(op.Arity() + extraArgs(op)),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ops.Request{Op: op}
			for _, path := range args[:op.Arity()] {
				m, err := a.load(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				req.Operands = append(req.Operands, m)
				req.Names = append(req.Names, path)
			}
			if err := fillArgs(&req, args[op.Arity():]); err != nil {
				return err
			}
			if cmd.Flags().Changed("tol") {
				req.Tolerance = &tol
			}
			if op == ops.Norm {
				k, err := linalg.ParseNormKind(kind)
				if err != nil {
					return err
				}
				req.Norm = k
			}

			res, err := a.eng.Do(req)
			if err != nil {
				return err
			}
			if output != "" {
				if res.Matrix == nil {
					return fmt.Errorf("%s produces no matrix to write to %s", op, output)
				}
				return gridio.SaveFile(output, res.Matrix)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.Result("", res))

			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result grid to this file")
	switch op {
	case ops.Equal:
		cmd.Flags().Float64Var(&tol, "tol", matrix.DefaultTolerance, "absolute tolerance (defaults to the configured tolerance)")
	case ops.Norm:
		cmd.Flags().StringVar(&kind, "kind", string(linalg.NormFrobenius), "fro|nuc|inf|-inf|1|-1|2|-2")
	}

	return cmd
}

// fillArgs parses the non-matrix positional arguments of req.Op.
func fillArgs(req *ops.Request, args []string) error {
	switch req.Op {
	case ops.Scale:
		v, err := scalar.Parse(args[0])
		if err != nil {
			return fmt.Errorf("scalar %q: %w", args[0], err)
		}
		req.Scalar = v
	case ops.Pow:
		n, err := parseExponent(args[0])
		if err != nil {
			return err
		}
		req.Exponent = n
	}

	return nil
}

// parseExponent accepts a whole number written in the cell grammar
// ("3", "6/2"); floats and fractions are rejected.
func parseExponent(text string) (int, error) {
	v, err := scalar.Parse(text)
	if err != nil {
		return 0, fmt.Errorf("exponent %q: %w", text, err)
	}
	n, ok := v.Int64()
	if !ok || n < 0 || n > maxExponent {
		return 0, fmt.Errorf("%w: %q", matrix.ErrInvalidExponent, text)
	}

	return int(n), nil
}

// maxExponent keeps the conversion to int safe on every platform; the engine
// applies the configured max_exponent on top.
const maxExponent = 1<<31 - 1

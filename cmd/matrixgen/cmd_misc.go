// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixgen/gridio"
	"github.com/katalvlaran/matrixgen/matrix"
)

// randomFlags holds the flags shared by the random subcommand and shell verb.
type randomFlags struct {
	min, max float64
	kind     string
	seed     int64
}

// generator fills unset values from the config. A zero seed in both the flag
// and the config draws one from the clock.
func (f randomFlags) generator(a *app, changed func(string) bool) (*matrix.Generator, float64, float64, error) {
	lo, hi := a.cfg.Random.Min, a.cfg.Random.Max
	if changed("min") {
		lo = f.min
	}
	if changed("max") {
		hi = f.max
	}
	kind := a.cfg.ElementKind()
	if changed("kind") {
		k, err := matrix.ParseElementKind(f.kind)
		if err != nil {
			return nil, 0, 0, err
		}
		kind = k
	}
	seed := f.seed
	if seed == 0 {
		seed = a.cfg.Random.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return matrix.NewGenerator(seed, kind), lo, hi, nil
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		f      randomFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "random ROWS COLS",
		Short: "Generate a matrix of uniform random values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rows: %w", err)
			}
			cols, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cols: %w", err)
			}
			gen, lo, hi, err := f.generator(a, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			m, err := matrix.NewDense(rows, cols, a.cfg.MatrixOptions()...)
			if err != nil {
				return err
			}
			if err := m.FillRandom(gen, lo, hi); err != nil {
				return err
			}
			if output != "" {
				return gridio.SaveFile(output, m)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.Matrix("", m))

			return err
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&f.min, "min", 0, "lower bound (defaults to config random.min)")
	fl.Float64Var(&f.max, "max", 0, "upper bound (defaults to config random.max)")
	fl.StringVar(&f.kind, "kind", "", "int|float (defaults to config random.kind)")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed; 0 uses config random.seed, then the clock")
	fl.StringVarP(&output, "output", "o", "", "write the grid to this file")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show A",
		Short: "Print a grid file aligned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.render.Matrix("", m))

			return err
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

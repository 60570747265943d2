// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixgen/gridio"
	"github.com/katalvlaran/matrixgen/internal/config"
	"github.com/katalvlaran/matrixgen/internal/ops"
	"github.com/katalvlaran/matrixgen/internal/registry"
	"github.com/katalvlaran/matrixgen/linalg"
	"github.com/katalvlaran/matrixgen/matrix"
)

const envConfig = "MATRIXGEN_CONFIG"

// app carries the state shared by all subcommands once the config is loaded.
type app struct {
	// flags
	cfgPath string
	backend string
	noColor bool

	cfg    config.Config
	log    *slog.Logger
	reg    *registry.Registry
	eng    *ops.Engine
	render renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "matrixgen",
		Short:        "Exact and numeric matrix operations",
		Long:         "matrixgen operates on dense matrices of integers, floats and exact rationals.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", os.Getenv(envConfig), "YAML config file (env "+envConfig+")")
	pf.StringVar(&a.backend, "backend", "", "linear algebra backend: native|gonum (overrides config)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable styled output")

	for _, op := range ops.All(ops.Algebra) {
		root.AddCommand(newOpCmd(a, op))
	}
	for _, op := range ops.All(ops.Linalg) {
		root.AddCommand(newOpCmd(a, op))
	}
	root.AddCommand(
		newRandomCmd(a),
		newShowCmd(a),
		newConfigCmd(a),
		newShellCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup loads the config and builds the logger, registry and engine.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.backend != "" {
		cfg.Backend = a.backend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	backend, err := linalg.New(cfg.Backend)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = cfg.Log.NewLogger(cmd.ErrOrStderr())
	a.reg = registry.New(registry.WithHistoryLimit(cfg.HistoryLimit))
	a.eng = ops.New(backend,
		ops.WithRegistry(a.reg),
		ops.WithLogger(a.log),
		ops.WithTolerance(cfg.Tolerance),
		ops.WithMaxExponent(cfg.MaxExponent),
	)
	a.render = newRenderer(cmd.OutOrStdout(), !a.noColor)
	a.log.Debug("configured", "config", a.cfgPath, "backend", backend.Name(), "max_dim", cfg.MaxDim)

	return nil
}

// load reads a grid file, or stdin when path is "-".
func (a *app) load(in io.Reader, path string) (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	if path == "-" {
		m, err = gridio.Read(in, a.cfg.MatrixOptions()...)
	} else {
		m, err = gridio.LoadFile(path, a.cfg.MatrixOptions()...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

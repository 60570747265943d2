// SPDX-License-Identifier: MIT

// Package matrixgen is a small dense-matrix toolkit over mixed numeric
// domains: exact integers, exact rationals and finite floats live side by
// side in one grid and are promoted per cell as the algebra requires.
//
// The module is organized as:
//
//	scalar/            — tagged numeric Value (Integer, Float, Rational): parse, promote, format
//	matrix/            — Dense grid of scalar values: fill, random fill, algebra, equality, display
//	linalg/            — Backend interface with Native (in-repo kernels) and Gonum implementations
//	gridio/            — plain text grid read/write, one row per line
//	internal/config    — YAML configuration and slog logger construction
//	internal/registry  — named matrix store with bounded operation history
//	internal/ops       — operation table and the engine shared by every front end
//	internal/server    — HTTP JSON API with Prometheus metrics
//	cmd/matrixgen      — cobra CLI, interactive shell and serve command
//
// Quick example:
//
//	a, _ := matrix.FromStrings([][]string{{"1/2", "1"}, {"0", "2"}})
//	b, _ := matrix.Power(a, 3)
//	fmt.Println(b)
//
//	// [ 1/8  21/4 ]
//	// [ 0  8 ]
//
// Exact inputs stay exact: sums and products of Integer and Rational cells
// are computed without rounding, and a result only becomes Float when a Float
// operand is involved or an exact value no longer fits in int64.
//
// Linear algebra (determinant, inverse, rank, norms, eigen, SVD, QR,
// Cholesky, condition number) works on float64 copies through linalg.Backend:
//
//	be, _ := linalg.New(linalg.BackendGonum)
//	det, _ := be.Det(linalg.FromMatrix(a))
package matrixgen

// SPDX-License-Identifier: MIT

// Package linalg provides the numeric linear-algebra layer behind matrixgen.
//
// The exact matrix package works on scalar.Value cells; decompositions and
// measures (determinant, inverse, rank, norms, eigenpairs, SVD, QR, Cholesky,
// condition number) are computed here in float64 through the Backend
// interface. Two backends are available:
//
//   - Native: in-repo kernels (LU, Householder QR, Jacobi eigen and SVD).
//   - Gonum:  gonum.org/v1/gonum/mat (LAPACK routines, general eigen).
//
// Values cross the boundary with FromMatrix and ToMatrix. Every error wraps
// one of the sentinels in errors.go with an operation tag, e.g.
//
//	b, _ := linalg.New("gonum")
//	a, _ := linalg.FromMatrix(m)
//	inv, err := b.Inverse(a)
//	if errors.Is(err, linalg.ErrSingular) { ... }
//
// Backends never mutate their inputs and are safe for concurrent use.
package linalg

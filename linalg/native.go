// SPDX-License-Identifier: MIT

// Package linalg - Native backend: in-repo kernels, no external numerics.
//
// Kernels:
//   - Determinant / Inverse: LU with partial pivoting (lu.go).
//   - QR: Householder reflections, reduced form for any shape (qr.go).
//   - Eigen: classical Jacobi rotations, symmetric input only (eigen.go).
//   - SVD / Rank / 2-norms / Cond: one-sided Jacobi (svd.go).
//   - Cholesky: Cholesky–Banachiewicz (cholesky.go).

package linalg

import "fmt"

// Defaults for the iterative kernels.
const (
	// DefaultTolerance is the relative off-diagonal threshold for Jacobi eigen.
	DefaultTolerance = 1e-12

	// DefaultMaxSweeps bounds the one-sided Jacobi SVD.
	DefaultMaxSweeps = 60

	// rotationsPerEntry scales the Jacobi eigen budget with n².
	rotationsPerEntry = 100
)

const panicTolInvalid = "linalg: WithTolerance: tol must be > 0"

// NativeOption configures a Native backend.
type NativeOption func(*Native)

// WithTolerance sets the relative convergence threshold of the Jacobi eigen
// kernel. Panics if tol ≤ 0.
func WithTolerance(tol float64) NativeOption {
	if !(tol > 0) {
		panic(panicTolInvalid)
	}

	return func(n *Native) { n.tol = tol }
}

// WithMaxIter caps the number of Jacobi eigen rotations. n ≤ 0 selects the
// default budget of 100·n² rotations for an n×n input.
func WithMaxIter(iter int) NativeOption {
	return func(n *Native) { n.maxIter = iter }
}

// WithMaxSweeps caps the number of one-sided Jacobi SVD sweeps (≤ 0 ⇒ default).
func WithMaxSweeps(sweeps int) NativeOption {
	return func(n *Native) { n.maxSweeps = sweeps }
}

// Native implements Backend with the kernels of this package.
// The zero value is not usable; construct with NewNative.
type Native struct {
	tol       float64
	maxIter   int
	maxSweeps int
}

var _ Backend = (*Native)(nil)

// NewNative returns a Native backend with defaults overridden by opts.
func NewNative(opts ...NativeOption) *Native {
	n := &Native{tol: DefaultTolerance, maxSweeps: DefaultMaxSweeps}
	for _, fn := range opts {
		if fn != nil {
			fn(n)
		}
	}
	if n.maxSweeps <= 0 {
		n.maxSweeps = DefaultMaxSweeps
	}

	return n
}

// Name returns "native".
func (*Native) Name() string { return BackendNative }

// Determinant returns det(a) from the pivoted LU factors.
// A zero pivot yields exactly 0.
func (*Native) Determinant(a *Dense) (float64, error) {
	if err := requireSquare(opDet, a); err != nil {
		return 0, err
	}

	return factorLU(a).det(), nil
}

// Inverse returns a⁻¹, or ErrSingular when a pivot falls to n·ε·‖a‖max.
func (*Native) Inverse(a *Dense) (*Dense, error) {
	if err := requireSquare(opInverse, a); err != nil {
		return nil, err
	}
	f := factorLU(a)
	if f.singular(a.maxAbs()) {
		return nil, linalgErrorf(opInverse, ErrSingular)
	}

	return f.inverse(), nil
}

// Eigen diagonalizes a symmetric grid. Non-symmetric input returns
// ErrNotSymmetric; use the gonum backend for general matrices.
func (n *Native) Eigen(a *Dense) (EigenResult, error) {
	if err := requireSymmetric(opEigen, a); err != nil {
		return EigenResult{}, err
	}
	iter := n.maxIter
	if iter <= 0 {
		iter = rotationsPerEntry * a.r * a.r
	}
	res, err := jacobiEigen(a, n.tol, iter)
	if err != nil {
		return EigenResult{}, linalgErrorf(opEigen, err)
	}

	return res, nil
}

// SVD returns the thin singular value decomposition.
func (n *Native) SVD(a *Dense) (SVDResult, error) {
	if err := requireNonEmpty(opSVD, a); err != nil {
		return SVDResult{}, err
	}
	res, err := jacobiSVD(a, n.maxSweeps)
	if err != nil {
		return SVDResult{}, linalgErrorf(opSVD, err)
	}

	return res, nil
}

// QR returns the reduced Householder factorization.
func (*Native) QR(a *Dense) (q, r *Dense, err error) {
	if err = requireNonEmpty(opQR, a); err != nil {
		return nil, nil, err
	}
	q, r = householderQR(a)

	return q, r, nil
}

// Cholesky returns L with a = L·Lᵀ for symmetric positive definite a.
func (*Native) Cholesky(a *Dense) (*Dense, error) {
	if err := requireSymmetric(opCholesky, a); err != nil {
		return nil, err
	}
	l, err := choleskyLower(a)
	if err != nil {
		return nil, linalgErrorf(opCholesky, err)
	}

	return l, nil
}

// Rank counts singular values above max(m,n)·ε·σmax.
func (n *Native) Rank(a *Dense) (int, error) {
	s, err := n.singularValues(opRank, a)
	if err != nil {
		return 0, err
	}

	return countAbove(s, rankTol(s, a.r, a.c)), nil
}

// Norm evaluates the requested norm; 2, −2 and nuclear norms use the SVD.
func (n *Native) Norm(a *Dense, kind NormKind) (float64, error) {
	if err := requireNonEmpty(opNorm, a); err != nil {
		return 0, err
	}
	if !needsSVD(kind) {
		v, err := entryNorm(a, kind)
		if err != nil {
			return 0, linalgErrorf(opNorm, err)
		}
		return v, nil
	}
	s, err := n.singularValues(opNorm, a)
	if err != nil {
		return 0, err
	}

	return svdNorm(s, kind), nil
}

// Cond returns σmax/σmin (+Inf for a singular grid).
func (n *Native) Cond(a *Dense) (float64, error) {
	s, err := n.singularValues(opCond, a)
	if err != nil {
		return 0, err
	}

	return condFromSingular(s), nil
}

func (n *Native) singularValues(tag string, a *Dense) ([]float64, error) {
	if err := requireNonEmpty(tag, a); err != nil {
		return nil, err
	}
	res, err := jacobiSVD(a, n.maxSweeps)
	if err != nil {
		return nil, linalgErrorf(tag, fmt.Errorf("singular values: %w", err))
	}

	return res.S, nil
}

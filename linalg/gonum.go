// SPDX-License-Identifier: MIT

// Package linalg - Gonum backend: LAPACK-backed routines of gonum.org/v1/gonum/mat.
//
// Unlike Native, the Gonum backend decomposes general (non-symmetric) square
// grids in Eigen, provided every eigenvalue is real.

package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// complexTol is the relative bound on |Im λ| below which an eigenvalue is
// treated as real.
const complexTol = 1e-10

// Gonum implements Backend on top of gonum/mat. It is stateless.
type Gonum struct{}

var _ Backend = Gonum{}

// NewGonum returns the gonum backend.
func NewGonum() Gonum { return Gonum{} }

// Name returns "gonum".
func (Gonum) Name() string { return BackendGonum }

// Determinant returns mat.Det(a).
func (Gonum) Determinant(a *Dense) (float64, error) {
	if err := requireSquare(opDet, a); err != nil {
		return 0, err
	}

	return mat.Det(toMat(a)), nil
}

// Inverse returns a⁻¹. A condition estimate at or beyond 1/ε is reported as
// ErrSingular; smaller condition warnings from gonum are accepted.
func (Gonum) Inverse(a *Dense) (*Dense, error) {
	if err := requireSquare(opInverse, a); err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(toMat(a)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, linalgErrorf(opInverse, err)
		}
		if math.IsInf(float64(cond), 1) || float64(cond)*eps >= 1 {
			return nil, linalgErrorf(opInverse, fmt.Errorf("%w: condition %g", ErrSingular, float64(cond)))
		}
	}

	return fromMat(&inv), nil
}

// Eigen uses EigenSym for symmetric input and the general Eigen otherwise.
// A general grid with complex eigenvalues returns ErrComplexEigen.
func (g Gonum) Eigen(a *Dense) (EigenResult, error) {
	if err := requireSquare(opEigen, a); err != nil {
		return EigenResult{}, err
	}
	if a.isSymmetric(symTol) {
		return g.eigenSym(a)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(toMat(a), mat.EigenRight); !ok {
		return EigenResult{}, linalgErrorf(opEigen, ErrNoConvergence)
	}
	cvals := eig.Values(nil)
	scale := a.maxAbs()
	if scale < 1 {
		scale = 1
	}
	values := make([]float64, len(cvals))
	for i, v := range cvals {
		if math.Abs(imag(v)) > complexTol*scale {
			return EigenResult{}, linalgErrorf(opEigen, fmt.Errorf("%w: λ%d = %v", ErrComplexEigen, i, v))
		}
		values[i] = real(v)
	}
	var cv mat.CDense
	eig.VectorsTo(&cv)
	r, c := cv.Dims()
	vecs := zeros(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			vecs.data[i*c+j] = real(cv.At(i, j))
		}
	}

	return sortEigen(values, vecs), nil
}

func (Gonum) eigenSym(a *Dense) (EigenResult, error) {
	var es mat.EigenSym
	if ok := es.Factorize(toSym(a), true); !ok {
		return EigenResult{}, linalgErrorf(opEigen, ErrNoConvergence)
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return sortEigen(values, fromMat(&vecs)), nil
}

// SVD returns the thin decomposition from mat.SVD.
func (Gonum) SVD(a *Dense) (SVDResult, error) {
	if err := requireNonEmpty(opSVD, a); err != nil {
		return SVDResult{}, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(toMat(a), mat.SVDThin); !ok {
		return SVDResult{}, linalgErrorf(opSVD, ErrNoConvergence)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return SVDResult{U: fromMat(&u), S: svd.Values(nil), Vt: fromMat(v.T())}, nil
}

// QR returns the reduced factorization. gonum factors only m ≥ n, so a wide
// grid is split as [A₁ | A₂] with A₁ m×m: Q·R₁ = A₁ and R₂ = Qᵀ·A₂.
func (Gonum) QR(a *Dense) (q, r *Dense, err error) {
	if err = requireNonEmpty(opQR, a); err != nil {
		return nil, nil, err
	}
	m, n := a.r, a.c
	src := toMat(a)
	if m >= n {
		var qr mat.QR
		qr.Factorize(src)
		var qf, rf mat.Dense
		qr.QTo(&qf)
		qr.RTo(&rf)
		return fromMat(qf.Slice(0, m, 0, n)), fromMat(rf.Slice(0, n, 0, n)), nil
	}

	var qr mat.QR
	qr.Factorize(src.Slice(0, m, 0, m))
	var qf, r1 mat.Dense
	qr.QTo(&qf)
	qr.RTo(&r1)
	var r2 mat.Dense
	r2.Mul(qf.T(), src.Slice(0, m, m, n))

	r = zeros(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if j < m {
				r.data[i*n+j] = r1.At(i, j)
			} else {
				r.data[i*n+j] = r2.At(i, j-m)
			}
		}
	}

	return fromMat(&qf), r, nil
}

// Cholesky returns the lower factor of mat.Cholesky.
func (Gonum) Cholesky(a *Dense) (*Dense, error) {
	if err := requireSymmetric(opCholesky, a); err != nil {
		return nil, err
	}
	var ch mat.Cholesky
	if ok := ch.Factorize(toSym(a)); !ok {
		return nil, linalgErrorf(opCholesky, ErrNotPositiveDefinite)
	}
	var l mat.TriDense
	ch.LTo(&l)

	return fromMat(&l), nil
}

// Rank counts singular values above max(m,n)·ε·σmax.
func (g Gonum) Rank(a *Dense) (int, error) {
	s, err := g.singularValues(opRank, a)
	if err != nil {
		return 0, err
	}

	return countAbove(s, rankTol(s, a.r, a.c)), nil
}

// Norm maps fro, 1 and inf onto mat.Norm; the remaining kinds use the
// shared entry sums or the singular values.
func (g Gonum) Norm(a *Dense, kind NormKind) (float64, error) {
	if err := requireNonEmpty(opNorm, a); err != nil {
		return 0, err
	}
	switch kind {
	case NormFrobenius:
		return mat.Norm(toMat(a), 2), nil
	case Norm1:
		return mat.Norm(toMat(a), 1), nil
	case NormInf:
		return mat.Norm(toMat(a), math.Inf(1)), nil
	}
	if !needsSVD(kind) {
		v, err := entryNorm(a, kind)
		if err != nil {
			return 0, linalgErrorf(opNorm, err)
		}
		return v, nil
	}
	s, err := g.singularValues(opNorm, a)
	if err != nil {
		return 0, err
	}

	return svdNorm(s, kind), nil
}

// Cond returns mat.Cond(a, 2).
func (Gonum) Cond(a *Dense) (float64, error) {
	if err := requireNonEmpty(opCond, a); err != nil {
		return 0, err
	}

	return mat.Cond(toMat(a), 2), nil
}

func (Gonum) singularValues(tag string, a *Dense) ([]float64, error) {
	if err := requireNonEmpty(tag, a); err != nil {
		return nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(toMat(a), mat.SVDNone); !ok {
		return nil, linalgErrorf(tag, ErrNoConvergence)
	}

	return svd.Values(nil), nil
}

// ---------- gonum adapters ----------

func toMat(a *Dense) *mat.Dense {
	return mat.NewDense(a.r, a.c, a.Data())
}

// toSym reads the upper triangle of a square grid.
func toSym(a *Dense) *mat.SymDense {
	return mat.NewSymDense(a.r, a.Data())
}

func fromMat(m mat.Matrix) *Dense {
	r, c := m.Dims()
	d := zeros(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.data[i*c+j] = m.At(i, j)
		}
	}

	return d
}

// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Backend computes the float64 decompositions and measures of a grid.
// Implementations never mutate their inputs.
type Backend interface {
	// Name identifies the backend ("native", "gonum").
	Name() string
	// Determinant of a square grid.
	Determinant(a *Dense) (float64, error)
	// Inverse of a square, non-singular grid.
	Inverse(a *Dense) (*Dense, error)
	// Eigen returns real eigenvalues in ascending order and the matching
	// eigenvectors as columns.
	Eigen(a *Dense) (EigenResult, error)
	// SVD returns the thin decomposition a = U·diag(S)·Vt, S descending.
	SVD(a *Dense) (SVDResult, error)
	// QR returns the reduced factorization a = Q·R with Q m×k and R k×n,
	// k = min(m, n).
	QR(a *Dense) (q, r *Dense, err error)
	// Cholesky returns lower-triangular L with a = L·Lᵀ.
	Cholesky(a *Dense) (*Dense, error)
	// Rank counts singular values above max(m,n)·ε·σmax.
	Rank(a *Dense) (int, error)
	// Norm computes the matrix norm selected by kind.
	Norm(a *Dense, kind NormKind) (float64, error)
	// Cond returns the 2-norm condition number σmax/σmin (+Inf when singular).
	Cond(a *Dense) (float64, error)
}

// EigenResult carries eigenvalues and eigenvectors (one per column).
type EigenResult struct {
	Values  []float64
	Vectors *Dense
}

// SVDResult carries the thin singular value decomposition.
type SVDResult struct {
	U  *Dense    // m×k, orthonormal columns
	S  []float64 // k singular values, descending
	Vt *Dense    // k×n, orthonormal rows
}

// NormKind selects a matrix norm.
type NormKind string

// Supported norms, named as their usual order parameter.
const (
	NormFrobenius NormKind = "fro"  // sqrt(Σ x²)
	NormNuclear   NormKind = "nuc"  // Σ σ
	NormInf       NormKind = "inf"  // max row |sum|
	NormNegInf    NormKind = "-inf" // min row |sum|
	Norm1         NormKind = "1"    // max column |sum|
	NormNeg1      NormKind = "-1"   // min column |sum|
	Norm2         NormKind = "2"    // σmax
	NormNeg2      NormKind = "-2"   // σmin
)

// ParseNormKind accepts the constant spellings above (case-insensitive);
// the empty string selects NormFrobenius.
func ParseNormKind(s string) (NormKind, error) {
	k := NormKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "":
		return NormFrobenius, nil
	case NormFrobenius, NormNuclear, NormInf, NormNegInf, Norm1, NormNeg1, Norm2, NormNeg2:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNorm, s)
	}
}

// Backend names accepted by New.
const (
	BackendNative = "native"
	BackendGonum  = "gonum"
)

// New returns the backend registered under name ("" selects native).
func New(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "", BackendNative:
		return NewNative(), nil
	case BackendGonum:
		return NewGonum(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// IsOrthogonal reports whether a is square and aᵀ·a equals the identity
// within tol (absolute, per element).
func IsOrthogonal(a *Dense, tol float64) bool {
	if a == nil || !a.IsSquare() {
		return false
	}
	p := mulDense(a.T(), a)
	n := a.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(p.data[i*n+j]-want) > tol {
				return false
			}
		}
	}

	return true
}

// IsPositiveDefinite reports whether b can Cholesky-factorize a.
// Errors other than ErrNotPositiveDefinite and ErrNotSymmetric are returned.
func IsPositiveDefinite(b Backend, a *Dense) (bool, error) {
	_, err := b.Cholesky(a)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotPositiveDefinite), errors.Is(err, ErrNotSymmetric):
		return false, nil
	default:
		return false, err
	}
}

// ---------- shared validation ----------

// symTol is the relative tolerance used when a symmetric input is required.
const symTol = 1e-10

func requireNonEmpty(tag string, a *Dense) error {
	if a == nil || a.r <= 0 || a.c <= 0 {
		return linalgErrorf(tag, ErrEmpty)
	}

	return nil
}

func requireSquare(tag string, a *Dense) error {
	if err := requireNonEmpty(tag, a); err != nil {
		return err
	}
	if a.r != a.c {
		return linalgErrorf(tag, fmt.Errorf("%w: %d×%d", ErrNonSquare, a.r, a.c))
	}

	return nil
}

func requireSymmetric(tag string, a *Dense) error {
	if err := requireSquare(tag, a); err != nil {
		return err
	}
	if !a.isSymmetric(symTol) {
		return linalgErrorf(tag, ErrNotSymmetric)
	}

	return nil
}

// rankTol is numpy's default matrix_rank threshold: σmax·max(m,n)·ε.
func rankTol(s []float64, m, n int) float64 {
	if len(s) == 0 {
		return 0
	}
	dim := m
	if n > dim {
		dim = n
	}

	return s[0] * float64(dim) * eps
}

// eps is the float64 machine epsilon (2⁻⁵²).
const eps = 0x1p-52

// countAbove counts values strictly greater than tol.
func countAbove(s []float64, tol float64) int {
	k := 0
	for _, v := range s {
		if v > tol {
			k++
		}
	}

	return k
}

// needsSVD reports norm kinds computed from singular values.
func needsSVD(kind NormKind) bool {
	return kind == NormNuclear || kind == Norm2 || kind == NormNeg2
}

// entryNorm evaluates the norms defined directly on the entries.
func entryNorm(a *Dense, kind NormKind) (float64, error) {
	switch kind {
	case NormFrobenius:
		var sum float64
		for _, v := range a.data {
			sum += v * v
		}
		return math.Sqrt(sum), nil
	case NormInf, NormNegInf:
		sums := make([]float64, a.r)
		for i := 0; i < a.r; i++ {
			for j := 0; j < a.c; j++ {
				sums[i] += math.Abs(a.data[i*a.c+j])
			}
		}
		return pick(sums, kind == NormInf), nil
	case Norm1, NormNeg1:
		sums := make([]float64, a.c)
		for i := 0; i < a.r; i++ {
			for j := 0; j < a.c; j++ {
				sums[j] += math.Abs(a.data[i*a.c+j])
			}
		}
		return pick(sums, kind == Norm1), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNorm, string(kind))
	}
}

func svdNorm(s []float64, kind NormKind) float64 {
	switch kind {
	case NormNuclear:
		var sum float64
		for _, v := range s {
			sum += v
		}
		return sum
	case Norm2:
		return s[0]
	default: // NormNeg2
		return s[len(s)-1]
	}
}

// pick returns max(xs) when wantMax, else min(xs).
func pick(xs []float64, wantMax bool) float64 {
	out := xs[0]
	for _, v := range xs[1:] {
		if (wantMax && v > out) || (!wantMax && v < out) {
			out = v
		}
	}

	return out
}

// condFromSingular returns σmax/σmin, or +Inf when σmin is zero.
func condFromSingular(s []float64) float64 {
	smin := s[len(s)-1]
	if smin == 0 {
		return math.Inf(1)
	}

	return s[0] / smin
}

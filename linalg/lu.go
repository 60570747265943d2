// SPDX-License-Identifier: MIT

// Package linalg - LU with partial pivoting (Doolittle, row swaps).
//
// Layout: the factorization is stored compactly in one n×n buffer; the strict
// lower triangle holds L (unit diagonal implied) and the upper triangle holds U.
// perm[i] is the source row of row i of P·A.

package linalg

import "math"

// luFactors is the compact P·A = L·U factorization of a square grid.
type luFactors struct {
	n      int
	lu     []float64
	perm   []int
	sign   float64 // +1/−1, parity of the row permutation
	pivMin float64 // smallest |U[k,k]| seen
}

// factorLU computes P·A = L·U.
//
// Implementation:
//   - Stage 1: copy A; perm = identity.
//   - Stage 2: for each column k pick the row p ≥ k with max |A[p,k]| and swap.
//   - Stage 3: eliminate below the pivot, storing multipliers in place.
//
// A zero pivot column is skipped (the factorization of a singular matrix
// still exists; pivMin records it).
//
// Complexity: Time O(n³), Space O(n²).
func factorLU(a *Dense) *luFactors {
	n := a.r
	f := &luFactors{n: n, lu: make([]float64, n*n), perm: make([]int, n), sign: 1, pivMin: math.Inf(1)}
	copy(f.lu, a.data)
	for i := range f.perm {
		f.perm[i] = i
	}

	var (
		i, j, k, p int
		maxAbs, v  float64
		pivot, l   float64
		lu         = f.lu
	)
	for k = 0; k < n; k++ {
		// Partial pivot search.
		p, maxAbs = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs < f.pivMin {
			f.pivMin = maxAbs
		}
		if maxAbs == 0 {
			continue
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}

		pivot = lu[k*n+k]
		for i = k + 1; i < n; i++ {
			l = lu[i*n+k] / pivot
			lu[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= l * lu[k*n+j]
			}
		}
	}

	return f
}

// det returns sign·Π U[k,k].
func (f *luFactors) det() float64 {
	d := f.sign
	for k := 0; k < f.n; k++ {
		d *= f.lu[k*f.n+k]
	}

	return d
}

// singular reports a pivot at or below n·ε·scale.
func (f *luFactors) singular(scale float64) bool {
	return f.pivMin <= float64(f.n)*eps*scale
}

// solveInto solves A·x = b for one right-hand side via P, L and U.
// x and y are caller-provided workspaces of length n.
func (f *luFactors) solveInto(b, y, x []float64) {
	n, lu := f.n, f.lu
	var i, k int
	var sum float64
	// Forward: L·y = P·b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= lu[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// Backward: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum / lu[i*n+i]
	}
}

// inverse solves A·X = I column by column. Caller checks singular() first.
func (f *luFactors) inverse() *Dense {
	n := f.n
	inv := zeros(n, n)
	e := make([]float64, n)
	y := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		f.solveInto(e, y, x)
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv
}

// LU returns the pivoted factors of a square grid as explicit matrices:
// P·A = L·U with L unit lower triangular and U upper triangular. perm[i]
// names the row of A that lands in row i of P·A.
//
// Errors: ErrEmpty, ErrNonSquare.
func LU(a *Dense) (l, u *Dense, perm []int, err error) {
	if err = requireSquare(opLU, a); err != nil {
		return nil, nil, nil, err
	}
	f := factorLU(a)
	n := f.n
	l, u = eye(n), zeros(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j < i {
				l.data[i*n+j] = f.lu[i*n+j]
			} else {
				u.data[i*n+j] = f.lu[i*n+j]
			}
		}
	}
	perm = append([]int(nil), f.perm...)

	return l, u, perm, nil
}

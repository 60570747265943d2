// SPDX-License-Identifier: MIT

// Package linalg - symmetric eigen-decomposition by classical Jacobi rotations.

package linalg

import (
	"fmt"
	"math"
	"sort"
)

// jacobiEigen diagonalizes a symmetric n×n grid.
//
// Implementation:
//   - Stage 1: A ← copy(a), Q ← I(n).
//   - Stage 2: repeat up to maxIter times:
//     J.1 pick the pivot (p,q) maximizing |A[p,q]| over the upper triangle;
//     J.2 stop when |A[p,q]| ≤ tol·max(1, ‖a‖max);
//     J.3 θ = (A[q,q] − A[p,p]) / (2·A[p,q]), t = sign(θ)/(|θ| + √(θ²+1)),
//     c = 1/√(t²+1), s = t·c;
//     J.4 rotate rows/cols p and q of A and zero A[p,q];
//     J.5 accumulate the rotation into Q.
//   - Stage 3: eigenvalues = diag(A), eigenvectors = columns of Q, sorted
//     ascending by eigenvalue.
//
// Errors:
//   - ErrNoConvergence when the off-diagonal mass survives maxIter rotations.
//
// Complexity: O(n) per rotation update plus O(n²) per pivot search.
func jacobiEigen(a *Dense, tol float64, maxIter int) (EigenResult, error) {
	n := a.r
	A := a.Clone().data
	Q := eye(n)
	scale := a.maxAbs()
	if scale < 1 {
		scale = 1
	}
	limit := tol * scale

	var (
		iter, i, j, p, q   int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
		converged          bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		// J.1: pivot search.
		maxOff, p, q = 0, 0, 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: convergence.
		if maxOff <= limit {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		// J.3: rotation parameters.
		app, aqq, apq = A[p*n+p], A[q*n+q], A[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate A.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = A[i*n+p], A[i*n+q]
			A[i*n+p] = c*aip - s*aiq
			A[p*n+i] = A[i*n+p]
			A[i*n+q] = s*aip + c*aiq
			A[q*n+i] = A[i*n+q]
		}
		A[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p*n+q], A[q*n+p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			qip, qiq = Q.data[i*n+p], Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}
	if !converged {
		return EigenResult{}, fmt.Errorf("%w: Jacobi after %d rotations", ErrNoConvergence, maxIter)
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = A[i*n+i]
	}

	return sortEigen(values, Q), nil
}

// sortEigen orders eigenpairs by ascending eigenvalue (stable).
func sortEigen(values []float64, vecs *Dense) EigenResult {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool { return values[idx[x]] < values[idx[y]] })

	outVals := make([]float64, n)
	outVecs := zeros(vecs.r, n)
	for col, src := range idx {
		outVals[col] = values[src]
		for i := 0; i < vecs.r; i++ {
			outVecs.data[i*n+col] = vecs.data[i*vecs.c+src]
		}
	}

	return EigenResult{Values: outVals, Vectors: outVecs}
}

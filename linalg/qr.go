// SPDX-License-Identifier: MIT

// Package linalg - Householder QR (reduced form, any shape).

package linalg

import "math"

// householderQR computes A = Q·R for an m×n grid with k = min(m, n):
// Q is m×k with orthonormal columns and R is k×n upper trapezoidal.
//
// Implementation:
//   - Stage 1: R ← copy(A), Qfull ← I(m).
//   - Stage 2: for j = 0..k−1 build v from R[j:m, j] with
//     α = −sign(x₀)·‖x‖, v = x − α·e₁, and apply H = I − 2vvᵀ/(vᵀv)
//     to R from the left and to Qfull from the right.
//   - Stage 3: zero the sub-diagonal of column j exactly; slice Q = Qfull[:, :k],
//     R = R[:k, :].
//
// Complexity: Time O(m·n·k + m²·k), Space O(m² + m·n).
func householderQR(a *Dense) (q, r *Dense) {
	m, n := a.r, a.c
	k := m
	if n < k {
		k = n
	}
	rw := a.Clone()
	qf := eye(m)
	v := make([]float64, m)

	var (
		i, j, c   int
		norm, s   float64
		alpha, vv float64
	)
	for j = 0; j < k; j++ {
		// ‖R[j:m, j]‖
		norm = 0
		for i = j; i < m; i++ {
			norm = math.Hypot(norm, rw.data[i*n+j])
		}
		if norm == 0 {
			continue
		}
		alpha = -math.Copysign(norm, rw.data[j*n+j])

		vv = 0
		for i = j; i < m; i++ {
			v[i] = rw.data[i*n+j]
		}
		v[j] -= alpha
		for i = j; i < m; i++ {
			vv += v[i] * v[i]
		}
		if vv == 0 {
			continue
		}

		// R ← H·R on columns j..n−1.
		for c = j; c < n; c++ {
			s = 0
			for i = j; i < m; i++ {
				s += v[i] * rw.data[i*n+c]
			}
			s = 2 * s / vv
			for i = j; i < m; i++ {
				rw.data[i*n+c] -= s * v[i]
			}
		}
		// Q ← Q·H on columns j..m−1.
		for c = 0; c < m; c++ {
			s = 0
			for i = j; i < m; i++ {
				s += qf.data[c*m+i] * v[i]
			}
			s = 2 * s / vv
			for i = j; i < m; i++ {
				qf.data[c*m+i] -= s * v[i]
			}
		}
		rw.data[j*n+j] = alpha
		for i = j + 1; i < m; i++ {
			rw.data[i*n+j] = 0
		}
	}

	q = zeros(m, k)
	for i = 0; i < m; i++ {
		copy(q.data[i*k:(i+1)*k], qf.data[i*m:i*m+k])
	}
	r = zeros(k, n)
	copy(r.data, rw.data[:k*n])

	return q, r
}

// SPDX-License-Identifier: MIT

// Package linalg - thin SVD by one-sided (Hestenes) Jacobi rotations.

package linalg

import (
	"fmt"
	"math"
	"sort"
)

// jacobiSVD computes a = U·diag(S)·Vt with k = min(m, n).
//
// Implementation:
//   - Stage 0: for m < n factor aᵀ and swap the roles of U and V.
//   - Stage 1: W ← copy(a) (m×n, m ≥ n), V ← I(n).
//   - Stage 2: sweep all column pairs (p,q); with α = ‖W_p‖², β = ‖W_q‖²,
//     γ = W_p·W_q rotate both W and V whenever |γ| > ε·√(αβ), using
//     ζ = (β − α)/(2γ), t = sign(ζ)/(|ζ| + √(1+ζ²)), c = 1/√(1+t²), s = c·t.
//     Stop after a sweep without rotations.
//   - Stage 3: σ_j = ‖W_j‖, U_j = W_j/σ_j; zero σ columns are completed to an
//     orthonormal set; sort descending.
//
// Errors:
//   - ErrNoConvergence after maxSweeps sweeps with rotations still pending.
//
// Complexity: O(sweeps·n²·m).
func jacobiSVD(a *Dense, maxSweeps int) (SVDResult, error) {
	if a.r < a.c {
		res, err := jacobiSVD(a.T(), maxSweeps)
		if err != nil {
			return SVDResult{}, err
		}
		// aᵀ = U'·S·V'ᵀ ⇒ a = V'·S·U'ᵀ.
		return SVDResult{U: res.Vt.T(), S: res.S, Vt: res.U.T()}, nil
	}

	m, n := a.r, a.c
	W := a.Clone()
	V := eye(n)

	var (
		sweep, p, q, i     int
		alpha, beta, gamma float64
		zeta, t, c, s      float64
		wp, wq             float64
		rotated            bool
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				alpha, beta, gamma = 0, 0, 0
				for i = 0; i < m; i++ {
					wp, wq = W.data[i*n+p], W.data[i*n+q]
					alpha += wp * wp
					beta += wq * wq
					gamma += wp * wq
				}
				if gamma == 0 || math.Abs(gamma) <= eps*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1, zeta) / (math.Abs(zeta) + math.Hypot(1, zeta))
				c = 1 / math.Hypot(1, t)
				s = c * t
				for i = 0; i < m; i++ {
					wp, wq = W.data[i*n+p], W.data[i*n+q]
					W.data[i*n+p] = c*wp - s*wq
					W.data[i*n+q] = s*wp + c*wq
				}
				for i = 0; i < n; i++ {
					wp, wq = V.data[i*n+p], V.data[i*n+q]
					V.data[i*n+p] = c*wp - s*wq
					V.data[i*n+q] = s*wp + c*wq
				}
			}
		}
		if !rotated {
			break
		}
	}
	if rotated {
		return SVDResult{}, fmt.Errorf("%w: one-sided Jacobi after %d sweeps", ErrNoConvergence, maxSweeps)
	}

	// Column norms and normalization.
	sigma := make([]float64, n)
	var norm float64
	for j := 0; j < n; j++ {
		norm = 0
		for i = 0; i < m; i++ {
			norm = math.Hypot(norm, W.data[i*n+j])
		}
		sigma[j] = norm
		if norm > 0 {
			for i = 0; i < m; i++ {
				W.data[i*n+j] /= norm
			}
		}
	}

	// Descending order.
	idx := make([]int, n)
	for j := range idx {
		idx[j] = j
	}
	sort.SliceStable(idx, func(x, y int) bool { return sigma[idx[x]] > sigma[idx[y]] })

	U := zeros(m, n)
	Vt := zeros(n, n)
	S := make([]float64, n)
	for col, src := range idx {
		S[col] = sigma[src]
		for i = 0; i < m; i++ {
			U.data[i*n+col] = W.data[i*n+src]
		}
		for i = 0; i < n; i++ {
			Vt.data[col*n+i] = V.data[i*n+src]
		}
	}
	completeColumns(U, countAbove(S, 0))

	return SVDResult{U: U, S: S, Vt: Vt}, nil
}

// completeColumns replaces columns from..cols−1 of u (m×k, m ≥ k) with unit
// vectors orthogonal to every preceding column, by Gram–Schmidt over the
// standard basis.
func completeColumns(u *Dense, from int) {
	m, k := u.r, u.c
	cand := make([]float64, m)
	next := 0
	for col := from; col < k; col++ {
		for ; next < m; next++ {
			for i := range cand {
				cand[i] = 0
			}
			cand[next] = 1
			// Two Gram–Schmidt passes for numerical orthogonality.
			for pass := 0; pass < 2; pass++ {
				for prev := 0; prev < col; prev++ {
					var dot float64
					for i := 0; i < m; i++ {
						dot += u.data[i*k+prev] * cand[i]
					}
					for i := 0; i < m; i++ {
						cand[i] -= dot * u.data[i*k+prev]
					}
				}
			}
			var norm float64
			for _, v := range cand {
				norm = math.Hypot(norm, v)
			}
			if norm > 1e-8 {
				for i := 0; i < m; i++ {
					u.data[i*k+col] = cand[i] / norm
				}
				next++
				break
			}
		}
	}
}

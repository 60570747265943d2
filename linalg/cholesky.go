// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
)

// choleskyLower computes lower-triangular L with a = L·Lᵀ (Cholesky–Banachiewicz,
// row by row). The input must already be known symmetric.
//
// Errors: ErrNotPositiveDefinite when a diagonal radicand is ≤ 0 or not finite.
//
// Complexity: Time O(n³/3), Space O(n²).
func choleskyLower(a *Dense) (*Dense, error) {
	n := a.r
	L := zeros(n, n)
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = a.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= L.data[i*n+k] * L.data[j*n+k]
			}
			if i == j {
				if !(sum > 0) || math.IsInf(sum, 0) {
					return nil, fmt.Errorf("%w: leading minor %d", ErrNotPositiveDefinite, i+1)
				}
				L.data[i*n+i] = math.Sqrt(sum)
				continue
			}
			L.data[i*n+j] = sum / L.data[j*n+j]
		}
	}

	return L, nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.
//   - An operand equal to +Inf is skipped, so +Inf never enters a sum.

package matrix

import (
	"math"
)

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs the APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation; only strict
// improvements are written.
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be non-nil and square (n×n).
//   - +Inf denotes “no edge” off-diagonal; the diagonal MUST be 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, or any At/Set error of a custom Matrix.
//
// Complexity: Time O(n^3), Extra space O(1).
//
// AI-Hints:
//   - Prefer passing *Dense to trigger the zero-overhead fast path.
//   - Closure builds the seed matrix for you from a core.Graph.
func FloydWarshall(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback, same loop order as the fast path.
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}

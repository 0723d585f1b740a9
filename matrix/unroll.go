// SPDX-License-Identifier: MIT
//
// File: unroll.go
// Role: DistanceMatrix <-> []UnrolledEdge conversions.
// Policy:
//   - Unroll omits self-pairs and unreachable pairs; it never emits a sentinel.
//   - Pivot is the inverse: missing pairs read back as Unreachable.

package matrix

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

const opPivot = "Pivot"

// Unroll flattens dm into one row per reachable ordered pair (i, j), i != j.
//
// Rows are ordered by Start ascending, then End ascending. Unreachable pairs
// are dropped on purpose; use dm.UnreachablePairs to see them.
//
// Complexity: Time O(n²), Space O(n²).
func Unroll[ID constraints.Ordered](dm *DistanceMatrix[ID]) []UnrolledEdge[ID] {
	if dm == nil {
		return nil
	}
	n := len(dm.ids)
	out := make([]UnrolledEdge[ID], 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := dm.d.data[i*n+j]
			if math.IsInf(v, 1) {
				continue
			}
			out = append(out, UnrolledEdge[ID]{Start: dm.ids[i], End: dm.ids[j], Distance: v})
		}
	}

	return out
}

// Pivot rebuilds a DistanceMatrix from unrolled rows.
//
// Behavior highlights:
//   - Identifier set = union of Start/End values, ascending.
//   - Diagonal is 0; pairs absent from edges are Unreachable.
//   - No symmetry is imposed: the result mirrors the input exactly.
//
// Errors:
//   - ErrSelfPair, ErrInvalidWeight (negative/NaN/Inf), ErrDuplicatePair.
//
// Complexity: Time O(E log E + n²), Space O(n²).
func Pivot[ID constraints.Ordered](edges []UnrolledEdge[ID]) (*DistanceMatrix[ID], error) {
	ids := make([]ID, 0, 2*len(edges))
	for _, e := range edges {
		ids = append(ids, e.Start, e.End)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	dm := newDistanceMatrix(ids)
	n := len(ids)
	seen := make(map[Pair[ID]]struct{}, len(edges))
	for _, e := range edges {
		if e.Start == e.End {
			return nil, matrixErrorf(opPivot, ErrSelfPair)
		}
		if math.IsNaN(e.Distance) || math.IsInf(e.Distance, 0) || e.Distance < 0 {
			return nil, matrixErrorf(opPivot, ErrInvalidWeight)
		}
		p := Pair[ID]{From: e.Start, To: e.End}
		if _, dup := seen[p]; dup {
			return nil, matrixErrorf(opPivot, ErrDuplicatePair)
		}
		seen[p] = struct{}{}
		dm.d.data[dm.index[e.Start]*n+dm.index[e.End]] = e.Distance
	}

	return dm, nil
}

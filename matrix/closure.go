// SPDX-License-Identifier: MIT
//
// File: closure.go
// Role: DistanceMatrix (identifier-keyed closed matrix) and Closure.
// Determinism:
//   - Row/column i corresponds to IDs()[i]; IDs are ascending.
//   - Closure delegates to floydWarshallInPlace (fixed k → i → j).

package matrix

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tollgrid/core"
)

const (
	opClosure        = "Closure"
	opAt             = "DistanceMatrix.At"
	opCheckSymmetric = "CheckSymmetric"
	opCheckTriangle  = "CheckTriangle"
)

// DistanceMatrix is a square distance table keyed by identifiers.
// Internally unreachable cells hold +Inf; every public accessor converts them
// to Unreachable().
type DistanceMatrix[ID constraints.Ordered] struct {
	ids   []ID
	index map[ID]int
	d     *Dense
}

// newDistanceMatrix wraps a fresh n×n seed (diag 0, off-diagonal +Inf) for ids.
// ids must be ascending and duplicate-free.
func newDistanceMatrix[ID constraints.Ordered](ids []ID) *DistanceMatrix[ID] {
	index := make(map[ID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return &DistanceMatrix[ID]{ids: ids, index: index, d: newDistanceDense(len(ids))}
}

// Closure computes the all-pairs shortest-distance matrix of g.
//
// Implementation:
//   - Stage 1: seed an n×n matrix: 0 on the diagonal, direct distances where a
//     row exists, +Inf elsewhere.
//   - Stage 2: Floyd–Warshall in place (fast path on *Dense).
//   - Stage 3: force the diagonal to exactly 0.
//   - Stage 4: verify symmetry (and the triangle inequality with WithTriangleCheck).
//
// Behavior highlights:
//   - Disconnected graphs are valid; affected pairs read as Unreachable.
//   - An empty graph yields an empty (order 0) matrix.
//
// Errors:
//   - ErrGraphNil, ErrAsymmetry, ErrTriangleViolation.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Closure[ID constraints.Ordered](g *core.Graph[ID], opts ...Option) (*DistanceMatrix[ID], error) {
	if g == nil {
		return nil, matrixErrorf(opClosure, ErrGraphNil)
	}
	o := gatherOptions(opts...)

	dm := newDistanceMatrix(g.IDs())
	n := len(dm.ids)
	for i, a := range dm.ids {
		for _, b := range g.Neighbors(a) {
			w, _ := g.Distance(a, b)
			dm.d.data[i*n+dm.index[b]] = w
		}
	}

	floydWarshallInPlace(dm.d)
	for i := 0; i < n; i++ {
		dm.d.data[i*n+i] = 0
	}

	if err := dm.CheckSymmetric(o.eps); err != nil {
		return nil, matrixErrorf(opClosure, err)
	}
	if o.triangleCheck {
		if err := dm.CheckTriangle(o.eps); err != nil {
			return nil, matrixErrorf(opClosure, err)
		}
	}

	return dm, nil
}

// IDs returns the identifiers in row order (ascending).
func (dm *DistanceMatrix[ID]) IDs() []ID {
	if dm == nil {
		return nil
	}

	return slices.Clone(dm.ids)
}

// Order returns the number of identifiers.
func (dm *DistanceMatrix[ID]) Order() int {
	if dm == nil {
		return 0
	}

	return len(dm.ids)
}

// Index returns the row/column index of id.
func (dm *DistanceMatrix[ID]) Index(id ID) (int, bool) {
	if dm == nil {
		return 0, false
	}
	i, ok := dm.index[id]

	return i, ok
}

// At returns the distance from a to b.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownVertex.
func (dm *DistanceMatrix[ID]) At(a, b ID) (Distance, error) {
	if dm == nil {
		return Unreachable(), matrixErrorf(opAt, ErrNilMatrix)
	}
	i, ok := dm.index[a]
	if !ok {
		return Unreachable(), matrixErrorf(opAt, ErrUnknownVertex)
	}
	j, ok := dm.index[b]
	if !ok {
		return Unreachable(), matrixErrorf(opAt, ErrUnknownVertex)
	}

	return fromRaw(dm.d.data[i*len(dm.ids)+j]), nil
}

// Dense returns a copy of the raw matrix (+Inf for unreachable cells).
// Returns nil for an empty matrix.
func (dm *DistanceMatrix[ID]) Dense() *Dense {
	if dm == nil || len(dm.ids) == 0 {
		return nil
	}

	return dm.d.Clone().(*Dense)
}

// Table returns the dense keyed table: the identifier header and one row of
// Distance values per identifier, in the same order.
// Complexity: O(n²).
func (dm *DistanceMatrix[ID]) Table() ([]ID, [][]Distance) {
	if dm == nil {
		return nil, nil
	}
	n := len(dm.ids)
	rows := make([][]Distance, n)
	for i := 0; i < n; i++ {
		row := make([]Distance, n)
		for j := 0; j < n; j++ {
			row[j] = fromRaw(dm.d.data[i*n+j])
		}
		rows[i] = row
	}

	return slices.Clone(dm.ids), rows
}

// UnreachablePairs lists every ordered pair (i != j) without a path,
// ascending by From then To.
func (dm *DistanceMatrix[ID]) UnreachablePairs() []Pair[ID] {
	if dm == nil {
		return nil
	}
	var out []Pair[ID]
	n := len(dm.ids)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && math.IsInf(dm.d.data[i*n+j], 1) {
				out = append(out, Pair[ID]{From: dm.ids[i], To: dm.ids[j]})
			}
		}
	}

	return out
}

// Connected reports whether every pair is reachable.
func (dm *DistanceMatrix[ID]) Connected() bool {
	if dm == nil {
		return true
	}
	for _, v := range dm.d.data {
		if math.IsInf(v, 1) {
			return false
		}
	}

	return true
}

// CheckSymmetric verifies |d(i,j) - d(j,i)| <= eps, treating two Unreachable
// cells as equal and a reachable/unreachable mix as a violation.
// Complexity: O(n²).
func (dm *DistanceMatrix[ID]) CheckSymmetric(eps float64) error {
	if dm == nil {
		return matrixErrorf(opCheckSymmetric, ErrNilMatrix)
	}
	n := len(dm.ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := dm.d.data[i*n+j], dm.d.data[j*n+i]
			if math.IsInf(a, 1) && math.IsInf(b, 1) {
				continue
			}
			if math.IsInf(a, 1) || math.IsInf(b, 1) || math.Abs(a-b) > eps {
				return matrixErrorf(opCheckSymmetric, ErrAsymmetry)
			}
		}
	}

	return nil
}

// CheckTriangle verifies d(i,j) <= d(i,k) + d(k,j) + eps for every triple with
// a finite right-hand side.
// Complexity: O(n³).
func (dm *DistanceMatrix[ID]) CheckTriangle(eps float64) error {
	if dm == nil {
		return matrixErrorf(opCheckTriangle, ErrNilMatrix)
	}
	n := len(dm.ids)
	data := dm.d.data
	slack := Finite(eps)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := fromRaw(data[i*n+k])
			if !ik.Reachable() {
				continue
			}
			for j := 0; j < n; j++ {
				via := ik.Add(fromRaw(data[k*n+j]))
				if !via.Reachable() {
					continue
				}
				// an unreachable i→j with a finite detour also fails here
				if via.Add(slack).Less(fromRaw(data[i*n+j])) {
					return matrixErrorf(opCheckTriangle, ErrTriangleViolation)
				}
			}
		}
	}

	return nil
}

// Equal reports whether dm and other share identifiers and agree on every
// cell within eps (Unreachable equals only Unreachable).
func (dm *DistanceMatrix[ID]) Equal(other *DistanceMatrix[ID], eps float64) bool {
	if dm == nil || other == nil {
		return dm == other
	}
	if !slices.Equal(dm.ids, other.ids) {
		return false
	}
	for i, a := range dm.d.data {
		b := other.d.data[i]
		ai, bi := math.IsInf(a, 1), math.IsInf(b, 1)
		if ai != bi || (!ai && math.Abs(a-b) > eps) {
			return false
		}
	}

	return true
}

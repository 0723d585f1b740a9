// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction (NewGraph/AddEdge/Build) and read-only queries.
// Determinism:
//   - IDs() and Neighbors() return ascending order.
//   - Build applies rows in input order, so MergeLast is well defined.

package core

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

const (
	opAddEdge = "AddEdge"
	opBuild   = "Build"
)

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[ID constraints.Ordered](opts ...Option) *Graph[ID] {
	o := gatherOptions(opts...)

	return &Graph[ID]{
		merge:  o.merge,
		known:  make(map[ID]struct{}),
		adj:    make(map[ID]map[ID]float64),
		sums:   make(map[pairKey[ID]]float64),
		counts: make(map[pairKey[ID]]int),
	}
}

// Build creates a Graph from rows applied in order.
//
// Implementation:
//   - Stage 1: create an empty graph with opts.
//   - Stage 2: AddEdge for every row; the first failing row aborts the build.
//
// Errors:
//   - ErrInvalidDistance / ErrNegativeDistance wrapped with the row index.
//
// Complexity:
//   - Time O(E + V log V), Space O(V + E).
func Build[ID constraints.Ordered](edges []Edge[ID], opts ...Option) (*Graph[ID], error) {
	g := NewGraph[ID](opts...)
	for i, e := range edges {
		if err := g.add(e); err != nil {
			return nil, rowErrorf(opBuild, i, err)
		}
	}

	return g, nil
}

// AddEdge records the bidirectional measurement e.
// Both endpoints join the identifier set even when e is a self-loop.
// Complexity: O(log V) for the sorted identifier insert, O(1) for adjacency.
func (g *Graph[ID]) AddEdge(e Edge[ID]) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.add(e); err != nil {
		return opErrorf(opAddEdge, err)
	}

	return nil
}

func (g *Graph[ID]) add(e Edge[ID]) error {
	if math.IsNaN(e.Distance) || math.IsInf(e.Distance, 0) {
		return ErrInvalidDistance
	}
	if e.Distance < 0 {
		return ErrNegativeDistance
	}

	g.ensure(e.From)
	g.ensure(e.To)
	if e.From == e.To {
		return nil
	}

	d := g.merged(newPairKey(e.From, e.To), e.Distance)
	g.adj[e.From][e.To] = d
	g.adj[e.To][e.From] = d

	return nil
}

// merged applies the merge policy for key given a fresh measurement d.
func (g *Graph[ID]) merged(key pairKey[ID], d float64) float64 {
	prev, seen := g.adj[key.lo][key.hi]
	switch g.merge {
	case MergeMin:
		if seen && prev < d {
			return prev
		}
		return d
	case MergeMean:
		g.sums[key] += d
		g.counts[key]++
		return g.sums[key] / float64(g.counts[key])
	default:
		return d
	}
}

// ensure inserts id into the sorted identifier set if it is new.
func (g *Graph[ID]) ensure(id ID) {
	if _, ok := g.known[id]; ok {
		return
	}
	g.known[id] = struct{}{}
	g.adj[id] = make(map[ID]float64)

	pos, _ := slices.BinarySearch(g.ids, id)
	g.ids = slices.Insert(g.ids, pos, id)
}

// IDs returns a copy of the identifier set in ascending order.
// Complexity: O(V).
func (g *Graph[ID]) IDs() []ID {
	if g == nil {
		return nil
	}

	return slices.Clone(g.ids)
}

// Order returns the number of distinct identifiers (N).
// Callers use it to judge whether an O(N³) closure is affordable.
// Complexity: O(1).
func (g *Graph[ID]) Order() int {
	if g == nil {
		return 0
	}

	return len(g.ids)
}

// Size returns the number of distinct unordered pairs carrying a distance.
// Complexity: O(V).
func (g *Graph[ID]) Size() int {
	if g == nil {
		return 0
	}
	var n int
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}

	return n / 2
}

// Has reports whether id is in the identifier set.
func (g *Graph[ID]) Has(id ID) bool {
	if g == nil {
		return false
	}
	_, ok := g.known[id]

	return ok
}

// Distance returns the direct measurement between a and b.
// ok is false when no row connected them (a == b included).
// Complexity: O(1).
func (g *Graph[ID]) Distance(a, b ID) (d float64, ok bool) {
	if g == nil {
		return 0, false
	}
	d, ok = g.adj[a][b]

	return d, ok
}

// Neighbors returns the identifiers directly connected to id, ascending.
// Complexity: O(deg log deg).
func (g *Graph[ID]) Neighbors(id ID) []ID {
	if g == nil {
		return nil
	}
	nbrs := g.adj[id]
	out := make([]ID, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}

// MergePolicy reports the policy the graph was built with.
func (g *Graph[ID]) MergePolicy() MergePolicy {
	if g == nil {
		return DefaultMergePolicy
	}

	return g.merge
}

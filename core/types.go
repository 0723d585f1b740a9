// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, MergePolicy and functional options.
// Policy:
//   - Identifiers are any ordered type; ascending order is the iteration order.
//   - Adjacency is symmetric by construction; self-loops are never stored.

package core

import (
	"golang.org/x/exp/constraints"
)

// Edge is one raw input measurement between two locations.
// The row is bidirectional: From→To and To→From carry the same Distance.
type Edge[ID constraints.Ordered] struct {
	From     ID      // first endpoint
	To       ID      // second endpoint
	Distance float64 // finite, >= 0
}

// MergePolicy decides what happens when the same unordered pair is measured twice.
type MergePolicy int

const (
	// MergeLast keeps the most recently added measurement.
	MergeLast MergePolicy = iota

	// MergeMin keeps the shortest measurement.
	MergeMin

	// MergeMean keeps the arithmetic mean of every measurement.
	MergeMean
)

// DefaultMergePolicy mirrors the source data convention: last row wins.
const DefaultMergePolicy = MergeLast

// String returns a stable lowercase name for logs.
func (p MergePolicy) String() string {
	switch p {
	case MergeLast:
		return "last"
	case MergeMin:
		return "min"
	case MergeMean:
		return "mean"
	default:
		return "unknown"
	}
}

// valid reports whether p is one of the declared policies.
func (p MergePolicy) valid() bool {
	return p >= MergeLast && p <= MergeMean
}

// Options stores the effective graph configuration.
type Options struct {
	merge MergePolicy
}

// Option mutates Options. Options are applied left to right.
type Option func(*Options)

// WithMergePolicy selects how duplicate pair measurements are combined.
// Panics on a value outside the declared set (programmer error).
func WithMergePolicy(p MergePolicy) Option {
	if !p.valid() {
		panic(ErrUnknownPolicy.Error())
	}

	return func(o *Options) { o.merge = p }
}

// gatherOptions resolves opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{merge: DefaultMergePolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// pairKey normalizes an unordered pair so that lo <= hi.
type pairKey[ID constraints.Ordered] struct {
	lo, hi ID
}

func newPairKey[ID constraints.Ordered](a, b ID) pairKey[ID] {
	if b < a {
		a, b = b, a
	}

	return pairKey[ID]{lo: a, hi: b}
}

// Graph is the symmetric adjacency built from edge rows.
//
// adj[a][b] == adj[b][a] for every stored pair; a != b always holds.
// ids is kept sorted ascending and duplicate-free.
type Graph[ID constraints.Ordered] struct {
	merge MergePolicy

	ids   []ID            // ascending identifier set
	known map[ID]struct{} // membership index for ids
	adj   map[ID]map[ID]float64

	// sums/counts back MergeMean; untouched by the other policies.
	sums   map[pairKey[ID]]float64
	counts map[pairKey[ID]]int
}

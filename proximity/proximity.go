// Package proximity selects the locations whose distance from a reference
// location sits close to the reference's average outgoing distance.
//
// Given unrolled edges and a reference r:
//
//	avg(r)  = mean Distance over edges with Start == r
//	bounds  = [(1-t)·avg(r), (1+t)·avg(r)]   (inclusive, t = 0.10 by default)
//	result  = sorted, duplicate-free End values of edges from r inside bounds
//
// A reference without outgoing edges has no average; Within reports
// ErrNoOutgoingEdges instead of comparing against NaN.
package proximity

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tollgrid/matrix"
)

// DefaultTolerance is the relative half-width of the accepted band (±10%).
const DefaultTolerance = 0.10

// ErrNoOutgoingEdges indicates the reference has no edge with Start == reference.
var ErrNoOutgoingEdges = errors.New("proximity: reference has no outgoing edges")

const panicToleranceInvalid = "proximity: WithTolerance: t must be finite and in [0, 1]"

// Options holds the filter configuration.
type Options struct {
	tolerance float64
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance sets the relative band half-width.
// Panics when t is NaN, Inf, negative or above 1.
func WithTolerance(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 || t > 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = t }
}

// Result describes one filter run.
type Result[ID constraints.Ordered] struct {
	Reference ID
	Average   float64 // mean outgoing distance of Reference
	Lower     float64 // inclusive lower bound
	Upper     float64 // inclusive upper bound
	IDs       []ID    // ascending, duplicate-free
}

// Within runs the filter for reference over edges.
//
// Complexity: O(E + k log k) where k is the number of qualifying edges.
func Within[ID constraints.Ordered](edges []matrix.UnrolledEdge[ID], reference ID, opts ...Option) (Result[ID], error) {
	o := Options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var (
		sum   float64
		count int
	)
	for _, e := range edges {
		if e.Start == reference {
			sum += e.Distance
			count++
		}
	}
	if count == 0 {
		return Result[ID]{Reference: reference}, fmt.Errorf("Within(%v): %w", reference, ErrNoOutgoingEdges)
	}

	avg := sum / float64(count)
	res := Result[ID]{
		Reference: reference,
		Average:   avg,
		Lower:     avg * (1 - o.tolerance),
		Upper:     avg * (1 + o.tolerance),
		IDs:       []ID{},
	}
	for _, e := range edges {
		if e.Start == reference && e.Distance >= res.Lower && e.Distance <= res.Upper {
			res.IDs = append(res.IDs, e.End)
		}
	}
	slices.Sort(res.IDs)
	res.IDs = slices.Compact(res.IDs)

	return res, nil
}

// Contains reports whether id passed the filter.
func (r Result[ID]) Contains(id ID) bool {
	_, ok := slices.BinarySearch(r.IDs, id)

	return ok
}

// SPDX-License-Identifier: MIT

// Package pipeline chains the stages end to end:
//
//	edges → core.Build → matrix.Closure → matrix.Unroll → toll.Calculate → toll.Adjust
//
// It adds what the individual packages leave to the caller: a capacity guard
// ahead of the cubic closure, an optional connectivity requirement, and
// structured stage logging through log/slog. Stages run sequentially and each
// completes before the next begins.
package pipeline

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tollgrid/bfs"
	"github.com/katalvlaran/tollgrid/core"
	"github.com/katalvlaran/tollgrid/dijkstra"
	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/proximity"
	"github.com/katalvlaran/tollgrid/toll"
)

var (
	// ErrCapacityExceeded indicates more locations than WithMaxOrder allows.
	ErrCapacityExceeded = errors.New("pipeline: graph order exceeds limit")

	// ErrDisconnected indicates unreachable pairs under WithRequireConnected.
	ErrDisconnected = errors.New("pipeline: graph is not connected")
)

// Result carries every intermediate product of Run.
type Result[ID constraints.Ordered] struct {
	Graph       *core.Graph[ID]
	Distances   *matrix.DistanceMatrix[ID]
	Unrolled    []matrix.UnrolledEdge[ID]
	Unreachable []matrix.Pair[ID]
	Components  [][]ID // connected groups of locations, one when Unreachable is empty
	Tolls       []toll.Row[ID]
	Segmented   []toll.SegmentedRow[ID]
}

// Nearby runs the proximity filter for reference over the unrolled edges.
func (r *Result[ID]) Nearby(reference ID, opts ...proximity.Option) (proximity.Result[ID], error) {
	return proximity.Within(r.Unrolled, reference, opts...)
}

// Route returns the measured segments behind the closed distance from→to.
// Length equals Distances.At(from, to) for reachable pairs.
func (r *Result[ID]) Route(from, to ID) ([]ID, float64, error) {
	return dijkstra.Path(r.Graph, from, to)
}

// Run builds the graph, closes it, unrolls it and prices every edge.
//
// Errors:
//   - core errors for invalid edges (wrapped with the row index).
//   - ErrCapacityExceeded before the closure when WithMaxOrder is exceeded.
//   - ErrDisconnected when WithRequireConnected is set and pairs remain unreachable.
//   - matrix errors if a closure postcondition fails.
func Run[ID constraints.Ordered](edges []core.Edge[ID], opts ...Option) (*Result[ID], error) {
	o := gatherOptions(opts...)
	log := o.logger.With("op", "Run")

	g, err := core.Build(edges, o.graphOpts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Debug("graph built", "rows", len(edges), "order", g.Order(), "size", g.Size(), "merge", g.MergePolicy().String())

	if o.maxOrder > 0 && g.Order() > o.maxOrder {
		log.Warn("capacity exceeded", "order", g.Order(), "max", o.maxOrder)
		return nil, fmt.Errorf("Run: order %d > %d: %w", g.Order(), o.maxOrder, ErrCapacityExceeded)
	}

	dm, err := matrix.Closure(g, o.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	unreachable := dm.UnreachablePairs()
	components := bfs.Components(g)
	log.Debug("closure done", "order", dm.Order(), "unreachable", len(unreachable), "components", len(components))

	if o.requireConnected && len(unreachable) > 0 {
		p := unreachable[0]
		log.Warn("graph disconnected", "unreachable", len(unreachable), "components", len(components))
		return nil, fmt.Errorf("Run: %d components, first unreachable %v-%v: %w", len(components), p.From, p.To, ErrDisconnected)
	}

	unrolled := matrix.Unroll(dm)
	rows := toll.Calculate(unrolled, o.coefficients)
	segmented, err := toll.Adjust(rows, o.schedule)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Debug("tolls priced", "edges", len(unrolled), "omitted", len(unreachable), "segmented", len(segmented))

	return &Result[ID]{
		Graph:       g,
		Distances:   dm,
		Unrolled:    unrolled,
		Unreachable: unreachable,
		Components:  components,
		Tolls:       rows,
		Segmented:   segmented,
	}, nil
}

// RunContext prices toll-context rows directly, skipping the closure.
// Graph options (merge policy, capacity, connectivity) do not apply.
func RunContext[ID constraints.Ordered](rows []toll.ContextRow[ID], opts ...Option) ([]toll.SegmentedRow[ID], error) {
	o := gatherOptions(opts...)

	base := toll.FromContext(rows, o.coefficients)
	out, err := toll.Adjust(base, o.schedule)
	if err != nil {
		return nil, fmt.Errorf("RunContext: %w", err)
	}
	o.logger.Debug("context priced", "op", "RunContext", "rows", len(rows), "segmented", len(out))

	return out, nil
}

// Package bfs provides breadth-first search over a core.Graph, returning hop
// depths, parent links and visit order, plus connected components.
//
// Neighbors are expanded in ascending ID order, so results are deterministic.
// Distances are ignored: BFS answers reachability, not length.
package bfs

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tollgrid/core"
)

type queueItem[ID constraints.Ordered] struct {
	id    ID
	depth int
}

// walker encapsulates mutable BFS state.
type walker[ID constraints.Ordered] struct {
	graph *core.Graph[ID]
	opts  Options[ID]
	ctx   context.Context
	queue []queueItem[ID]
	res   *Result[ID]
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, a context
// error, or the error returned by OnVisit.
func BFS[ID constraints.Ordered](g *core.Graph[ID], start ID, opts ...Option[ID]) (*Result[ID], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[ID]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker[ID]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[ID], 0, n),
		res: &Result[ID]{
			Order:  make([]ID, 0, n),
			Depth:  make(map[ID]int, n),
			Parent: make(map[ID]ID, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[ID]{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[ID]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.id) {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Depth[nbr] = next
			w.res.Parent[nbr] = item.id
			w.queue = append(w.queue, queueItem[ID]{id: nbr, depth: next})
		}
	}

	return nil
}

// Components partitions the locations of g into connected components.
// Each component is ascending; components are ordered by their smallest ID.
// Complexity: O(V + E) traversal plus O(V log V) sorting.
func Components[ID constraints.Ordered](g *core.Graph[ID]) [][]ID {
	if g == nil {
		return nil
	}
	seen := make(map[ID]bool, g.Order())
	var out [][]ID
	for _, id := range g.IDs() {
		if seen[id] {
			continue
		}
		res, _ := BFS(g, id)
		comp := make([]ID, 0, len(res.Order))
		for _, v := range res.Order {
			seen[v] = true
			comp = append(comp, v)
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}

// Package dijkstra implements single-source shortest paths over a core.Graph.
//
// It is the per-source counterpart of matrix.Closure: for every source s,
// Dijkstra(g, s) agrees with row s of the closed matrix. It also keeps
// predecessors, so the concrete hop sequence behind a closed distance can be
// recovered with Path.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key binary heap.
//   - Space: O(V + E).
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tollgrid/core"
)

// Dijkstra computes shortest distances from source to every location of g.
//
// Returns:
//
//   - dist: location → distance; unreachable locations map to +Inf.
//   - prev: predecessor map when WithReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v arrives from u.
//     The source and unreachable locations have no entry.
//   - err:  ErrNilGraph or ErrVertexNotFound.
func Dijkstra[ID constraints.Ordered](g *core.Graph[ID], source ID, opts ...Option) (map[ID]float64, map[ID]ID, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Has(source) {
		return nil, nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}

	n := g.Order()
	r := &runner[ID]{
		g:       g,
		options: cfg,
		dist:    make(map[ID]float64, n),
		prev:    make(map[ID]ID, n),
		visited: make(map[ID]bool, n),
		pq:      make(nodePQ[ID], 0, n),
	}
	r.init(source)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Path returns the shortest route from source to target as a sequence of
// locations (both ends included) together with its length.
func Path[ID constraints.Ordered](g *core.Graph[ID], source, target ID) ([]ID, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.Has(target) {
		return nil, 0, fmt.Errorf("%w: target %v", ErrVertexNotFound, target)
	}
	dist, prev, err := Dijkstra(g, source, WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	if math.IsInf(dist[target], 1) {
		return nil, 0, fmt.Errorf("%v→%v: %w", source, target, ErrNoPath)
	}

	path := []ID{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[ID constraints.Ordered] struct {
	g       *core.Graph[ID]
	options Options
	dist    map[ID]float64
	prev    map[ID]ID
	visited map[ID]bool
	pq      nodePQ[ID]
}

// init sets every distance to +Inf and seeds the heap with source at 0.
func (r *runner[ID]) init(source ID) {
	for _, v := range r.g.IDs() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[ID]{id: source, dist: 0})
}

// process pops the nearest unvisited location until the heap is empty or the
// frontier passes MaxDistance.
func (r *runner[ID]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[ID])
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the distances of u's neighbors through u.
// Ties keep the earlier predecessor, so paths are stable across runs.
func (r *runner[ID]) relax(u ID) {
	for _, v := range r.g.Neighbors(u) {
		w, _ := r.g.Distance(u, v)
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem[ID]{id: v, dist: newDist})
	}
}

// nodeItem represents a location and its tentative distance from the source.
type nodeItem[ID constraints.Ordered] struct {
	id   ID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for determinism.
type nodePQ[ID constraints.Ordered] []*nodeItem[ID]

func (pq nodePQ[ID]) Len() int { return len(pq) }

func (pq nodePQ[ID]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ[ID]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[ID]) Push(x any) { *pq = append(*pq, x.(*nodeItem[ID])) }

func (pq *nodePQ[ID]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option[ID constraints.Ordered] func(*Options[ID])

// Options holds parameters and callbacks for one traversal.
type Options[ID constraints.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a location. A non-nil error aborts BFS.
	OnVisit func(id ID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this hop count.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no depth limit and a no-op hook.
func DefaultOptions[ID constraints.Ordered]() Options[ID] {
	return Options[ID]{
		Ctx:     context.Background(),
		OnVisit: func(ID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[ID constraints.Ordered](ctx context.Context) Option[ID] {
	return func(o *Options[ID]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit[ID constraints.Ordered](fn func(id ID, depth int) error) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the hop count; d < 0 is an ErrOptionViolation.
func WithMaxDepth[ID constraints.Ordered](d int) Option[ID] {
	return func(o *Options[ID]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the visit order, hop depth and BFS-tree parent of every reached location.
type Result[ID constraints.Ordered] struct {
	Order  []ID
	Depth  map[ID]int
	Parent map[ID]ID
}

// PathTo returns the hop-minimal path from the start to dest, or nil if dest was not reached.
func (r *Result[ID]) PathTo(dest ID) []ID {
	if _, ok := r.Depth[dest]; !ok {
		return nil
	}
	path := []ID{dest}
	for cur := dest; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

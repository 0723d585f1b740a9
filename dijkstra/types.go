// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Options:
//
//	– WithReturnPath:  return the predecessor map for path reconstruction.
//	– WithMaxDistance: cap on distances to explore; locations beyond it stay unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source is not in the graph.
//	– ErrNoPath         if Path finds no route to the target.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures one run.
type Options struct {
	ReturnPath  bool    // Whether to return the predecessor map
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops exploring once the frontier exceeds max.
// Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if math.IsNaN(max) || max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns no predecessor map and no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

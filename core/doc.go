// Package core builds the location graph that every later stage of tollgrid
// works on.
//
// A Graph is assembled from raw edge rows (From, To, Distance). Every row is
// bidirectional: adding A→B with distance d also records B→A with d. The
// identifier set is the union of all endpoints seen, and IDs() always returns
// it in ascending order so that downstream matrices and edge lists are
// deterministic.
//
// Duplicate rows for the same unordered pair are merged according to a
// MergePolicy:
//
//	MergeLast – the last row wins (default).
//	MergeMin  – the shortest measurement wins.
//	MergeMean – the arithmetic mean of all measurements.
//
// Self-loop rows (From == To) register the identifier but never store a
// distance; the distance from a location to itself is defined as 0.
//
// Errors:
//
//	ErrNilGraph          - a nil *Graph was passed.
//	ErrInvalidDistance   - distance is NaN or ±Inf.
//	ErrNegativeDistance  - distance is below zero.
//	ErrUnknownPolicy     - MergePolicy value outside the declared set.
//
// Order() is O(1) and is meant to be checked by callers before running the
// O(N³) closure in package matrix.
//
// Example:
//
//	g, err := core.Build([]core.Edge[string]{
//	    {From: "A", To: "B", Distance: 10},
//	    {From: "B", To: "C", Distance: 5},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g.IDs()) // [A B C]
//
// A Graph is not safe for concurrent mutation; build it once, then share it
// read-only.
package core

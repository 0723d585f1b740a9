// Package tollgrid turns measured road segments between toll locations into
// complete, time-segmented toll tables.
//
// Stages, each in its own subpackage:
//
//	ingest/    – header-addressed CSV records → validated edges / toll-context rows
//	core/      – Graph Builder: undirected, generic-ID adjacency with a merge policy
//	matrix/    – Distance Closure (Floyd–Warshall) and Matrix Unroller / Pivot
//	proximity/ – locations whose distance sits within ±10% of a reference average
//	toll/      – per-class rates and the weekly band schedule (weekday 0.8/1.2/0.8, weekend 0.7)
//	pipeline/  – the stages chained, with capacity guard and slog stage logging
//
// Supporting traversals over core.Graph:
//
//	bfs/       – hop-order search and connected components
//	dijkstra/  – single-source distances and the route behind a closed distance
//
// Unreachable pairs are never given a numeric distance: the closure keeps them
// as matrix.Unreachable, Unroll omits them, and pipeline.Result lists them.
//
// Quick start:
//
//	res, err := pipeline.Run([]core.Edge[string]{
//	    {From: "A", To: "B", Distance: 10},
//	    {From: "B", To: "C", Distance: 5},
//	})
//	// res.Unrolled: A→B 10, A→C 15, B→A 10, B→C 5, C→A 15, C→B 5
//	// res.Segmented: 30 rows, five bands per unrolled edge
//
// See examples/ for a runnable network.
package tollgrid

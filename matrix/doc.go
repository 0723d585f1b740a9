// Package matrix turns a core.Graph into its all-pairs distance closure and
// back into flat edge lists.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     numeric policy (NaN and -Inf always rejected, +Inf only when the matrix
//     was prepared for distances).
//   - FloydWarshall, the in-place O(n³) all-pairs shortest-path closure with a
//     fixed k → i → j loop order and a zero-overhead fast path for *Dense.
//   - DistanceMatrix, an identifier-keyed view over the closed matrix whose
//     entries are Distance values: a tagged variant that is either a finite
//     length or "unreachable". Unreachable never takes part in arithmetic.
//   - Unroll and Pivot, which flatten a DistanceMatrix into UnrolledEdge rows
//     (self-pairs and unreachable pairs omitted) and rebuild it again.
//
// Closure guarantees, for every identifier set:
//
//	d(i,i) == 0
//	d(i,j) == d(j,i)                 (checked, ErrAsymmetry otherwise)
//	d(i,j) <= d(i,k) + d(k,j)        (optional check, WithTriangleCheck)
//
// Disconnected inputs are valid: the affected pairs stay Unreachable and are
// listed by DistanceMatrix.UnreachablePairs. Unroll drops them on purpose, so
// callers that care must inspect that list.
//
// Matrices are dense: O(n²) memory and O(n³) closure time. Check
// core.Graph.Order before calling Closure on large identifier sets.
package matrix

// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels and the
// identifier-keyed distance surface.
package matrix

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Distance is a shortest-path length that is either finite or unreachable.
//
// The zero value is Unreachable: a Distance must be built with Finite to
// carry a number, so a forgotten initialisation can never alias 0.
type Distance struct {
	value     float64
	reachable bool
}

// Finite returns a reachable Distance of length v.
func Finite(v float64) Distance {
	return Distance{value: v, reachable: true}
}

// Unreachable returns the "no path" marker.
func Unreachable() Distance {
	return Distance{}
}

// fromRaw converts a dense cell (+Inf means no path) into a Distance.
func fromRaw(v float64) Distance {
	if math.IsInf(v, 1) {
		return Unreachable()
	}

	return Finite(v)
}

// Reachable reports whether d carries a finite length.
func (d Distance) Reachable() bool { return d.reachable }

// Value returns the length and whether it exists.
// For Unreachable the length is 0 and ok is false.
func (d Distance) Value() (v float64, ok bool) {
	if !d.reachable {
		return 0, false
	}

	return d.value, true
}

// Add returns d + o; Unreachable absorbs.
func (d Distance) Add(o Distance) Distance {
	if !d.reachable || !o.reachable {
		return Unreachable()
	}

	return Finite(d.value + o.value)
}

// Less orders finite lengths numerically and places Unreachable last.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reachable:
		return false
	case !o.reachable:
		return true
	default:
		return d.value < o.value
	}
}

// String renders the length with the shortest exact representation, or "unreachable".
func (d Distance) String() string {
	if !d.reachable {
		return "unreachable"
	}

	return strconv.FormatFloat(d.value, 'g', -1, 64)
}

// Pair is an ordered (From, To) identifier pair.
type Pair[ID constraints.Ordered] struct {
	From, To ID
}

// UnrolledEdge is one directed row of an unrolled distance matrix.
// Start != End always holds for rows produced by Unroll.
type UnrolledEdge[ID constraints.Ordered] struct {
	Start    ID
	End      ID
	Distance float64
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// operation context) and tests match them via errors.Is. No operation panics
// on user-triggered conditions; panics are reserved for invalid options.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths or shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a distance matrix violated symmetry within eps.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrTriangleViolation signals d(i,j) > d(i,k) + d(k,j) + eps for some triple.
	ErrTriangleViolation = errors.New("matrix: triangle inequality violated")

	// ErrNaNInf signals a NaN or a forbidden infinity in Set/Fill.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil indicates that a nil *core.Graph was passed to Closure.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates an identifier that is not part of the matrix.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrNilMatrix indicates that a nil Matrix or DistanceMatrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidWeight indicates an unrolled distance that is negative, NaN or Inf.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrDuplicatePair indicates the same ordered (start, end) pair twice in Pivot input.
	ErrDuplicatePair = errors.New("matrix: duplicate ordered pair")

	// ErrSelfPair indicates an unrolled row with start == end.
	ErrSelfPair = errors.New("matrix: self pair in edge list")
)

// matrixErrorf prefixes err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

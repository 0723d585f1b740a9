// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to an operation.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidDistance indicates an edge distance that is NaN or ±Inf.
	ErrInvalidDistance = errors.New("core: distance is NaN or Inf")

	// ErrNegativeDistance indicates an edge distance below zero.
	ErrNegativeDistance = errors.New("core: distance is negative")

	// ErrUnknownPolicy indicates a MergePolicy outside MergeLast/MergeMin/MergeMean.
	ErrUnknownPolicy = errors.New("core: unknown merge policy")
)

// rowErrorf attaches the zero-based input row index to err.
func rowErrorf(op string, row int, err error) error {
	return fmt.Errorf("%s: row %d: %w", op, row, err)
}

// opErrorf prefixes err with the operation name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

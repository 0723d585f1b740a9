// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates input without even a header record.
	ErrEmptyInput = errors.New("ingest: no header record")

	// ErrMissingColumn indicates a required column absent from the header.
	ErrMissingColumn = errors.New("ingest: required column missing")

	// ErrMissingValue indicates an empty cell in a required column.
	ErrMissingValue = errors.New("ingest: value is required")

	// ErrBadDistance indicates a distance that is not a finite number >= 0.
	ErrBadDistance = errors.New("ingest: distance must be a finite number >= 0")

	// ErrBadID indicates a cell the identifier parser rejected.
	ErrBadID = errors.New("ingest: invalid identifier")
)

// RowError reports the first invalid cell of a read.
// Row is the 1-based record number with the header as record 1.
// Column is the header name as written in the input.
// Message is a human-readable English explanation when validation produced one.
type RowError struct {
	Row     int
	Column  string
	Value   string
	Message string
	Err     error
}

// Error implements error.
func (e *RowError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ingest: row %d, column %q, value %q: %s: %v", e.Row, e.Column, e.Value, e.Message, e.Err)
	}

	return fmt.Sprintf("ingest: row %d, column %q, value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *RowError) Unwrap() error { return e.Err }

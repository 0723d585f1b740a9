// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the numeric policy from a single place (Set/Fill).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Fill: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFill = "Fill"
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - allowInf lets Set/Fill store +Inf as the "no path" marker.
type Dense struct {
	r, c     int
	data     []float64
	allowInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix with the default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewPreparedDense(rows, cols)
}

// NewPreparedDense creates an r×c zero matrix whose numeric policy is taken from opts.
// Use WithAllowInfDistances to build distance fixtures holding +Inf.
func NewPreparedDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), allowInf: o.allowInfDistances}, nil
}

// newDistanceDense allocates an n×n distance matrix (n may be 0), diagonal 0,
// every off-diagonal cell +Inf.
func newDistanceDense(n int) *Dense {
	d := &Dense{r: n, c: n, data: make([]float64, n*n), allowInf: true}
	inf := math.Inf(1)
	for i := range d.data {
		if i/n != i%n {
			d.data[i] = inf
		}
	}

	return d
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// checkValue applies the numeric policy to v.
func (m *Dense) checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return ErrNaNInf
	}
	if math.IsInf(v, 1) && !m.allowInf {
		return ErrNaNInf
	}

	return nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set assigns v at (row, col) after the numeric policy check.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkValue(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Fill overwrites the whole buffer from a row-major slice of length r*c.
// The buffer is left untouched when any value fails the numeric policy.
func (m *Dense) Fill(vals []float64) error {
	if len(vals) != len(m.data) {
		return matrixErrorf(ctxFill, ErrDimensionMismatch)
	}
	for i, v := range vals {
		if err := m.checkValue(v); err != nil {
			return denseErrorf(ctxFill, i/m.c, i%m.c, err)
		}
	}
	copy(m.data, vals)

	return nil
}

// Clone returns a deep copy with the same numeric policy.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, allowInf: m.allowInf}
}

// String renders one bracketed row per line, for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

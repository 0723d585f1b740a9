// SPDX-License-Identifier: MIT

package toll

import (
	"time"

	"golang.org/x/exp/constraints"
)

const opAdjust = "Adjust"

// SegmentedRow is a toll row restricted to one band of the week.
// Rates are the base rates multiplied by Factor.
type SegmentedRow[ID constraints.Ordered] struct {
	Row[ID]
	StartDay  time.Weekday
	StartTime Clock
	EndDay    time.Weekday
	EndTime   Clock
	Factor    float64
}

// Adjust expands every row into one SegmentedRow per band of s.
//
// Implementation:
//   - Stage 1: validate s (no gaps or overlaps on any day).
//   - Stage 2: for each row in input order, for each band in schedule order,
//     emit the row with rates × factor and the band's day/time boundaries.
//
// Each input row is handled on its own; no state is carried between rows.
//
// Complexity: O(R · B).
func Adjust[ID constraints.Ordered](rows []Row[ID], s Schedule) ([]SegmentedRow[ID], error) {
	if err := s.Validate(); err != nil {
		return nil, tollErrorf(opAdjust, err)
	}

	out := make([]SegmentedRow[ID], 0, len(rows)*len(s.Bands))
	for _, r := range rows {
		out = append(out, segment(r, s.Bands)...)
	}

	return out, nil
}

// segment expands a single row over bands.
func segment[ID constraints.Ordered](r Row[ID], bands []Band) []SegmentedRow[ID] {
	out := make([]SegmentedRow[ID], len(bands))
	for i, b := range bands {
		first, last, _ := b.Days.bounds()
		scaled := r
		scaled.Rates = r.Rates.Scale(b.Factor)
		out[i] = SegmentedRow[ID]{
			Row:       scaled,
			StartDay:  first,
			StartTime: b.Start,
			EndDay:    last,
			EndTime:   b.End,
			Factor:    b.Factor,
		}
	}

	return out
}

// SPDX-License-Identifier: MIT
//
// File: schedule.go
// Role: Band/Schedule data model, the reference schedule, and validation.
// Policy:
//   - A band covers [Start, End) on each of its days; End == LastSecond covers
//     through midnight.
//   - Every day of the week must be partitioned exactly by its bands.

package toll

import (
	"fmt"
	"math"
	"slices"
	"time"
)

const opValidate = "Schedule.Validate"

// Band is one rate interval: the same clock window on every day in Days.
// An End of LastSecond (23:59:59) always means end of day: the band then
// runs through midnight, so no band can stop one second before it.
type Band struct {
	Days   DaySet
	Start  Clock
	End    Clock
	Factor float64
}

// span returns the covered seconds [lo, hi) within a day.
func (b Band) span() (lo, hi int) {
	lo, hi = int(b.Start), int(b.End)
	if b.End == LastSecond {
		hi = secondsDay
	}

	return lo, hi
}

// Duration is the length of the band on one day.
func (b Band) Duration() time.Duration {
	lo, hi := b.span()
	if hi <= lo {
		return 0
	}

	return time.Duration(hi-lo) * time.Second
}

// DayType returns the classification of the band's first day.
func (b Band) DayType() DayType {
	first, _, _ := b.Days.bounds()

	return Classify(first)
}

// String renders "Monday-Friday 10:00:00-18:00:00 x1.2".
func (b Band) String() string {
	return fmt.Sprintf("%s %s-%s x%g", b.Days, b.Start, b.End, b.Factor)
}

// validate checks the band in isolation.
func (b Band) validate() error {
	if !b.Start.Valid() || !b.End.Valid() {
		return ErrBadClock
	}
	if b.Duration() <= 0 {
		return ErrEmptyBand
	}
	if math.IsNaN(b.Factor) || math.IsInf(b.Factor, 0) || b.Factor < 0 {
		return ErrBadFactor
	}
	if b.Days.Len() == 0 {
		return ErrEmptyDaySet
	}
	if !b.Days.Contiguous() {
		return ErrNonContiguousDays
	}
	want := b.DayType()
	for _, d := range b.Days.Days() {
		if Classify(d) != want {
			return ErrMixedDayType
		}
	}

	return nil
}

// Schedule is an ordered list of bands. Adjust emits rows in band order.
type Schedule struct {
	Bands []Band
}

// DefaultSchedule returns the reference weekday three-band / weekend flat tariff.
func DefaultSchedule() Schedule {
	weekdays := DayRange(time.Monday, time.Friday)
	ten, six := MustClock(10, 0, 0), MustClock(18, 0, 0)

	return Schedule{Bands: []Band{
		{Days: weekdays, Start: Midnight, End: ten, Factor: 0.8},
		{Days: weekdays, Start: ten, End: six, Factor: 1.2},
		{Days: weekdays, Start: six, End: LastSecond, Factor: 0.8},
		{Days: Days(time.Saturday), Start: Midnight, End: LastSecond, Factor: 0.7},
		{Days: Days(time.Sunday), Start: Midnight, End: LastSecond, Factor: 0.7},
	}}
}

// Validate checks every band and that each day of the week is covered
// exactly once, with no gap and no overlap.
//
// Errors:
//   - ErrBadClock, ErrEmptyBand, ErrBadFactor, ErrEmptyDaySet,
//     ErrNonContiguousDays, ErrMixedDayType (per band, with its index).
//   - ErrScheduleGap, ErrScheduleOverlap (per day, with the day name).
//
// Complexity: O(7 · B log B).
func (s Schedule) Validate() error {
	for i, b := range s.Bands {
		if err := b.validate(); err != nil {
			return fmt.Errorf("%s: band %d (%s): %w", opValidate, i, b, err)
		}
	}
	for _, day := range Week {
		if err := s.checkDay(day); err != nil {
			return fmt.Errorf("%s: %s: %w", opValidate, day, err)
		}
	}

	return nil
}

// checkDay walks the sorted spans of day and reports the first gap or overlap.
func (s Schedule) checkDay(day time.Weekday) error {
	type span struct{ lo, hi int }
	var spans []span
	for _, b := range s.BandsFor(day) {
		lo, hi := b.span()
		spans = append(spans, span{lo, hi})
	}
	slices.SortFunc(spans, func(a, b span) int { return a.lo - b.lo })

	cursor := 0
	for _, sp := range spans {
		switch {
		case sp.lo > cursor:
			return ErrScheduleGap
		case sp.lo < cursor:
			return ErrScheduleOverlap
		}
		cursor = sp.hi
	}
	if cursor != secondsDay {
		return ErrScheduleGap
	}

	return nil
}

// BandsFor returns the bands applying on day, in schedule order.
func (s Schedule) BandsFor(day time.Weekday) []Band {
	var out []Band
	for _, b := range s.Bands {
		if b.Days.Contains(day) {
			out = append(out, b)
		}
	}

	return out
}

// ForDayType returns the bands of one day type, in schedule order.
func (s Schedule) ForDayType(t DayType) []Band {
	var out []Band
	for _, b := range s.Bands {
		if b.DayType() == t {
			out = append(out, b)
		}
	}

	return out
}

// BandDurations sums the durations of the bands covering day.
// A valid schedule yields exactly 24h for every day.
func BandDurations(s Schedule, day time.Weekday) time.Duration {
	var total time.Duration
	for _, b := range s.BandsFor(day) {
		total += b.Duration()
	}

	return total
}

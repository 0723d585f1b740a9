// SPDX-License-Identifier: MIT

package toll

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCoefficient indicates a negative, NaN or Inf rate coefficient.
	ErrBadCoefficient = errors.New("toll: coefficient must be finite and >= 0")

	// ErrBadClock indicates a clock value outside 00:00:00–23:59:59 or an unparsable string.
	ErrBadClock = errors.New("toll: invalid clock time")

	// ErrEmptyBand indicates a band whose end does not come after its start.
	ErrEmptyBand = errors.New("toll: band has no duration")

	// ErrBadFactor indicates a negative, NaN or Inf band factor.
	ErrBadFactor = errors.New("toll: band factor must be finite and >= 0")

	// ErrEmptyDaySet indicates a band that applies to no day.
	ErrEmptyDaySet = errors.New("toll: band day set is empty")

	// ErrNonContiguousDays indicates a band whose days are not one Monday-first run.
	ErrNonContiguousDays = errors.New("toll: band days are not contiguous")

	// ErrMixedDayType indicates a band spanning both weekdays and weekend days.
	ErrMixedDayType = errors.New("toll: band mixes weekday and weekend days")

	// ErrScheduleGap indicates part of a day not covered by any band.
	ErrScheduleGap = errors.New("toll: schedule leaves a gap")

	// ErrScheduleOverlap indicates two bands covering the same instant of a day.
	ErrScheduleOverlap = errors.New("toll: schedule bands overlap")

	// ErrUnknownDay indicates an unparsable day name.
	ErrUnknownDay = errors.New("toll: unknown day name")
)

// tollErrorf prefixes err with an operation tag.
func tollErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

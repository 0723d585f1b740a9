// SPDX-License-Identifier: MIT

package toll

import (
	"fmt"
	"time"
)

// Clock is a time of day in whole seconds since midnight, 0 … 86399.
type Clock int32

const (
	// Midnight is 00:00:00.
	Midnight Clock = 0

	// LastSecond is 23:59:59. As a band End it stands for the end of the day.
	LastSecond Clock = 24*60*60 - 1

	clockLayout = "15:04:05"
	secondsDay  = 24 * 60 * 60
)

// NewClock builds a Clock from hours, minutes and seconds.
func NewClock(h, m, s int) (Clock, error) {
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, fmt.Errorf("NewClock(%d,%d,%d): %w", h, m, s, ErrBadClock)
	}

	return Clock(h*3600 + m*60 + s), nil
}

// MustClock is NewClock for constant tables; it panics on invalid input.
func MustClock(h, m, s int) Clock {
	c, err := NewClock(h, m, s)
	if err != nil {
		panic(err)
	}

	return c
}

// ParseClock parses "HH:MM:SS" (24-hour).
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("ParseClock(%q): %w", s, ErrBadClock)
	}

	return Clock(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}

// Valid reports whether c lies within one day.
func (c Clock) Valid() bool {
	return c >= Midnight && c <= LastSecond
}

// String renders c as "HH:MM:SS".
func (c Clock) String() string {
	n := int(c)

	return fmt.Sprintf("%02d:%02d:%02d", n/3600, (n/60)%60, n%60)
}

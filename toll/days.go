// SPDX-License-Identifier: MIT

package toll

import (
	"strings"
	"time"

	"github.com/yourbasic/bit"
)

// DayType classifies a calendar day for schedule purposes.
type DayType int

const (
	// Weekday is Monday through Friday.
	Weekday DayType = iota

	// Weekend is Saturday and Sunday.
	Weekend
)

// String returns "weekday" or "weekend".
func (t DayType) String() string {
	if t == Weekend {
		return "weekend"
	}

	return "weekday"
}

// Classify returns the DayType of d.
func Classify(d time.Weekday) DayType {
	if weekIndex(d) >= weekIndex(time.Saturday) {
		return Weekend
	}

	return Weekday
}

// Week lists the days Monday first, the order used for day ranges.
var Week = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// weekIndex maps Monday→0 … Sunday→6. Out-of-range values wrap modulo 7.
func weekIndex(d time.Weekday) int { return ((int(d) % 7) + 7 + 6) % 7 }

// ParseDay parses an English day name ("Monday", case-insensitive).
func ParseDay(s string) (time.Weekday, error) {
	for _, d := range Week {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}

	return time.Sunday, tollErrorf("ParseDay("+s+")", ErrUnknownDay)
}

// DaySet is a set of weekdays backed by a Monday-first bitset.
// The zero value is the empty set.
type DaySet struct {
	bits *bit.Set
}

// Days returns the set containing days.
func Days(days ...time.Weekday) DaySet {
	s := bit.New()
	for _, d := range days {
		s.Add(weekIndex(d))
	}

	return DaySet{bits: s}
}

// DayRange returns the inclusive Monday-first run from..to.
// An inverted range (e.g. Friday..Monday) is empty.
func DayRange(from, to time.Weekday) DaySet {
	s := bit.New()
	for i := weekIndex(from); i <= weekIndex(to); i++ {
		s.Add(i)
	}

	return DaySet{bits: s}
}

// Contains reports whether d is in the set.
func (s DaySet) Contains(d time.Weekday) bool {
	return s.bits != nil && s.bits.Contains(weekIndex(d))
}

// Len returns the number of days in the set.
func (s DaySet) Len() int {
	if s.bits == nil {
		return 0
	}

	return s.bits.Size()
}

// Days lists the members Monday first.
func (s DaySet) Days() []time.Weekday {
	out := make([]time.Weekday, 0, 7)
	if s.bits == nil {
		return out
	}
	s.bits.Visit(func(i int) bool {
		out = append(out, Week[i])
		return false
	})

	return out
}

// bounds returns the first and last member (Monday first).
func (s DaySet) bounds() (first, last time.Weekday, ok bool) {
	days := s.Days()
	if len(days) == 0 {
		return 0, 0, false
	}

	return days[0], days[len(days)-1], true
}

// Contiguous reports whether the members form one uninterrupted Monday-first run.
func (s DaySet) Contiguous() bool {
	first, last, ok := s.bounds()
	if !ok {
		return false
	}

	return weekIndex(last)-weekIndex(first)+1 == s.Len()
}

// String renders "Monday-Friday", "Saturday" or "{}".
func (s DaySet) String() string {
	first, last, ok := s.bounds()
	switch {
	case !ok:
		return "{}"
	case first == last:
		return first.String()
	case s.Contiguous():
		return first.String() + "-" + last.String()
	default:
		names := make([]string, 0, s.Len())
		for _, d := range s.Days() {
			names = append(names, d.String())
		}
		return "{" + strings.Join(names, ",") + "}"
	}
}

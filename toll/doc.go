// Package toll derives per-vehicle-class toll rates from unrolled distances
// and expands them over a weekly band schedule.
//
// Two stages live here:
//
//	Calculate – Row = UnrolledEdge + Rates, each class rate = distance × coefficient.
//	Adjust    – one SegmentedRow per (Row, Band): rates × band factor, stamped
//	            with the band's first/last day and start/end clock time.
//
// The schedule is data, not code. A Schedule is an ordered list of Bands, each
// covering a contiguous Monday-first run of days (a DaySet) and a clock
// interval. DefaultSchedule reproduces the reference tariff:
//
//	Monday–Friday  00:00:00–10:00:00  ×0.8
//	Monday–Friday  10:00:00–18:00:00  ×1.2
//	Monday–Friday  18:00:00–23:59:59  ×0.8
//	Saturday       00:00:00–23:59:59  ×0.7
//	Sunday         00:00:00–23:59:59  ×0.7
//
// An End of 23:59:59 means "through the end of the day": the last second is
// included, so the bands covering any single day add up to exactly 24 hours.
// Schedule.Validate enforces that for all seven days (no gap, no overlap) and
// that every band stays within a single DayType. Weekday and weekend bands are
// evaluated independently; they are never merged into one global calendar.
package toll

// Package ingest turns tabular input into the typed rows consumed by core and toll.
//
// Records arrive as [][]string (see ReadCSV). The first record is the header;
// columns are located by name, case-insensitively, so column order is free:
//
//	edges:        ID | id_start, NextID | id_end, Distance
//	toll context: id_start, id_end, distance,
//	              start_day | startDay, start_time | startTime,
//	              end_day | endDay, end_time | endTime
//
// Every data record is first checked with go-playground/validator against the
// tags of EdgeRecord or TollContextRecord, then converted. Nothing is coerced:
// the first bad cell aborts the read with a *RowError naming its record number
// and column. The wrapped cause is a sentinel of this package, or toll.ErrBadClock
// and toll.ErrUnknownDay for time columns.
package ingest

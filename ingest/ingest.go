// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tollgrid/core"
	"github.com/katalvlaran/tollgrid/toll"
)

// IDParser converts an identifier cell into an ID.
type IDParser[ID constraints.Ordered] func(string) (ID, error)

// IntID parses base-10 integer identifiers.
func IntID(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// StringID keeps identifiers as trimmed strings.
func StringID(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ReadCSV reads every record from r. All records must have the header's width.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	return records, nil
}

// column is a required header name with its accepted spellings.
type column []string

var (
	edgeColumns = []column{
		{"ID", "id_start"},
		{"NextID", "id_end", "next_id"},
		{"Distance"},
	}
	contextColumns = []column{
		{"id_start", "ID"},
		{"id_end", "NextID"},
		{"distance"},
		{"start_day", "startDay"},
		{"start_time", "startTime"},
		{"end_day", "endDay"},
		{"end_time", "endTime"},
	}
)

// locate maps every column to its header position.
func locate(header []string, cols []column) ([]int, error) {
	pos := make([]int, len(cols))
	for i, c := range cols {
		pos[i] = -1
	search:
		for j, h := range header {
			for _, name := range c {
				if strings.EqualFold(strings.TrimSpace(h), name) {
					pos[i] = j
					break search
				}
			}
		}
		if pos[i] < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c[0])
		}
	}

	return pos, nil
}

// cell returns the trimmed rec[i], or "" when the record is short.
// A blank cell is therefore caught by the required tag.
func cell(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}

	return ""
}

// relabel rewrites a *RowError to name the column as spelled in header.
func relabel(err error, header []string, cols []column, pos []int) error {
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		return err
	}
	for i, c := range cols {
		if c[0] != rowErr.Column {
			continue
		}
		name := strings.TrimSpace(header[pos[i]])
		rowErr.Message = strings.Replace(rowErr.Message, c[0], name, 1)
		rowErr.Column = name
		break
	}

	return err
}

// Edges converts records (header first) into graph edges.
//
// Errors:
//   - ErrEmptyInput, ErrMissingColumn for a bad header.
//   - *RowError wrapping ErrMissingValue, ErrBadDistance or ErrBadID.
func Edges[ID constraints.Ordered](records [][]string, parse IDParser[ID]) ([]core.Edge[ID], error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("Edges: %w", ErrEmptyInput)
	}
	pos, err := locate(records[0], edgeColumns)
	if err != nil {
		return nil, fmt.Errorf("Edges: %w", err)
	}

	out := make([]core.Edge[ID], 0, len(records)-1)
	for i, rec := range records[1:] {
		row := i + 2
		raw := EdgeRecord{ID: cell(rec, pos[0]), NextID: cell(rec, pos[1]), Distance: cell(rec, pos[2])}
		if err = check(row, raw); err != nil {
			return nil, relabel(err, records[0], edgeColumns, pos)
		}

		var e core.Edge[ID]
		if e.From, err = parseID(row, "ID", raw.ID, parse); err != nil {
			return nil, relabel(err, records[0], edgeColumns, pos)
		}
		if e.To, err = parseID(row, "NextID", raw.NextID, parse); err != nil {
			return nil, relabel(err, records[0], edgeColumns, pos)
		}
		e.Distance, _ = parseDistance(raw.Distance)
		out = append(out, e)
	}

	return out, nil
}

// TollContext converts records (header first) into toll-context rows.
// Errors mirror Edges, plus *RowError wrapping toll.ErrBadClock or toll.ErrUnknownDay.
func TollContext[ID constraints.Ordered](records [][]string, parse IDParser[ID]) ([]toll.ContextRow[ID], error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("TollContext: %w", ErrEmptyInput)
	}
	pos, err := locate(records[0], contextColumns)
	if err != nil {
		return nil, fmt.Errorf("TollContext: %w", err)
	}

	out := make([]toll.ContextRow[ID], 0, len(records)-1)
	for i, rec := range records[1:] {
		row := i + 2
		raw := TollContextRecord{
			IDStart:   cell(rec, pos[0]),
			IDEnd:     cell(rec, pos[1]),
			Distance:  cell(rec, pos[2]),
			StartDay:  cell(rec, pos[3]),
			StartTime: cell(rec, pos[4]),
			EndDay:    cell(rec, pos[5]),
			EndTime:   cell(rec, pos[6]),
		}
		if err = check(row, raw); err != nil {
			return nil, relabel(err, records[0], contextColumns, pos)
		}

		var r toll.ContextRow[ID]
		if r.Start, err = parseID(row, "id_start", raw.IDStart, parse); err != nil {
			return nil, relabel(err, records[0], contextColumns, pos)
		}
		if r.End, err = parseID(row, "id_end", raw.IDEnd, parse); err != nil {
			return nil, relabel(err, records[0], contextColumns, pos)
		}
		r.Distance, _ = parseDistance(raw.Distance)
		r.StartDay = mustDay(raw.StartDay)
		r.EndDay = mustDay(raw.EndDay)
		r.StartTime = mustClock(raw.StartTime)
		r.EndTime = mustClock(raw.EndTime)
		out = append(out, r)
	}

	return out, nil
}

func parseID[ID constraints.Ordered](row int, col, value string, parse IDParser[ID]) (ID, error) {
	id, err := parse(value)
	if err != nil {
		var zero ID
		return zero, &RowError{Row: row, Column: col, Value: value, Err: fmt.Errorf("%w: %v", ErrBadID, err)}
	}

	return id, nil
}

// mustDay and mustClock convert cells that already passed validation.
func mustDay(s string) time.Weekday {
	d, _ := toll.ParseDay(strings.TrimSpace(s))
	return d
}

func mustClock(s string) toll.Clock {
	c, _ := toll.ParseClock(strings.TrimSpace(s))
	return c
}

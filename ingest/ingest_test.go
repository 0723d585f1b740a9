package ingest_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollgrid/core"
	"github.com/katalvlaran/tollgrid/ingest"
	"github.com/katalvlaran/tollgrid/toll"
)

func TestReadCSV_Edges(t *testing.T) {
	records, err := ingest.ReadCSV(strings.NewReader("ID,NextID,Distance\n1001,1002,9.7\n1002,1003, 20.2\n"))
	require.NoError(t, err)

	edges, err := ingest.Edges(records, ingest.IntID)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge[int]{
		{From: 1001, To: 1002, Distance: 9.7},
		{From: 1002, To: 1003, Distance: 20.2},
	}, edges)
}

// TestEdges_HeaderAliases: reordered columns and alternate names resolve.
func TestEdges_HeaderAliases(t *testing.T) {
	records := [][]string{
		{"distance", "id_end", "id_start"},
		{"5", "B", "A"},
	}
	edges, err := ingest.Edges(records, ingest.StringID)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge[string]{{From: "A", To: "B", Distance: 5}}, edges)
}

func TestEdges_HeaderErrors(t *testing.T) {
	_, err := ingest.Edges[int](nil, ingest.IntID)
	assert.ErrorIs(t, err, ingest.ErrEmptyInput)

	_, err = ingest.Edges([][]string{{"ID", "Distance"}}, ingest.IntID)
	assert.ErrorIs(t, err, ingest.ErrMissingColumn)
	assert.Contains(t, err.Error(), "NextID")
}

func TestEdges_RowErrors(t *testing.T) {
	header := []string{"ID", "NextID", "Distance"}
	cases := []struct {
		name   string
		rec    []string
		column string
		want   error
	}{
		{"empty id", []string{"", "2", "1"}, "ID", ingest.ErrMissingValue},
		{"short record", []string{"1", "2"}, "Distance", ingest.ErrMissingValue},
		{"negative", []string{"1", "2", "-3"}, "Distance", ingest.ErrBadDistance},
		{"nan", []string{"1", "2", "NaN"}, "Distance", ingest.ErrBadDistance},
		{"inf", []string{"1", "2", "+Inf"}, "Distance", ingest.ErrBadDistance},
		{"text", []string{"1", "2", "far"}, "Distance", ingest.ErrBadDistance},
		{"bad id", []string{"x", "2", "1"}, "ID", ingest.ErrBadID},
		{"blank id", []string{"   ", "2", "1"}, "ID", ingest.ErrMissingValue},
		{"blank distance", []string{"1", "2", " \t"}, "Distance", ingest.ErrMissingValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ingest.Edges([][]string{header, {"7", "8", "1"}, tc.rec}, ingest.IntID)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			var rowErr *ingest.RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, 3, rowErr.Row)
			assert.Equal(t, tc.column, rowErr.Column)
		})
	}
}

func TestRowError_Messages(t *testing.T) {
	header := []string{"ID", "NextID", "Distance"}
	cases := map[string]struct {
		rec  []string
		want string
	}{
		"required": {[]string{"1", "", "3"}, "NextID is a required field"},
		"distance": {[]string{"1", "2", "-3"}, "Distance must be a finite number >= 0"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ingest.Edges([][]string{header, tc.rec}, ingest.IntID)
			var rowErr *ingest.RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, tc.want, rowErr.Message)
		})
	}
}

// TestEdges_BlankStringID: whitespace-only identifiers are missing, not "".
func TestEdges_BlankStringID(t *testing.T) {
	edges, err := ingest.Edges([][]string{{"ID", "NextID", "Distance"}, {"   ", "B", "3"}}, ingest.StringID)
	assert.Nil(t, edges)
	assert.ErrorIs(t, err, ingest.ErrMissingValue)
}

// TestEdges_ErrorNamesInputHeader: errors use the header spelling of the input.
func TestEdges_ErrorNamesInputHeader(t *testing.T) {
	records := [][]string{
		{"distance", "id_end", "id_start"},
		{"-1", "B", "A"},
	}
	_, err := ingest.Edges(records, ingest.StringID)
	var rowErr *ingest.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, "distance", rowErr.Column)
	assert.Equal(t, "distance must be a finite number >= 0", rowErr.Message)

	records[1] = []string{"1", "B", "x"}
	_, err = ingest.Edges(records, ingest.IntID)
	require.True(t, errors.As(err, &rowErr))
	assert.ErrorIs(t, err, ingest.ErrBadID)
	assert.Equal(t, "id_start", rowErr.Column)
}

func TestTollContext_ErrorNamesInputHeader(t *testing.T) {
	records := [][]string{
		{"id_start", "id_end", "distance", "startDay", "startTime", "endDay", "endTime"},
		{"1", "2", "15", "Monday", "7am", "Friday", "10:00:00"},
	}
	_, err := ingest.TollContext(records, ingest.IntID)
	var rowErr *ingest.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.ErrorIs(t, err, toll.ErrBadClock)
	assert.Equal(t, "startTime", rowErr.Column)
	assert.Equal(t, "startTime must be a time of day as HH:MM:SS", rowErr.Message)
}

func TestTollContext(t *testing.T) {
	records := [][]string{
		{"id_start", "id_end", "distance", "startDay", "startTime", "endDay", "endTime"},
		{"1", "2", "15", "Monday", "00:00:00", "Friday", "10:00:00"},
	}
	rows, err := ingest.TollContext(records, ingest.IntID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 1, r.Start)
	assert.Equal(t, 2, r.End)
	assert.InDelta(t, 15.0, r.Distance, 1e-12)
	assert.Equal(t, time.Monday, r.StartDay)
	assert.Equal(t, time.Friday, r.EndDay)
	assert.Equal(t, toll.Midnight, r.StartTime)
	assert.Equal(t, toll.MustClock(10, 0, 0), r.EndTime)
}

func TestTollContext_RowErrors(t *testing.T) {
	header := []string{"id_start", "id_end", "distance", "start_day", "start_time", "end_day", "end_time"}

	_, err := ingest.TollContext([][]string{header, {"1", "2", "3", "Funday", "00:00:00", "Friday", "10:00:00"}}, ingest.IntID)
	assert.ErrorIs(t, err, toll.ErrUnknownDay)

	_, err = ingest.TollContext([][]string{header, {"1", "2", "3", "Monday", "24:00:00", "Friday", "10:00:00"}}, ingest.IntID)
	assert.ErrorIs(t, err, toll.ErrBadClock)

	var rowErr *ingest.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, "start_time", rowErr.Column)
	assert.Equal(t, 2, rowErr.Row)
	assert.Contains(t, rowErr.Error(), `"24:00:00"`)
	assert.Equal(t, "start_time must be a time of day as HH:MM:SS", rowErr.Message)
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := ingest.ReadCSV(strings.NewReader("ID,NextID,Distance\n1,2\n"))
	assert.Error(t, err)
}

package logreader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// TimestampColumn is the header name every CSV log format uses for its
// time axis.
const TimestampColumn = "timestamp"

// naiveTimeLayouts are the timestamp layouts accepted by logs that carry no
// timezone offset, tried in order. Fractional seconds are optional.
var naiveTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// parseNaiveTime parses a timestamp string with no timezone offset into a
// canonical instant materialized in time.UTC.
func parseNaiveTime(s string) (time.Time, error) {
	for _, layout := range naiveTimeLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// stripOffset drops a parsed timestamp's zone, keeping its wall clock:
// "2019-01-01T00:00:00-07:00" becomes the naive instant 2019-01-01 00:00:00.
func stripOffset(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(),
		ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), time.UTC)
}

// csvRecords reads all of r as CSV and returns the header and data rows.
// The header must contain a timestamp column.
func csvRecords(r io.Reader) (header []string, rows [][]string, err error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty source: no header row")
	}
	header = records[0]
	if columnIndex(header, TimestampColumn) < 0 {
		return nil, nil, fmt.Errorf("missing %q column", TimestampColumn)
	}
	return header, records[1:], nil
}

// columnIndex returns the position of name in header, or -1.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// parseNumeric converts one CSV cell to a float64. An empty cell is a
// missing value, reported via ok=false rather than an error.
func parseNumeric(cell string) (v float64, ok bool, err error) {
	if cell == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false, fmt.Errorf("non-numeric value %q", cell)
	}
	return v, true, nil
}

// openEach opens each path in order and applies read to it, returning the
// per-source results in call order.
func openEach[T any](paths []string, read func(io.Reader) (T, error)) ([]T, error) {
	out := make([]T, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("logreader: %w", err)
		}
		v, err := read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("logreader: %s: %w", path, err)
		}
		out = append(out, v)
	}
	return out, nil
}

package equilibration

import (
	"time"

	"github.com/osmolab/rigdata/pkg/types"
)

// Filter returns the rows whose timestamp falls within the interval,
// inclusive on both ends, preserving input order. at extracts the
// timestamp from a row.
func Filter[T any](iv types.Interval, rows []T, at func(T) time.Time) []T {
	out := []T{}
	for _, row := range rows {
		if iv.Contains(at(row)) {
			out = append(out, row)
		}
	}
	return out
}

// FilterAll applies Filter per interval and concatenates the results in
// interval order. Intervals are non-overlapping and non-adjacent by
// construction, so no deduplication is needed.
func FilterAll[T any](ivs []types.Interval, rows []T, at func(T) time.Time) []T {
	out := []T{}
	for _, iv := range ivs {
		out = append(out, Filter(iv, rows, at)...)
	}
	return out
}

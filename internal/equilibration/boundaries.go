package equilibration

import (
	"fmt"
	"time"

	"github.com/osmolab/rigdata/pkg/types"
)

// StatusEquilibrated is the only status value with meaning to the detector;
// every other value ("waiting", sensor fault strings, ...) counts as not
// equilibrated.
const StatusEquilibrated = "equilibrated"

// StatusPoint is one reading of the categorical equilibration status.
type StatusPoint struct {
	Timestamp time.Time
	Status    string
}

// StatusPoints extracts the named categorical column from a combined table
// as a status series, preserving row order. A row with no value for the
// column yields an empty status, which counts as not equilibrated.
func StatusPoints(t *types.Table, column string) ([]StatusPoint, error) {
	c, ok := t.Column(column)
	if !ok {
		return nil, fmt.Errorf("equilibration: table has no column %q", column)
	}
	if c.Kind != types.Categorical {
		return nil, fmt.Errorf("equilibration: column %q is not categorical", column)
	}
	points := make([]StatusPoint, len(t.Rows))
	for i, row := range t.Rows {
		points[i] = StatusPoint{Timestamp: row.Timestamp, Status: row.Categorical[column]}
	}
	return points, nil
}

// Boundaries returns the maximal contiguous equilibrated intervals of the
// status series, ascending by start time. The input must already be sorted
// by timestamp; Boundaries does not sort.
//
// The scan keeps one bit of state — whether it is currently inside an
// equilibrated run. Entering a run records its start; leaving it, either on
// a status change or at end of input, emits an interval closed at the last
// equilibrated timestamp. A run the log never closes is therefore still
// reported, and a single isolated equilibrated point yields a degenerate
// interval with Start == End. A series with no equilibrated points yields
// an empty, non-nil result.
func Boundaries(points []StatusPoint) []types.Interval {
	intervals := []types.Interval{}

	inside := false
	var start, last time.Time
	for _, p := range points {
		equilibrated := p.Status == StatusEquilibrated
		switch {
		case equilibrated && !inside:
			inside = true
			start = p.Timestamp
			last = p.Timestamp
		case equilibrated:
			last = p.Timestamp
		case inside:
			intervals = append(intervals, types.Interval{Start: start, End: last})
			inside = false
		}
	}
	if inside {
		intervals = append(intervals, types.Interval{Start: start, End: last})
	}
	return intervals
}

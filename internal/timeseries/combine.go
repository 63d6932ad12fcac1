package timeseries

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/osmolab/rigdata/pkg/types"
)

// At re-indexes the table onto a single instant: numeric columns are
// linearly interpolated over time, categorical columns are forward-filled.
// Rows must be sorted ascending with unique timestamps.
//
// ok is false when ts falls outside the table's sampled range — linear
// interpolation does not extrapolate. Individual columns with no sample on
// one side of ts (possible after concatenating sources with different
// column sets) come back as NaN for numeric or "" for categorical.
func At(t *types.Table, ts time.Time) (types.Row, bool) {
	if len(t.Rows) == 0 {
		return types.Row{}, false
	}
	if ts.Before(t.Rows[0].Timestamp) || ts.After(t.Rows[len(t.Rows)-1].Timestamp) {
		return types.Row{}, false
	}

	row := types.Row{
		Timestamp:   ts,
		Numeric:     make(map[string]float64),
		Categorical: make(map[string]string),
	}
	for _, c := range t.Columns {
		switch c.Kind {
		case types.Numeric:
			row.Numeric[c.Name] = interpolate(t.Rows, c.Name, ts)
		case types.Categorical:
			if v, ok := forwardFill(t.Rows, c.Name, ts); ok {
				row.Categorical[c.Name] = v
			}
		}
	}
	return row, true
}

// interpolate linearly interpolates the named numeric column at ts, using
// elapsed seconds as the interpolation axis. An exact sample at ts is
// returned as-is. NaN when ts is outside the column's own sampled range.
func interpolate(rows []types.Row, column string, ts time.Time) float64 {
	// Index of the first row at or after ts.
	i := sort.Search(len(rows), func(i int) bool {
		return !rows[i].Timestamp.Before(ts)
	})

	if i < len(rows) && rows[i].Timestamp.Equal(ts) {
		if v, ok := rows[i].Numeric[column]; ok {
			return v
		}
	}

	// Nearest samples of this column on each side of ts.
	before, hasBefore := nearestSample(rows, column, i-1, -1)
	after, hasAfter := nearestSample(rows, column, i, +1)
	if !hasBefore || !hasAfter {
		return math.NaN()
	}

	span := after.Timestamp.Sub(before.Timestamp).Seconds()
	if span == 0 {
		return before.Numeric[column]
	}
	frac := ts.Sub(before.Timestamp).Seconds() / span
	v0 := before.Numeric[column]
	v1 := after.Numeric[column]
	return v0 + (v1-v0)*frac
}

// nearestSample walks from index i in the given direction until it finds a
// row holding a value for column.
func nearestSample(rows []types.Row, column string, i, dir int) (types.Row, bool) {
	for ; i >= 0 && i < len(rows); i += dir {
		if _, ok := rows[i].Numeric[column]; ok {
			return rows[i], true
		}
	}
	return types.Row{}, false
}

// forwardFill returns the most recent value of the named categorical column
// at or before ts.
func forwardFill(rows []types.Row, column string, ts time.Time) (string, bool) {
	i := sort.Search(len(rows), func(i int) bool {
		return rows[i].Timestamp.After(ts)
	})
	for i--; i >= 0; i-- {
		if v, ok := rows[i].Categorical[column]; ok {
			return v, true
		}
	}
	return "", false
}

// Combine merges a calibration table and a sensor table onto the
// calibration table's time axis. Both inputs are sorted and deduplicated
// (keep-first) without being mutated. The output holds one row per unique
// calibration timestamp that falls within the sensor table's sampled range,
// carrying the calibration row's own columns plus the sensor columns
// re-indexed per At. Calibration timestamps outside the sensor range are
// excluded rather than extrapolated.
//
// A column name declared by both inputs is an ingestion error: sensor
// columns are prefixed by their reader precisely to keep the two column
// sets disjoint.
func Combine(calibration, sensor *types.Table) (*types.Table, error) {
	calib := normalized(calibration)
	sens := normalized(sensor)

	for _, c := range sens.Columns {
		if _, clash := calib.Column(c.Name); clash {
			return nil, fmt.Errorf("timeseries: column %q present in both calibration and sensor data", c.Name)
		}
	}

	out := &types.Table{
		Columns: append(append([]types.Column(nil), calib.Columns...), sens.Columns...),
	}
	for _, crow := range calib.Rows {
		srow, ok := At(sens, crow.Timestamp)
		if !ok {
			continue
		}
		row := types.Row{
			Timestamp:   crow.Timestamp,
			Numeric:     make(map[string]float64, len(crow.Numeric)+len(srow.Numeric)),
			Categorical: make(map[string]string, len(crow.Categorical)+len(srow.Categorical)),
		}
		for k, v := range crow.Numeric {
			row.Numeric[k] = v
		}
		for k, v := range crow.Categorical {
			row.Categorical[k] = v
		}
		for k, v := range srow.Numeric {
			row.Numeric[k] = v
		}
		for k, v := range srow.Categorical {
			row.Categorical[k] = v
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

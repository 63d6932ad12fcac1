package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/osmolab/rigdata/pkg/types"
)

// timeLayout is the naive timestamp format used in every exported CSV.
const timeLayout = "2006-01-02 15:04:05"

// WriteTableCSV writes a combined sensor table: a timestamp column followed
// by the table's declared columns in order.
func WriteTableCSV(w io.Writer, t *types.Table) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp"}
	for _, c := range t.Columns {
		header = append(header, c.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for _, row := range t.Rows {
		rec := []string{row.Timestamp.Format(timeLayout)}
		for _, c := range t.Columns {
			switch c.Kind {
			case types.Numeric:
				v, ok := row.Numeric[c.Name]
				rec = append(rec, formatNumeric(v, ok))
			case types.Categorical:
				rec = append(rec, row.Categorical[c.Name])
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBoundariesCSV writes detected equilibration intervals as
// start_time,end_time rows.
func WriteBoundariesCSV(w io.Writer, ivs []types.Interval) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"start_time", "end_time"}); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	for _, iv := range ivs {
		rec := []string{iv.Start.Format(timeLayout), iv.End.Format(timeLayout)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDatasetCSV writes the final combined dataset keyed by image. The
// measurement and sensor column sets are the sorted union across all rows,
// so every run of the same inputs produces the same header.
func WriteDatasetCSV(w io.Writer, d *types.Dataset) error {
	measurementCols := unionKeys(d.Rows, func(r types.CombinedRow) map[string]float64 { return r.Measurements })
	sensorCols := unionKeys(d.Rows, func(r types.CombinedRow) map[string]float64 { return r.Sensor })

	cw := csv.NewWriter(w)
	header := []string{"image", "experiment", "timestamp"}
	header = append(header, measurementCols...)
	header = append(header, sensorCols...)
	header = append(header, "equilibration status")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for _, row := range d.Rows {
		rec := []string{row.Image, row.Experiment, row.Timestamp.Format(timeLayout)}
		for _, col := range measurementCols {
			v, ok := row.Measurements[col]
			rec = append(rec, formatNumeric(v, ok))
		}
		for _, col := range sensorCols {
			v, ok := row.Sensor[col]
			rec = append(rec, formatNumeric(v, ok))
		}
		rec = append(rec, row.Status)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// unionKeys collects the sorted union of map keys across all rows.
func unionKeys(rows []types.CombinedRow, pick func(types.CombinedRow) map[string]float64) []string {
	set := make(map[string]bool)
	for _, r := range rows {
		for k := range pick(r) {
			set[k] = true
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatNumeric renders one numeric cell; missing values and NaN become
// empty cells.
func formatNumeric(v float64, ok bool) string {
	if !ok || math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatTime renders a timestamp the way the exported CSVs do. Shared with
// the CLI table renderer.
func FormatTime(ts time.Time) string {
	return ts.Format(timeLayout)
}

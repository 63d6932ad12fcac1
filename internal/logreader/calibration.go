package logreader

import (
	"fmt"
	"io"
	"time"

	"github.com/osmolab/rigdata/internal/timeseries"
	"github.com/osmolab/rigdata/pkg/types"
)

// ColumnEquilibrationStatus is the calibration log's categorical column
// holding the rig equilibration state ("waiting", "equilibrated", ...).
const ColumnEquilibrationStatus = "equilibration status"

// categoricalCalibrationColumns declares which calibration log columns are
// categorical; every other non-timestamp column is numeric.
var categoricalCalibrationColumns = map[string]bool{
	ColumnEquilibrationStatus: true,
}

// CalibrationLog parses one calibration environment CSV. Timestamps are
// naive ("2019-01-01 00:00:01.1") and are truncated to whole-second
// resolution, the granularity the rest of the bench logs at.
func CalibrationLog(r io.Reader) (*types.Table, error) {
	header, records, err := csvRecords(r)
	if err != nil {
		return nil, fmt.Errorf("calibration log: %w", err)
	}
	tsIdx := columnIndex(header, TimestampColumn)

	tbl := &types.Table{}
	for i, name := range header {
		if i == tsIdx {
			continue
		}
		kind := types.Numeric
		if categoricalCalibrationColumns[name] {
			kind = types.Categorical
		}
		tbl.Columns = append(tbl.Columns, types.Column{Name: name, Kind: kind})
	}

	for n, rec := range records {
		ts, err := parseNaiveTime(rec[tsIdx])
		if err != nil {
			return nil, fmt.Errorf("calibration log: row %d: %w", n+1, err)
		}
		row := types.Row{
			Timestamp:   ts.Truncate(time.Second),
			Numeric:     make(map[string]float64),
			Categorical: make(map[string]string),
		}
		for i, cell := range rec {
			if i == tsIdx {
				continue
			}
			name := header[i]
			if categoricalCalibrationColumns[name] {
				row.Categorical[name] = cell
				continue
			}
			v, ok, err := parseNumeric(cell)
			if err != nil {
				return nil, fmt.Errorf("calibration log: row %d, column %q: %w", n+1, name, err)
			}
			if ok {
				row.Numeric[name] = v
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

// CalibrationLogFiles opens and parses each path in order and returns the
// sources concatenated into one table.
func CalibrationLogFiles(paths []string) (*types.Table, error) {
	tables, err := openEach(paths, CalibrationLog)
	if err != nil {
		return nil, err
	}
	return timeseries.Concat(tables...), nil
}

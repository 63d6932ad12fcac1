package logreader

import (
	"fmt"
	"io"
	"time"

	"github.com/osmolab/rigdata/internal/timeseries"
	"github.com/osmolab/rigdata/pkg/types"
)

// picologColumnPrefix distinguishes PicoLog sensor columns from calibration
// log columns after the two series are combined onto one table.
const picologColumnPrefix = "PicoLog "

// Picolog parses one PicoLog temperature CSV export. Timestamps carry a
// timezone offset ("2019-01-01T00:00:00-07:00"); the offset is stripped and
// the wall clock kept, matching the naive time axis of the other logs.
// Every column except the timestamp is numeric and is renamed with a
// "PicoLog " prefix.
func Picolog(r io.Reader) (*types.Table, error) {
	header, records, err := csvRecords(r)
	if err != nil {
		return nil, fmt.Errorf("picolog: %w", err)
	}
	tsIdx := columnIndex(header, TimestampColumn)

	tbl := &types.Table{}
	for i, name := range header {
		if i == tsIdx {
			continue
		}
		tbl.Columns = append(tbl.Columns, types.Column{
			Name: picologColumnPrefix + name,
			Kind: types.Numeric,
		})
	}

	for n, rec := range records {
		ts, err := time.Parse(time.RFC3339, rec[tsIdx])
		if err != nil {
			return nil, fmt.Errorf("picolog: row %d: parse timestamp: %w", n+1, err)
		}
		row := types.Row{
			Timestamp: stripOffset(ts),
			Numeric:   make(map[string]float64, len(header)-1),
		}
		for i, cell := range rec {
			if i == tsIdx {
				continue
			}
			v, ok, err := parseNumeric(cell)
			if err != nil {
				return nil, fmt.Errorf("picolog: row %d, column %q: %w", n+1, header[i], err)
			}
			if ok {
				row.Numeric[picologColumnPrefix+header[i]] = v
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

// PicologFiles opens and parses each path in order and returns the sources
// concatenated into one table.
func PicologFiles(paths []string) (*types.Table, error) {
	tables, err := openEach(paths, Picolog)
	if err != nil {
		return nil, err
	}
	return timeseries.Concat(tables...), nil
}

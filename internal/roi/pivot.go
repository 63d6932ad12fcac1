package roi

import (
	"math"
	"sort"
	"time"

	"github.com/osmolab/rigdata/pkg/types"
)

// ColumnName is the pivoted column name for one ROI × msorm combination,
// e.g. "ROI 0 r_msorm".
func ColumnName(roiName, msormType string) string {
	return roiName + " " + msormType
}

// ROINames returns the distinct ROI names present in the measurements, in
// first-seen order. Used when the caller does not configure an explicit
// ROI list.
func ROINames(ms []types.Measurement) []string {
	names := []string{}
	seen := make(map[string]bool)
	for _, m := range ms {
		if !seen[m.ROI] {
			seen[m.ROI] = true
			names = append(names, m.ROI)
		}
	}
	return names
}

// Pivot reshapes measurements into one row per distinct (timestamp, image)
// pair with a column for every requested ROI × msorm combination. A
// combination never measured for a given image is NaN, the missing-value
// marker, not an error. Rows come back ordered by timestamp ascending;
// rows sharing a timestamp keep first-seen order.
func Pivot(ms []types.Measurement, roiNames, msormTypes []string) []types.PivotedRow {
	wantROI := make(map[string]bool, len(roiNames))
	for _, r := range roiNames {
		wantROI[r] = true
	}

	type key struct {
		ts    time.Time
		image string
	}
	byKey := make(map[key]*types.PivotedRow)
	order := []key{}

	for _, m := range ms {
		k := key{ts: m.Timestamp, image: m.Image}
		row, ok := byKey[k]
		if !ok {
			row = &types.PivotedRow{
				Timestamp: m.Timestamp,
				Image:     m.Image,
				Values:    make(map[string]float64, len(roiNames)*len(msormTypes)),
			}
			for _, r := range roiNames {
				for _, t := range msormTypes {
					row.Values[ColumnName(r, t)] = math.NaN()
				}
			}
			byKey[k] = row
			order = append(order, k)
		}
		if !wantROI[m.ROI] {
			continue
		}
		for _, t := range msormTypes {
			if v, ok := m.Values[t]; ok {
				row.Values[ColumnName(m.ROI, t)] = v
			}
		}
	}

	rows := make([]types.PivotedRow, len(order))
	for i, k := range order {
		rows[i] = *byKey[k]
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})
	return rows
}

// Unpivot is the inverse reshape: it groups pivoted columns back by ROI
// into per-region measurement rows. Combinations holding the NaN missing
// marker are left out, so pivoting and unpivoting a fully-populated
// measurement set round-trips exactly.
func Unpivot(rows []types.PivotedRow, roiNames, msormTypes []string) []types.Measurement {
	ms := []types.Measurement{}
	for _, row := range rows {
		for _, r := range roiNames {
			values := make(map[string]float64)
			for _, t := range msormTypes {
				v, ok := row.Values[ColumnName(r, t)]
				if ok && !math.IsNaN(v) {
					values[t] = v
				}
			}
			if len(values) == 0 {
				continue
			}
			ms = append(ms, types.Measurement{
				Timestamp: row.Timestamp,
				Image:     row.Image,
				ROI:       r,
				Values:    values,
			})
		}
	}
	return ms
}

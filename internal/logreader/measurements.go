package logreader

import (
	"fmt"
	"io"

	"github.com/osmolab/rigdata/pkg/types"
)

// Fixed columns of the image-analysis result CSV; every remaining column is
// one msorm metric value.
const (
	imageColumn = "image"
	roiColumn   = "ROI"
)

// Measurements parses one image-analysis result CSV into measurement
// records, one per (timestamp, image, ROI) source row.
func Measurements(r io.Reader) ([]types.Measurement, error) {
	header, records, err := csvRecords(r)
	if err != nil {
		return nil, fmt.Errorf("measurements: %w", err)
	}
	tsIdx := columnIndex(header, TimestampColumn)
	imgIdx := columnIndex(header, imageColumn)
	roiIdx := columnIndex(header, roiColumn)
	if imgIdx < 0 || roiIdx < 0 {
		return nil, fmt.Errorf("measurements: missing %q or %q column", imageColumn, roiColumn)
	}

	ms := make([]types.Measurement, 0, len(records))
	for n, rec := range records {
		ts, err := parseNaiveTime(rec[tsIdx])
		if err != nil {
			return nil, fmt.Errorf("measurements: row %d: %w", n+1, err)
		}
		m := types.Measurement{
			Timestamp: ts,
			Image:     rec[imgIdx],
			ROI:       rec[roiIdx],
			Values:    make(map[string]float64),
		}
		for i, cell := range rec {
			if i == tsIdx || i == imgIdx || i == roiIdx {
				continue
			}
			v, ok, err := parseNumeric(cell)
			if err != nil {
				return nil, fmt.Errorf("measurements: row %d, column %q: %w", n+1, header[i], err)
			}
			if ok {
				m.Values[header[i]] = v
			}
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// MeasurementFiles opens and parses each path in order and returns all
// measurement rows concatenated in call order.
func MeasurementFiles(paths []string) ([]types.Measurement, error) {
	chunks, err := openEach(paths, Measurements)
	if err != nil {
		return nil, err
	}
	var ms []types.Measurement
	for _, c := range chunks {
		ms = append(ms, c...)
	}
	return ms, nil
}

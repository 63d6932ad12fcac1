package dataset

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/osmolab/rigdata/internal/equilibration"
	"github.com/osmolab/rigdata/internal/logreader"
	"github.com/osmolab/rigdata/internal/roi"
	"github.com/osmolab/rigdata/internal/syncdir"
	"github.com/osmolab/rigdata/internal/timeseries"
	"github.com/osmolab/rigdata/pkg/types"
)

// Params names every input of one orchestration run. All paths are
// resolved by the caller; Build performs no discovery beyond listing the
// per-experiment sync directories.
type Params struct {
	// SyncDir is the local root of the experiment image sync, one
	// subdirectory per experiment name.
	SyncDir string

	// Experiments are the experiment names to include.
	Experiments []string

	// CalibrationLogs are the calibration environment CSV paths. Their
	// timestamps define the combined time axis.
	CalibrationLogs []string

	// PicologLogs are the PicoLog temperature CSV paths.
	PicologLogs []string

	// TelemetrySnapshots are optional Prometheus-textfile snapshot paths;
	// parsed samples join the sensor side of the combine.
	TelemetrySnapshots []string

	// ResultFiles are the image-analysis result CSV paths.
	ResultFiles []string

	// ROINames restricts the pivot to these regions. Empty means every ROI
	// present in the result data, in first-seen order.
	ROINames []string

	// MsormTypes are the measurement metric columns to pivot.
	MsormTypes []string
}

// CombineSensorData reads the calibration and sensor logs and merges them
// onto the calibration time axis. Picolog tables and telemetry snapshot
// tables are concatenated into one sensor series before combining.
func CombineSensorData(calibrationLogs, picologLogs, telemetrySnapshots []string) (*types.Table, error) {
	calibration, err := logreader.CalibrationLogFiles(calibrationLogs)
	if err != nil {
		return nil, err
	}

	sensors := []*types.Table{}
	if len(picologLogs) > 0 {
		pico, err := logreader.PicologFiles(picologLogs)
		if err != nil {
			return nil, err
		}
		sensors = append(sensors, pico)
	}
	if len(telemetrySnapshots) > 0 {
		telem, err := logreader.TelemetrySnapshotFiles(telemetrySnapshots)
		if err != nil {
			return nil, err
		}
		sensors = append(sensors, telem)
	}
	if len(sensors) == 0 {
		return nil, fmt.Errorf("dataset: no sensor logs given")
	}

	return timeseries.Combine(calibration, timeseries.Concat(sensors...))
}

// Boundaries runs the combine and returns the detected equilibration
// intervals of the resulting status series.
func Boundaries(calibrationLogs, picologLogs, telemetrySnapshots []string) ([]types.Interval, error) {
	combined, err := CombineSensorData(calibrationLogs, picologLogs, telemetrySnapshots)
	if err != nil {
		return nil, err
	}
	status, err := equilibration.StatusPoints(combined, logreader.ColumnEquilibrationStatus)
	if err != nil {
		return nil, err
	}
	return equilibration.Boundaries(status), nil
}

// Build runs the full pipeline and returns the combined, equilibrated-only
// dataset keyed by image. An empty dataset is a valid result: it means no
// image was taken while the rig was equilibrated.
func Build(p Params) (*types.Dataset, error) {
	combined, err := CombineSensorData(p.CalibrationLogs, p.PicologLogs, p.TelemetrySnapshots)
	if err != nil {
		return nil, err
	}

	status, err := equilibration.StatusPoints(combined, logreader.ColumnEquilibrationStatus)
	if err != nil {
		return nil, err
	}
	bounds := equilibration.Boundaries(status)
	slog.Info("dataset: detected equilibration intervals",
		"intervals", len(bounds), "status_points", len(status))

	measurements, err := logreader.MeasurementFiles(p.ResultFiles)
	if err != nil {
		return nil, err
	}
	roiNames := p.ROINames
	if len(roiNames) == 0 {
		roiNames = roi.ROINames(measurements)
	}
	pivoted := roi.Pivot(measurements, roiNames, p.MsormTypes)

	// Restrict the combined sensor timeline to equilibrated ranges before
	// joining: sensor values at measurement timestamps interpolate over the
	// equilibrated rows only.
	eqTable := &types.Table{
		Columns: combined.Columns,
		Rows: equilibration.FilterAll(bounds, combined.Rows,
			func(r types.Row) time.Time { return r.Timestamp }),
	}

	out := &types.Dataset{Rows: []types.CombinedRow{}}
	for _, experiment := range p.Experiments {
		images, err := syncdir.ListImages(p.SyncDir, []string{experiment})
		if err != nil {
			return nil, err
		}
		synced := make(map[string]bool, len(images))
		for _, img := range images {
			synced[img.Image] = true
		}

		rows := []types.PivotedRow{}
		for _, pr := range pivoted {
			if synced[pr.Image] {
				rows = append(rows, pr)
			}
		}
		rows = equilibration.FilterAll(bounds, rows,
			func(r types.PivotedRow) time.Time { return r.Timestamp })

		for _, pr := range rows {
			out.Rows = append(out.Rows, types.CombinedRow{
				Image:        pr.Image,
				Experiment:   experiment,
				Timestamp:    pr.Timestamp,
				Measurements: pr.Values,
				Sensor:       sensorAt(eqTable, pr.Timestamp),
				Status:       statusAt(eqTable, pr.Timestamp),
			})
		}
		slog.Info("dataset: experiment assembled",
			"experiment", experiment, "images", len(images), "rows", len(rows))
	}
	return out, nil
}

// sensorAt interpolates the combined table's numeric columns onto ts.
// Outside the table's sampled range every column is the NaN missing
// marker — the join never extrapolates.
func sensorAt(t *types.Table, ts time.Time) map[string]float64 {
	if row, ok := timeseries.At(t, ts); ok {
		return row.Numeric
	}
	missing := make(map[string]float64)
	for _, c := range t.Columns {
		if c.Kind == types.Numeric {
			missing[c.Name] = math.NaN()
		}
	}
	return missing
}

// statusAt forward-fills the equilibration status column onto ts.
func statusAt(t *types.Table, ts time.Time) string {
	row, ok := timeseries.At(t, ts)
	if !ok {
		return ""
	}
	return row.Categorical[logreader.ColumnEquilibrationStatus]
}

package logreader

import (
	"fmt"
	"io"
	"sort"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/osmolab/rigdata/internal/timeseries"
	"github.com/osmolab/rigdata/pkg/types"
)

// TelemetrySnapshot parses a Prometheus text exposition dumped by the bench
// logging box (node-exporter textfile collector format) into a numeric
// table. Each gauge, counter, or untyped sample becomes one cell; the
// sample's own timestamp becomes the row's instant, so every sample must
// carry one — a snapshot without timestamps has no usable time axis and is
// rejected.
func TelemetrySnapshot(r io.Reader) (*types.Table, error) {
	mfs, err := parseExposition(r)
	if err != nil {
		return nil, fmt.Errorf("telemetry snapshot: %w", err)
	}

	// Group samples into one row per instant. Metric families come back as
	// a map, so collect column names separately and sort for determinism.
	byInstant := make(map[time.Time]map[string]float64)
	columnSet := make(map[string]bool)
	for name, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if m.TimestampMs == nil {
				return nil, fmt.Errorf("telemetry snapshot: metric %q: sample has no timestamp", name)
			}
			ts := time.UnixMilli(m.GetTimestampMs()).UTC()
			col := sampleColumnName(name, m)
			v, ok := sampleValue(m)
			if !ok {
				return nil, fmt.Errorf("telemetry snapshot: metric %q: unsupported sample type", name)
			}
			if byInstant[ts] == nil {
				byInstant[ts] = make(map[string]float64)
			}
			byInstant[ts][col] = v
			columnSet[col] = true
		}
	}

	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	instants := make([]time.Time, 0, len(byInstant))
	for ts := range byInstant {
		instants = append(instants, ts)
	}
	sort.Slice(instants, func(i, j int) bool { return instants[i].Before(instants[j]) })

	tbl := &types.Table{}
	for _, col := range columns {
		tbl.Columns = append(tbl.Columns, types.Column{Name: col, Kind: types.Numeric})
	}
	for _, ts := range instants {
		tbl.Rows = append(tbl.Rows, types.Row{Timestamp: ts, Numeric: byInstant[ts]})
	}
	return tbl, nil
}

// TelemetrySnapshotFiles opens and parses each path in order and returns
// the snapshots concatenated into one table.
func TelemetrySnapshotFiles(paths []string) (*types.Table, error) {
	tables, err := openEach(paths, TelemetrySnapshot)
	if err != nil {
		return nil, err
	}
	return timeseries.Concat(tables...), nil
}

// parseExposition decodes a Prometheus text exposition from r into metric
// families. A partial result with a non-fatal parse warning is still
// returned successfully.
func parseExposition(r io.Reader) (map[string]*dto.MetricFamily, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	if err != nil && len(mfs) == 0 {
		return nil, fmt.Errorf("parse prometheus text: %w", err)
	}
	return mfs, nil
}

// sampleColumnName builds a stable column name from a metric name and its
// label pairs, e.g. `bath_temperature_celsius{bath="1"}`.
func sampleColumnName(name string, m *dto.Metric) string {
	labels := m.GetLabel()
	if len(labels) == 0 {
		return name
	}
	pairs := make([]string, 0, len(labels))
	for _, l := range labels {
		pairs = append(pairs, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	sort.Strings(pairs)
	out := name + "{"
	for i, p := range pairs {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out + "}"
}

// sampleValue extracts the numeric value from a gauge, counter, or untyped
// sample.
func sampleValue(m *dto.Metric) (float64, bool) {
	switch {
	case m.Gauge != nil:
		return m.Gauge.GetValue(), true
	case m.Counter != nil:
		return m.Counter.GetValue(), true
	case m.Untyped != nil:
		return m.Untyped.GetValue(), true
	default:
		return 0, false
	}
}

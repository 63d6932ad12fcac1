package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/osmolab/rigdata/pkg/types"
)

const calibrationCSV = `timestamp,equilibration status,setpoint temperature (C)
2019-01-01 00:00:00.1,waiting,40
2019-01-01 00:00:01.1,equilibrated,40
2019-01-01 00:00:03.1,equilibrated,40
2019-01-01 00:00:04.1,waiting,40
`

const picologCSV = `timestamp,Temperature Ave. (C)
2019-01-01T00:00:00-07:00,39
2019-01-01T00:00:02-07:00,40
2019-01-01T00:00:04-07:00,40
`

const resultsCSV = `timestamp,image,ROI,r_msorm,g_msorm
2019-01-01 00:00:00,image-0.jpeg,ROI 0,0.5,0.4
2019-01-01 00:00:00,image-0.jpeg,ROI 1,0.4,0.5
2019-01-01 00:00:02,image-1.jpeg,ROI 0,0.3,0.6
2019-01-01 00:00:02,image-1.jpeg,ROI 1,0.6,0.3
`

func sec(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.UTC)
	if err != nil {
		t.Fatalf("bad fixture timestamp %q: %v", s, err)
	}
	return ts
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// fixtureParams lays out a full bench run on disk: sensor logs, analysis
// results, and a sync directory holding two images plus a stray log file.
func fixtureParams(t *testing.T) Params {
	t.Helper()
	dir := t.TempDir()

	calib := writeFixture(t, dir, "calibration.csv", calibrationCSV)
	pico := writeFixture(t, dir, "picolog.csv", picologCSV)
	results := writeFixture(t, dir, "results.csv", resultsCSV)

	syncRoot := filepath.Join(dir, "sync")
	writeFixture(t, syncRoot, filepath.Join("test", "image-0.jpeg"), "x")
	writeFixture(t, syncRoot, filepath.Join("test", "image-1.jpeg"), "x")
	writeFixture(t, syncRoot, filepath.Join("test", "experiment.log"), "x")

	return Params{
		SyncDir:         syncRoot,
		Experiments:     []string{"test"},
		CalibrationLogs: []string{calib},
		PicologLogs:     []string{pico},
		ResultFiles:     []string{results},
		MsormTypes:      []string{"r_msorm", "g_msorm"},
	}
}

func TestBuild_FiltersAllDataToEquilibratedStates(t *testing.T) {
	ds, err := Build(fixtureParams(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// image-0 was taken at 00:00:00, before the rig equilibrated; only
	// image-1 at 00:00:02 falls inside the [00:00:01, 00:00:03] interval.
	if len(ds.Rows) != 1 {
		t.Fatalf("Build() row count = %d, want 1: %+v", len(ds.Rows), ds.Rows)
	}

	row := ds.Rows[0]
	if row.Image != "image-1.jpeg" {
		t.Errorf("Image = %q, want image-1.jpeg", row.Image)
	}
	if row.Experiment != "test" {
		t.Errorf("Experiment = %q, want test", row.Experiment)
	}
	if !row.Timestamp.Equal(sec(t, "2019-01-01 00:00:02")) {
		t.Errorf("Timestamp = %v, want 2019-01-01 00:00:02", row.Timestamp)
	}
	if row.Status != "equilibrated" {
		t.Errorf("Status = %q, want equilibrated", row.Status)
	}

	wantMeasurements := map[string]float64{
		"ROI 0 r_msorm": 0.3,
		"ROI 1 r_msorm": 0.6,
		"ROI 0 g_msorm": 0.6,
		"ROI 1 g_msorm": 0.3,
	}
	for col, want := range wantMeasurements {
		if got := row.Measurements[col]; got != want {
			t.Errorf("Measurements[%q] = %v, want %v", col, got, want)
		}
	}

	// The temperature joins by interpolating the combined (calibration-
	// indexed) timeline: 39.5 at 00:00:01 and 40 at 00:00:03 give 39.75.
	if got := row.Sensor["PicoLog Temperature Ave. (C)"]; got != 39.75 {
		t.Errorf("joined temperature = %v, want 39.75", got)
	}
	if got := row.Sensor["setpoint temperature (C)"]; got != 40 {
		t.Errorf("joined setpoint = %v, want 40", got)
	}
}

func TestBuild_NeverEquilibrated(t *testing.T) {
	p := fixtureParams(t)
	neverEq := `timestamp,equilibration status,setpoint temperature (C)
2019-01-01 00:00:00,waiting,40
2019-01-01 00:00:04,waiting,40
`
	p.CalibrationLogs = []string{writeFixture(t, t.TempDir(), "calibration.csv", neverEq)}

	ds, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ds == nil || len(ds.Rows) != 0 {
		t.Fatalf("Build() = %+v, want valid empty dataset", ds)
	}
}

func TestBuild_ImageNotInSyncDirectoryIsExcluded(t *testing.T) {
	p := fixtureParams(t)
	// Remove the equilibrated image from the sync directory: its
	// measurement rows have no synced file and must drop out.
	if err := os.Remove(filepath.Join(p.SyncDir, "test", "image-1.jpeg")); err != nil {
		t.Fatal(err)
	}

	ds, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(ds.Rows) != 0 {
		t.Fatalf("Build() = %+v, want empty dataset", ds.Rows)
	}
}

func TestCombineSensorData_RequiresSensorLogs(t *testing.T) {
	p := fixtureParams(t)
	if _, err := CombineSensorData(p.CalibrationLogs, nil, nil); err == nil {
		t.Fatal("CombineSensorData() without sensor logs: want error")
	}
}

func TestBoundaries_FromLogFiles(t *testing.T) {
	p := fixtureParams(t)
	bounds, err := Boundaries(p.CalibrationLogs, p.PicologLogs, nil)
	if err != nil {
		t.Fatalf("Boundaries() error = %v", err)
	}
	want := []types.Interval{{
		Start: sec(t, "2019-01-01 00:00:01"),
		End:   sec(t, "2019-01-01 00:00:03"),
	}}
	if len(bounds) != 1 || !bounds[0].Start.Equal(want[0].Start) || !bounds[0].End.Equal(want[0].End) {
		t.Fatalf("Boundaries() = %v, want %v", bounds, want)
	}
}

func TestBuild_WithTelemetrySnapshot(t *testing.T) {
	p := fixtureParams(t)
	// A bench telemetry snapshot covering the same window; its gauge joins
	// the sensor side and lands in the final row.
	snapshot := "rig_do_mg_per_l 8.0 1546300800000\nrig_do_mg_per_l 8.4 1546300804000\n"
	p.TelemetrySnapshots = []string{writeFixture(t, t.TempDir(), "rig.prom", snapshot)}

	ds, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(ds.Rows) != 1 {
		t.Fatalf("Build() row count = %d, want 1", len(ds.Rows))
	}
	if _, ok := ds.Rows[0].Sensor["rig_do_mg_per_l"]; !ok {
		t.Errorf("Sensor columns = %v, want rig_do_mg_per_l joined in", ds.Rows[0].Sensor)
	}
}

package export

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/osmolab/rigdata/pkg/types"
)

func sec(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.UTC)
	if err != nil {
		t.Fatalf("bad fixture timestamp %q: %v", s, err)
	}
	return ts
}

func TestWriteTableCSV(t *testing.T) {
	tbl := &types.Table{
		Columns: []types.Column{
			{Name: "equilibration status", Kind: types.Categorical},
			{Name: "PicoLog Temperature Ave. (C)", Kind: types.Numeric},
		},
		Rows: []types.Row{
			{
				Timestamp:   sec(t, "2019-01-01 00:00:01"),
				Numeric:     map[string]float64{"PicoLog Temperature Ave. (C)": 39.5},
				Categorical: map[string]string{"equilibration status": "equilibrated"},
			},
			{
				Timestamp:   sec(t, "2019-01-01 00:00:02"),
				Numeric:     map[string]float64{"PicoLog Temperature Ave. (C)": math.NaN()},
				Categorical: map[string]string{"equilibration status": "waiting"},
			},
		},
	}

	var sb strings.Builder
	if err := WriteTableCSV(&sb, tbl); err != nil {
		t.Fatalf("WriteTableCSV() error = %v", err)
	}

	want := "timestamp,equilibration status,PicoLog Temperature Ave. (C)\n" +
		"2019-01-01 00:00:01,equilibrated,39.5\n" +
		"2019-01-01 00:00:02,waiting,\n"
	if sb.String() != want {
		t.Errorf("WriteTableCSV() =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestWriteBoundariesCSV(t *testing.T) {
	ivs := []types.Interval{
		{Start: sec(t, "2019-01-01 00:00:01"), End: sec(t, "2019-01-01 00:00:03")},
	}

	var sb strings.Builder
	if err := WriteBoundariesCSV(&sb, ivs); err != nil {
		t.Fatalf("WriteBoundariesCSV() error = %v", err)
	}

	want := "start_time,end_time\n2019-01-01 00:00:01,2019-01-01 00:00:03\n"
	if sb.String() != want {
		t.Errorf("WriteBoundariesCSV() = %q, want %q", sb.String(), want)
	}
}

func TestWriteDatasetCSV_DeterministicColumns(t *testing.T) {
	ds := &types.Dataset{Rows: []types.CombinedRow{
		{
			Image:        "image-1.jpeg",
			Experiment:   "test",
			Timestamp:    sec(t, "2019-01-01 00:00:02"),
			Measurements: map[string]float64{"ROI 0 r_msorm": 0.3, "ROI 0 g_msorm": 0.6},
			Sensor:       map[string]float64{"PicoLog Temperature Ave. (C)": 39.75},
			Status:       "equilibrated",
		},
	}}

	var sb strings.Builder
	if err := WriteDatasetCSV(&sb, ds); err != nil {
		t.Fatalf("WriteDatasetCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("WriteDatasetCSV() = %q, want header + one row", sb.String())
	}
	// Measurement columns come sorted, so g before r.
	wantHeader := "image,experiment,timestamp,ROI 0 g_msorm,ROI 0 r_msorm,PicoLog Temperature Ave. (C),equilibration status"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	wantRow := "image-1.jpeg,test,2019-01-01 00:00:02,0.6,0.3,39.75,equilibrated"
	if lines[1] != wantRow {
		t.Errorf("row = %q, want %q", lines[1], wantRow)
	}
}

func TestWriteDatasetCSV_Empty(t *testing.T) {
	var sb strings.Builder
	if err := WriteDatasetCSV(&sb, &types.Dataset{}); err != nil {
		t.Fatalf("WriteDatasetCSV() error = %v", err)
	}
	want := "image,experiment,timestamp,equilibration status\n"
	if sb.String() != want {
		t.Errorf("empty dataset CSV = %q, want header only %q", sb.String(), want)
	}
}

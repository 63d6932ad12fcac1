package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInputFiles_DeclarationOrder(t *testing.T) {
	cfg := &Config{
		CalibrationLogs:    []string{"cal-a.csv", "cal-b.csv"},
		PicologLogs:        []string{"pico.csv"},
		TelemetrySnapshots: []string{"telemetry.prom"},
		ResultFiles:        []string{"results.csv"},
	}

	want := []string{"cal-a.csv", "cal-b.csv", "pico.csv", "telemetry.prom", "results.csv"}
	got := cfg.InputFiles()
	if len(got) != len(want) {
		t.Fatalf("InputFiles() returned %d paths, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("InputFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWatch_InputLogWriteFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	calib := filepath.Join(dir, "calibration.csv")
	pico := filepath.Join(dir, "picolog.csv")
	for _, f := range []string{calib, pico} {
		if err := os.WriteFile(f, []byte("timestamp\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfgPath := filepath.Join(dir, "rigdata.yaml")
	yaml := "calibration_logs: [" + calib + "]\npicolog_logs: [" + pico + "]\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan *Config, 1)
	go func() {
		_ = Watch(ctx, cfgPath, func(c *Config) {
			select {
			case changed <- c:
			default:
			}
		})
	}()

	// The first append can race watcher registration, so keep appending
	// until the notification arrives.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-changed:
			if len(cfg.CalibrationLogs) != 1 || cfg.CalibrationLogs[0] != calib {
				t.Fatalf("onChange config calibration_logs = %v, want [%s]", cfg.CalibrationLogs, calib)
			}
			return
		case <-deadline:
			t.Fatal("no change notification after writing an input log")
		case <-tick.C:
			f, err := os.OpenFile(calib, os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := f.WriteString("2019-01-01 00:00:00\n"); err != nil {
				t.Fatal(err)
			}
			f.Close()
		}
	}
}

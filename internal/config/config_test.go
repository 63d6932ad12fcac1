package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rigdata.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
sync_dir: /data/sync
experiments:
  - 2019-01-01-cal
calibration_logs:
  - /data/logs/calibration.csv
picolog_logs:
  - /data/logs/picolog.csv
telemetry_snapshots:
  - /data/logs/rig.prom
result_files:
  - /data/results/roi.csv
roi_names:
  - ROI 0
  - ROI 1
msorm_types:
  - r_msorm
output: dataset.csv
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SyncDir != "/data/sync" {
		t.Errorf("SyncDir = %q", cfg.SyncDir)
	}
	if len(cfg.Experiments) != 1 || cfg.Experiments[0] != "2019-01-01-cal" {
		t.Errorf("Experiments = %v", cfg.Experiments)
	}
	if len(cfg.MsormTypes) != 1 || cfg.MsormTypes[0] != "r_msorm" {
		t.Errorf("MsormTypes = %v, want the configured override", cfg.MsormTypes)
	}
	if cfg.Output != "dataset.csv" {
		t.Errorf("Output = %q", cfg.Output)
	}
}

func TestLoad_AppliesMsormDefaults(t *testing.T) {
	path := writeConfig(t, `
calibration_logs: [calibration.csv]
picolog_logs: [picolog.csv]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.MsormTypes) != 2 || cfg.MsormTypes[0] != "r_msorm" || cfg.MsormTypes[1] != "g_msorm" {
		t.Errorf("MsormTypes = %v, want default [r_msorm g_msorm]", cfg.MsormTypes)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing calibration logs",
			content: "picolog_logs: [picolog.csv]\n",
		},
		{
			name:    "missing all sensor logs",
			content: "calibration_logs: [calibration.csv]\n",
		},
		{
			name: "experiments without sync dir",
			content: `
calibration_logs: [calibration.csv]
picolog_logs: [picolog.csv]
experiments: [test]
`,
		},
		{
			name: "explicit empty msorm types",
			content: `
calibration_logs: [calibration.csv]
picolog_logs: [picolog.csv]
msorm_types: []
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("Load() = nil error, want validation failure")
			}
		})
	}
}

func TestLoad_TelemetryOnlySensorSideIsValid(t *testing.T) {
	path := writeConfig(t, `
calibration_logs: [calibration.csv]
telemetry_snapshots: [rig.prom]
`)
	if _, err := Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() on missing file: want error")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "calibration_logs: [unclosed")); err == nil {
		t.Fatal("Load() on invalid yaml: want error")
	}
}

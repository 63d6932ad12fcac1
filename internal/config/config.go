package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMsormTypes are the measurement metric columns pivoted when the
// config does not name any.
var DefaultMsormTypes = []string{"r_msorm", "g_msorm"}

// Config is the top-level configuration for one dataset build.
// Fields map 1:1 to rigdata.example.yaml.
type Config struct {
	// SyncDir is the local root of the experiment image sync; one
	// subdirectory per experiment name.
	SyncDir string `yaml:"sync_dir"`

	// Experiments are the experiment names to include in the dataset.
	Experiments []string `yaml:"experiments"`

	// CalibrationLogs are the calibration environment CSV paths. Their
	// timestamps define the combined time axis, so at least one is required.
	CalibrationLogs []string `yaml:"calibration_logs"`

	// PicologLogs are the PicoLog temperature CSV paths.
	PicologLogs []string `yaml:"picolog_logs"`

	// TelemetrySnapshots are optional Prometheus-textfile snapshots dumped
	// by the bench logging box; they join the sensor side of the combine.
	TelemetrySnapshots []string `yaml:"telemetry_snapshots"`

	// ResultFiles are the image-analysis result CSV paths.
	ResultFiles []string `yaml:"result_files"`

	// ROINames restricts the pivot to these regions of interest. Empty
	// means every ROI present in the result data.
	ROINames []string `yaml:"roi_names"`

	// MsormTypes are the measurement metric columns to pivot.
	MsormTypes []string `yaml:"msorm_types"`

	// Output is the path the built dataset CSV is written to. Empty means
	// stdout.
	Output string `yaml:"output"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		MsormTypes: append([]string(nil), DefaultMsormTypes...),
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if len(cfg.CalibrationLogs) == 0 {
		return fmt.Errorf("calibration_logs is required")
	}
	if len(cfg.PicologLogs) == 0 && len(cfg.TelemetrySnapshots) == 0 {
		return fmt.Errorf("at least one of picolog_logs or telemetry_snapshots is required")
	}
	if len(cfg.Experiments) > 0 && cfg.SyncDir == "" {
		return fmt.Errorf("sync_dir is required when experiments are named")
	}
	if len(cfg.MsormTypes) == 0 {
		return fmt.Errorf("msorm_types must not be empty")
	}
	return nil
}

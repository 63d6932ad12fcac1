package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osmolab/rigdata/internal/config"
	"github.com/osmolab/rigdata/internal/dataset"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "rigdata",
		Short:         "Build equilibrated calibration datasets from bench logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "rigdata.yaml", "Configuration file path")

	rootCmd.AddCommand(newCombineCommand(&configFlag))
	rootCmd.AddCommand(newBoundariesCommand(&configFlag))
	rootCmd.AddCommand(newImagesCommand(&configFlag))
	rootCmd.AddCommand(newBuildCommand(&configFlag))
	rootCmd.AddCommand(newWatchCommand(&configFlag))

	return rootCmd
}

// buildParams maps a loaded config onto orchestration parameters.
func buildParams(cfg *config.Config) dataset.Params {
	return dataset.Params{
		SyncDir:            cfg.SyncDir,
		Experiments:        cfg.Experiments,
		CalibrationLogs:    cfg.CalibrationLogs,
		PicologLogs:        cfg.PicologLogs,
		TelemetrySnapshots: cfg.TelemetrySnapshots,
		ResultFiles:        cfg.ResultFiles,
		ROINames:           cfg.ROINames,
		MsormTypes:         cfg.MsormTypes,
	}
}

// withOutput opens the --output target (or stdout when empty), runs write,
// and closes the file afterwards.
func withOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

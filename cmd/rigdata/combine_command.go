package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/osmolab/rigdata/internal/config"
	"github.com/osmolab/rigdata/internal/dataset"
	"github.com/osmolab/rigdata/internal/export"
)

func newCombineCommand(configPath *string) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Merge calibration and sensor logs onto one time axis and print the table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			combined, err := dataset.CombineSensorData(cfg.CalibrationLogs, cfg.PicologLogs, cfg.TelemetrySnapshots)
			if err != nil {
				return err
			}
			return withOutput(outputFlag, func(w io.Writer) error {
				return export.WriteTableCSV(w, combined)
			})
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write CSV to this path instead of stdout")
	return cmd
}

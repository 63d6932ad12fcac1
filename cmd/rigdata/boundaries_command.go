package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osmolab/rigdata/internal/config"
	"github.com/osmolab/rigdata/internal/dataset"
	"github.com/osmolab/rigdata/internal/export"
)

func newBoundariesCommand(configPath *string) *cobra.Command {
	var outputFlag string
	var csvFlag bool

	cmd := &cobra.Command{
		Use:   "boundaries",
		Short: "Detect equilibrated intervals in the combined status series",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			bounds, err := dataset.Boundaries(cfg.CalibrationLogs, cfg.PicologLogs, cfg.TelemetrySnapshots)
			if err != nil {
				return err
			}

			if csvFlag {
				return withOutput(outputFlag, func(w io.Writer) error {
					return export.WriteBoundariesCSV(w, bounds)
				})
			}

			rows := make([][]any, 0, len(bounds))
			for _, iv := range bounds {
				rows = append(rows, []any{iv.Start, iv.End, iv.End.Sub(iv.Start)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Start", "End", "Duration"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&csvFlag, "csv", false, "Emit CSV instead of a table")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write CSV to this path instead of stdout")
	return cmd
}

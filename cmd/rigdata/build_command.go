package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osmolab/rigdata/internal/config"
	"github.com/osmolab/rigdata/internal/dataset"
	"github.com/osmolab/rigdata/internal/export"
	"github.com/osmolab/rigdata/pkg/types"
)

// previewLimit caps the number of dataset rows rendered with --preview.
const previewLimit = 20

func newBuildCommand(configPath *string) *cobra.Command {
	var outputFlag string
	var previewFlag bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the full equilibrated dataset and write it as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			ds, err := dataset.Build(buildParams(cfg))
			if err != nil {
				return err
			}

			if previewFlag {
				fmt.Fprintln(cmd.OutOrStdout(), renderDatasetPreview(ds))
			}

			out := outputFlag
			if out == "" {
				out = cfg.Output
			}
			return withOutput(out, func(w io.Writer) error {
				return export.WriteDatasetCSV(w, ds)
			})
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write CSV to this path (overrides config output)")
	cmd.Flags().BoolVar(&previewFlag, "preview", false, "Render the first rows as a table before writing")
	return cmd
}

func renderDatasetPreview(ds *types.Dataset) string {
	rows := make([][]any, 0, previewLimit)
	for i, row := range ds.Rows {
		if i == previewLimit {
			break
		}
		rows = append(rows, []any{
			row.Image,
			row.Experiment,
			row.Timestamp,
			row.Status,
			len(row.Measurements),
		})
	}
	return renderTable(
		[]string{"Image", "Experiment", "Timestamp", "Status", "Measurements"},
		rows,
	)
}

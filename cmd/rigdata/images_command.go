package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osmolab/rigdata/internal/config"
	"github.com/osmolab/rigdata/internal/syncdir"
)

func newImagesCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "List synced experiment images",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			images, err := syncdir.ListImages(cfg.SyncDir, cfg.Experiments)
			if err != nil {
				return err
			}

			rows := make([][]any, 0, len(images))
			for _, img := range images {
				rows = append(rows, []any{img.Experiment, img.Image})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Experiment", "Image"},
				rows,
			))
			return nil
		},
	}
	return cmd
}

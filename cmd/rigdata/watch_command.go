package main

import (
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osmolab/rigdata/internal/config"
	"github.com/osmolab/rigdata/internal/dataset"
	"github.com/osmolab/rigdata/internal/export"
)

func newWatchCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the dataset whenever the config or an input log changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			rebuild(cfg)

			return config.Watch(ctx, *configPath, rebuild)
		},
	}
	return cmd
}

// rebuild runs one full dataset build for the given config. Failures are
// logged, not fatal: the watcher keeps running on the previous output.
func rebuild(cfg *config.Config) {
	ds, err := dataset.Build(buildParams(cfg))
	if err != nil {
		slog.Error("watch: build failed", "err", err)
		return
	}
	if err := withOutput(cfg.Output, func(w io.Writer) error {
		return export.WriteDatasetCSV(w, ds)
	}); err != nil {
		slog.Error("watch: write failed", "err", err)
		return
	}
	slog.Info("watch: dataset rebuilt", "rows", len(ds.Rows), "output", cfg.Output)
}

package main

import (
	"log/slog"
	"os"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := newRootCommand().Execute(); err != nil {
		slog.Error("rigdata failed", "err", err)
		os.Exit(1)
	}
}

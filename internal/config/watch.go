package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// InputFiles returns every data file the config names, in declaration
// order: calibration logs, picolog logs, telemetry snapshots, result files.
func (c *Config) InputFiles() []string {
	files := make([]string, 0,
		len(c.CalibrationLogs)+len(c.PicologLogs)+len(c.TelemetrySnapshots)+len(c.ResultFiles))
	files = append(files, c.CalibrationLogs...)
	files = append(files, c.PicologLogs...)
	files = append(files, c.TelemetrySnapshots...)
	files = append(files, c.ResultFiles...)
	return files
}

// Watch monitors the config file at path and every input file it names,
// calling onChange with the active Config after each change. An edit to the
// config file reloads it first; a write to an input log fires onChange with
// the config unchanged, so a bench run that is still appending to its logs
// keeps feeding rebuilds. Watch runs until ctx is cancelled.
//
// A failed reload keeps the previous config active and does not fire
// onChange.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	cfg, err := Load(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		return err
	}
	watchInputs(watcher, cfg)

	slog.Info("config: watching", "path", path, "inputs", len(cfg.InputFiles()))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Plain writes and atomic saves (rename then create) both need
			// handling; anything else is noise.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if event.Name == path {
				next, err := Load(path)
				if err != nil {
					slog.Error("config: reload failed, keeping previous config",
						"path", path, "err", err)
					continue
				}
				cfg = next
				watchInputs(watcher, cfg)
				slog.Info("config: reloaded", "path", path)
			} else {
				slog.Info("config: input file changed", "path", event.Name)
			}
			onChange(cfg)

			// An atomic save replaces the inode, so the changed path must be
			// re-added to stay watched.
			_ = watcher.Add(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

// watchInputs registers the config's input files with the watcher. A file
// that does not exist yet is logged and skipped; it gets picked up on the
// next config reload.
func watchInputs(watcher *fsnotify.Watcher, cfg *Config) {
	for _, f := range cfg.InputFiles() {
		if err := watcher.Add(f); err != nil {
			slog.Warn("config: cannot watch input file", "path", f, "err", err)
		}
	}
}

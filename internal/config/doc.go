// Package config loads and watches the rigdata configuration file
// (rigdata.yaml).
//
// Load(path) reads the YAML file, applies defaults (msorm types
// r_msorm/g_msorm), then validates required fields. Watch(ctx, path,
// onChange) uses fsnotify on the config file and on every input file the
// config names: config edits are reloaded and passed to onChange, input
// writes fire onChange with the config unchanged. Atomic-save editors
// replace the inode (rename then create), so the watch is re-added after
// each event.
package config

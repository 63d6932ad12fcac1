// Package logreader parses raw bench log sources into typed tables.
// Each reader owns one source format and strips its format-specific
// timestamp representation (including timezone offsets) down to a canonical
// naive instant, so tables from different readers share one time axis.
//
// Implemented readers: PicoLog temperature CSVs (picolog.go), calibration
// environment CSVs (calibration.go), image-analysis result CSVs
// (measurements.go), and Prometheus-textfile telemetry snapshots dumped by
// the bench logging box (telemetry.go).
//
// Malformed rows are never recovered: a parse failure propagates as an
// error carrying the source and row context, since correctness of the time
// axis is load-bearing for every downstream stage.
package logreader

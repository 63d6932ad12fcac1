// Package types defines shared Go types used across the rigdata pipeline.
// These are the canonical in-memory representations of bench log data,
// equilibration intervals, and image-analysis measurements, separate from
// the CSV and Prometheus-textfile source formats.
package types

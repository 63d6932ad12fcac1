// Package timeseries merges irregularly-sampled tables onto a unified,
// monotonic time axis.
//
// Concat, SortByTimestamp, and DedupeKeepFirst normalize concatenated log
// sources; Combine re-indexes a sensor table onto a calibration table's
// timestamps, linearly interpolating numeric columns and forward-filling
// categorical ones. Interpolation never extrapolates: calibration
// timestamps outside the sensor table's sampled range are excluded from the
// output by construction.
package timeseries

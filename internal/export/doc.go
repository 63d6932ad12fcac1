// Package export writes pipeline outputs as CSV with a deterministic
// column order. The NaN missing-value marker is rendered as an empty cell.
package export

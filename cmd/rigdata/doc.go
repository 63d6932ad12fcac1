// Command rigdata builds equilibrated calibration datasets from bench logs.
//
// Subcommands: combine (merged sensor table), boundaries (equilibration
// intervals), images (experiment image listing), build (full dataset), and
// watch (rebuild on config or input-log change).
package main

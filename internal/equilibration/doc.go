// Package equilibration detects the time intervals during which the bench
// held a verified steady state, and filters time-indexed rows down to those
// intervals.
//
// Boundaries scans the categorical equilibration status series with a small
// two-state machine and emits one closed interval per maximal contiguous
// "equilibrated" run, including the trailing-run case where the log ends
// before the rig leaves the equilibrated state.
package equilibration

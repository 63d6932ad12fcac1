// Package dataset orchestrates the full pipeline: read and combine the
// bench sensor logs, detect equilibrated intervals, pivot the per-ROI
// image-analysis results, filter everything to equilibrated time ranges,
// and join sensor values onto the surviving measurement timestamps into one
// dataset keyed by image.
package dataset

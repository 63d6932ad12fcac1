// Package roi reshapes per-region-of-interest image measurement rows into
// one row per (timestamp, image) with a column for every ROI × msorm
// combination. The reshape is lossless: Unpivot recovers the original
// measurement set.
package roi

// Package syncdir lists the images synced from the bench camera for each
// experiment. It is the filesystem collaborator of the pipeline: one
// subdirectory per experiment name under the local sync root, filtered down
// to image files.
package syncdir

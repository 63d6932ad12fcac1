package syncdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions are the file extensions the bench camera produces.
// Everything else in a sync directory (experiment logs, checksums) is
// ignored.
var imageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".tiff": true,
	".bmp":  true,
}

// ExperimentImage is one synced image file tagged with its experiment.
type ExperimentImage struct {
	Experiment string
	Image      string
}

// ListImages lists <root>/<experiment>/ for each experiment name and
// returns the image files found, in directory order, tagged with the
// experiment they belong to. No images is a valid empty, non-nil result.
func ListImages(root string, experiments []string) ([]ExperimentImage, error) {
	out := []ExperimentImage{}
	for _, exp := range experiments {
		entries, err := os.ReadDir(filepath.Join(root, exp))
		if err != nil {
			return nil, fmt.Errorf("syncdir: experiment %q: %w", exp, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
				continue
			}
			out = append(out, ExperimentImage{Experiment: exp, Image: e.Name()})
		}
	}
	return out, nil
}

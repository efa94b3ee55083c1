package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root markers, checked in order in each directory.
var rootMarkers = []string{"aide.yaml", ".aide", ".git"}

// FindRoot walks upwards from startDir looking for a project root marker
// (aide.yaml, a .aide directory or a .git directory) and returns its absolute path.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, marker := range rootMarkers {
			if hasFile(dir, marker) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found from %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

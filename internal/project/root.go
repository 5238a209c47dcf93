package project

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ConfigFile is the name of the project configuration file.
const ConfigFile = "jsxc.toml"

// FindConfig returns the nearest jsxc.toml in startDir or its parents.
func FindConfig(startDir string) (path string, ok bool, err error) {
	dir, err := filepath.Abs(cmp.Or(startDir, "."))
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for prev := ""; dir != prev; prev, dir = dir, filepath.Dir(dir) {
		candidate := filepath.Join(dir, ConfigFile)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
	}
	return "", false, nil
}

package merger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

var (
	// ErrInputDirMissing reports that the input directory does not exist.
	ErrInputDirMissing = errors.New("input directory does not exist")
	// ErrNoInputFiles reports that the input directory holds no xlsx files.
	ErrNoInputFiles = errors.New("no xlsx files in input directory")
)

// EnsureInputDir creates dir (and parents) when absent. It returns true
// when the directory was created by this call.
func EnsureInputDir(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking input directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating input directory %s: %w", dir, err)
	}
	return true, nil
}

// findInputFiles walks dir and returns the paths of all .xlsx files,
// sorted lexicographically so per-file statistics are reproducible.
func findInputFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrInputDirMissing, dir)
	}

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".xlsx" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking input directory: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputFiles, dir)
	}

	sort.Strings(files)
	return files, nil
}

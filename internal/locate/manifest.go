package locate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/containerd/errdefs"
)

const (
	// Filename of the module manifest.
	manifestName = "go.mod"

	// Filename of the checksum companion to the manifest.
	checksumName = "go.sum"
)

// Finds the module root under a directory subtree.
//
// Walks the tree and returns the directory containing the first file named
// go.mod. When no manifest exists anywhere under root, the returned error
// wraps errdefs.ErrNotFound so callers can tell "absent" apart from walk
// failures.
func Manifest(root string) (string, error) {
	var found string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == manifestName {
			found = filepath.Dir(path)
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("manifest search: %w", err)
	}
	if found == "" {
		return "", fmt.Errorf("%w: no %s under %s", errdefs.ErrNotFound, manifestName, root)
	}

	return found, nil
}

// Whether the module root carries the checksum companion file.
//
// The verify step depends on it; its absence is worth a warning before the
// toolchain is invoked.
func HasChecksum(moduleRoot string) bool {
	info, err := os.Stat(filepath.Join(moduleRoot, checksumName))
	return err == nil && !info.IsDir()
}

package service

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Outcome of removing the extracted source tree.
type CleanupOutcome int

const (
	// CleanupRemoved indicates the extracted tree existed and was removed.
	CleanupRemoved CleanupOutcome = iota

	// CleanupNotFound indicates the expected tree was already missing.
	CleanupNotFound
)

// Returns the human-readable name of the outcome.
func (o CleanupOutcome) String() string {
	switch o {
	case CleanupRemoved:
		return "removed"
	case CleanupNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Path where the archive's source tree is expected after extraction: the
// archive basename with the codec extension stripped, inside the output
// directory.
func (r *run) extractedDir() string {
	base := strings.TrimSuffix(filepath.Base(r.archive), "."+r.codec.Extension())
	return filepath.Join(r.outdir, base)
}

// Removes the extracted source tree from the output directory.
//
// An already-missing tree is reported as [CleanupNotFound] rather than an
// error; the distinction lets the caller log it without failing the run.
func (r *run) cleanup() (CleanupOutcome, error) {
	dir := r.extractedDir()

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CleanupNotFound, nil
	} else if err != nil {
		return CleanupNotFound, err
	}

	if err := os.RemoveAll(dir); err != nil {
		return CleanupRemoved, err
	}

	slog.Debug("extracted source tree removed", "dir", dir)
	return CleanupRemoved, nil
}

package locate

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Filename extension of package descriptor files.
const descriptorExt = ".spec"

// Identifies the source archive chosen for a build, along with the package
// descriptor that anchored the search.
type Ref struct {
	Archive    string // Path to the chosen source archive.
	Descriptor string // Path to the package descriptor file.
}

// Finds the source archive for this build in dir.
//
// The lexicographically latest "*.spec" descriptor names the build. Its
// basename, minus the extension and minus any "package:" prefix used by
// multi-package descriptors, becomes the search stem. The latest file
// matching "*<stem>*.<ext>" in the descriptor's directory is the archive.
//
// Returns [ErrNoDescriptor] when dir holds no descriptor and [ErrNoArchive]
// when no file matches the stem.
func Archive(dir, ext string) (*Ref, error) {
	descriptors, err := filepath.Glob(filepath.Join(dir, "*"+descriptorExt))
	if err != nil {
		return nil, fmt.Errorf("descriptor search: %w", err)
	}
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%w: no *%s in %s", ErrNoDescriptor, descriptorExt, dir)
	}

	slices.Sort(descriptors)
	descriptor := descriptors[len(descriptors)-1]
	stem := descriptorStem(descriptor)
	slog.Debug("descriptor selected", "descriptor", descriptor, "stem", stem)

	pattern := filepath.Join(filepath.Dir(descriptor), "*"+stem+"*."+ext)
	archives, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("archive search: %w", err)
	}
	if len(archives) == 0 {
		return nil, fmt.Errorf("%w: nothing matches %s", ErrNoArchive, pattern)
	}

	slices.Sort(archives)
	archive := archives[len(archives)-1]
	slog.Debug("archive selected", "archive", archive)

	return &Ref{Archive: archive, Descriptor: descriptor}, nil
}

// Derives the archive search stem from a descriptor filename.
//
// The extension is stripped. Multi-package descriptors name sub-packages as
// "main:sub.spec"; only the part after the last colon is kept.
func descriptorStem(descriptor string) string {
	stem := strings.TrimSuffix(filepath.Base(descriptor), descriptorExt)
	if i := strings.LastIndexByte(stem, ':'); i >= 0 {
		stem = stem[i+1:]
	}
	return stem
}

// Checks the version declared in the descriptor against the archive name.
//
// Scans the descriptor for a "Version:" directive and reports whether its
// value appears in the archive's filename. A descriptor without the
// directive is treated as consistent. The check is advisory: a mismatch
// flags a stale or mislabeled archive but must never fail the build.
func CheckVersion(descriptor, archive string) (declared string, consistent bool, err error) {
	f, err := os.Open(descriptor)
	if err != nil {
		return "", false, fmt.Errorf("open descriptor: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, ok := strings.CutPrefix(line, "Version:")
		if !ok {
			continue
		}
		declared = strings.TrimSpace(value)
		break
	}
	if err := scanner.Err(); err != nil {
		return "", false, fmt.Errorf("read descriptor: %w", err)
	}

	if declared == "" {
		return "", true, nil
	}
	return declared, strings.Contains(filepath.Base(archive), declared), nil
}

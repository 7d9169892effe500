package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/sebd71/obs-service-go-modules/internal/buildinfo"
)

const (

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the fallback output directory used when no --outdir is given.
//
//	Linux:   $XDG_CACHE_HOME/go_modules/out or ~/.cache/go_modules/out
//	macOS:   ~/Library/Caches/go_modules/out
func DefaultOutdir() string {
	return filepath.Join(xdg.CacheHome, buildinfo.Name, "out")
}

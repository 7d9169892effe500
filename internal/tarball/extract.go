package tarball

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/containerd/containerd/v2/pkg/archive"

	"github.com/sebd71/obs-service-go-modules/internal/codec"
	"github.com/sebd71/obs-service-go-modules/internal/paths"
)

// Extracts a source archive into dest.
//
// The archive's filename must carry the codec's extension; a mismatch is a
// configuration error caught before any file is touched. The decompressed
// tar stream is applied to dest in full, with ownership dropped so the
// service does not need privileges.
func Extract(ctx context.Context, path, dest string, c codec.Codec) error {
	if !strings.HasSuffix(path, "."+c.Extension()) {
		return fmt.Errorf("%w: %s does not end with .%s", ErrExtension, path, c.Extension())
	}

	if err := os.MkdirAll(dest, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrExtract, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExtract, err)
	}
	defer f.Close()

	r, err := c.NewReader(f)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExtract, err)
	}
	defer r.Close()

	size, err := archive.Apply(ctx, dest, r, archive.WithNoSameOwner())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExtract, path, err)
	}

	slog.Debug("archive extracted", "archive", path, "dest", dest, "bytes", size)
	return nil
}

package tarball

import (
	"archive/tar"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	"github.com/sebd71/obs-service-go-modules/internal/codec"
)

// Canonical top-level directory name inside the vendor artifact.
const VendorRoot = "vendor"

// Packages the vendor directory at src into a compressed archive at dest.
//
// Every entry is written under the canonical "vendor/" root, independent of
// the absolute path depth src was found at. Returns the sha256 digest of
// the artifact as written. On any failure the partial output file is
// removed; either the complete artifact exists or none does.
func Pack(src, dest string, c codec.Codec) (digest.Digest, error) {
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPack, err)
	}

	digester := digest.SHA256.Digester()

	dgst, err := writeArchive(io.MultiWriter(f, digester.Hash()), src, c, digester)
	if err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("%w: %s: %w", ErrPack, dest, err)
	}

	slog.Debug("vendor tree packaged", "src", src, "artifact", dest, "digest", dgst)
	return dgst, nil
}

// Writes the compressed tar stream for src to w and returns the digest of
// the bytes produced.
func writeArchive(w io.Writer, src string, c codec.Codec, digester digest.Digester) (digest.Digest, error) {
	cw, err := c.NewWriter(w)
	if err != nil {
		return "", err
	}

	tw := tar.NewWriter(cw)
	if err := writeDirToTar(tw, src, VendorRoot); err != nil {
		tw.Close()
		cw.Close()
		return "", err
	}

	// Close order matters: the tar trailer must land before the codec
	// flushes its own.
	if err := tw.Close(); err != nil {
		cw.Close()
		return "", err
	}
	if err := cw.Close(); err != nil {
		return "", err
	}

	return digester.Digest(), nil
}

// Writes a directory tree to a tar writer rooted at the given archive prefix.
func writeDirToTar(tw *tar.Writer, hostDir, prefix string) error {
	return filepath.WalkDir(hostDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(hostDir, path)
		if err != nil {
			return err
		}

		archivePath := filepath.ToSlash(filepath.Join(prefix, relPath))
		return writeTarEntry(tw, path, archivePath, d)
	})
}

// Writes a single file or directory entry to a tar writer.
func writeTarEntry(tw *tar.Writer, hostPath, archivePath string, d os.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	link := ""
	if info.Mode()&os.ModeSymlink != 0 {
		if link, err = os.Readlink(hostPath); err != nil {
			return err
		}
	}

	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}
	header.Name = archivePath

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	if info.Mode().IsRegular() {
		f, err := os.Open(hostPath)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	}

	return nil
}

package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Returned by Parse for a compression mode outside the supported set.
var ErrUnsupported = errors.New("unsupported compression mode")

// Identifies the compression algorithm applied to a tar stream.
type Codec uint8

const (
	// None indicates a plain, uncompressed tar stream.
	None Codec = iota

	// Gzip indicates gzip compression, the default mode.
	Gzip

	// Zstd indicates zstd compression at the default level.
	Zstd

	// LZ4 indicates lz4 frame compression.
	LZ4
)

// Parses a compression mode identifier as given on the command line.
//
// The identifier "tar" selects no compression. Unknown identifiers return
// [ErrUnsupported]; callers must reject them before touching any file.
func Parse(name string) (Codec, error) {
	switch name {
	case "tar":
		return None, nil
	case "gz":
		return Gzip, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// Returns the mode identifier accepted by [Parse].
func (c Codec) String() string {
	switch c {
	case None:
		return "tar"
	case Gzip:
		return "gz"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Returns the archive filename extension for this codec, without a leading
// dot (e.g. "tar.gz").
func (c Codec) Extension() string {
	switch c {
	case None:
		return "tar"
	case Gzip:
		return "tar.gz"
	case Zstd:
		return "tar.zst"
	case LZ4:
		return "tar.lz4"
	default:
		return ""
	}
}

// Wraps r with a decompressing reader for this codec.
//
// The returned reader owns only the decompression state; closing it does not
// close r.
func (c Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return zr, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return zr.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupported, uint8(c))
	}
}

// Wraps w with a compressing writer for this codec.
//
// The returned writer must be closed to flush its trailer before w is
// closed. Closing it does not close w.
func (c Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return zw, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupported, uint8(c))
	}
}

// Adapts a plain writer to io.WriteCloser with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

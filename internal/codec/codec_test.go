package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Codec
		wantErr bool
	}{
		{
			name:  "plain tar",
			input: "tar",
			want:  None,
		},
		{
			name:  "gzip",
			input: "gz",
			want:  Gzip,
		},
		{
			name:  "zstd",
			input: "zstd",
			want:  Zstd,
		},
		{
			name:  "lz4",
			input: "lz4",
			want:  LZ4,
		},
		{
			name:    "unknown mode",
			input:   "bz2",
			wantErr: true,
		},
		{
			name:    "full extension is not a mode",
			input:   "tar.gz",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupported) {
					t.Fatalf("err = %v, want ErrUnsupported", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("codec = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		codec Codec
		want  string
	}{
		{None, "tar"},
		{Gzip, "tar.gz"},
		{Zstd, "tar.zst"},
		{LZ4, "tar.lz4"},
	}

	for _, tt := range tests {
		t.Run(tt.codec.String(), func(t *testing.T) {
			if got := tt.codec.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStreamRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("no vendor tree without verification\n"), 128)

	for _, c := range []Codec{None, Gzip, Zstd, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := c.NewWriter(&buf)
			if err != nil {
				t.Fatalf("NewWriter: %v", err)
			}
			if _, err := w.Write(payload); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("close writer: %v", err)
			}

			r, err := c.NewReader(&buf)
			if err != nil {
				t.Fatalf("NewReader: %v", err)
			}
			defer r.Close()

			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(payload))
			}
		})
	}
}

package tarball

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"

	"github.com/sebd71/obs-service-go-modules/internal/codec"
)

// Files written into the vendor fixture, keyed by path relative to the
// vendor directory.
var fixtureFiles = map[string]string{
	"modules.txt":                        "# example.com/dep v1.0.0\n",
	"example.com/dep/LICENSE":            "license text\n",
	"example.com/dep/dep.go":             "package dep\n",
	"example.com/dep/internal/helper.go": "package internal\n",
}

// Creates a vendor directory populated with the fixture files, nested at
// the given depth below the temp root.
func vendorFixture(t *testing.T, depth int) string {
	t.Helper()

	dir := t.TempDir()
	for i := 0; i < depth; i++ {
		dir = filepath.Join(dir, "nested")
	}
	dir = filepath.Join(dir, "vendor")

	for name, content := range fixtureFiles {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// Lists the entry names of a packaged artifact.
func artifactEntries(t *testing.T, path string, c codec.Codec) []string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	defer f.Close()

	r, err := c.NewReader(f)
	if err != nil {
		t.Fatalf("codec reader: %v", err)
	}
	defer r.Close()

	var names []string
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read tar: %v", err)
		}
		names = append(names, header.Name)
	}
	return names
}

func TestPackRewritesRoot(t *testing.T) {
	// Identical trees at different depths must produce identically-rooted
	// archives.
	for _, depth := range []int{0, 4} {
		src := vendorFixture(t, depth)
		artifact := filepath.Join(t.TempDir(), "vendor.tar.gz")

		if _, err := Pack(src, artifact, codec.Gzip); err != nil {
			t.Fatalf("Pack (depth %d): %v", depth, err)
		}

		for _, name := range artifactEntries(t, artifact, codec.Gzip) {
			if name != VendorRoot && !strings.HasPrefix(name, VendorRoot+"/") {
				t.Errorf("depth %d: entry %q outside %s/", depth, name, VendorRoot)
			}
		}
	}
}

func TestPackDigest(t *testing.T) {
	src := vendorFixture(t, 0)
	artifact := filepath.Join(t.TempDir(), "vendor.tar.gz")

	dgst, err := Pack(src, artifact, codec.Gzip)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if want := digest.SHA256.FromBytes(data); dgst != want {
		t.Errorf("digest = %s, want %s", dgst, want)
	}
}

func TestPackExtractRoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{codec.None, codec.Gzip, codec.Zstd, codec.LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			src := vendorFixture(t, 2)
			artifact := filepath.Join(t.TempDir(), "vendor."+c.Extension())

			if _, err := Pack(src, artifact, c); err != nil {
				t.Fatalf("Pack: %v", err)
			}

			dest := t.TempDir()
			if err := Extract(context.Background(), artifact, dest, c); err != nil {
				t.Fatalf("Extract: %v", err)
			}

			for name, want := range fixtureFiles {
				got, err := os.ReadFile(filepath.Join(dest, VendorRoot, name))
				if err != nil {
					t.Fatalf("missing %s after round trip: %v", name, err)
				}
				if string(got) != want {
					t.Errorf("%s: content = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestPackFailureLeavesNoArtifact(t *testing.T) {
	artifact := filepath.Join(t.TempDir(), "vendor.tar.gz")

	_, err := Pack(filepath.Join(t.TempDir(), "absent"), artifact, codec.Gzip)
	if !errors.Is(err, ErrPack) {
		t.Fatalf("err = %v, want ErrPack", err)
	}
	if _, statErr := os.Stat(artifact); !os.IsNotExist(statErr) {
		t.Error("partial artifact left behind")
	}
}

func TestExtractExtensionMismatch(t *testing.T) {
	src := vendorFixture(t, 0)
	artifact := filepath.Join(t.TempDir(), "vendor.tar.gz")
	if _, err := Pack(src, artifact, codec.Gzip); err != nil {
		t.Fatalf("Pack: %v", err)
	}

	err := Extract(context.Background(), artifact, t.TempDir(), codec.Zstd)
	if !errors.Is(err, ErrExtension) {
		t.Fatalf("err = %v, want ErrExtension", err)
	}
}

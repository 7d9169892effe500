package locate

import (
	"path/filepath"
	"testing"

	"github.com/containerd/errdefs"
)

func TestManifest(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		want     string // Relative module root, "" when not found.
		notFound bool
	}{
		{
			name:  "manifest at root",
			files: []string{"go.mod", "go.sum", "main.go"},
			want:  ".",
		},
		{
			name:  "manifest in nested source tree",
			files: []string{"app-1.2.3/go.mod", "app-1.2.3/go.sum", "app-1.2.3/cmd/app/main.go"},
			want:  "app-1.2.3",
		},
		{
			name:  "deeply nested manifest",
			files: []string{"a/b/c/go.mod"},
			want:  "a/b/c",
		},
		{
			name:     "directory named go.mod is ignored",
			files:    []string{"app/go.mod/placeholder.txt"},
			notFound: true,
		},
		{
			name:     "no manifest anywhere",
			files:    []string{"app/main.go", "app/README.md"},
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tt.files...)

			root, err := Manifest(dir)
			if tt.notFound {
				if !errdefs.IsNotFound(err) {
					t.Fatalf("err = %v, want not-found", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := filepath.Join(dir, tt.want); root != want {
				t.Errorf("module root = %q, want %q", root, want)
			}
		})
	}
}

func TestManifestMissingRoot(t *testing.T) {
	_, err := Manifest(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing root directory")
	}
	if errdefs.IsNotFound(err) {
		t.Fatal("walk failure must not be classified as not-found")
	}
}

func TestHasChecksum(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "go.mod")

	if HasChecksum(dir) {
		t.Error("HasChecksum = true without go.sum")
	}

	touch(t, dir, "go.sum")
	if !HasChecksum(dir) {
		t.Error("HasChecksum = false with go.sum present")
	}
}

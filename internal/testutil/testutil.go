// Package testutil provides shared fixtures for levelsnap tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// TempScene writes a scene document into a fresh temporary directory on the
// real filesystem and returns its path. The directory is cleaned up when the
// test completes. Use this for code that needs a real file, like the scene
// watcher.
func TempScene(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write scene fixture: %v", err)
	}
	return path
}

// MemScene builds an in-memory filesystem holding a scene document at the
// given path, plus any extra files such as sprites.
func MemScene(t *testing.T, path, doc string, extra map[string][]byte) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write scene fixture: %v", err)
	}
	for name, data := range extra {
		if err := afero.WriteFile(fs, name, data, 0644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}
	return fs
}

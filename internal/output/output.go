// Package output writes encoded capture images to the filesystem. The
// filesystem is abstracted behind afero so captures can target an in-memory
// filesystem in tests.
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Writer persists encoded images.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a Writer backed by fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write stores data at path, creating parent directories as needed.
func (w *Writer) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(w.fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LayerPath derives the per-layer output path: the layer name is suffixed
// with an underscore before the extension, so "shot.png" for layer "Props"
// becomes "shot_Props.png". A path without an extension gets the suffix
// appended.
func LayerPath(path, layerName string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "_" + layerName + ext
}

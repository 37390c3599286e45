// Package watch re-runs a capture whenever the scene file changes on disk.
// Events are debounced so editor write bursts and atomic save renames
// trigger a single re-capture.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/levelsnap/levelsnap/internal/logging"
)

// Run watches path until ctx is canceled, invoking onChange after each
// debounced burst of writes to it. A failing onChange is logged and watching
// continues; the failure is terminal only for that single capture.
//
// The parent directory is watched rather than the file itself, because
// editors that save atomically replace the file and would otherwise drop
// the watch.
func Run(ctx context.Context, path string, debounce time.Duration, log *logging.Logger, onChange func() error) error {
	if log == nil {
		log = logging.Discard()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	log.Info("watching scene", "path", target, "debounce", debounce.String())

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			log.Debug("scene changed, re-capturing")
			if err := onChange(); err != nil {
				log.Error("capture failed", "error", err.Error())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err.Error())
		}
	}
}

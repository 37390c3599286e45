package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/levelsnap/levelsnap/internal/testutil"
)

func TestRunInvokesOnChange(t *testing.T) {
	path := testutil.TempScene(t, "name: a\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Run(ctx, path, 20*time.Millisecond, nil, func() error {
			calls.Add(1)
			return nil
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("name: b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("onChange was not invoked after a write")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRunIgnoresSiblingFiles(t *testing.T) {
	path := testutil.TempScene(t, "name: a\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go func() {
		_ = Run(ctx, path, 20*time.Millisecond, nil, func() error {
			calls.Add(1)
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if calls.Load() != 0 {
		t.Errorf("sibling file write triggered %d captures", calls.Load())
	}
}

func TestRunMissingDirectory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := Run(ctx, "/nonexistent-levelsnap-dir/level.yaml", time.Millisecond, nil, func() error { return nil })
	if err == nil {
		t.Error("watching a missing directory should fail")
	}
}

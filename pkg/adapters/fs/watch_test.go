package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/marsnote/pkg/core"
)

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	repo := NewRepository(Config{})
	events := make(chan core.Event, 8)

	if err := repo.Watch(ctx, dir, events); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	waitForWatcher(t, repo, true)

	// Ignored: does not match the pattern.
	_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	// Reported once despite several writes.
	target := filepath.Join(dir, SaveFileName)
	for i := 0; i < 3; i++ {
		_ = Write([]byte("[]"), target, false)
	}

	select {
	case e := <-events:
		if e.Path != target {
			t.Errorf("expected event for %s, got %s", target, e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case e, ok := <-events:
		if ok {
			t.Errorf("expected a single debounced event, got %s", e)
		}
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	waitForWatcher(t, repo, false)
}

func TestWatch_InvalidPattern(t *testing.T) {
	repo := NewRepository(Config{WatchPattern: "[unclosed"})
	if err := repo.Watch(context.Background(), t.TempDir(), make(chan core.Event)); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestShouldIgnore(t *testing.T) {
	repo := NewRepository(Config{})

	cases := map[string]bool{
		"/x/mn-save.json":     false,
		"/x/mn-settings.json": false,
		"/x/mn-tmp-12345":     true,
		"/x/other.json":       true,
		"/x/startup.acwmn":    true,
	}
	for path, want := range cases {
		if got := repo.shouldIgnore(path); got != want {
			t.Errorf("shouldIgnore(%s) = %v, want %v", path, got, want)
		}
	}
}

func waitForWatcher(t *testing.T, repo *Repository, expected bool) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		state, ok := repo.State().(RepositoryState)
		if ok && state.WatcherActive == expected {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for watcher state = %v", expected)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDebouncer_StopReleasesBlockedDelivery(t *testing.T) {
	out := make(chan core.Event) // nobody reads
	d := newDebouncer(time.Millisecond, out)
	d.add(core.Event{Type: core.EventModify, Path: "mn-save.json"})

	// Let the timer fire and block on out.
	time.Sleep(20 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		d.stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("stop did not release the pending delivery")
	}

	// Closing out after stop must be safe, and later events are dropped.
	close(out)
	d.add(core.Event{Type: core.EventModify, Path: "mn-save.json"})
	d.stop()
}

func TestDebouncer_LastEventWins(t *testing.T) {
	out := make(chan core.Event, 4)
	d := newDebouncer(20*time.Millisecond, out)
	defer d.stop()

	d.add(core.Event{Type: core.EventCreate, Path: "mn-save.json"})
	d.add(core.Event{Type: core.EventModify, Path: "mn-save.json"})

	select {
	case e := <-out:
		if e.Type != core.EventModify {
			t.Errorf("expected the last event, got %s", e)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
	select {
	case e := <-out:
		t.Errorf("expected a single event, got another: %s", e)
	case <-time.After(50 * time.Millisecond):
	}
}

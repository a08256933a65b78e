package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/marsnote/pkg/core"
)

const debounceWindow = 50 * time.Millisecond

// Watch reports changes made by other processes to the application files in
// dir (the save directory or the application-data directory). Only file names
// matching the configured pattern are reported; the repository's own temp
// files are skipped. Bursts on one file collapse into a single event.
//
// Watch returns once the watcher is running. events is closed when ctx is
// cancelled and the loop has drained.
func (r *Repository) Watch(ctx context.Context, dir string, events chan<- core.Event) error {
	if !doublestar.ValidatePattern(r.config.WatchPattern) {
		return fmt.Errorf("invalid watch pattern %q", r.config.WatchPattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, permission(err))
	}

	r.setWatcherActive(true)
	d := newDebouncer(debounceWindow, events)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer d.stop()
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				r.config.Logger.Debug("event received", "path", event.Name, "op", event.Op.String())
				if r.shouldIgnore(event.Name) {
					continue
				}
				eType := mapEventType(event)
				if eType == "" {
					continue
				}
				e := core.Event{Type: eType, Path: event.Name, Timestamp: time.Now().Unix()}
				d.add(e)

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				r.config.Logger.Error("fsnotify error", "error", wErr)
				if r.config.ErrorHandler != nil {
					r.config.ErrorHandler(wErr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "dir", dir, "error", err)
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(err)
		}
	}))

	return nil
}

func (r *Repository) shouldIgnore(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, TempFilePrefix) {
		return true
	}
	ok, err := doublestar.Match(r.config.WatchPattern, name)
	return err != nil || !ok
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// debouncer delays delivery of an event until no newer event for the same
// path has arrived within the window. The last event wins. Deliveries block
// on out until done is closed by stop, after which out may be closed.
type debouncer struct {
	window time.Duration
	out    chan<- core.Event
	done   chan struct{}

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration, out chan<- core.Event) *debouncer {
	return &debouncer{
		window: window,
		out:    out,
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(e core.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if t, ok := d.timers[e.Path]; ok && t.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.window, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timers[e.Path] == t {
			delete(d.timers, e.Path)
		}
		d.mu.Unlock()

		select {
		case d.out <- e:
		case <-d.done:
		}
	})
	d.timers[e.Path] = t
}

// stop drops pending events, releases deliveries blocked on out and waits
// for them to return.
func (d *debouncer) stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.done)
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

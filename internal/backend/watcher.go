package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/zarr-ls/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Event reports that the listing of Dir changed, or a watch error. A change
// is judged on the whole listing, so it names no single entry.
type Event struct {
	Dir string
	Err error
}

// Watcher publishes changes to the entries of a single directory. Events
// that leave the set of visible entries unchanged are dropped.
type Watcher struct {
	dir      string
	throttle *throttle
	last     uint64

	ctx    context.Context
	cancel context.CancelFunc

	fs     *fsnotify.Watcher
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching dir. Bursts of changes are spaced at least
// interval apart.
func NewWatcher(dir string, interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	last, err := fingerprint(dir)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:      dir,
		throttle: newThrottle(interval),
		last:     last,
		ctx:      ctx,
		cancel:   cancel,
		fs:       fsw,
		events:   make(chan Event, 16),
	}
	events.Watch.Start(dir)

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of change events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the underlying fsnotify handle.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()

	emit := func(evt Event) bool {
		if !w.throttle.wait(w.ctx) {
			return false
		}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			pending := w.drain()
			if relevant(ev) {
				pending++
			}
			if pending == 0 || !w.changed() {
				continue
			}
			events.Watch.Change(w.dir, pending)
			if !emit(Event{Dir: w.dir}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Watch.Error(w.dir, err)
			if !emit(Event{Dir: w.dir, Err: err}) {
				return
			}
		}
	}
}

// drain consumes the events already queued and returns how many of them
// could affect the listing.
func (w *Watcher) drain() int {
	n := 0
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return n
			}
			if relevant(ev) {
				n++
			}
		default:
			return n
		}
	}
}

// changed reports whether the listing differs from the last one seen. A
// directory that can no longer be read counts as changed.
func (w *Watcher) changed() bool {
	fp, err := fingerprint(w.dir)
	if err != nil {
		return true
	}
	if fp == w.last {
		return false
	}
	w.last = fp
	return true
}

// relevant drops events that cannot change a listing: permission changes
// and hidden entries.
func relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	return !strings.HasPrefix(filepath.Base(ev.Name), ".")
}

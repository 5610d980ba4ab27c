// Package watch adapts a directory-scoped fsnotify subscription into a stream
// of events about one tracked file.
package watch

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

type Kind int

const (
	// Changed means the tracked file was created or written.
	Changed Kind = iota
	// Removed means the tracked file was removed or renamed away.
	Removed
	// Failed carries a *RuntimeError. No events follow it.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Event struct {
	Kind Kind
	Path string
	Err  error
}

// SetupError means the subscription could not be established.
type SetupError struct {
	Path string
	Err  error
}

func (e *SetupError) Error() string { return fmt.Sprintf("watch %s: %v", e.Path, e.Err) }
func (e *SetupError) Unwrap() error { return e.Err }

// RuntimeError is an I/O failure reported by the watch subsystem mid-session.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string { return fmt.Sprintf("watch failed: %v", e.Err) }
func (e *RuntimeError) Unwrap() error { return e.Err }

// Watcher forwards events for a single canonical path. The watch is placed
// on the parent directory so editors that save by rename are still seen.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	events  chan Event
	done    chan struct{}
	stopped atomic.Bool
}

// Canonical resolves path to an absolute, symlink-free form.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// New canonicalizes path and subscribes to its parent directory.
func New(path string) (*Watcher, error) {
	canon, err := Canonical(path)
	if err != nil {
		return nil, &SetupError{Path: path, Err: err}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &SetupError{Path: canon, Err: err}
	}
	if err := fsw.Add(filepath.Dir(canon)); err != nil {
		fsw.Close()
		return nil, &SetupError{Path: canon, Err: err}
	}

	w := &Watcher{
		path:   canon,
		fsw:    fsw,
		events: make(chan Event),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the canonical tracked path.
func (w *Watcher) Path() string { return w.path }

// Events returns the event stream. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan Event { return w.events }

// Close signals the forwarding goroutine to stop. It does not wait for it.
func (w *Watcher) Close() error {
	if w.stopped.Swap(true) {
		return nil
	}
	close(w.done)
	return w.fsw.Close()
}

// run is the single background goroutine. It queues matching events without
// bound so a slow consumer never stalls the fsnotify reader.
func (w *Watcher) run() {
	defer close(w.events)

	var queue []Event
	for !w.stopped.Load() {
		var out chan<- Event
		var next Event
		if len(queue) > 0 {
			out = w.events
			next = queue[0]
		}

		select {
		case <-w.done:
			return
		case out <- next:
			queue = queue[1:]
		case ev, ok := <-w.fsw.Events:
			if !ok {
				w.flush(queue)
				return
			}
			if e, ok := w.translate(ev); ok {
				queue = append(queue, e)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				w.flush(queue)
				return
			}
			w.flush(append(queue, Event{Kind: Failed, Path: w.path, Err: &RuntimeError{Err: err}}))
			return
		}
	}
}

func (w *Watcher) flush(queue []Event) {
	for _, e := range queue {
		select {
		case w.events <- e:
		case <-w.done:
			return
		}
	}
}

// translate maps a raw notification onto the tracked file. Names that cannot
// be canonicalized (the file is mid-replace) are skipped.
func (w *Watcher) translate(ev fsnotify.Event) (Event, bool) {
	switch {
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		canon, err := Canonical(ev.Name)
		if err != nil || canon != w.path {
			return Event{}, false
		}
		return Event{Kind: Changed, Path: canon}, true
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		if filepath.Clean(ev.Name) != w.path {
			return Event{}, false
		}
		return Event{Kind: Removed, Path: w.path}, true
	}
	return Event{}, false
}

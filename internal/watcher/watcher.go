// Package watcher notifies listeners when watched word lists change on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

type ChangeListener interface {
	OnChanged(path string)
}

// ChangeListenerFunc adapts a function to ChangeListener.
type ChangeListenerFunc func(path string)

func (f ChangeListenerFunc) OnChanged(path string) { f(path) }

// Watcher fires listeners on writes to, or re-creation of, watched files.
// Parent directories are watched so that editors replacing a file by rename
// are noticed as well.
type Watcher struct {
	w    *fsnotify.Watcher
	m    map[string][]ChangeListener
	dirs map[string]bool
	done chan struct{}

	started bool

	mut sync.Mutex
}

func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate file watcher: %w", err)
	}

	return &Watcher{
		w:    fsw,
		m:    make(map[string][]ChangeListener),
		dirs: make(map[string]bool),
		done: make(chan struct{}),
	}, nil
}

// Start watches for events in a background goroutine until Stop is called.
func (w *Watcher) Start() {
	log.Debug("Starting watching word lists for changes")

	w.mut.Lock()
	w.started = true
	w.mut.Unlock()

	go w.startWatching()
}

// Stop closes the underlying watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	log.Debug("Stopping watching word lists for changes")

	err := w.w.Close()

	w.mut.Lock()
	started := w.started
	w.mut.Unlock()

	if started {
		<-w.done
	}

	return err
}

// Add registers cl for changes of the file at path.
func (w *Watcher) Add(path string, cl ChangeListener) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mut.Lock()
	defer w.mut.Unlock()

	dir := filepath.Dir(path)
	if !w.dirs[dir] {
		if err := w.w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}

	w.m[path] = append(w.m[path], cl)

	return nil
}

func (w *Watcher) startWatching() {
	defer close(w.done)

	for {
		select {
		case evt, ok := <-w.w.Events:
			if !ok {
				log.Debug("Word list watcher closed")

				return
			}

			if evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) {
				w.fireOnChange(evt)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				log.Debug("Word list watcher error channel closed")

				return
			}

			log.Warnf("Word list watcher error received: %v", err)
		}
	}
}

func (w *Watcher) fireOnChange(evt fsnotify.Event) {
	name, err := filepath.Abs(evt.Name)
	if err != nil {
		return
	}

	w.mut.Lock()
	listeners := append([]ChangeListener(nil), w.m[name]...)
	w.mut.Unlock()

	for _, listener := range listeners {
		listener.OnChanged(name)
	}
}

// Package watcher signals external changes to the config file so callers can
// reload through the manager façade.
package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"hyprbind/logging"
)

// Watcher watches a config file for external modification. Atomic saves
// replace the file via rename, so the parent directory is watched and events
// are filtered down to the target file name.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filtered chan struct{}
	done     chan struct{}
	fileName string
}

// New creates a watcher for configPath
func New(configPath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watching config directory %s: %w", dir, err)
	}

	logging.Logger.Debug("Watching config file", "path", configPath)

	w := &Watcher{
		watcher:  fsWatcher,
		filtered: make(chan struct{}, 1),
		done:     make(chan struct{}),
		fileName: filepath.Base(configPath),
	}

	go w.filterEvents()
	return w, nil
}

// Events returns a channel that receives one signal per batch of changes to
// the watched file
func (w *Watcher) Events() <-chan struct{} {
	return w.filtered
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// filterEvents drops events for unrelated files and coalesces bursts into a
// single pending signal
func (w *Watcher) filterEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.fileName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logging.Logger.Debug("Config file changed", "event", event.Op.String())
			select {
			case w.filtered <- struct{}{}:
			default:
				// A signal is already pending
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("Watcher error", "error", err)
		}
	}
}

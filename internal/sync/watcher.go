package sync

import (
	"fmt"
	"path/filepath"
	gosync "sync"
	"time"

	"github.com/MikeBiancalana/navkit/internal/logger"
	"github.com/MikeBiancalana/navkit/internal/menu"
	"github.com/MikeBiancalana/navkit/internal/perf"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors emit on save
const DefaultDebounce = 100 * time.Millisecond

// slowReload is the reload duration above which a warning is logged
const slowReload = 50 * time.Millisecond

// MenuChangeEvent carries the reloaded menu, or the error that prevented it
type MenuChangeEvent struct {
	FilePath string
	Document *menu.Document
	Err      error
}

// Watcher watches a menu file and reloads it when it changes
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	changes  chan MenuChangeEvent
	done     chan struct{}
	wg       gosync.WaitGroup
	stopOnce gosync.Once
	reloads  *perf.Recorder
}

// NewWatcher creates a watcher for the menu file at path
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		changes:  make(chan MenuChangeEvent, 10),
		done:     make(chan struct{}),
		reloads:  perf.NewRecorder("sync.reload", slowReload),
	}, nil
}

// SetDebounce overrides the debounce delay. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Path returns the watched menu file
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. The parent directory is watched rather than the
// file, so atomic replace-by-rename saves are still seen.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	w.wg.Add(1)
	go w.watch()
	logger.Debug("sync: watching menu file", "path", w.path)
	return nil
}

// Stop stops the watcher and closes the changes channel. Safe to call twice.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		w.watcher.Close()
		close(w.changes)
		w.reloads.LogStats(logger.GetLogger())
	})
}

// Stats reports how many reloads ran and how long they took
func (w *Watcher) Stats() perf.Stats {
	return w.reloads.Stats()
}

// Changes returns the channel for reload notifications
func (w *Watcher) Changes() <-chan MenuChangeEvent {
	return w.changes
}

// watch is the main event loop
func (w *Watcher) watch() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue watching
			logger.Warn("sync: watcher error", "error", err)
		}
	}
}

// reload parses the menu file and publishes the result
func (w *Watcher) reload() {
	timer := perf.NewTimer("sync.reload", logger.GetLogger(), slowReload)
	doc, err := menu.Load(w.path)
	w.reloads.Record(timer.Stop(), err)
	if err != nil {
		logger.Warn("sync: menu reload failed", "path", w.path, "error", err)
	}

	event := MenuChangeEvent{FilePath: w.path, Document: doc, Err: err}
	select {
	case w.changes <- event:
	case <-w.done:
	}
}

package theme

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a change callback fires.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a theme source directory tree and calls back after changes.
type Watcher struct {
	mu     sync.Mutex
	logger *slog.Logger

	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration

	onChangeCallback func()

	done    chan struct{}
	stopped chan struct{}
	running bool
}

// NewWatcher creates a watcher for dir. A debounce of 0 uses DefaultDebounce.
func NewWatcher(dir string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		logger:   logger,
		watcher:  fw,
		dir:      dir,
		debounce: debounce,
	}, nil
}

// SetChangeCallback sets the function run after a burst of changes settles.
// Callbacks run on the watcher goroutine and never overlap.
func (w *Watcher) SetChangeCallback(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChangeCallback = callback
}

// Start registers every directory under the theme dir and begins watching.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	if err := w.addTree(w.dir); err != nil {
		return err
	}

	w.running = true
	w.done = make(chan struct{})
	w.stopped = make(chan struct{})
	go w.watch(ctx)

	w.logger.Debug("theme watcher started", "path", w.dir, "debounce", w.debounce)
	return nil
}

// addTree adds root and all directories below it.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.watcher.Add(path)
	})
}

// watch is the main event loop.
func (w *Watcher) watch(ctx context.Context) {
	defer close(w.stopped)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}

			// New subdirectories need their own watch.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			w.logger.Debug("theme file changed", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.mu.Lock()
			callback := w.onChangeCallback
			w.mu.Unlock()
			if callback != nil {
				callback()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-ctx.Done():
			return

		case <-w.done:
			return
		}
	}
}

// Stop stops watching and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.watcher.Close()
	}
	w.running = false
	close(w.done)
	stopped := w.stopped
	w.mu.Unlock()

	<-stopped
	w.logger.Debug("theme watcher stopped", "path", w.dir)
	return w.watcher.Close()
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

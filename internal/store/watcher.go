package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a Store when its JSON data file is changed on disk, for
// example when someone edits users.json by hand while the server runs.
type Watcher struct {
	store    *Store
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger
}

// NewWatcher watches the directory holding path; atomic renames replace the
// file itself, so watching the file would lose track of it.
func NewWatcher(s *Store, path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data file: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		store:    s,
		path:     abs,
		watcher:  fw,
		debounce: defaultDebounce,
		logger:   logger,
	}, nil
}

// SetDebounce changes how long the watcher waits for writes to settle.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks until ctx is done, reloading the store after each burst of
// changes to the data file.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	w.logger.Debug("Watching data file", zap.String("path", w.path))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			_ = w.store.Reload(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}

// Package watcher reloads inputs when they change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events an editor or exporter
// produces for a single save.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher watches files for changes and triggers callbacks.
// Parent directories are watched so that files replaced by rename are
// still seen.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	log       *zap.Logger
	debounce  time.Duration
	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
	dirs      map[string]int
}

// NewFileWatcher creates a new file watcher. A nil logger discards output.
func NewFileWatcher(debounce time.Duration, log *zap.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &FileWatcher{
		watcher:   w,
		log:       log,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
		dirs:      make(map[string]int),
	}, nil
}

// Watch registers callback for each file. callback receives the absolute
// path of the changed file.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		if _, seen := fw.callbacks[absPath]; !seen {
			fw.dirs[dir]++
		}
		fw.callbacks[absPath] = callback
		fw.log.Debug("watching file", zap.String("path", absPath))
	}

	return nil
}

// Run dispatches change events until ctx is done or the watcher is closed.
func (fw *FileWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			// Only trigger on write, create or rename-into-place events
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.handleFileChange(filepath.Clean(event.Name))
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// handleFileChange handles a file change event with debouncing.
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.log.Debug("file changed", zap.String("path", filePath))
		callback(filePath)
	})
}

// Close stops the watcher and pending callbacks.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, t := range fw.timers {
		t.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}

package store

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches the preference file and reloads the theme store when
// another process changes it.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	store    *ThemeStore
	filePath string
	logger   *slog.Logger
	done     chan struct{}
	mu       sync.Mutex
	running  bool
	stopped  bool
}

// NewFileWatcher creates a new file watcher for the store's preference file.
func NewFileWatcher(store *ThemeStore, filePath string, logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		watcher:  watcher,
		store:    store,
		filePath: filePath,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the file for changes.
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.running || fw.stopped {
		return nil
	}

	// Watch the directory: the file is replaced by rename on every write.
	// It may not exist yet if nothing has been persisted.
	dir := filepath.Dir(fw.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	if err := fw.watcher.Add(dir); err != nil {
		return err
	}

	fw.running = true
	go fw.watch()
	return nil
}

// watch is the main watch loop.
func (fw *FileWatcher) watch() {
	filename := filepath.Base(fw.filePath)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				changed, err := fw.store.Reload()
				if err != nil {
					fw.logger.Warn("failed to reload theme", "file", fw.filePath, "error", err)
					continue
				}
				if changed {
					fw.logger.Debug("theme changed on disk", "file", fw.filePath, "theme", fw.store.Current())
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", "error", err)

		case <-fw.done:
			return
		}
	}
}

// Stop stops the file watcher. It is safe to call more than once.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.stopped {
		return nil
	}
	fw.stopped = true
	fw.running = false
	close(fw.done)
	return fw.watcher.Close()
}

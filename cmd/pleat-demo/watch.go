package main

import (
	"log/slog"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor write bursts into a single reload.
const watchDebounce = 250 * time.Millisecond

// watchEntries invokes onChange on the UI thread whenever the entries file
// changes on disk. The returned stop function closes the watcher.
func watchEntries(path string, logger *slog.Logger, onChange func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory rather than the file: editors that save by
	// replacing the file would silently drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		var last time.Time
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				now := time.Now()
				if now.Sub(last) < watchDebounce {
					continue
				}
				last = now
				logger.Debug("entries file changed", slog.String("path", event.Name))
				fyne.Do(onChange)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("entries watcher error", slog.Any("error", err))
			}
		}
	}()

	return func() {
		close(done)
		_ = watcher.Close()
	}, nil
}

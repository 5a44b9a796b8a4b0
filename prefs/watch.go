package prefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reports the store contents each time another writer changes its file
// on disk, for example when another window toggles the theme. Writes made
// through store itself are not reported. The channel is closed when
// ctx is done. Values are delivered through the channel so the frame loop can
// apply them on its own goroutine.
func Watch(ctx context.Context, store *FileStore, log *zap.Logger) (<-chan map[string]string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// Writes replace the file by rename, so watch the directory.
	dir := filepath.Dir(store.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := make(chan map[string]string, 1)
	name := filepath.Base(store.Path())

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				values, changed, err := store.reload()
				if err != nil {
					log.Warn("preferences reload failed", zap.Error(err))
					continue
				}
				if !changed {
					log.Debug("preferences unchanged on disk", zap.String("path", ev.Name))
					continue
				}
				log.Debug("preferences changed on disk", zap.String("path", ev.Name))

				// keep only the latest snapshot if the reader is behind
				select {
				case <-out:
				default:
				}
				select {
				case out <- values:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("preferences watcher error", zap.Error(err))
			}
		}
	}()

	return out, nil
}

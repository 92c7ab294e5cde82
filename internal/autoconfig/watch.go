package autoconfig

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/anshiakhileshmj/browserauto/internal/logging"
)

// Watch reloads the record whenever the persisted file changes and invokes fn
// with the fresh contents. It blocks until ctx is done. The parent directory
// is watched rather than the file itself so atomic rewrites (remove+rename)
// keep being observed.
func (c *Configurator) Watch(ctx context.Context, fn func(Record)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != c.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			record, err := c.Load()
			if err != nil {
				logging.Warnf("configuration reload failed: %v", err)
				continue
			}
			fn(record)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warnf("configuration watch error: %v", err)
		}
	}
}

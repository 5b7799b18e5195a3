// pattern: Imperative Shell

package logging

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path whenever it changes and applies the new
// verbosity and scope filter to every refilterable channel the manager
// fans out to. It watches the parent directory (the file may not exist
// yet) with a polling safeguard for filesystems that swallow events, and
// returns when ctx is cancelled.
func Watch(ctx context.Context, path string, m *Manager) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("logging: failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("logging: failed to watch %s: %w", filepath.Dir(path), err)
	}

	apply := func() {
		cfg, err := LoadConfig(path)
		if err != nil {
			return // keep the previous filter on a bad reload
		}
		m.SetFilter(cfg.Filter())
	}
	apply()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				apply()
			}

		case <-ticker.C:
			apply()

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Transient watcher errors are not fatal; the ticker covers us.
		}
	}
}

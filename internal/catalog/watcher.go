package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reloads a file-backed catalog as soon as the file changes instead
// of waiting for the next request to notice a new fingerprint.
//
// It watches the parent directory so editors that replace the file by rename
// are noticed as well.
type Watcher struct {
	path     string
	loader   *Loader
	logger   logging.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher starts watching the directory of path. Events are only
// delivered once Run is called.
func NewWatcher(path string, loader *Loader, logger logging.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		loader:   loader,
		logger:   logger.With("module", "catalog_watcher", "path", abs),
		watcher:  fw,
		debounce: defaultDebounce,
	}, nil
}

// Run processes file events until ctx is cancelled, then releases the watch.
// Bursts of events are coalesced into a single reload.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			fire = time.After(w.debounce)

		case <-fire:
			fire = nil
			w.loader.Invalidate()
			if _, err := w.loader.Load(ctx); err != nil {
				w.logger.Warn(ctx, "catalog reload after change failed", "error", err.Error())
			} else {
				w.logger.Info(ctx, "catalog reloaded after change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(ctx, "watch error", "error", err.Error())
		}
	}
}

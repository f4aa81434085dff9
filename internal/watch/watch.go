package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher calls a reload function after files below its roots change.
// Bursts of events are collapsed into a single reload once the tree has been
// quiet for the debounce interval.
type Watcher struct {
	roots    []string
	debounce time.Duration
	reload   func() error
	logger   *zap.Logger
	ready    chan struct{}
}

func New(reload func() error, logger *zap.Logger, debounce time.Duration, roots ...string) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		roots:    roots,
		debounce: debounce,
		reload:   reload,
		logger:   logger,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once every root is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, root := range w.roots {
		w.addTree(watcher, root)
	}
	close(w.ready)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug("change detected",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()),
			)

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				w.addTree(watcher, event.Name)
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				if err := w.reload(); err != nil {
					w.logger.Error("reload failed, keeping previous content", zap.Error(err))
					return
				}
				w.logger.Info("site reloaded")
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) addTree(watcher *fsnotify.Watcher, root string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				w.logger.Warn("failed to watch directory", zap.String("path", path), zap.Error(err))
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		w.logger.Warn("failed to walk directory", zap.String("path", root), zap.Error(err))
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

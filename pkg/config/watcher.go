/*
File: watcher.go
Description: Configuration hot reload for netglass. Watches the device/catalog
file with fsnotify and publishes each successfully validated reload as a brand
new immutable snapshot. In-flight construction requests keep the snapshot they
started with; a reload that fails validation is logged and discarded, leaving
the last good snapshot in place.
*/

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// debounceWindow coalesces the burst of filesystem events an editor or
// atomic-rename save produces into a single reload.
const debounceWindow = 200 * time.Millisecond

// ReloadCallback is invoked after a new snapshot has been published
type ReloadCallback func(old, new *Config)

// Watcher keeps an always-valid Config snapshot in sync with the file on
// disk. Snapshot is safe to call from any goroutine.
type Watcher struct {
	path    string
	log     logrus.FieldLogger
	watcher *fsnotify.Watcher
	current atomic.Pointer[Config]

	mu        sync.Mutex
	callbacks []ReloadCallback
}

// NewWatcher loads the initial snapshot and prepares a filesystem watcher on
// the config file's directory. Watching the directory rather than the file
// survives atomic-rename saves. Call Start to begin reloading.
func NewWatcher(path string, log logrus.FieldLogger) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	w := &Watcher{
		path:    path,
		log:     log,
		watcher: fsw,
	}
	w.current.Store(cfg)
	return w, nil
}

// Snapshot returns the current immutable configuration
func (w *Watcher) Snapshot() *Config {
	return w.current.Load()
}

// OnReload registers a callback invoked after each published snapshot swap
func (w *Watcher) OnReload(cb ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Start watches for changes until the context is cancelled. It blocks, so
// callers run it in its own goroutine.
func (w *Watcher) Start(ctx context.Context) {
	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Error("Config watcher error")
		}
	}
}

// Close releases the filesystem watcher
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// reload loads and validates the file, publishing the result only on success
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.WithError(err).WithField("path", w.path).Error("Config reload failed, keeping previous snapshot")
		return
	}

	old := w.current.Swap(cfg)
	w.log.WithFields(logrus.Fields{
		"path":      w.path,
		"devices":   len(cfg.Devices),
		"platforms": len(cfg.Commands),
	}).Info("Configuration reloaded")

	w.mu.Lock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, cb := range callbacks {
		cb(old, cfg)
	}
}

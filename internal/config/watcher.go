package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadHandler is called with the freshly parsed config after the file
// changes on disk. Parse errors go to the error handler instead; the
// previous config stays in effect.
type ReloadHandler func(cfg *Config)

// ErrorHandler is called for watch or parse errors.
type ErrorHandler func(err error)

// Watcher reloads a config file when it changes. Editors often replace
// files by rename, so the parent directory is watched and events are
// filtered to the target name. Rapid event bursts are debounced.
type Watcher struct {
	path     string
	debounce time.Duration

	onReload ReloadHandler
	onError  ErrorHandler

	fsw    *fsnotify.Watcher
	done   chan struct{}
	wg     sync.WaitGroup
	closeO sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long to wait after the last event before
// reloading. Default is 100ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the error callback. Without one, errors are
// dropped.
func WithErrorHandler(h ErrorHandler) WatcherOption {
	return func(w *Watcher) { w.onError = h }
}

// Watch starts watching a config file and calls onReload after each
// change. Close stops the watcher.
func Watch(path string, onReload ReloadHandler, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: 100 * time.Millisecond,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.fsw, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		w.fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeO.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.fail(err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.fail(err)
		return
	}
	w.onReload(cfg)
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

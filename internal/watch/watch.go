// Package watch reports changes to a single table document on disk.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// OnChange is called once per settled burst of changes to the document.
type OnChange func(path string)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger attaches a logger for watch events.
func WithLogger(l *logger.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// Watcher observes the directory containing a document so that atomic
// rename-on-save is seen as a change to the document itself.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange OnChange
	logger   *logger.Logger

	mu      sync.Mutex
	fs      *fsnotify.Watcher
	stopped chan struct{}
}

// New creates a watcher for path. Call Start to begin watching.
func New(path string, onChange OnChange, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the watched document path.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching in the background until ctx is cancelled or Close is
// called.
func (w *Watcher) Start(ctx context.Context) error {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return tkerrors.NewWatchError(w.path, err)
	}

	dir := filepath.Dir(w.path)
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return tkerrors.NewWatchError(w.path, err)
	}
	w.logger.WithFields(map[string]any{"path": w.path, "dir": dir}).Debug("watching document")

	w.mu.Lock()
	w.fs = fs
	w.stopped = make(chan struct{})
	w.mu.Unlock()

	go w.loop(ctx, fs, w.stopped)
	return nil
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	fs, stopped := w.fs, w.stopped
	w.fs = nil
	w.mu.Unlock()

	if fs == nil {
		return nil
	}
	err := fs.Close()
	<-stopped
	return err
}

func (w *Watcher) loop(ctx context.Context, fs *fsnotify.Watcher, stopped chan struct{}) {
	defer close(stopped)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	const mask = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-ctx.Done():
			_ = fs.Close()
			return

		case evt, ok := <-fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != w.path || evt.Op&mask == 0 {
				continue
			}
			w.logger.With("event", evt.String()).Debug("document event")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if w.onChange != nil {
				w.onChange(w.path)
			}

		case err, ok := <-fs.Errors:
			if !ok {
				return
			}
			w.logger.Error(tkerrors.NewWatchError(w.path, err), "watch error")
		}
	}
}

// Package watch re-runs a callback when the configuration file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// DefaultDebounce is the quiet period after the last change before the
// callback fires.
const DefaultDebounce = 300 * time.Millisecond

// ReloadFunc is invoked after a debounced change. runID identifies the run
// in logs.
type ReloadFunc func(ctx context.Context, runID string)

// Watcher monitors a configuration file and the .env files next to it.
type Watcher struct {
	configPath string
	names      []string
	onChange   ReloadFunc
	debounce   time.Duration

	watcher    *fsnotify.Watcher
	reloadChan chan struct{}
	stopChan   chan struct{}
	stopOnce   sync.Once
	runMu      sync.Mutex
	stopped    bool // guarded by runMu
	wg         sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher for configPath. Call Start to begin watching.
func New(configPath string, onChange ReloadFunc, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		configPath: absPath,
		names:      []string{filepath.Base(absPath), ".env", ".env.local"},
		onChange:   onChange,
		debounce:   DefaultDebounce,
		watcher:    fw,
		reloadChan: make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start watches the directory holding the config file, which survives
// editors that replace the file on save.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.configPath)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}

	slog.Info("Watching configuration", logfields.ConfigPath(w.configPath))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends watching and waits for the loops and any running callback to
// exit. No callback starts after Stop returns. It is safe to call more than
// once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()

		w.runMu.Lock()
		w.stopped = true
		w.runMu.Unlock()
	})
	return err
}

// Wait blocks until the watcher stops or ctx is done.
func (w *Watcher) Wait(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-w.stopChan:
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !slices.Contains(w.names, filepath.Base(event.Name)) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Remove) && filepath.Base(event.Name) == filepath.Base(w.configPath) {
				slog.Warn("Config file removed", logfields.Path(event.Name))
				continue
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Config change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			w.trigger()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	var timer *time.Timer
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return
		case <-w.stopChan:
			stopTimer()
			return
		case <-w.reloadChan:
			stopTimer()
			timer = time.AfterFunc(w.debounce, func() { w.run(ctx) })
		}
	}
}

// trigger requests a debounced reload; a pending request absorbs new ones.
func (w *Watcher) trigger() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}

func (w *Watcher) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	w.runMu.Lock()
	defer w.runMu.Unlock()
	if w.stopped {
		return
	}

	runID := uuid.NewString()
	slog.Info("Configuration changed, revalidating", logfields.RunID(runID), logfields.ConfigPath(w.configPath))
	w.onChange(ctx, runID)
}

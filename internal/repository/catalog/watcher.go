package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events an editor or an atomic
// rename produces for a single save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a Snapshot when one of its catalog files changes.
// Directories are watched rather than files so replacement by rename is seen.
type Watcher struct {
	fw       *fsnotify.Watcher
	snap     *Snapshot
	files    map[string]bool
	debounce time.Duration
	log      *zap.Logger

	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher watches paths and reloads snap on change.
func NewWatcher(snap *Snapshot, paths []string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fw:       fw,
		snap:     snap,
		files:    make(map[string]bool, len(paths)),
		debounce: debounce,
		log:      log,
		done:     make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close() //nolint:errcheck,gosec // path error wins
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close() //nolint:errcheck,gosec // add error wins
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run processes events until ctx is canceled or Stop is called.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload(ctx)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("catalog watcher error", zap.Error(err))

		case <-ctx.Done():
			return
		case <-w.done:
			return
		}
	}
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) reload(ctx context.Context) {
	start := time.Now()
	if err := w.snap.Reload(ctx); err != nil {
		w.log.Error("catalog reload failed, keeping previous snapshot", zap.Error(err))
		return
	}
	w.log.Info("catalog reloaded",
		zap.Int("products", w.snap.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
}

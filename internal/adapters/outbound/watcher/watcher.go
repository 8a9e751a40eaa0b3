// Package watcher observes a skill directory tree and reports settled
// change batches, so a watch loop revalidates once per burst of writes
// instead of once per event.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/skillcheck/skillcheck/internal/logger"
)

const (
	settleWindow  = 300 * time.Millisecond
	flushInterval = 100 * time.Millisecond
)

// DirWatcher watches a directory tree recursively. Changed paths are
// collected until no further event arrives for settleWindow, then emitted
// as one batch on C.
type DirWatcher struct {
	root string
	fsw  *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]time.Time
	running bool

	C      chan []string
	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a watcher for the tree rooted at root. Call Start to begin
// receiving batches.
func New(root string) (*DirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &DirWatcher{
		root:    root,
		fsw:     fsw,
		pending: make(map[string]time.Time),
		C:       make(chan []string, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start registers the tree and launches the event loop. Non-blocking.
func (w *DirWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addRecursive(w.root); err != nil {
		return err
	}

	go w.run(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit. Safe
// to call more than once.
func (w *DirWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

func (w *DirWatcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsw.Add(path)
		}
		return nil
	})
}

func (w *DirWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	log := logger.G(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("watch error")
		case <-ticker.C:
			w.flushSettled()
		}
	}
}

// handleEvent records a change and registers directories created after the
// initial walk.
func (w *DirWatcher) handleEvent(event fsnotify.Event) {
	switch {
	case event.Op&fsnotify.Create != 0:
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.addRecursive(event.Name)
		}
	case event.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0:
	default:
		// chmod-only events carry no content change
		return
	}

	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

// flushSettled emits one batch of paths whose last event is older than the
// settle window. If the consumer has not drained the previous batch, the
// paths are requeued for the next tick.
func (w *DirWatcher) flushSettled() {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for path, last := range w.pending {
		if now.Sub(last) >= settleWindow {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	if len(settled) == 0 {
		return
	}

	select {
	case w.C <- settled:
	default:
		w.mu.Lock()
		for _, path := range settled {
			w.pending[path] = now
		}
		w.mu.Unlock()
	}
}

package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/summary-flow/internal/input"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	// settle is how long a new file is left alone so its writer can finish
	settle time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Start handles files already in the input directory, then every supported
// file created there until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(input.SupportedExtensions, ", "))

	// g tracks every dispatched file; slots bounds how many handlers run at once
	var g errgroup.Group
	slots := semaphore.NewWeighted(int64(w.maxConcurrent))

	if err := w.scanExisting(ctx, &g, slots); err != nil {
		w.logger.Warn(ctx, "Failed to scan %s: %v", w.inputDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			_ = g.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				_ = g.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.isSupported(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New file detected: %s", event.Name)
			w.dispatch(ctx, &g, slots, event.Name, w.settle)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				_ = g.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) scanExisting(ctx context.Context, g *errgroup.Group, slots *semaphore.Weighted) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && w.isSupported(e.Name()) {
			files = append(files, filepath.Join(w.inputDir, e.Name()))
		}
	}
	sort.Strings(files)

	if len(files) > 0 {
		w.logger.Info(ctx, "Found %d pending files", len(files))
	}
	for _, f := range files {
		w.dispatch(ctx, g, slots, f, 0)
	}
	return nil
}

// dispatch queues the handler for path unless it is already queued or running.
// It never blocks: the goroutine waits out settle so the writer can finish,
// then for a free slot, and gives up when ctx is cancelled.
func (w *implWatcher) dispatch(ctx context.Context, g *errgroup.Group, slots *semaphore.Weighted, path string, settle time.Duration) {
	w.mu.Lock()
	if _, busy := w.inFlight[path]; busy {
		w.mu.Unlock()
		return
	}
	w.inFlight[path] = struct{}{}
	w.mu.Unlock()

	g.Go(func() error {
		defer func() {
			w.mu.Lock()
			delete(w.inFlight, path)
			w.mu.Unlock()
		}()

		if settle > 0 {
			select {
			case <-time.After(settle):
			case <-ctx.Done():
				return nil
			}
		}
		if err := slots.Acquire(ctx, 1); err != nil {
			w.logger.Debug(ctx, "Skipping %s: %v", path, err)
			return nil
		}
		defer slots.Release(1)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
		return nil
	})
}

// isSupported skips hidden files and extensions the pipeline cannot read
func (w *implWatcher) isSupported(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return input.IsSupportedFile(path)
}

package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
)

var scriptExtensions = []string{".txt", ".md"}

type implWatcher struct {
	inboxDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	sem           *semaphore
	settle        time.Duration
	wg            sync.WaitGroup
}

// Start monitors the inbox for new scripts until ctx is cancelled, then
// waits for in-flight runs to finish.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inboxDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(scriptExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.drain(ctx)
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.drain(ctx)
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isScriptFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-script file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New script detected: %s", event.Name)

			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				w.drain(ctx)
				return ctx.Err()
			}

			// Acquire semaphore slot (blocks if max concurrent reached)
			if err := w.sem.acquire(ctx); err != nil {
				w.drain(ctx)
				return err
			}
			w.wg.Add(1)
			go func(filePath string) {
				defer w.wg.Done()
				defer w.sem.release()

				if err := w.handler(ctx, filePath); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.drain(ctx)
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) drain(ctx context.Context) {
	w.logger.Info(ctx, "Waiting for ongoing runs to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "Inbox watcher stopped")
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isScriptFile checks if the file has a supported narration script extension
func isScriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range scriptExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

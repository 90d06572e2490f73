package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
	"github.com/prompt-insights/docprep-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher streams markdown file paths on filesystem change events.
type Watcher struct{}

// NewWatcher creates a filesystem change watcher.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch registers dirs and their visible subdirectories with an
// fsnotify watcher and emits the path of every markdown file created
// or written under them. Watching stops when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, dirs []string) (<-chan string, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := addTree(fsw, dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	paths := make(chan string)
	go func() {
		defer close(paths)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				handleEvent(ctx, fsw, event, paths)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch: %v", err)
			}
		}
	}()

	return paths, nil
}

// handleEvent filters one fsnotify event down to a markdown write.
// Directories created during the watch are added to the watch set
// instead of being emitted.
func handleEvent(ctx context.Context, fsw *fsnotify.Watcher, event fsnotify.Event, paths chan<- string) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// Gone already; a remove event follows.
		return
	}

	if info.IsDir() {
		if event.Op.Has(fsnotify.Create) {
			if err := addTree(fsw, event.Name); err != nil {
				logger.Warn("watching %s: %v", event.Name, err)
			}
		}
		return
	}

	if !isMarkdown(filepath.Base(event.Name)) {
		return
	}

	select {
	case paths <- event.Name:
	case <-ctx.Done():
	}
}

// addTree registers dir and every visible subdirectory with fsw.
func addTree(fsw *fsnotify.Watcher, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, dir)
		}
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrNotDirectory, dir)
	}

	return filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

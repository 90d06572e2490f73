package services

import (
	"context"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driving"
	"github.com/prompt-insights/docprep-cli/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.Watcher = (*WatchService)(nil)

// WatchService re-runs the fix pipeline over markdown files as they
// change on disk. The pipeline is idempotent, so the write event
// triggered by our own rewrite re-checks the file once, finds nothing
// to change and dies out.
type WatchService struct {
	fixer   *FixService
	watcher driven.FileWatcher
}

// NewWatchService creates a watch service.
func NewWatchService(fixer *FixService, watcher driven.FileWatcher) *WatchService {
	return &WatchService{fixer: fixer, watcher: watcher}
}

// Watch fixes markdown files created or written under dirs until ctx
// is cancelled, emitting one result per processed file. Files whose
// content is already clean yield a result with Changed unset. Failed
// attempts are logged and skipped; a change to the same file will
// trigger another one.
func (s *WatchService) Watch(ctx context.Context, dirs []string, dryRun bool) (<-chan domain.FixResult, error) {
	if len(dirs) == 0 {
		return nil, domain.ErrNoInput
	}

	paths, err := s.watcher.Watch(ctx, dirs)
	if err != nil {
		return nil, err
	}

	results := make(chan domain.FixResult)
	go func() {
		defer close(results)
		for path := range paths {
			result, err := s.fixer.FixFile(ctx, path, dryRun)
			if err != nil {
				logger.Warn("fixing %s: %v", path, err)
				continue
			}
			select {
			case results <- *result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results, nil
}

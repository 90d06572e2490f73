package driving

import (
	"context"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

// Fixer sanitizes markdown files for the MDX renderer.
type Fixer interface {
	// FixFile runs the pass pipeline over a single file. With dryRun
	// set the file is left untouched and the result reports what an
	// apply run would change.
	FixFile(ctx context.Context, path string, dryRun bool) (*domain.FixResult, error)

	// FixDirectories runs the pipeline over every *.md file found
	// recursively under each directory. A missing directory is
	// recorded as an error and the remaining directories continue.
	FixDirectories(ctx context.Context, dirs []string, dryRun bool) (*domain.FixReport, error)
}

// Watcher keeps fixing markdown files as they change on disk.
type Watcher interface {
	// Watch runs the fixer over any markdown file created or written
	// under dirs until ctx is cancelled, emitting one result per
	// processed file. The channel closes when watching stops.
	Watch(ctx context.Context, dirs []string, dryRun bool) (<-chan domain.FixResult, error)
}

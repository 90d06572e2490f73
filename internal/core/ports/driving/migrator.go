package driving

import (
	"context"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

// Migrator relocates markdown files into the documentation tree.
type Migrator interface {
	// Migrate scans sourceDir (non-recursively) for markdown files,
	// classifies each one by filename and copies it, with generated
	// frontmatter, into the right directory under docsRoot.
	// Per-file failures are collected in the report, never returned.
	Migrate(ctx context.Context, sourceDir, docsRoot string) (*domain.MigrationReport, error)
}

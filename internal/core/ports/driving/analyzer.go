package driving

import (
	"context"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

// Analyzer previews a migration without writing anything.
type Analyzer interface {
	// Analyze classifies every markdown file in sourceDir the way the
	// migrator would, reporting destinations relative to docsRoot.
	Analyze(ctx context.Context, sourceDir, docsRoot string) (*domain.AnalysisReport, error)
}

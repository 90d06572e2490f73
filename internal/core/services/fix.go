package services

import (
	"context"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driving"
	"github.com/prompt-insights/docprep-cli/internal/logger"
)

// Ensure FixService implements the interface.
var _ driving.Fixer = (*FixService)(nil)

// FixService runs the MDX rewrite pipeline over markdown files.
type FixService struct {
	docs     driven.DocumentStore
	pipeline driven.FixPipeline
}

// NewFixService creates a fix service.
func NewFixService(docs driven.DocumentStore, pipeline driven.FixPipeline) *FixService {
	return &FixService{docs: docs, pipeline: pipeline}
}

// FixFile runs the pipeline over one file. The file is written back
// only when content changed and dryRun is unset.
func (s *FixService) FixFile(ctx context.Context, path string, dryRun bool) (*domain.FixResult, error) {
	content, err := s.docs.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	fixed, notes := s.pipeline.Apply(path, string(content))

	result := &domain.FixResult{
		Path:    path,
		Changed: fixed != string(content),
		Changes: notes,
	}

	if result.Changed && !dryRun {
		if err := s.docs.Write(ctx, path, []byte(fixed)); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// FixDirectories runs the pipeline over every markdown file found
// recursively under each directory. A directory that cannot be
// scanned is recorded as an error and the remaining directories
// continue; per-file failures likewise never abort the batch.
func (s *FixService) FixDirectories(ctx context.Context, dirs []string, dryRun bool) (*domain.FixReport, error) {
	if len(dirs) == 0 {
		return nil, domain.ErrNoInput
	}

	report := &domain.FixReport{DryRun: dryRun}

	for _, dir := range dirs {
		logger.Section("Fixing " + dir)

		paths, err := s.docs.ListMarkdown(ctx, dir, true)
		if err != nil {
			logger.Warn("scanning %s: %v", dir, err)
			report.Errors = append(report.Errors, domain.FileError{File: dir, Message: err.Error()})
			continue
		}

		for _, path := range paths {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			report.Scanned++

			result, err := s.FixFile(ctx, path, dryRun)
			if err != nil {
				logger.Warn("fixing %s: %v", path, err)
				report.Errors = append(report.Errors, domain.FileError{File: path, Message: err.Error()})
				continue
			}
			if result.Changed {
				report.Fixed = append(report.Fixed, *result)
			}
		}
	}

	return report, nil
}

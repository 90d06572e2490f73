package services

import (
	"context"
	"path/filepath"

	"github.com/prompt-insights/docprep-cli/internal/classifier"
	"github.com/prompt-insights/docprep-cli/internal/core/domain"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driving"
	"github.com/prompt-insights/docprep-cli/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.Analyzer = (*AnalysisService)(nil)

// sampleLimit caps the per-run processing detail in analysis reports.
const sampleLimit = 10

// AnalysisService previews a migration: the same scan and
// classification as the migrator, with no filesystem writes.
type AnalysisService struct {
	docs driven.DocumentStore
	cls  *classifier.Classifier
}

// NewAnalysisService creates an analysis service.
func NewAnalysisService(docs driven.DocumentStore, cls *classifier.Classifier) *AnalysisService {
	return &AnalysisService{docs: docs, cls: cls}
}

// Analyze classifies every markdown file in sourceDir the way the
// migrator would and buckets the outcomes by destination.
func (s *AnalysisService) Analyze(ctx context.Context, sourceDir, docsRoot string) (*domain.AnalysisReport, error) {
	paths, err := s.docs.ListMarkdown(ctx, sourceDir, false)
	if err != nil {
		return nil, err
	}

	report := &domain.AnalysisReport{
		Source:  sourceDir,
		BigTech: make(map[string][]domain.Placement),
		Labels:  make(map[string]string),
	}
	for _, company := range s.cls.Companies() {
		report.Labels[company.Name] = company.Label
	}

	logger.Section("Analysis")
	logger.Info("%d markdown files in %s", len(paths), sourceDir)

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		name := filepath.Base(path)

		if reason, skip := classifier.Skip(name); skip {
			logger.Debug("skipping %s: %s", name, reason)
			if reason == classifier.ReasonKorean {
				report.Korean = append(report.Korean, name)
			} else {
				report.System = append(report.System, name)
			}
			continue
		}

		c := s.cls.Classify(name)

		company := c.Company
		if company == "" {
			company = "other"
		}

		placement := domain.Placement{
			File:    name,
			Company: company,
			Title:   c.Title,
			Date:    c.FrontmatterDate(),
			Target:  filepath.Join(docsRoot, s.cls.Route(c.Company)),
		}

		logger.Debug("classified %s: company=%q title=%q target=%s", name, c.Company, c.Title, placement.Target)

		if s.cls.IsBigTech(c.Company) {
			report.BigTech[c.Company] = append(report.BigTech[c.Company], placement)
		} else {
			report.AIServices = append(report.AIServices, placement)
		}

		if len(report.Samples) < sampleLimit {
			report.Samples = append(report.Samples, placement)
		}
	}

	return report, nil
}

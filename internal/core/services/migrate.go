package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"

	"github.com/prompt-insights/docprep-cli/internal/classifier"
	"github.com/prompt-insights/docprep-cli/internal/core/domain"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driving"
	"github.com/prompt-insights/docprep-cli/internal/logger"
)

// Ensure MigrationService implements the interface.
var _ driving.Migrator = (*MigrationService)(nil)

// MigrationService copies markdown files into the documentation tree,
// prepending generated frontmatter and maintaining the sidebar
// category files.
type MigrationService struct {
	docs driven.DocumentStore
	cls  *classifier.Classifier
}

// NewMigrationService creates a migration service.
func NewMigrationService(docs driven.DocumentStore, cls *classifier.Classifier) *MigrationService {
	return &MigrationService{docs: docs, cls: cls}
}

// Migrate scans sourceDir (non-recursively) for markdown files and
// copies each into its place under docsRoot. Per-file failures are
// recorded in the report; only a failed directory scan aborts the run.
func (s *MigrationService) Migrate(ctx context.Context, sourceDir, docsRoot string) (*domain.MigrationReport, error) {
	paths, err := s.docs.ListMarkdown(ctx, sourceDir, false)
	if err != nil {
		return nil, err
	}

	report := &domain.MigrationReport{
		RunID:     uuid.NewString(),
		Source:    sourceDir,
		DocsRoot:  docsRoot,
		ByCompany: make(map[string]int),
	}

	logger.Section("Migration")
	logger.Info("run %s: %d markdown files in %s", report.RunID, len(paths), sourceDir)

	if err := s.ensureCategoryFiles(ctx, docsRoot); err != nil {
		return nil, err
	}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		name := filepath.Base(path)

		if reason, skip := classifier.Skip(name); skip {
			logger.Debug("skipping %s: %s", name, reason)
			report.Skipped = append(report.Skipped, domain.SkippedFile{File: name, Reason: reason})
			continue
		}

		placement, err := s.migrateFile(ctx, path, docsRoot)
		if err != nil {
			logger.Warn("migrating %s: %v", name, err)
			report.Errors = append(report.Errors, domain.FileError{File: name, Message: err.Error()})
			continue
		}

		report.Migrated = append(report.Migrated, placement)
		report.ByCompany[placement.Company]++
		if !s.cls.IsBigTech(placement.Company) {
			report.AIServices++
		}
	}

	return report, nil
}

// migrateFile classifies one file and writes the decorated copy.
func (s *MigrationService) migrateFile(ctx context.Context, path, docsRoot string) (domain.Placement, error) {
	name := filepath.Base(path)
	c := s.cls.Classify(name)
	targetDir := filepath.Join(docsRoot, s.cls.Route(c.Company))

	logger.Debug("classified %s: company=%q title=%q target=%s", name, c.Company, c.Title, targetDir)

	content, err := s.docs.Read(ctx, path)
	if err != nil {
		return domain.Placement{}, err
	}

	if !hasFrontmatter(content) {
		content = append(buildFrontmatter(c.Title, c.FrontmatterDate()), content...)
	}

	if err := s.docs.EnsureDir(ctx, targetDir); err != nil {
		return domain.Placement{}, err
	}
	if err := s.docs.Write(ctx, filepath.Join(targetDir, name), content); err != nil {
		return domain.Placement{}, err
	}

	company := c.Company
	if company == "" {
		company = "other"
	}

	return domain.Placement{
		File:    name,
		Company: company,
		Title:   c.Title,
		Date:    c.FrontmatterDate(),
		Target:  targetDir,
	}, nil
}

// hasFrontmatter reports whether content already starts with a
// parseable frontmatter block. Files carrying their own block are
// copied verbatim so re-runs over a migrated tree never stack a
// second one.
func hasFrontmatter(content []byte) bool {
	var meta map[string]any
	rest, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	return err == nil && len(rest) != len(content)
}

// buildFrontmatter renders the generated block. The sidebar wants the
// title quoted; the date line is omitted entirely when absent.
func buildFrontmatter(title, date string) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: \"" + title + "\"\n")
	if date != "" {
		b.WriteString("date: " + date + "\n")
	}
	b.WriteString("---\n\n")
	return []byte(b.String())
}

// categorySidecar is the _category_.json document shape the docs site
// reads for sidebar labels and ordering.
type categorySidecar struct {
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// ensureCategoryFiles writes a _category_.json into each big-tech
// company directory that does not have one yet. Existing files are
// never rewritten, so manual sidebar tweaks survive re-runs.
func (s *MigrationService) ensureCategoryFiles(ctx context.Context, docsRoot string) error {
	for _, company := range s.cls.Companies() {
		path := filepath.Join(docsRoot, "big-tech", company.Name, "_category_.json")
		if s.docs.Exists(path) {
			continue
		}

		data, err := json.MarshalIndent(categorySidecar{
			Label:    company.Label,
			Position: company.Position,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding category for %s: %w", company.Name, err)
		}
		data = append(data, '\n')

		if err := s.docs.Write(ctx, path, data); err != nil {
			return err
		}
		logger.Debug("created %s", path)
	}
	return nil
}

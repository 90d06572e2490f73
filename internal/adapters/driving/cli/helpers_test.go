package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

// mockMigrator returns a canned report and records its arguments.
type mockMigrator struct {
	source   string
	docsRoot string
	report   *domain.MigrationReport
	err      error
}

func (m *mockMigrator) Migrate(_ context.Context, sourceDir, docsRoot string) (*domain.MigrationReport, error) {
	m.source = sourceDir
	m.docsRoot = docsRoot
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// mockAnalyzer returns a canned report and records its arguments.
type mockAnalyzer struct {
	source   string
	docsRoot string
	report   *domain.AnalysisReport
	err      error
}

func (m *mockAnalyzer) Analyze(_ context.Context, sourceDir, docsRoot string) (*domain.AnalysisReport, error) {
	m.source = sourceDir
	m.docsRoot = docsRoot
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// mockFixer serves canned per-file results and directory reports.
type mockFixer struct {
	fileResult *domain.FixResult
	fileErr    error
	dirReport  *domain.FixReport
	dirErr     error

	lastFile   string
	lastDirs   []string
	lastDryRun bool
	calls      [][]string
}

func (m *mockFixer) FixFile(_ context.Context, path string, dryRun bool) (*domain.FixResult, error) {
	m.lastFile = path
	m.lastDryRun = dryRun
	if m.fileErr != nil {
		return nil, m.fileErr
	}
	return m.fileResult, nil
}

func (m *mockFixer) FixDirectories(_ context.Context, dirs []string, dryRun bool) (*domain.FixReport, error) {
	m.lastDirs = append([]string(nil), dirs...)
	m.lastDryRun = dryRun
	m.calls = append(m.calls, m.lastDirs)
	if m.dirErr != nil {
		return nil, m.dirErr
	}
	report := *m.dirReport
	report.DryRun = dryRun
	return &report, nil
}

// mockWatchService feeds a prepared result channel.
type mockWatchService struct {
	results chan domain.FixResult
	err     error

	lastDirs []string
}

func (m *mockWatchService) Watch(_ context.Context, dirs []string, _ bool) (<-chan domain.FixResult, error) {
	m.lastDirs = append([]string(nil), dirs...)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// mockConfigStore is an in-memory ConfigStore.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.values[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if val, ok := m.values[key].(string); ok {
		return val
	}
	return ""
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	if val, ok := m.values[key].([]string); ok {
		return val
	}
	return nil
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/docprep-test/config.toml" }

// setupTestServices installs mock services with representative data
// and returns a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	oldMigration := migrationService
	oldAnalysis := analysisService
	oldFix := fixService
	oldWatch := watchService
	oldConfig := configStore

	migrationService = &mockMigrator{report: &domain.MigrationReport{
		RunID:    "run-test",
		Source:   ".",
		DocsRoot: "docs",
		Migrated: []domain.Placement{
			{File: "openai-gpt5_20250101.md", Company: "openai", Title: "Gpt5 (2025.01.01)", Date: "2025-01-01", Target: "docs/big-tech/openai"},
			{File: "cursor-rules_20250301.md", Company: "cursor", Title: "Rules (2025.03.01)", Date: "2025-03-01", Target: "docs/ai-services"},
		},
		Skipped: []domain.SkippedFile{{File: "guide_KR.md", Reason: "Korean translation"}},
		ByCompany: map[string]int{
			"openai": 1,
			"cursor": 1,
		},
		AIServices: 1,
	}}

	analysisService = &mockAnalyzer{report: &domain.AnalysisReport{
		Source: ".",
		BigTech: map[string][]domain.Placement{
			"openai": {
				{File: "openai-gpt5_20250101.md", Company: "openai", Title: "Gpt5 (2025.01.01)", Date: "2025-01-01", Target: "docs/big-tech/openai"},
				{File: "openai-o3_20250201.md", Company: "openai", Title: "O3 (2025.02.01)", Date: "2025-02-01", Target: "docs/big-tech/openai"},
			},
		},
		Labels: map[string]string{"openai": "OpenAI"},
		AIServices: []domain.Placement{
			{File: "cursor-rules_20250301.md", Company: "cursor", Title: "Rules (2025.03.01)", Date: "2025-03-01", Target: "docs/ai-services"},
		},
		Korean: []string{"guide_KR.md"},
		System: []string{"readme.md"},
		Samples: []domain.Placement{
			{File: "openai-gpt5_20250101.md", Company: "openai", Title: "Gpt5 (2025.01.01)", Date: "2025-01-01", Target: "docs/big-tech/openai"},
		},
	}}

	fixService = &mockFixer{
		fileResult: &domain.FixResult{
			Path:    "docs/a.md",
			Changed: true,
			Changes: []string{"fixed 1 URL bracket patterns"},
		},
		dirReport: &domain.FixReport{
			Scanned: 2,
			Fixed: []domain.FixResult{
				{Path: "docs/a.md", Changed: true, Changes: []string{"fixed 1 URL bracket patterns"}},
			},
		},
	}

	watchService = &mockWatchService{results: make(chan domain.FixResult)}
	configStore = &mockConfigStore{}

	return func() {
		migrationService = oldMigration
		analysisService = oldAnalysis
		fixService = oldFix
		watchService = oldWatch
		configStore = oldConfig
	}
}

// resetFlag restores a flag to its default and clears its changed
// state so later tests see pristine flags.
func resetFlag(cmd *cobra.Command, name string) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(name)
	}
	_ = flag.Value.Set(flag.DefValue)
	flag.Changed = false
}

var errBoom = errors.New("boom")

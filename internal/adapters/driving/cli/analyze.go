package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

// breakdownLimit caps the per-company example listings.
const breakdownLimit = 3

// skipListLimit caps the Korean translation listing.
const skipListLimit = 5

var analyzeDocs string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [source-dir]",
	Short: "Preview a migration without copying anything",
	Long: `Classifies every markdown file in a directory the way migrate
would and reports where each file would land, without touching the
filesystem.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDocs, "docs", "docs", "documentation tree root")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	source := "."
	if len(args) > 0 {
		source = args[0]
	}
	docsRoot := resolveDocsRoot(cmd, analyzeDocs)

	ctx := context.Background()

	cmd.Printf("Analyzing markdown files in: %s\n", source)

	report, err := analysisService.Analyze(ctx, source, docsRoot)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", source, err)
	}

	cmd.Printf("Found %d markdown files\n", report.Total())

	renderAnalysisReport(cmd, report)
	return nil
}

func renderAnalysisReport(cmd *cobra.Command, report *domain.AnalysisReport) {
	bigTechTotal := 0
	for _, placements := range report.BigTech {
		bigTechTotal += len(placements)
	}

	cmd.Printf("\n%s\n", header("=== File Categorization ==="))
	cmd.Printf("Korean translations (will be skipped): %d\n", len(report.Korean))
	cmd.Printf("System files (will be skipped): %d\n", len(report.System))
	cmd.Printf("Big Tech files: %d\n", bigTechTotal)
	cmd.Printf("AI Service files: %d\n", len(report.AIServices))

	cmd.Printf("\n%s\n", header("=== Big Tech Breakdown ==="))
	for _, slug := range sortedGroups(report.BigTech) {
		placements := report.BigTech[slug]
		label := report.Labels[slug]
		if label == "" {
			label = slug
		}
		cmd.Printf("%s: %d files\n", label, len(placements))
		for i, placement := range placements {
			if i == breakdownLimit {
				break
			}
			cmd.Printf("  • %s → %s\n", placement.File, placement.Title)
		}
		if len(placements) > breakdownLimit {
			cmd.Printf("  ... and %d more\n", len(placements)-breakdownLimit)
		}
		cmd.Println()
	}

	cmd.Printf("%s\n", header("=== AI Services Sample ==="))
	aiCounts := make(map[string]int)
	for _, placement := range report.AIServices {
		aiCounts[placement.Company]++
	}
	for _, company := range sortedCounts(aiCounts) {
		cmd.Printf("%s: %d files\n", company, aiCounts[company])
	}

	cmd.Printf("\n%s\n", header("=== Sample File Processing ==="))
	for i, placement := range report.Samples {
		cmd.Printf("%d. %s\n", i+1, placement.File)
		cmd.Printf("   → Title: \"%s\"\n", placement.Title)
		cmd.Printf("   → Date: %s\n", placement.Date)
		cmd.Printf("   → Target: %s\n", placement.Target)
		cmd.Printf("   → Company: %s\n", placement.Company)
		cmd.Println()
	}

	cmd.Printf("%s\n", header("=== Files that would be skipped ==="))
	if len(report.Korean) > 0 {
		cmd.Printf("Korean translations (%d):\n", len(report.Korean))
		for i, file := range report.Korean {
			if i == skipListLimit {
				break
			}
			cmd.Printf("  • %s\n", file)
		}
		if len(report.Korean) > skipListLimit {
			cmd.Printf("  ... and %d more\n", len(report.Korean)-skipListLimit)
		}
		cmd.Println()
	}
	if len(report.System) > 0 {
		cmd.Printf("System files (%d):\n", len(report.System))
		for _, file := range report.System {
			cmd.Printf("  • %s\n", file)
		}
		cmd.Println()
	}
}

// sortedGroups returns the keys of a placement group map in sorted
// order.
func sortedGroups(m map[string][]domain.Placement) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

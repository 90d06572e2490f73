package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

// errorLimit caps the error listing in migration reports.
const errorLimit = 5

// sampleFileLimit caps the per-file sample sections in reports.
const sampleFileLimit = 5

var migrateDocs string

var migrateCmd = &cobra.Command{
	Use:   "migrate [source-dir]",
	Short: "Migrate markdown files into the documentation tree",
	Long: `Scans a directory for markdown files, classifies each one by its
filename and copies it, with generated frontmatter, into the right
place under the documentation tree. Files that already carry
frontmatter are copied verbatim, so re-running is safe.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDocs, "docs", "docs", "documentation tree root")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if migrationService == nil {
		return errors.New("migration service not configured")
	}

	source := "."
	if len(args) > 0 {
		source = args[0]
	}
	docsRoot := resolveDocsRoot(cmd, migrateDocs)

	ctx := context.Background()

	cmd.Printf("Scanning for markdown files in: %s\n", source)

	report, err := migrationService.Migrate(ctx, source, docsRoot)
	if err != nil {
		return fmt.Errorf("failed to migrate %s: %w", source, err)
	}

	total := len(report.Migrated) + len(report.Skipped) + len(report.Errors)
	cmd.Printf("Found %d markdown files\n", total)

	renderMigrationReport(cmd, report)
	return nil
}

// resolveDocsRoot returns the docs tree root for this run: the --docs
// flag when given, otherwise the configured migrate.docs value,
// otherwise the flag default.
func resolveDocsRoot(cmd *cobra.Command, flagValue string) string {
	if !cmd.Flags().Changed("docs") && configStore != nil {
		if configured := configStore.GetString("migrate.docs"); configured != "" {
			return configured
		}
	}
	return flagValue
}

func renderMigrationReport(cmd *cobra.Command, report *domain.MigrationReport) {
	cmd.Printf("\n%s\n", header("=== Migration Summary ==="))
	cmd.Printf("Successfully processed: %d\n", len(report.Migrated))
	cmd.Printf("Skipped: %d\n", len(report.Skipped))
	cmd.Printf("Errors: %d\n", len(report.Errors))

	cmd.Printf("\n%s\n", header("=== Files by Company ==="))
	for _, company := range sortedCounts(report.ByCompany) {
		cmd.Printf("%s: %d files\n", company, report.ByCompany[company])
	}

	if len(report.Errors) > 0 {
		cmd.Printf("\n%s\n", header("=== Errors ==="))
		for i, fileErr := range report.Errors {
			if i == errorLimit {
				break
			}
			cmd.Printf("- %s: %s\n", fileErr.File, fileErr.Message)
		}
	}

	cmd.Printf("\n%s\n", header("=== Sample Processed Files ==="))
	for i, placement := range report.Migrated {
		if i == sampleFileLimit {
			break
		}
		cmd.Printf("%d. %s\n", i+1, filepath.Join(placement.Target, placement.File))
		cmd.Printf("   Title: %s\n", placement.Title)
		cmd.Printf("   Date: %s\n", placement.Date)
		cmd.Printf("   Company: %s\n", placement.Company)
		cmd.Println()
	}
}

// sortedCounts returns the keys of a count map in sorted order.
func sortedCounts(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

var (
	fixDryRun bool
	fixFile   string
	fixWatch  bool
)

var fixCmd = &cobra.Command{
	Use:   "fix [directories...]",
	Short: "Fix MDX compilation issues in markdown files",
	Long: `Rewrites markdown constructs that the MDX renderer misreads as
markup: bracketed URLs, unescaped HTML-like tags, JSX-unsafe angle
brackets and stray curly braces. Fenced code blocks are never touched.
Files are rewritten in place; with --dry-run the changes are reported
but nothing is written.`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "show what would be changed without modifying files")
	fixCmd.Flags().StringVar(&fixFile, "file", "", "process a single file instead of directories")
	fixCmd.Flags().BoolVar(&fixWatch, "watch", false, "keep fixing files as they change on disk")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	if fixService == nil {
		return errors.New("fix service not configured")
	}

	if fixFile != "" && fixWatch {
		return fmt.Errorf("%w: --file cannot be combined with --watch", domain.ErrInvalidInput)
	}

	ctx := cmd.Context()

	if fixFile != "" {
		return runFixFile(ctx, cmd, fixFile)
	}

	if len(args) == 0 {
		cmd.Println("Please specify either --file or provide directories to process")
		return cmd.Help()
	}

	if fixDryRun {
		cmd.Println("DRY RUN mode - no files will be modified")
	}

	for _, dir := range args {
		cmd.Printf("\nProcessing directory: %s\n", dir)
		if err := fixDirectory(ctx, cmd, dir); err != nil {
			return err
		}
	}

	if fixWatch {
		return watchDirectories(ctx, cmd, args)
	}

	return nil
}

// runFixFile processes one explicit file. Failures are reported on
// stdout the way batch runs report them; only setup problems become
// command errors.
func runFixFile(ctx context.Context, cmd *cobra.Command, path string) error {
	result, err := fixService.FixFile(ctx, path, fixDryRun)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("File does not exist: %s\n", path)
			return nil
		}
		cmd.Printf("%s Error: %s\n", failMark(), path)
		cmd.Printf("  - %s\n", err)
		return nil
	}

	if fixDryRun {
		cmd.Println("DRY RUN mode - no files will be modified")
		if result.Changed {
			cmd.Printf("Changes needed: %s\n", strings.Join(result.Changes, "; "))
		} else {
			cmd.Println("No changes needed")
		}
		return nil
	}

	if result.Changed {
		cmd.Printf("%s Modified: %s\n", passMark(), path)
		for _, change := range result.Changes {
			cmd.Printf("  - %s\n", change)
		}
	} else {
		cmd.Printf("No changes needed: %s\n", path)
	}
	return nil
}

// fixDirectory runs the pipeline over one directory tree and renders
// its report.
func fixDirectory(ctx context.Context, cmd *cobra.Command, dir string) error {
	report, err := fixService.FixDirectories(ctx, []string{dir}, fixDryRun)
	if err != nil {
		return fmt.Errorf("failed to fix %s: %w", dir, err)
	}

	// An error recorded for the directory itself means the scan never
	// started.
	for _, fileErr := range report.Errors {
		if fileErr.File == dir {
			cmd.Printf("Directory does not exist: %s\n", dir)
			return nil
		}
	}

	if report.Scanned == 0 {
		cmd.Printf("No .md files found in %s\n", dir)
		return nil
	}

	cmd.Printf("Found %d markdown files to process\n", report.Scanned)

	for i := range report.Fixed {
		renderFixResult(cmd, &report.Fixed[i], report.DryRun)
	}

	for _, fileErr := range report.Errors {
		cmd.Printf("%s Error: %s\n", failMark(), fileErr.File)
		cmd.Printf("  - %s\n", fileErr.Message)
	}

	if report.DryRun {
		cmd.Printf("\n%s Dry run complete. Analyzed %d files.\n", passMark(), report.Scanned)
	} else {
		cmd.Printf("\n%s Processing complete. Modified %d files.\n", passMark(), len(report.Fixed))
	}
	return nil
}

// renderFixResult prints one per-file block.
func renderFixResult(cmd *cobra.Command, result *domain.FixResult, dryRun bool) {
	if dryRun {
		cmd.Printf("\nDRY RUN - Would process: %s\n", result.Path)
		cmd.Printf("  Changes: %s\n", strings.Join(result.Changes, "; "))
		return
	}
	cmd.Printf("%s Modified: %s\n", passMark(), result.Path)
	for _, change := range result.Changes {
		cmd.Printf("  - %s\n", change)
	}
}

// watchDirectories keeps fixing files after the initial pass until
// the command's context is cancelled.
func watchDirectories(ctx context.Context, cmd *cobra.Command, dirs []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	results, err := watchService.Watch(ctx, dirs, fixDryRun)
	if err != nil {
		return fmt.Errorf("failed to start watching: %w", err)
	}

	cmd.Printf("\nWatching for changes in: %s (Ctrl+C to stop)\n", strings.Join(dirs, ", "))

	for result := range results {
		if !result.Changed {
			continue
		}
		renderFixResult(cmd, &result, fixDryRun)
	}

	return nil
}

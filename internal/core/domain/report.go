package domain

// Placement describes where one file lands and under what title.
// It is the per-file unit shared by migration and analysis reports.
type Placement struct {
	// File is the base name of the source file.
	File string

	// Company is the company the file was attributed to: a registry
	// slug for big-tech files, the raw derived name for ai-services
	// files, "other" when no company could be derived.
	Company string

	// Title is the derived sidebar title.
	Title string

	// Date is the frontmatter date (YYYY-MM-DD), empty when absent.
	Date string

	// Target is the destination directory relative to the working tree.
	Target string
}

// FileError pairs a filename with the failure that stopped it.
// Per-file failures never abort a batch; they are collected here.
type FileError struct {
	File    string
	Message string
}

// MigrationReport aggregates the outcome of one migration run.
type MigrationReport struct {
	// RunID uniquely identifies the run in logs and reports.
	RunID string

	// Source is the directory that was scanned.
	Source string

	// DocsRoot is the documentation tree files were copied into.
	DocsRoot string

	Migrated []Placement
	Skipped  []SkippedFile
	Errors   []FileError

	// ByCompany counts migrated files per attributed company
	// (see Placement.Company), "other" included.
	ByCompany map[string]int

	// AIServices counts migrated files routed to the ai-services tree.
	AIServices int
}

// AnalysisReport previews a migration without touching the filesystem.
type AnalysisReport struct {
	// Source is the directory that was scanned.
	Source string

	// BigTech groups placements per registered company slug.
	BigTech map[string][]Placement

	// Labels maps registered company slugs to their sidebar labels
	// for report rendering.
	Labels map[string]string

	// AIServices holds placements routed outside the big-tech tree.
	AIServices []Placement

	// Korean lists translation files excluded from routing.
	Korean []string

	// System lists system files excluded from routing.
	System []string

	// Samples holds the first routed files in scan order, capped for
	// report rendering.
	Samples []Placement
}

// Total returns the number of markdown files the analysis covered.
func (r AnalysisReport) Total() int {
	n := len(r.AIServices) + len(r.Korean) + len(r.System)
	for _, files := range r.BigTech {
		n += len(files)
	}
	return n
}

// FixResult is the sanitizer outcome for a single markdown file.
type FixResult struct {
	// Path is the file the passes ran over.
	Path string

	// Changed reports whether any pass rewrote content.
	Changed bool

	// Changes holds one human-readable note per pass that fired.
	Changes []string
}

// FixReport aggregates one sanitizer run over files and directories.
type FixReport struct {
	// DryRun marks a run that reported changes without writing them.
	DryRun bool

	// Scanned is the number of markdown files examined.
	Scanned int

	// Fixed holds the results for files that changed (or would change).
	Fixed []FixResult

	Errors []FileError
}

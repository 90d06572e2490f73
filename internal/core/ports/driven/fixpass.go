package driven

// FixPass rewrites markdown content to be safe for an MDX renderer.
// Passes are chained in a fixed order by the pipeline. Every pass is
// fence-aware: lines inside code fences are left untouched.
type FixPass interface {
	// Name returns the pass name for logging.
	Name() string

	// Apply rewrites content and reports what changed.
	Apply(content string) PassResult
}

// PassResult is the outcome of one pass over one file.
type PassResult struct {
	// Content is the possibly rewritten file content.
	Content string

	// Changed reports whether Content differs from the input.
	Changed bool

	// Note describes the change for the per-file report, for example
	// "fixed 3 URL bracket patterns". Empty when nothing changed.
	Note string
}

// FixPipeline runs every pass in canonical order over one document.
type FixPipeline interface {
	// Apply returns the rewritten content and one note per pass that
	// changed it. An unchanged document returns no notes. Path is
	// used for tracing only.
	Apply(path, content string) (string, []string)
}

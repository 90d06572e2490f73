package fixes

import "github.com/prompt-insights/docprep-cli/internal/core/ports/driven"

// MarkdownEscape is a reserved slot at the end of the pipeline for
// markdown escaping repairs. It currently rewrites nothing: every
// candidate repair so far proved too aggressive on legitimate
// markdown.
type MarkdownEscape struct{}

var _ driven.FixPass = (*MarkdownEscape)(nil)

// NewMarkdownEscape creates the markdown escaping pass.
func NewMarkdownEscape() *MarkdownEscape {
	return &MarkdownEscape{}
}

// Name returns the pass name.
func (p *MarkdownEscape) Name() string {
	return "mdescape"
}

// Apply returns the content unchanged.
func (p *MarkdownEscape) Apply(content string) driven.PassResult {
	return driven.PassResult{Content: content}
}

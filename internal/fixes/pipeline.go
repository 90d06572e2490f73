// Package fixes provides the ordered MDX rewrite passes.
//
// Each pass is a small, fence-aware text transformation: lines inside
// ``` code fences are never rewritten. Passes run in a fixed order and
// each reports whether it changed the content. Running the pipeline a
// second time over its own output changes nothing.
package fixes

import (
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
	"github.com/prompt-insights/docprep-cli/internal/logger"
)

// Pipeline chains multiple FixPasses and runs them in order.
// It implements the FixPipeline interface.
type Pipeline struct {
	passes []driven.FixPass
}

var _ driven.FixPipeline = (*Pipeline)(nil)

// NewPipeline creates a pipeline with the given passes.
// Passes are executed in the order provided.
func NewPipeline(passes ...driven.FixPass) *Pipeline {
	return &Pipeline{passes: passes}
}

// NewDefault builds the canonical pass order: URL brackets, tags, JSX,
// braces, markdown escaping. Extra reserved tag names extend the
// built-in list of the tag pass.
func NewDefault(extraTags ...string) *Pipeline {
	return NewPipeline(
		NewURLBrackets(),
		NewTags(extraTags...),
		NewJSX(),
		NewBraces(),
		NewMarkdownEscape(),
	)
}

// Apply runs content through every pass in order. Path is used for
// tracing only. The returned notes describe each pass that changed
// the content; an untouched document yields none.
func (p *Pipeline) Apply(path, content string) (string, []string) {
	var notes []string
	for _, pass := range p.passes {
		result := pass.Apply(content)
		logger.Pass(pass.Name(), path, result.Changed)
		if result.Changed {
			notes = append(notes, result.Note)
		}
		content = result.Content
	}
	return content, notes
}

// Add appends a pass to the pipeline.
func (p *Pipeline) Add(pass driven.FixPass) {
	p.passes = append(p.passes, pass)
}

// Len returns the number of passes in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.passes)
}

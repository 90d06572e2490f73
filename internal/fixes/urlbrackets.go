package fixes

import (
	"fmt"
	"regexp"

	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
)

// bare URL wrapped in angle brackets: <https://example.com>
var bracketedURLPattern = regexp.MustCompile(`<(https?://[^>\s]+)>`)

// URLBrackets converts <http://…> and <https://…> autolink syntax
// into plain markdown links. MDX rejects the bracketed form as an
// invalid JSX element name.
type URLBrackets struct{}

var _ driven.FixPass = (*URLBrackets)(nil)

// NewURLBrackets creates the URL bracket pass.
func NewURLBrackets() *URLBrackets {
	return &URLBrackets{}
}

// Name returns the pass name.
func (p *URLBrackets) Name() string {
	return "urlbrackets"
}

// Apply rewrites every bracketed URL outside code fences to
// [url](url) and reports how many were rewritten.
func (p *URLBrackets) Apply(content string) driven.PassResult {
	count := 0
	out := mapLines(content, func(line string) string {
		return bracketedURLPattern.ReplaceAllStringFunc(line, func(match string) string {
			url := match[1 : len(match)-1]
			count++
			return fmt.Sprintf("[%s](%s)", url, url)
		})
	})

	result := driven.PassResult{Content: out, Changed: out != content}
	if result.Changed {
		result.Note = fmt.Sprintf("fixed %d URL bracket patterns", count)
	}
	return result
}

package fixes

import (
	"regexp"
	"strings"

	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
)

var (
	// <3, <40 and similar comparisons MDX reads as JSX openers
	numericTagPattern = regexp.MustCompile(`<(\d+)`)

	// tag with a stray backslash inside its attributes
	malformedAttrPattern = regexp.MustCompile(`<(\w+)\s+([^>]*?)\\([^>]*?)>`)
)

// JSX escapes angle-bracket sequences that MDX would parse as JSX
// elements but that are not valid ones.
type JSX struct{}

var _ driven.FixPass = (*JSX)(nil)

// NewJSX creates the JSX pass.
func NewJSX() *JSX {
	return &JSX{}
}

// Name returns the pass name.
func (p *JSX) Name() string {
	return "jsx"
}

// Apply escapes numeric pseudo-tags and malformed attribute tags
// outside code fences. Sequences whose < is already escaped are left
// alone, so the pass is idempotent.
func (p *JSX) Apply(content string) driven.PassResult {
	out := mapLines(content, fixJSXLine)
	result := driven.PassResult{Content: out, Changed: out != content}
	if result.Changed {
		result.Note = "fixed JSX syntax issues"
	}
	return result
}

func fixJSXLine(line string) string {
	line = replaceUnescaped(line, numericTagPattern, func(groups []string) string {
		return `\<` + groups[1]
	})
	line = replaceUnescaped(line, malformedAttrPattern, func(groups []string) string {
		return `\<` + groups[1] + " " + groups[2] + `\\` + groups[3] + `\>`
	})
	return line
}

// replaceUnescaped substitutes every match whose leading < is not
// already preceded by a backslash.
func replaceUnescaped(line string, pattern *regexp.Regexp, replace func(groups []string) string) string {
	matches := pattern.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line
	}

	var b strings.Builder
	last := 0
	changed := false
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && line[start-1] == '\\' {
			continue
		}
		groups := make([]string, 0, len(m)/2)
		for g := 0; g < len(m); g += 2 {
			if m[g] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, line[m[g]:m[g+1]])
		}
		b.WriteString(line[last:start])
		b.WriteString(replace(groups))
		last = end
		changed = true
	}
	if !changed {
		return line
	}
	b.WriteString(line[last:])
	return b.String()
}

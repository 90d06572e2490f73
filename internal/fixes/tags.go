package fixes

import (
	"regexp"
	"strings"

	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
)

var (
	// <example> and </example> marker lines, optionally indented
	exampleOpenPattern  = regexp.MustCompile(`^(\s*)<example>\s*$`)
	exampleClosePattern = regexp.MustCompile(`^(\s*)</example>\s*$`)

	// bare tag-shaped token such as <thinking> or <my-tag>; digit-led
	// tokens are numeric comparisons and belong to the jsx pass
	bareTagPattern = regexp.MustCompile(`<([A-Za-z_][\w-]*)>`)
)

// reservedTags are tag names common in prompt transcripts that MDX
// would otherwise try to mount as JSX components.
var reservedTags = []string{
	"user_query", "resource", "tool_calling", "thinking", "response",
	"system", "user", "assistant", "instructions", "election_info",
}

// Tags neutralizes HTML-like tags. Whole-line <example> markers become
// real code fences; reserved tags and any remaining bare <word> tokens
// are wrapped in inline code so the renderer shows them literally.
type Tags struct {
	reserved []string
}

var _ driven.FixPass = (*Tags)(nil)

// NewTags creates the tag pass. Extra tag names extend the built-in
// reserved list.
func NewTags(extraTags ...string) *Tags {
	t := &Tags{reserved: append([]string(nil), reservedTags...)}
	for _, tag := range extraTags {
		tag = strings.TrimSpace(tag)
		if tag == "" || t.isReserved(tag) {
			continue
		}
		t.reserved = append(t.reserved, tag)
	}
	return t
}

// Name returns the pass name.
func (p *Tags) Name() string {
	return "tags"
}

// Apply converts example marker lines into fences and wraps remaining
// tag tokens in inline code. A converted marker counts as a fence line
// for the rest of the scan, so the body of an example block is left
// alone just like any other fenced content.
func (p *Tags) Apply(content string) driven.PassResult {
	lines := strings.Split(content, "\n")
	inFence := false
	for i, line := range lines {
		if m := exampleOpenPattern.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + "```example"
			inFence = !inFence
			continue
		}
		if m := exampleClosePattern.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + "```"
			inFence = !inFence
			continue
		}
		if isFenceLine(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = p.wrapLine(line)
	}

	out := strings.Join(lines, "\n")
	result := driven.PassResult{Content: out, Changed: out != content}
	if result.Changed {
		result.Note = "fixed HTML tag issues"
	}
	return result
}

// wrapLine wraps reserved tags (opening and closing forms) and then
// any leftover bare tag tokens in backticks.
func (p *Tags) wrapLine(line string) string {
	for _, tag := range p.reserved {
		line = wrapToken(line, "<"+tag+">")
		line = wrapToken(line, "</"+tag+">")
	}
	return wrapBareTags(line)
}

func (p *Tags) isReserved(tag string) bool {
	for _, reserved := range p.reserved {
		if reserved == tag {
			return true
		}
	}
	return false
}

// wrapToken wraps every occurrence of token in backticks. Occurrences
// already preceded by a backtick are left alone, which keeps repeated
// runs from stacking quotes.
func wrapToken(line, token string) string {
	if !strings.Contains(line, token) {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + 2*strings.Count(line, token))
	for i := 0; i < len(line); {
		if strings.HasPrefix(line[i:], token) && !precededByBacktick(line, i) {
			b.WriteByte('`')
			b.WriteString(token)
			b.WriteByte('`')
			i += len(token)
			continue
		}
		b.WriteByte(line[i])
		i++
	}
	return b.String()
}

// wrapBareTags wraps remaining <word> tokens in inline code. An
// occurrence is skipped when it is already in inline code, sits inside
// a "source: [" reference link, or directly follows a URL scheme
// fragment.
func wrapBareTags(line string) string {
	matches := bareTagPattern.FindAllStringIndex(line, -1)
	if matches == nil {
		return line
	}

	var b strings.Builder
	last := 0
	wrapped := false
	for _, m := range matches {
		start, end := m[0], m[1]
		prefix := line[:start]
		if precededByBacktick(line, start) ||
			strings.HasSuffix(prefix, "source: [") ||
			strings.HasSuffix(prefix, "http") ||
			strings.HasSuffix(prefix, "https") {
			continue
		}
		b.WriteString(line[last:start])
		b.WriteByte('`')
		b.WriteString(line[start:end])
		b.WriteByte('`')
		last = end
		wrapped = true
	}
	if !wrapped {
		return line
	}
	b.WriteString(line[last:])
	return b.String()
}

func precededByBacktick(line string, i int) bool {
	return i > 0 && line[i-1] == '`'
}

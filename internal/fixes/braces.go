package fixes

import (
	"strings"

	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
)

// Braces escapes stray curly braces that MDX would read as expression
// delimiters. The heuristic is deliberately conservative: anything
// that could plausibly be a JSX expression or a template placeholder
// is left untouched.
type Braces struct{}

var _ driven.FixPass = (*Braces)(nil)

// NewBraces creates the brace pass.
func NewBraces() *Braces {
	return &Braces{}
}

// Name returns the pass name.
func (p *Braces) Name() string {
	return "braces"
}

// Apply escapes problematic braces outside code fences. Lines holding
// ${…} placeholders or already-escaped braces are left whole.
func (p *Braces) Apply(content string) driven.PassResult {
	out := mapLines(content, fixBraceLine)
	result := driven.PassResult{Content: out, Changed: out != content}
	if result.Changed {
		result.Note = "escaped problematic curly braces"
	}
	return result
}

func fixBraceLine(line string) string {
	// ${VAR} placeholders are meaningful in prompt files; skip the
	// whole line rather than guess which braces belong to them.
	if strings.Contains(line, "${") && strings.Contains(line, "}") {
		return line
	}
	if strings.Contains(line, `\{`) || strings.Contains(line, `\}`) {
		return line
	}
	return escapeCloseBraces(escapeOpenBraces(line))
}

// escapeOpenBraces escapes { unless it is preceded by $ or followed
// by an identifier-start character.
func escapeOpenBraces(line string) string {
	var b strings.Builder
	b.Grow(len(line) + 4)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if ch == '{' {
			afterDollar := i > 0 && line[i-1] == '$'
			beforeIdent := i+1 < len(line) && isIdentStart(line[i+1])
			if !afterDollar && !beforeIdent {
				b.WriteString(`\{`)
				continue
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// escapeCloseBraces escapes } unless it is preceded by an identifier
// character.
func escapeCloseBraces(line string) string {
	var b strings.Builder
	b.Grow(len(line) + 4)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if ch == '}' {
			afterIdent := i > 0 && isIdentChar(line[i-1])
			if !afterIdent {
				b.WriteString(`\}`)
				continue
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

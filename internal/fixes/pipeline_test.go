package fixes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault_Order(t *testing.T) {
	pipeline := NewDefault()
	require.Equal(t, 5, pipeline.Len())

	var names []string
	for _, pass := range pipeline.passes {
		names = append(names, pass.Name())
	}
	assert.Equal(t, []string{"urlbrackets", "tags", "jsx", "braces", "mdescape"}, names)
}

func TestPipeline_Apply(t *testing.T) {
	input := strings.Join([]string{
		"# Title",
		"",
		"Visit <https://example.com> for info.",
		"",
		"<example>",
		"raw {braces} stay",
		"</example>",
		"",
		"The user sent <user_query> with <3 emoji.",
		"",
		"Stray { bracket } here.",
	}, "\n")
	want := strings.Join([]string{
		"# Title",
		"",
		"Visit [https://example.com](https://example.com) for info.",
		"",
		"```example",
		"raw {braces} stay",
		"```",
		"",
		"The user sent `<user_query>` with \\<3 emoji.",
		"",
		"Stray \\{ bracket \\} here.",
	}, "\n")

	out, notes := NewDefault().Apply("doc.md", input)

	assert.Equal(t, want, out)
	assert.Equal(t, []string{
		"fixed 1 URL bracket patterns",
		"fixed HTML tag issues",
		"fixed JSX syntax issues",
		"escaped problematic curly braces",
	}, notes)
}

func TestPipeline_Apply_NoChanges(t *testing.T) {
	input := "# Clean document\n\nNothing to fix here.\n"

	out, notes := NewDefault().Apply("clean.md", input)

	assert.Equal(t, input, out)
	assert.Empty(t, notes)
}

func TestPipeline_Apply_Idempotent(t *testing.T) {
	inputs := []string{
		"Visit <https://example.com> and <http://a.io>.",
		"<example>\n<user_query>\n</example>",
		"mixed <thinking> with <3 and {} and <tag a\\b>",
		"JSON { \"key\": 1 } outside fences",
		"count <123> closed numeric token",
		"```\nuntouched <https://x.io> {1} <3\n```",
	}

	for _, input := range inputs {
		pipeline := NewDefault()
		once, _ := pipeline.Apply("doc.md", input)
		twice, notes := pipeline.Apply("doc.md", once)

		assert.Equal(t, once, twice, "input %q", input)
		assert.Empty(t, notes, "input %q", input)
	}
}

func TestPipeline_ExtraTags(t *testing.T) {
	out, _ := NewDefault("election_data").Apply("doc.md", "info </election_data> end")
	assert.Equal(t, "info `</election_data>` end", out)
}

func TestPipeline_AddAndLen(t *testing.T) {
	pipeline := NewPipeline()
	assert.Equal(t, 0, pipeline.Len())

	pipeline.Add(NewURLBrackets())
	pipeline.Add(NewBraces())
	assert.Equal(t, 2, pipeline.Len())
}

func TestMarkdownEscape_NoOp(t *testing.T) {
	pass := NewMarkdownEscape()
	assert.Equal(t, "mdescape", pass.Name())

	input := "anything { <3 } at all"
	got := pass.Apply(input)
	assert.Equal(t, input, got.Content)
	assert.False(t, got.Changed)
	assert.Empty(t, got.Note)
}

func BenchmarkPipeline(b *testing.B) {
	pipeline := NewDefault()
	content := strings.Repeat(strings.Join([]string{
		"# Prompt transcript",
		"",
		"Visit <https://example.com> for the source.",
		"The user sent <user_query> with <3 emoji and {placeholders}.",
		"",
		"```",
		"fenced <thinking> stays { untouched }",
		"```",
		"",
	}, "\n"), 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pipeline.Apply("doc.md", content)
	}
}

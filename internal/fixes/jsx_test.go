package fixes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSX_Name(t *testing.T) {
	assert.Equal(t, "jsx", NewJSX().Name())
}

func TestJSX_NumericTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heart emoticon",
			input: "I <3 markdown",
			want:  `I \<3 markdown`,
		},
		{
			name:  "comparison",
			input: "keep it <100 words",
			want:  `keep it \<100 words`,
		},
		{
			name:  "several on one line",
			input: "<1 and <2",
			want:  `\<1 and \<2`,
		},
		{
			name:  "space after bracket stays",
			input: "a < 3",
			want:  "a < 3",
		},
		{
			name:  "word tag stays",
			input: "<div>",
			want:  "<div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewJSX().Apply(tt.input)
			assert.Equal(t, tt.want, got.Content)
		})
	}
}

func TestJSX_MalformedAttributes(t *testing.T) {
	got := NewJSX().Apply(`<tag attr\value>`)
	assert.Equal(t, `\<tag attr\\value\>`, got.Content)
	assert.Equal(t, "fixed JSX syntax issues", got.Note)
}

func TestJSX_MalformedAttributesCollapseWhitespace(t *testing.T) {
	got := NewJSX().Apply(`<tag   attr\value>`)
	assert.Equal(t, `\<tag attr\\value\>`, got.Content)
}

func TestJSX_CleanAttributesStay(t *testing.T) {
	got := NewJSX().Apply(`<a href="https://example.com">`)
	assert.Equal(t, `<a href="https://example.com">`, got.Content)
	assert.False(t, got.Changed)
}

func TestJSX_SkipsCodeFences(t *testing.T) {
	input := strings.Join([]string{
		"```",
		"if x <3 then",
		"```",
		"if x <3 then",
	}, "\n")
	want := strings.Join([]string{
		"```",
		"if x <3 then",
		"```",
		`if x \<3 then`,
	}, "\n")

	got := NewJSX().Apply(input)
	assert.Equal(t, want, got.Content)
}

func TestJSX_Idempotent(t *testing.T) {
	inputs := []string{
		"I <3 markdown",
		`<tag attr\value>`,
		"keep it <100 words",
	}

	for _, input := range inputs {
		first := NewJSX().Apply(input)
		second := NewJSX().Apply(first.Content)
		assert.Equal(t, first.Content, second.Content, "input %q", input)
		assert.False(t, second.Changed, "input %q", input)
	}
}

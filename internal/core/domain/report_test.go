package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisReport_Total(t *testing.T) {
	report := AnalysisReport{
		BigTech: map[string][]Placement{
			"openai":    {{File: "openai-gpt5_20250101.md"}, {File: "openai-o3_20250102.md"}},
			"anthropic": {{File: "anthropic-claude_20250103.md"}},
		},
		AIServices: []Placement{{File: "cursor_20250104.md"}},
		Korean:     []string{"openai-gpt5_20250101_KR.md"},
		System:     []string{"README.md"},
	}

	assert.Equal(t, 6, report.Total())
}

func TestAnalysisReport_Total_Empty(t *testing.T) {
	assert.Zero(t, AnalysisReport{}.Total())
}

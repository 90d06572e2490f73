package classifier

import (
	"path/filepath"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

// builtinRegistry returns the compiled-in big-tech companies.
// Positions drive the sidebar ordering of the generated categories.
func builtinRegistry() []domain.Company {
	return []domain.Company{
		{Name: "openai", Label: "OpenAI", Position: 1},
		{Name: "anthropic", Label: "Anthropic", Position: 2},
		{Name: "google", Label: "Google", Position: 3},
		{Name: "microsoft", Label: "Microsoft", Position: 4},
		{Name: "xai", Label: "xAI", Position: 5},
	}
}

// Companies returns the registry ordered by sidebar position.
func (c *Classifier) Companies() []domain.Company {
	out := make([]domain.Company, len(c.registry))
	copy(out, c.registry)
	return out
}

// IsBigTech reports whether company names a registered entry.
func (c *Classifier) IsBigTech(company string) bool {
	_, ok := c.byName[company]
	return ok
}

// Route returns the destination directory for a company, relative to
// the docs root: big-tech/<company> for registered companies, the
// shared ai-services tree for everything else.
func (c *Classifier) Route(company string) string {
	if c.IsBigTech(company) {
		return filepath.Join("big-tech", company)
	}
	return "ai-services"
}

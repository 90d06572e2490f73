// Package classifier derives routing metadata from markdown filenames.
//
// Filenames in the corpus encode company, model and publication date
// (for example openai-gpt5_20250101.md). The classifier applies an
// ordered rule table to split a name into those parts, derives a
// human-readable title and decides which documentation directory the
// file belongs in. It is pure: no I/O, no state beyond the registry.
package classifier

import (
	"regexp"
	"strings"
	"time"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
)

var (
	// company-model_date: openai-gpt5_20250101
	companyModelPattern = regexp.MustCompile(`^([^-]+)-(.+)_(\d{8})$`)

	// company_date, no model: anthropic_20250101
	companyOnlyPattern = regexp.MustCompile(`^([^_]+)_(\d{8})$`)

	// first YYYYMMDD run anywhere in the name
	datePattern = regexp.MustCompile(`_(\d{8})`)
)

// extractor attempts to split a base name into company and model.
type extractor func(base string) (company, model string, ok bool)

// Classifier splits filenames into routing metadata.
// The zero value is not usable; construct with New.
type Classifier struct {
	registry   []domain.Company
	byName     map[string]domain.Company
	extractors []extractor
}

// New builds a classifier over the built-in big-tech registry.
// Extra company names extend the registry: they are routed like the
// built-ins, labelled with their capitalized name and positioned
// after the compiled-in entries.
func New(extraCompanies ...string) *Classifier {
	c := &Classifier{
		registry: builtinRegistry(),
		byName:   make(map[string]domain.Company),
	}

	for _, name := range extraCompanies {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, exists := c.lookup(name); exists {
			continue
		}
		c.registry = append(c.registry, domain.Company{
			Name:     name,
			Label:    capitalize(name),
			Position: len(c.registry) + 1,
		})
	}

	for _, company := range c.registry {
		c.byName[company.Name] = company
	}

	// Order matters: the first matching rule wins.
	c.extractors = []extractor{
		extractCompanyModel,
		extractCompanyOnly,
		c.extractKnownPrefix,
	}

	return c
}

// Skip reasons reported for excluded files.
const (
	ReasonKorean = "Korean translation"
	ReasonSystem = "System file"
)

// Skip reports whether a filename is excluded from routing entirely,
// with a human-readable reason. Korean translations and repository
// housekeeping files stay where they are.
func Skip(filename string) (string, bool) {
	if strings.HasSuffix(filename, "_KR.md") {
		return ReasonKorean, true
	}
	if strings.EqualFold(filename, "readme.md") {
		return ReasonSystem, true
	}
	return "", false
}

// Classify derives company, model, date and title from a filename.
// Classification never fails: names that match no rule fall back to
// an empty company with the whole base name as the model.
func (c *Classifier) Classify(filename string) domain.Classification {
	base := strings.TrimSuffix(filename, ".md")

	var company, model string
	matched := false
	for _, extract := range c.extractors {
		if comp, mod, ok := extract(base); ok {
			company, model = comp, mod
			matched = true
			break
		}
	}
	if !matched {
		company, model = "", base
	}

	date := extractDate(base)

	return domain.Classification{
		Company: company,
		Model:   model,
		Date:    date,
		Title:   title(base, company, model, date),
	}
}

// extractCompanyModel handles company-model_date names.
func extractCompanyModel(base string) (string, string, bool) {
	m := companyModelPattern.FindStringSubmatch(base)
	if m == nil {
		return "", "", false
	}
	return strings.ToLower(m[1]), m[2], true
}

// extractCompanyOnly handles company_date names without a model.
func extractCompanyOnly(base string) (string, string, bool) {
	m := companyOnlyPattern.FindStringSubmatch(base)
	if m == nil {
		return "", "", false
	}
	return strings.ToLower(m[1]), "", true
}

// extractKnownPrefix matches names that merely start with a registered
// company, taking the rest (minus leading separators) as the model.
func (c *Classifier) extractKnownPrefix(base string) (string, string, bool) {
	lower := strings.ToLower(base)
	for _, company := range c.registry {
		if strings.HasPrefix(lower, company.Name) {
			remainder := strings.TrimLeft(base[len(company.Name):], "-_")
			return company.Name, remainder, true
		}
	}
	return "", "", false
}

// extractDate finds the first _YYYYMMDD run and parses it with
// calendar validation. Invalid dates yield the zero time, never an
// error: a malformed date simply drops out of the metadata.
func extractDate(base string) time.Time {
	m := datePattern.FindStringSubmatch(base)
	if m == nil {
		return time.Time{}
	}
	date, err := time.Parse("20060102", m[1])
	if err != nil {
		return time.Time{}
	}
	return date
}

func (c *Classifier) lookup(name string) (domain.Company, bool) {
	for _, company := range c.registry {
		if company.Name == name {
			return company, true
		}
	}
	return domain.Company{}, false
}

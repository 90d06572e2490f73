package domain

import "time"

// Classification is the routing metadata derived from a markdown filename.
// Fields that could not be determined are left at their zero values; a
// filename that matches no rule still yields a usable fallback title.
type Classification struct {
	// Company is the lower-cased company slug, empty when unknown.
	Company string

	// Model is the raw model or service segment from the filename.
	Model string

	// Date is the publication date encoded in the filename.
	// Zero when the name carries no valid YYYYMMDD run.
	Date time.Time

	// Title is the derived human-readable sidebar title.
	Title string
}

// HasDate reports whether the filename carried a valid date.
func (c Classification) HasDate() bool {
	return !c.Date.IsZero()
}

// FrontmatterDate renders the date for a frontmatter block.
// Returns the empty string when no date was found.
func (c Classification) FrontmatterDate() string {
	if c.Date.IsZero() {
		return ""
	}
	return c.Date.Format("2006-01-02")
}

// Company is one entry in the big-tech publisher registry.
// Files from a registered company are routed into a dedicated
// directory; everything else lands in the shared ai-services tree.
type Company struct {
	// Name is the directory slug (lower case).
	Name string

	// Label is the human-readable sidebar label.
	Label string

	// Position is the sidebar ordering of the company category.
	Position int
}

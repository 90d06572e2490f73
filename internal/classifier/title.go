package classifier

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// bare version numbers such as 2.5 stay verbatim in titles
var versionPattern = regexp.MustCompile(`^[\d.]+$`)

// acronyms are model-name segments that read better fully upper-cased.
var acronyms = map[string]struct{}{
	"ai":  {},
	"gpt": {},
	"api": {},
	"cli": {},
	"ios": {},
	"ide": {},
}

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// title derives the human-readable sidebar title.
//
// With both company and model the model name is prettified and the
// date appended. With only a model its underscores become spaces and
// it is title-cased, hyphens kept. Names that yielded no model fall
// back to the whole base name with all separators turned to spaces,
// and take no date suffix.
func title(base, company, model string, date time.Time) string {
	datePart := ""
	if !date.IsZero() {
		datePart = " (" + date.Format("2006.01.02") + ")"
	}

	switch {
	case company != "" && model != "":
		return formatModel(model) + datePart
	case model != "":
		return titleCase(strings.ReplaceAll(model, "_", " ")) + datePart
	default:
		return titleCase(separatorReplacer.Replace(base))
	}
}

// formatModel prettifies a model segment: underscores become spaces,
// pure version numbers stay verbatim, and dash-separated parts are
// upper-cased when they are known acronyms and capitalized otherwise.
func formatModel(model string) string {
	spaced := strings.ReplaceAll(model, "_", " ")
	if versionPattern.MatchString(spaced) {
		return spaced
	}

	parts := strings.Split(spaced, "-")
	for i, part := range parts {
		if _, ok := acronyms[strings.ToLower(part)]; ok {
			parts[i] = strings.ToUpper(part)
			continue
		}
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, "-")
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest; digits and punctuation pass through. Hyphens
// count as word boundaries but are kept: "v0-system-prompt" becomes
// "V0-System-Prompt".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

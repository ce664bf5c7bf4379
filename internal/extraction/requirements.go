package extraction

import (
	"regexp"
	"strings"
)

// RequirementsFallback is returned when no requirements heading is found.
const RequirementsFallback = "See job description for details"

// maxExcerptLen bounds the excerpt taken from the raw text before markup is
// stripped.
const maxExcerptLen = 500

// headingPattern matches the heading phrases that introduce a requirements
// section, case-insensitively.
var headingPattern = regexp.MustCompile(`(?i)(requirements|qualifications|what you'll need|what we're looking for)`)

// ExtractRequirements locates the first requirements heading in text and
// returns a bounded excerpt starting at it, with markup stripped and
// whitespace trimmed. When the heading sits within the last maxExcerptLen
// characters the excerpt is simply shorter. Without any heading the fixed
// RequirementsFallback string is returned.
func ExtractRequirements(text string) string {
	loc := headingPattern.FindStringIndex(text)
	if loc == nil {
		return RequirementsFallback
	}

	end := loc[0] + maxExcerptLen
	if end > len(text) {
		end = len(text)
	}
	excerpt := StripMarkup(text[loc[0]:end])
	return strings.TrimSpace(excerpt)
}

package extraction

import "strings"

// Seniority levels produced by ClassifySeniority. Exactly one is returned
// for any input.
const (
	SenioritySenior       = "Senior"
	SeniorityMid          = "Mid-level"
	SeniorityEntry        = "Entry-level"
	SeniorityNotSpecified = "Not specified"
)

// seniorityGroup pairs a level with the keywords that indicate it.
type seniorityGroup struct {
	level    string
	keywords []string
}

// defaultSeniorityGroups are tested in order; the first group with any keyword
// present wins. Senior outranks Mid-level outranks Entry-level, so text
// mentioning both "senior" and "junior" classifies as Senior.
var defaultSeniorityGroups = []seniorityGroup{
	{SenioritySenior, []string{"senior", "sr.", "lead", "principal", "5+ years", "7+ years", "10+ years"}},
	{SeniorityMid, []string{"mid", "intermediate", "3+ years", "2-5 years"}},
	{SeniorityEntry, []string{"junior", "entry", "graduate", "0-2 years", "1+ year"}},
}

// SeniorityClassifier maps free text onto a single seniority level by keyword
// group scanning. Immutable after construction; safe for concurrent use.
type SeniorityClassifier struct {
	groups []seniorityGroup
}

// NewSeniorityClassifier returns a classifier using the default keyword groups.
func NewSeniorityClassifier() *SeniorityClassifier {
	return &SeniorityClassifier{groups: defaultSeniorityGroups}
}

// Classify strips markup, lower-cases the text and tests each keyword group in
// priority order, short-circuiting on the first match. Returns
// SeniorityNotSpecified when no keyword from any group occurs.
func (c *SeniorityClassifier) Classify(text string) string {
	plain := strings.ToLower(StripMarkup(text))

	for _, group := range c.groups {
		for _, keyword := range group.keywords {
			if strings.Contains(plain, keyword) {
				return group.level
			}
		}
	}
	return SeniorityNotSpecified
}

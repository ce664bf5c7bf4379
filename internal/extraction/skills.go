package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// SkillNotSpecified is the sentinel returned when no vocabulary entry matches.
// Callers must treat it as "no skills", never as a literal skill.
const SkillNotSpecified = "Not specified"

// DefaultSkillVocabulary is the ordered reference list of recognized skill
// labels. Extraction output preserves this order, not the order of appearance
// in the input text.
var DefaultSkillVocabulary = []string{
	"JavaScript", "React", "Node.js", "Python", "Java", "C#", "C++",
	"TypeScript", "Angular", "Vue.js", "PHP", "Ruby", "Go", "Rust",
	"SQL", "MongoDB", "PostgreSQL", "MySQL", "AWS", "Azure", "GCP",
	"Docker", "Kubernetes", "DevOps", "CI/CD", "Git", "REST API",
	"GraphQL", "HTML", "CSS", "Sass", "Redux", "Express", "Django",
	"Flask", "Spring", "ASP.NET", "React Native", "Flutter", "Swift",
	"Kotlin", "Android", "iOS",
}

// VocabularyWarning records a vocabulary entry whose label could not be
// compiled into a match pattern. The entry is skipped; extraction continues
// for all other entries.
type VocabularyWarning struct {
	Label  string
	Reason string
}

func (w VocabularyWarning) String() string {
	return fmt.Sprintf("skill vocabulary entry %q skipped: %s", w.Label, w.Reason)
}

// skillMatcher is one compiled vocabulary entry.
type skillMatcher struct {
	label string
	// pattern is nil for labels matched by literal substring.
	pattern *regexp.Regexp
	// lowered is the lower-cased label, used for substring matching.
	lowered string
}

// SkillExtractor matches free text against a fixed skill vocabulary.
// It is immutable after construction and safe for concurrent use.
type SkillExtractor struct {
	matchers []skillMatcher
	warnings []VocabularyWarning
}

// NewSkillExtractor compiles the given vocabulary. Labels whose first and
// last characters are word characters get case-insensitive whole-word
// patterns; labels edged by symbols (e.g. "C++") fall back to case-insensitive
// literal substring matching, since word boundaries are undefined next to
// non-word characters. A label that fails to compile is skipped and recorded
// as a warning rather than aborting construction.
func NewSkillExtractor(vocabulary []string) *SkillExtractor {
	e := &SkillExtractor{matchers: make([]skillMatcher, 0, len(vocabulary))}

	for _, label := range vocabulary {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			e.warnings = append(e.warnings, VocabularyWarning{Label: label, Reason: "empty label"})
			continue
		}

		m := skillMatcher{label: trimmed, lowered: strings.ToLower(trimmed)}
		if wordBounded(trimmed) {
			pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(trimmed) + `\b`)
			if err != nil {
				e.warnings = append(e.warnings, VocabularyWarning{Label: trimmed, Reason: err.Error()})
				continue
			}
			m.pattern = pattern
		}
		e.matchers = append(e.matchers, m)
	}

	return e
}

// Extract returns the vocabulary entries found in text, in vocabulary order,
// each at most once. Markup is stripped before matching. The result may be
// empty; see ExtractOrSentinel for the sentinel-bearing variant.
func (e *SkillExtractor) Extract(text string) []string {
	plain := StripMarkup(text)
	loweredPlain := strings.ToLower(plain)

	var matched []string
	for _, m := range e.matchers {
		if m.pattern != nil {
			if m.pattern.MatchString(plain) {
				matched = append(matched, m.label)
			}
			continue
		}
		if strings.Contains(loweredPlain, m.lowered) {
			matched = append(matched, m.label)
		}
	}
	return matched
}

// ExtractOrSentinel behaves like Extract but returns a single SkillNotSpecified
// entry when nothing matches, mirroring the shape ingested job records carry.
func (e *SkillExtractor) ExtractOrSentinel(text string) []string {
	skills := e.Extract(text)
	if len(skills) == 0 {
		return []string{SkillNotSpecified}
	}
	return skills
}

// Warnings reports the vocabulary entries skipped at construction time.
func (e *SkillExtractor) Warnings() []VocabularyWarning {
	return e.warnings
}

// wordBounded reports whether a label starts and ends with word characters,
// making \b anchoring well defined.
func wordBounded(label string) bool {
	runes := []rune(label)
	return isWordRune(runes[0]) && isWordRune(runes[len(runes)-1])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRequirements_NoHeadingReturnsFallback(t *testing.T) {
	got := ExtractRequirements("We are a small team shipping quickly.")

	assert.Equal(t, "See job description for details", got)
}

func TestExtractRequirements_HeadingPhrases(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"requirements", "About us. Requirements: Go, SQL."},
		{"qualifications", "About us. Qualifications: a degree."},
		{"what you'll need", "Intro. What you'll need: grit."},
		{"what we're looking for", "Intro. What we're looking for: curiosity."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRequirements(tt.text)
			assert.NotEqual(t, RequirementsFallback, got)
			assert.NotContains(t, got, "About us")
			assert.NotContains(t, got, "Intro")
		})
	}
}

func TestExtractRequirements_CaseInsensitiveHeading(t *testing.T) {
	got := ExtractRequirements("Blah blah. REQUIREMENTS: 5 years of Go.")

	assert.Equal(t, "REQUIREMENTS: 5 years of Go.", got)
}

func TestExtractRequirements_BoundedAtFiveHundred(t *testing.T) {
	long := "Requirements: " + strings.Repeat("a", 600)

	got := ExtractRequirements(long)

	assert.LessOrEqual(t, len(got), 500)
	assert.True(t, strings.HasPrefix(got, "Requirements:"))
}

func TestExtractRequirements_HeadingNearEndYieldsShortExcerpt(t *testing.T) {
	text := strings.Repeat("intro ", 20) + "Requirements: just show up"

	got := ExtractRequirements(text)

	assert.Equal(t, "Requirements: just show up", got)
}

func TestExtractRequirements_StripsMarkup(t *testing.T) {
	got := ExtractRequirements("<p>Team intro</p><h2>Requirements</h2><ul><li>Go</li><li>SQL</li></ul>")

	assert.Equal(t, "Requirements Go SQL", got)
}

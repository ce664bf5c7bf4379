// Package extraction derives structured job attributes (skills, seniority,
// requirement excerpts, job type) from free-form posting text.
package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripMarkup removes HTML markup from text, leaving a space where each tag
// stood so that words separated only by tags do not run together. Whitespace
// runs are collapsed to single spaces and the result is trimmed.
//
// Inputs without any markup pass through with only whitespace normalization.
func StripMarkup(text string) string {
	if text == "" {
		return ""
	}
	if !strings.Contains(text, "<") {
		return collapseWhitespace(text)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// Malformed enough that the parser gives up; fall back to a plain
		// tag-pattern replacement.
		return collapseWhitespace(tagPattern.ReplaceAllString(text, " "))
	}

	var b strings.Builder
	appendTextNodes(doc.Selection, &b)
	return collapseWhitespace(b.String())
}

// appendTextNodes walks the node tree collecting text nodes, separating each
// with a space so element boundaries keep word boundaries.
func appendTextNodes(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "#text" {
			b.WriteString(s.Text())
			b.WriteByte(' ')
			return
		}
		appendTextNodes(s, b)
	})
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

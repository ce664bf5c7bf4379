package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "Senior Go engineer", "Senior Go engineer"},
		{"empty", "", ""},
		{"simple tags", "<p>Hello</p>", "Hello"},
		{"adjacent elements keep word boundary", "<li>Java</li><li>Python</li>", "Java Python"},
		{"nested markup", "<div><strong>Requirements</strong>: Go</div>", "Requirements : Go"},
		{"whitespace collapsed", "a    b\n\n\tc", "a b c"},
		{"entities decoded", "<p>Fish &amp; Chips</p>", "Fish & Chips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkup(tt.input))
		})
	}
}

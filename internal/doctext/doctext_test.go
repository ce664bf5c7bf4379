package doctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		allowed  bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.doc", true},
		{"resume.docx", true},
		{"resume.txt", true},
		{"resume.exe", false},
		{"resume", false},
		{"resume.pdf.sh", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.allowed, AllowedExtension(tt.filename))
		})
	}
}

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("Jane Doe\njane@example.com"))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com", text)
}

func TestExtractText_UnsupportedFormatYieldsEmpty(t *testing.T) {
	text, err := ExtractText("resume.doc", []byte("legacy word binary"))

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractText_MalformedPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf"))

	assert.Error(t, err)
}

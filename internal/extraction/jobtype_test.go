package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeJobType(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{"full_time", "full_time", JobTypeFullTime},
		{"part_time", "part_time", JobTypePartTime},
		{"contract", "contract", JobTypeContract},
		{"freelance maps to contract", "freelance", JobTypeContract},
		{"internship", "internship", JobTypeInternship},
		{"upper case input", "FREELANCE", JobTypeContract},
		{"surrounding whitespace", "  contract  ", JobTypeContract},
		{"empty defaults to full-time", "", JobTypeFullTime},
		{"unmapped defaults to full-time", "gig-economy", JobTypeFullTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeJobType(tt.label))
		})
	}
}

func TestValidJobType(t *testing.T) {
	for _, valid := range []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote} {
		assert.True(t, ValidJobType(valid), valid)
	}
	assert.False(t, ValidJobType("full_time"))
	assert.False(t, ValidJobType(""))
}

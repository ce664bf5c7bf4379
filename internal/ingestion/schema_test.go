package ingestion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFeedJob(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			"complete posting",
			`{"title": "Go Engineer", "company_name": "Acme", "description": "Build stuff", "job_type": "full_time"}`,
			true,
		},
		{
			"minimal posting",
			`{"title": "Go Engineer", "company_name": "Acme", "description": ""}`,
			true,
		},
		{
			"missing title",
			`{"company_name": "Acme", "description": "Build stuff"}`,
			false,
		},
		{
			"empty company name",
			`{"title": "Go Engineer", "company_name": "", "description": "x"}`,
			false,
		},
		{
			"wrong type for salary",
			`{"title": "Go Engineer", "company_name": "Acme", "description": "x", "salary": 60000}`,
			false,
		},
		{
			"not an object",
			`"just a string"`,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeedJob(json.RawMessage(tt.payload))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

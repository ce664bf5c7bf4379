package ingestion

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// feedJobSchema is the boundary contract for one posting in the feed payload.
// Only the fields the normalizer reads are constrained; everything else in
// the loosely-typed payload is ignored.
const feedJobSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title", "company_name", "description"],
  "properties": {
    "title":                       {"type": "string", "minLength": 1},
    "company_name":                {"type": "string", "minLength": 1},
    "description":                 {"type": "string"},
    "job_type":                    {"type": "string"},
    "candidate_required_location": {"type": "string"},
    "salary":                      {"type": "string"},
    "url":                         {"type": "string"}
  }
}`

var compiledFeedSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(feedJobSchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a
		// programming error.
		panic(fmt.Sprintf("feed job schema invalid: %v", err))
	}
	compiledFeedSchema = schema
}

// ValidateFeedJob checks one raw posting against the feed schema. The error
// lists every violated field so skipped postings are diagnosable from logs.
func ValidateFeedJob(raw json.RawMessage) error {
	result, err := compiledFeedSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid feed posting: %s", strings.Join(msgs, "; "))
}

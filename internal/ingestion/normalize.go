package ingestion

import (
	"github.com/vikashvikku/resumerag/internal/db"
	"github.com/vikashvikku/resumerag/internal/extraction"
)

// Defaults applied when optional feed fields are absent.
const (
	defaultLocation = "Remote"
	defaultSalary   = "Not specified"
)

// Normalizer turns a validated RawJob into a structured job record by
// applying the extraction components to its free text. Safe for concurrent
// use; both extractors are immutable.
type Normalizer struct {
	skills    *extraction.SkillExtractor
	seniority *extraction.SeniorityClassifier
}

// NewNormalizer builds a Normalizer over the given skill vocabulary extractor.
func NewNormalizer(skills *extraction.SkillExtractor) *Normalizer {
	return &Normalizer{
		skills:    skills,
		seniority: extraction.NewSeniorityClassifier(),
	}
}

// Normalize maps a raw feed posting onto a JobCreateInput: the job type label
// is normalized onto the closed enum, skills, seniority and a requirements
// excerpt are derived from the description, and absent optional fields take
// their defaults. The raw shape does not travel past this point.
func (n *Normalizer) Normalize(raw RawJob) *db.JobCreateInput {
	location := raw.Location
	if location == "" {
		location = defaultLocation
	}

	salary := raw.Salary
	if salary == "" {
		salary = defaultSalary
	}

	return &db.JobCreateInput{
		Title:          raw.Title,
		Company:        raw.CompanyName,
		Location:       location,
		Description:    raw.Description,
		Requirements:   []string{extraction.ExtractRequirements(raw.Description)},
		Skills:         n.skills.ExtractOrSentinel(raw.Description),
		Experience:     n.seniority.Classify(raw.Description),
		Salary:         salary,
		JobType:        extraction.NormalizeJobType(raw.JobType),
		ApplicationURL: raw.URL,
	}
}

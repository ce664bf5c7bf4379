package db

import (
	"time"

	"github.com/google/uuid"
)

// Job is a stored job posting. Skills and requirements carry the structured
// attributes derived at ingestion time; Experience is one of the four
// seniority labels and JobType one of the five job-type enum literals.
type Job struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	Skills         []string  `json:"skills"`
	Experience     string    `json:"experience"`
	Salary         string    `json:"salary,omitempty"`
	JobType        string    `json:"jobType"`
	ApplicationURL string    `json:"applicationUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// JobCreateInput carries the fields for creating a job. The store assigns
// identity and creation timestamp.
type JobCreateInput struct {
	Title          string
	Company        string
	Location       string
	Description    string
	Requirements   []string
	Skills         []string
	Experience     string
	Salary         string
	JobType        string
	ApplicationURL string
}

// JobFilter holds the independently optional criteria for advanced job search.
// Empty strings and nil pointers mean "criterion not provided"; provided
// criteria combine with logical AND.
type JobFilter struct {
	Title      string   // case-insensitive substring
	Company    string   // case-insensitive substring
	Location   string   // case-insensitive substring
	JobType    string   // exact enum literal
	MinSalary  *float64 // inclusive lower bound, numeric salaries only
	MaxSalary  *float64 // inclusive upper bound, numeric salaries only
	Skills     []string // at least one must be present on the job
	Experience string   // case-insensitive substring
}

// Empty reports whether no criterion is set.
func (f JobFilter) Empty() bool {
	return f.Title == "" && f.Company == "" && f.Location == "" &&
		f.JobType == "" && f.MinSalary == nil && f.MaxSalary == nil &&
		len(f.Skills) == 0 && f.Experience == ""
}

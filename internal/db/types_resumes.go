package db

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceEntry is one position in a resume's work history.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one entry in a resume's education history.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Resume is a stored candidate resume. ResumeFile is the opaque storage
// reference for the uploaded document; ParsedText is the plain text extracted
// from it, empty when the format was unsupported.
type Resume struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	ResumeFile string            `json:"resumeFile"`
	ParsedText string            `json:"parsedText,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ResumeCreateInput carries the fields for creating a resume. There is no
// update path; resumes are immutable once stored.
type ResumeCreateInput struct {
	Name       string
	Email      string
	Phone      string
	Skills     []string
	Experience []ExperienceEntry
	Education  []EducationEntry
	ResumeFile string
	ParsedText string
}

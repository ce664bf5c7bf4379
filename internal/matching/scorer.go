// Package matching computes job-to-resume compatibility scores over a
// relevance-ranked candidate pool.
package matching

import (
	"context"
	"math"
	"strings"

	"github.com/vikashvikku/resumerag/internal/db"
)

// MatchResult pairs a candidate resume with its match percentage for a job.
// Results are derived per request and never persisted.
type MatchResult struct {
	Resume          db.Resume `json:"resume"`
	MatchPercentage int       `json:"matchPercentage"`
}

// ResumeSearcher is the slice of the document store the scorer needs: a
// keyword relevance query over the resumes collection.
type ResumeSearcher interface {
	SearchResumes(ctx context.Context, query string) ([]db.Resume, error)
}

// Scorer ranks candidate resumes for a job.
type Scorer struct {
	store ResumeSearcher
}

// NewScorer constructs a Scorer over the given store.
func NewScorer(store ResumeSearcher) *Scorer {
	return &Scorer{store: store}
}

// MatchResumes finds candidate resumes for the job via relevance search and
// scores each by skill overlap. Result order is inherited from the relevance
// order of the candidate pool, not re-sorted by score. A job with no searchable terms
// yields an empty result.
func (s *Scorer) MatchResumes(ctx context.Context, job *db.Job) ([]MatchResult, error) {
	query := BuildQuery(job)
	if query == "" {
		return []MatchResult{}, nil
	}

	candidates, err := s.store.SearchResumes(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]MatchResult, 0, len(candidates))
	for _, resume := range candidates {
		results = append(results, MatchResult{
			Resume:          resume,
			MatchPercentage: ScoreSkills(job.Skills, resume.Skills),
		})
	}
	return results, nil
}

// BuildQuery synthesizes the candidate search query from the job's title,
// skills and requirement excerpts, joined as a single text query.
func BuildQuery(job *db.Job) string {
	parts := make([]string, 0, 1+len(job.Skills)+len(job.Requirements))
	if job.Title != "" {
		parts = append(parts, job.Title)
	}
	parts = append(parts, job.Skills...)
	parts = append(parts, job.Requirements...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// ScoreSkills counts the resume skills present in the job's skill set using
// case-insensitive exact-label equality and returns the overlap as a
// percentage of the job's skills, rounded to the nearest integer and clamped
// to 100. A job with zero required skills scores 0 for every candidate.
func ScoreSkills(jobSkills, resumeSkills []string) int {
	if len(jobSkills) == 0 {
		return 0
	}

	jobSet := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[strings.ToLower(skill)] = true
	}

	matched := 0
	seen := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		lowered := strings.ToLower(skill)
		if seen[lowered] {
			continue
		}
		seen[lowered] = true
		if jobSet[lowered] {
			matched++
		}
	}

	percentage := int(math.Round(float64(matched) / float64(len(jobSkills)) * 100))
	if percentage > 100 {
		percentage = 100
	}
	return percentage
}

package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikashvikku/resumerag/internal/db"
)

// fakeSearcher records the query and returns a canned candidate pool.
type fakeSearcher struct {
	query   string
	resumes []db.Resume
	err     error
}

func (f *fakeSearcher) SearchResumes(_ context.Context, query string) ([]db.Resume, error) {
	f.query = query
	return f.resumes, f.err
}

func TestScoreSkills(t *testing.T) {
	tests := []struct {
		name         string
		jobSkills    []string
		resumeSkills []string
		expected     int
	}{
		{"half overlap", []string{"React", "Node.js"}, []string{"React", "Python"}, 50},
		{"full overlap", []string{"Go", "SQL"}, []string{"SQL", "Go"}, 100},
		{"no overlap", []string{"Go"}, []string{"PHP"}, 0},
		{"zero job skills", nil, []string{"Go"}, 0},
		{"zero resume skills", []string{"Go"}, nil, 0},
		{"case-insensitive equality", []string{"React"}, []string{"react"}, 100},
		{"exact labels only, no substrings", []string{"Java"}, []string{"JavaScript"}, 0},
		{"one of three", []string{"Go", "SQL", "AWS"}, []string{"AWS"}, 33},
		{"duplicate resume skills count once", []string{"Go", "SQL"}, []string{"Go", "go", "GO"}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreSkills(tt.jobSkills, tt.resumeSkills))
		})
	}
}

func TestBuildQuery(t *testing.T) {
	job := &db.Job{
		Title:        "Backend Engineer",
		Skills:       []string{"Go", "PostgreSQL"},
		Requirements: []string{"Requirements: 3 years of Go"},
	}

	assert.Equal(t, "Backend Engineer Go PostgreSQL Requirements: 3 years of Go", BuildQuery(job))
}

func TestBuildQuery_NoSearchableTerms(t *testing.T) {
	assert.Equal(t, "", BuildQuery(&db.Job{}))
}

func TestMatchResumes_OrderInheritedFromRelevance(t *testing.T) {
	low := db.Resume{Name: "Low", Skills: []string{"PHP"}}
	high := db.Resume{Name: "High", Skills: []string{"React", "Node.js"}}

	// Relevance order puts the low scorer first; scoring must not re-sort.
	store := &fakeSearcher{resumes: []db.Resume{low, high}}
	scorer := NewScorer(store)

	job := &db.Job{Title: "Frontend", Skills: []string{"React", "Node.js"}}
	results, err := scorer.MatchResumes(context.Background(), job)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Low", results[0].Resume.Name)
	assert.Equal(t, 0, results[0].MatchPercentage)
	assert.Equal(t, "High", results[1].Resume.Name)
	assert.Equal(t, 100, results[1].MatchPercentage)
	assert.Equal(t, "Frontend React Node.js", store.query)
}

func TestMatchResumes_ZeroJobSkills(t *testing.T) {
	store := &fakeSearcher{resumes: []db.Resume{{Name: "Anyone", Skills: []string{"Go"}}}}
	scorer := NewScorer(store)

	results, err := scorer.MatchResumes(context.Background(), &db.Job{Title: "Mystery Role"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].MatchPercentage)
}

func TestMatchResumes_NoSearchableTermsSkipsStore(t *testing.T) {
	store := &fakeSearcher{resumes: []db.Resume{{Name: "ShouldNotAppear"}}}
	scorer := NewScorer(store)

	results, err := scorer.MatchResumes(context.Background(), &db.Job{})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, store.query)
}

func TestMatchResumes_EmptyCandidatePool(t *testing.T) {
	store := &fakeSearcher{}
	scorer := NewScorer(store)

	results, err := scorer.MatchResumes(context.Background(), &db.Job{Title: "Niche Role"})

	require.NoError(t, err)
	assert.Empty(t, results)
}

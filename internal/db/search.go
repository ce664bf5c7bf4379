package db

import (
	"context"
	"fmt"
	"strings"
)

// jobSearchDoc is the text-bearing document indexed for job relevance search.
// It must stay in sync with jobs_search_idx in schema.sql.
const jobSearchDoc = `to_tsvector('english',
       title || ' ' || company || ' ' || description || ' ' ||
       array_to_string(requirements, ' ') || ' ' || array_to_string(skills, ' '))`

// resumeSearchDoc covers name, skills, parsed text and the text-bearing
// experience fields.
const resumeSearchDoc = `to_tsvector('english',
       name || ' ' || array_to_string(skills, ' ') || ' ' || parsed_text || ' ' ||
       coalesce((SELECT string_agg(concat_ws(' ', e->>'title', e->>'company', e->>'description'), ' ')
                 FROM jsonb_array_elements(experience) AS e), ''))`

// orTSQuery rewrites a free-text query so any term may match, mirroring
// keyword search semantics: terms are whitespace-split and OR-joined for
// websearch_to_tsquery. Returns "" for queries with no usable terms.
func orTSQuery(query string) string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		// "OR"/"-" are websearch operators; drop bare operators so user text
		// cannot form a degenerate query.
		if f == "OR" || f == "-" {
			continue
		}
		terms = append(terms, f)
	}
	return strings.Join(terms, " OR ")
}

// SearchJobs runs a keyword relevance query over the jobs collection,
// ordered by descending text-relevance score with ties broken by recency.
// An empty result is not an error.
func (db *DB) SearchJobs(ctx context.Context, query string) ([]Job, error) {
	tsq := orTSQuery(query)
	if tsq == "" {
		return []Job{}, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE `+jobSearchDoc+` @@ websearch_to_tsquery('english', $1)
		 ORDER BY ts_rank(`+jobSearchDoc+`, websearch_to_tsquery('english', $1)) DESC,
		          created_at DESC`,
		tsq)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return collectJobs(rows)
}

// SearchResumes runs a keyword relevance query over the resumes collection,
// ordered by descending text-relevance score with ties broken by recency.
func (db *DB) SearchResumes(ctx context.Context, query string) ([]Resume, error) {
	tsq := orTSQuery(query)
	if tsq == "" {
		return []Resume{}, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+`
		 FROM resumes
		 WHERE `+resumeSearchDoc+` @@ websearch_to_tsquery('english', $1)
		 ORDER BY ts_rank(`+resumeSearchDoc+`, websearch_to_tsquery('english', $1)) DESC,
		          created_at DESC`,
		tsq)
	if err != nil {
		return nil, fmt.Errorf("failed to search resumes: %w", err)
	}
	return collectResumes(rows)
}

// numericSalary guards salary comparisons: bounds apply only to jobs whose
// stored free-form salary is itself a plain number.
const numericSalary = `salary ~ '^[0-9]+(\.[0-9]+)?$'`

// buildJobFilterWhere assembles the WHERE clause and arguments for an
// advanced job search. All provided criteria AND together; an empty filter
// yields an empty clause.
func buildJobFilterWhere(f JobFilter) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Title != "" {
		conds = append(conds, `title ILIKE '%' || `+arg(f.Title)+` || '%'`)
	}
	if f.Company != "" {
		conds = append(conds, `company ILIKE '%' || `+arg(f.Company)+` || '%'`)
	}
	if f.Location != "" {
		conds = append(conds, `location ILIKE '%' || `+arg(f.Location)+` || '%'`)
	}
	if f.JobType != "" {
		conds = append(conds, `job_type = `+arg(f.JobType))
	}
	if f.MinSalary != nil {
		conds = append(conds, numericSalary+` AND salary::numeric >= `+arg(*f.MinSalary))
	}
	if f.MaxSalary != nil {
		conds = append(conds, numericSalary+` AND salary::numeric <= `+arg(*f.MaxSalary))
	}
	if len(f.Skills) > 0 {
		conds = append(conds, `skills && `+arg(f.Skills)+`::text[]`)
	}
	if f.Experience != "" {
		conds = append(conds, `experience ILIKE '%' || `+arg(f.Experience)+` || '%'`)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE (" + strings.Join(conds, ") AND (") + ")", args
}

// AdvancedSearchJobs applies the structured filter criteria, returning
// matches ordered by creation time, newest first.
func (db *DB) AdvancedSearchJobs(ctx context.Context, filter JobFilter) ([]Job, error) {
	where, args := buildJobFilterWhere(filter)

	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs `+where+` ORDER BY created_at DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run advanced job search: %w", err)
	}
	return collectJobs(rows)
}

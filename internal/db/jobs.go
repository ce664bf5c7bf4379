package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, company, location, description, requirements, skills,
       experience, salary, job_type, application_url, created_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
		&j.Requirements, &j.Skills, &j.Experience, &j.Salary, &j.JobType,
		&j.ApplicationURL, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]Job, error) {
	defer rows.Close()

	jobs := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

// nonNilStrings keeps array columns non-null when callers pass nil slices.
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// CreateJob inserts a job record; the store assigns id and created_at.
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, description, requirements,
		                   skills, experience, salary, job_type, application_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobColumns,
		input.Title, input.Company, input.Location, input.Description,
		nonNilStrings(input.Requirements), nonNilStrings(input.Skills),
		input.Experience, input.Salary, input.JobType, input.ApplicationURL,
	)
	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// ListJobs returns all jobs, newest first.
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return collectJobs(rows)
}

// GetJob retrieves a job by ID. Returns (nil, nil) when absent.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// UpdateJob replaces every mutable field of a job. The creation timestamp is
// immutable. Returns (nil, nil) when the job does not exist.
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, input *JobCreateInput) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $2, company = $3, location = $4, description = $5,
		     requirements = $6, skills = $7, experience = $8, salary = $9,
		     job_type = $10, application_url = $11
		 WHERE id = $1
		 RETURNING `+jobColumns,
		id, input.Title, input.Company, input.Location, input.Description,
		nonNilStrings(input.Requirements), nonNilStrings(input.Skills),
		input.Experience, input.Salary, input.JobType, input.ApplicationURL,
	)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job by ID. Returns false when the job did not exist.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindJobByTitleCompany looks up a job by exact title and company, used by
// the importer to skip postings already ingested. Returns (nil, nil) when
// absent.
func (db *DB) FindJobByTitleCompany(ctx context.Context, title, company string) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE title = $1 AND company = $2 LIMIT 1`,
		title, company)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return job, nil
}

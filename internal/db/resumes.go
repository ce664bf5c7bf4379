package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const resumeColumns = `id, name, email, phone, skills, experience, education,
       resume_file, parsed_text, created_at`

func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	var experienceJSON, educationJSON []byte

	err := row.Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.Skills,
		&experienceJSON, &educationJSON, &r.ResumeFile, &r.ParsedText, &r.CreatedAt)
	if err != nil {
		return nil, err
	}

	// Parse JSONB fields
	if experienceJSON != nil {
		_ = json.Unmarshal(experienceJSON, &r.Experience)
	}
	if educationJSON != nil {
		_ = json.Unmarshal(educationJSON, &r.Education)
	}

	return &r, nil
}

func collectResumes(rows pgx.Rows) ([]Resume, error) {
	defer rows.Close()

	resumes := make([]Resume, 0)
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}

// CreateResume inserts a resume record; the store assigns id and created_at.
func (db *DB) CreateResume(ctx context.Context, input *ResumeCreateInput) (*Resume, error) {
	experienceJSON, err := json.Marshal(nonNilExperience(input.Experience))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal experience: %w", err)
	}
	educationJSON, err := json.Marshal(nonNilEducation(input.Education))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal education: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (name, email, phone, skills, experience, education,
		                      resume_file, parsed_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+resumeColumns,
		input.Name, input.Email, input.Phone, nonNilStrings(input.Skills),
		experienceJSON, educationJSON, input.ResumeFile, input.ParsedText,
	)
	resume, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

// ListResumes returns all resumes, newest first.
func (db *DB) ListResumes(ctx context.Context) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return collectResumes(rows)
}

// GetResume retrieves a resume by ID. Returns (nil, nil) when absent.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	resume, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

func nonNilExperience(e []ExperienceEntry) []ExperienceEntry {
	if e == nil {
		return []ExperienceEntry{}
	}
	return e
}

func nonNilEducation(e []EducationEntry) []EducationEntry {
	if e == nil {
		return []EducationEntry{}
	}
	return e
}

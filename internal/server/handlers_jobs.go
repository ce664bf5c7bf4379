package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vikashvikku/resumerag/internal/db"
	"github.com/vikashvikku/resumerag/internal/extraction"
)

var validate = validator.New()

// JobRequest is the request body for creating or fully updating a job.
type JobRequest struct {
	Title          string   `json:"title" validate:"required"`
	Company        string   `json:"company" validate:"required"`
	Location       string   `json:"location"`
	Description    string   `json:"description" validate:"required"`
	Requirements   []string `json:"requirements"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience" validate:"omitempty,oneof=Senior Mid-level Entry-level 'Not specified'"`
	Salary         string   `json:"salary"`
	JobType        string   `json:"jobType" validate:"omitempty,oneof=Full-time Part-time Contract Internship Remote"`
	ApplicationURL string   `json:"applicationUrl"`
}

// toInput applies defaults and converts to the store input shape.
func (r *JobRequest) toInput() *db.JobCreateInput {
	jobType := r.JobType
	if jobType == "" {
		jobType = extraction.JobTypeFullTime
	}
	experience := r.Experience
	if experience == "" {
		experience = extraction.SeniorityNotSpecified
	}

	return &db.JobCreateInput{
		Title:          r.Title,
		Company:        r.Company,
		Location:       r.Location,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Skills:         r.Skills,
		Experience:     experience,
		Salary:         r.Salary,
		JobType:        jobType,
		ApplicationURL: r.ApplicationURL,
	}
}

// decodeJobRequest parses and validates a job request body.
func decodeJobRequest(r *http.Request) (*JobRequest, error) {
	var req JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := validate.Struct(&req); err != nil {
		return nil, firstValidationError(err)
	}
	return &req, nil
}

// handleCreateJob creates a job record.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJobRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	job, err := s.store.CreateJob(r.Context(), req.toInput())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs returns all jobs, newest first.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleGetJob retrieves a job by its ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJob replaces every mutable field of a job.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	req, err := decodeJobRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	job, err := s.store.UpdateJob(r.Context(), id, req.toInput())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob removes a job by its ID.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	deleted, err := s.store.DeleteJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job deleted successfully"})
}

// handleSearchJobs runs a keyword relevance search over jobs.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.SearchJobs(r.Context(), r.PathValue("query"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleAdvancedSearchJobs applies structured filter criteria from query
// parameters; all provided criteria AND together.
func (s *Server) handleAdvancedSearchJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := db.JobFilter{
		Title:      q.Get("title"),
		Company:    q.Get("company"),
		Location:   q.Get("location"),
		JobType:    q.Get("jobType"),
		Experience: q.Get("experienceLevel"),
	}

	if v := q.Get("minSalary"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "minSalary must be numeric")
			return
		}
		filter.MinSalary = &min
	}
	if v := q.Get("maxSalary"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "maxSalary must be numeric")
			return
		}
		filter.MaxSalary = &max
	}
	if v := q.Get("skills"); v != "" {
		for _, skill := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				filter.Skills = append(filter.Skills, trimmed)
			}
		}
	}

	jobs, err := s.store.AdvancedSearchJobs(r.Context(), filter)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

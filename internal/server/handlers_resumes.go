package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vikashvikku/resumerag/internal/db"
	"github.com/vikashvikku/resumerag/internal/doctext"
	"github.com/vikashvikku/resumerag/internal/parsing"
)

const maxUploadBytes = 10 << 20 // 10 MB

// handleUploadResume accepts a multipart resume upload, extracts text and
// contact details from the document, and stores the record. Form fields
// name, email and phone act as fallbacks when parsing finds nothing.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No resume file uploaded")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if !doctext.AllowedExtension(filename) {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF, DOC, DOCX and TXT files are allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)
	if err := s.saveUpload(storedName, data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	text, err := doctext.ExtractText(filename, data)
	if err != nil {
		log.Printf("[server] text extraction failed for %s: %v", filename, err)
		text = ""
	}

	contact := parsing.ExtractContact(text, r.FormValue("email"), r.FormValue("phone"))
	name := r.FormValue("name")
	if name == "" {
		name = "Unknown"
	}
	if contact.Email == "" {
		s.errorResponse(w, http.StatusBadRequest, "Email is required; none was parsed or provided")
		return
	}

	input := &db.ResumeCreateInput{
		Name:       name,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Skills:     s.extractor.Extract(text),
		ParsedText: text,
		ResumeFile: storedName,
	}

	resume, err := s.store.CreateResume(r.Context(), input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// saveUpload writes the original document under the upload directory.
func (s *Server) saveUpload(name string, data []byte) error {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.uploadDir, name), data, 0o644)
}

// handleListResumes returns all resumes, newest first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.ListResumes(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume retrieves a resume by its ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleSearchResumes runs a keyword relevance search over resumes.
func (s *Server) handleSearchResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.SearchResumes(r.Context(), r.PathValue("query"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleMatchResumes ranks stored resumes against a job posting. Results keep
// the relevance order of the underlying search; each entry carries the
// percentage of the job's skills the resume covers.
func (s *Server) handleMatchResumes(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("jobId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	matches, err := s.scorer.MatchResumes(r.Context(), job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, matches)
}

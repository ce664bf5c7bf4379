package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikashvikku/resumerag/internal/db"
	"github.com/vikashvikku/resumerag/internal/matching"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	jobs    map[uuid.UUID]*db.Job
	resumes []db.Resume

	lastFilter      db.JobFilter
	lastSearchQuery string
	createErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{jobs: make(map[uuid.UUID]*db.Job)}
}

func (f *fakeStore) CreateJob(_ context.Context, input *db.JobCreateInput) (*db.Job, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	job := &db.Job{
		ID:             uuid.New(),
		Title:          input.Title,
		Company:        input.Company,
		Location:       input.Location,
		Description:    input.Description,
		Requirements:   input.Requirements,
		Skills:         input.Skills,
		Experience:     input.Experience,
		Salary:         input.Salary,
		JobType:        input.JobType,
		ApplicationURL: input.ApplicationURL,
	}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeStore) ListJobs(_ context.Context) ([]db.Job, error) {
	var out []db.Job
	for _, j := range f.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (f *fakeStore) GetJob(_ context.Context, id uuid.UUID) (*db.Job, error) {
	return f.jobs[id], nil
}

func (f *fakeStore) UpdateJob(_ context.Context, id uuid.UUID, input *db.JobCreateInput) (*db.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	job.Title = input.Title
	job.Company = input.Company
	job.Description = input.Description
	job.JobType = input.JobType
	return job, nil
}

func (f *fakeStore) DeleteJob(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.jobs[id]; !ok {
		return false, nil
	}
	delete(f.jobs, id)
	return true, nil
}

func (f *fakeStore) SearchJobs(_ context.Context, query string) ([]db.Job, error) {
	f.lastSearchQuery = query
	return nil, nil
}

func (f *fakeStore) AdvancedSearchJobs(_ context.Context, filter db.JobFilter) ([]db.Job, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeStore) CreateResume(_ context.Context, input *db.ResumeCreateInput) (*db.Resume, error) {
	resume := db.Resume{
		ID:         uuid.New(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Skills:     input.Skills,
		ResumeFile: input.ResumeFile,
		ParsedText: input.ParsedText,
	}
	f.resumes = append(f.resumes, resume)
	return &resume, nil
}

func (f *fakeStore) ListResumes(_ context.Context) ([]db.Resume, error) {
	return f.resumes, nil
}

func (f *fakeStore) GetResume(_ context.Context, id uuid.UUID) (*db.Resume, error) {
	for i := range f.resumes {
		if f.resumes[i].ID == id {
			return &f.resumes[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SearchResumes(_ context.Context, query string) ([]db.Resume, error) {
	f.lastSearchQuery = query
	return f.resumes, nil
}

func newTestServer(t *testing.T) (*Server, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	s := newWithStore(store, t.TempDir())
	return s, store
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestCreateJob(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"title":"Backend Engineer","company":"Acme","description":"Build APIs in Go"}`
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))
	rec := doRequest(s, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var job db.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Full-time", job.JobType)
	assert.Equal(t, "Not specified", job.Experience)
}

func TestCreateJobValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing title", `{"company":"Acme","description":"desc"}`, "Title"},
		{"missing company", `{"title":"Engineer","description":"desc"}`, "Company"},
		{"missing description", `{"title":"Engineer","company":"Acme"}`, "Description"},
		{"bad job type", `{"title":"Engineer","company":"Acme","description":"desc","jobType":"Gig"}`, "JobType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t)
			req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(tt.body))
			rec := doRequest(s, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.field)
		})
	}
}

func TestGetJobNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+uuid.NewString(), nil)
	rec := doRequest(s, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job not found")
}

func TestGetJobInvalidID(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/not-a-uuid", nil)
	rec := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid job ID")
}

func TestDeleteJob(t *testing.T) {
	s, store := newTestServer(t)
	job, err := store.CreateJob(context.Background(), &db.JobCreateInput{Title: "X", Company: "Y", Description: "Z"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/jobs/"+job.ID.String(), nil)
	rec := doRequest(s, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job deleted successfully")

	rec = doRequest(s, httptest.NewRequest(http.MethodDelete, "/api/jobs/"+job.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchJobsPassesQuery(t *testing.T) {
	s, store := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/search/golang%20developer", nil)
	rec := doRequest(s, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "golang developer", store.lastSearchQuery)
}

func TestAdvancedSearchParsesFilter(t *testing.T) {
	s, store := newTestServer(t)

	url := "/api/jobs/search/advanced?title=engineer&company=acme&location=remote" +
		"&jobType=Contract&minSalary=50000&maxSalary=90000&skills=Go,%20PostgreSQL&experienceLevel=Senior"
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	f := store.lastFilter
	assert.Equal(t, "engineer", f.Title)
	assert.Equal(t, "acme", f.Company)
	assert.Equal(t, "remote", f.Location)
	assert.Equal(t, "Contract", f.JobType)
	assert.Equal(t, "Senior", f.Experience)
	require.NotNil(t, f.MinSalary)
	assert.Equal(t, 50000.0, *f.MinSalary)
	require.NotNil(t, f.MaxSalary)
	assert.Equal(t, 90000.0, *f.MaxSalary)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, f.Skills)
}

func TestAdvancedSearchRejectsBadSalary(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/jobs/search/advanced?minSalary=lots", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "minSalary must be numeric")
}

func TestMatchResumes(t *testing.T) {
	s, store := newTestServer(t)
	job, err := store.CreateJob(context.Background(), &db.JobCreateInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "d",
		Skills:      []string{"Go", "PostgreSQL"},
	})
	require.NoError(t, err)
	store.resumes = []db.Resume{
		{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Skills: []string{"Go"}},
	}

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/resumes/match/"+job.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var matches []matching.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, 50, matches[0].MatchPercentage)
}

func TestMatchResumesJobNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/resumes/match/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job not found")
}

func multipartUpload(t *testing.T, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadResume(t *testing.T) {
	s, store := newTestServer(t)

	content := "Jane Doe\njane@example.com\nExperienced with Python and Docker."
	rec := doRequest(s, multipartUpload(t, "resume.txt", content, map[string]string{"name": "Jane Doe"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.resumes, 1)
	stored := store.resumes[0]
	assert.Equal(t, "Jane Doe", stored.Name)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, []string{"Python", "Docker"}, stored.Skills)
	assert.Contains(t, stored.ResumeFile, "resume.txt")
}

func TestUploadResumeRejectsExtension(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, multipartUpload(t, "resume.exe", "content", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "allowed")
}

func TestUploadResumeRequiresEmail(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, multipartUpload(t, "resume.txt", "no contact details here", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is required")
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/vikashvikku/resumerag/internal/db"
	"github.com/vikashvikku/resumerag/internal/extraction"
	"github.com/vikashvikku/resumerag/internal/matching"
)

// Store is the document-store surface the handlers depend on, implemented by
// *db.DB.
type Store interface {
	CreateJob(ctx context.Context, input *db.JobCreateInput) (*db.Job, error)
	ListJobs(ctx context.Context) ([]db.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, input *db.JobCreateInput) (*db.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) (bool, error)
	SearchJobs(ctx context.Context, query string) ([]db.Job, error)
	AdvancedSearchJobs(ctx context.Context, filter db.JobFilter) ([]db.Job, error)

	CreateResume(ctx context.Context, input *db.ResumeCreateInput) (*db.Resume, error)
	ListResumes(ctx context.Context) ([]db.Resume, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	SearchResumes(ctx context.Context, query string) ([]db.Resume, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	extractor  *extraction.SkillExtractor
	scorer     *matching.Scorer
	uploadDir  string
	closeStore func()
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	UploadDir   string
}

// New creates a new server instance connected to the database.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	s := newWithStore(database, cfg.UploadDir)
	s.closeStore = database.Close

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newWithStore wires the handlers over any Store; used directly by tests.
func newWithStore(store Store, uploadDir string) *Server {
	extractor := extraction.NewSkillExtractor(extraction.DefaultSkillVocabulary)
	for _, w := range extractor.Warnings() {
		log.Printf("[server] %s", w)
	}
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	return &Server{
		store:     store,
		extractor: extractor,
		scorer:    matching.NewScorer(store),
		uploadDir: uploadDir,
	}
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Job endpoints
	mux.HandleFunc("POST /api/jobs", s.handleCreateJob)
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("GET /api/jobs/search/advanced", s.handleAdvancedSearchJobs)
	mux.HandleFunc("GET /api/jobs/search/{query}", s.handleSearchJobs)
	mux.HandleFunc("GET /api/jobs/{id}", s.handleGetJob)
	mux.HandleFunc("PUT /api/jobs/{id}", s.handleUpdateJob)
	mux.HandleFunc("DELETE /api/jobs/{id}", s.handleDeleteJob)

	// Resume endpoints
	mux.HandleFunc("POST /api/resumes/upload", s.handleUploadResume)
	mux.HandleFunc("GET /api/resumes", s.handleListResumes)
	mux.HandleFunc("GET /api/resumes/search/{query}", s.handleSearchResumes)
	mux.HandleFunc("GET /api/resumes/match/{jobId}", s.handleMatchResumes)
	mux.HandleFunc("GET /api/resumes/{id}", s.handleGetResume)

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.closeStore != nil {
		s.closeStore()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

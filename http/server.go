// Package http provides the HTTP API server for headscan.
package http

import (
	"log/slog"
	"net/http"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	log    *slog.Logger

	documents headscan.DocumentService
	checker   headscan.CannibalizationChecker
}

// NewServer creates and configures the HTTP server.
func NewServer(documents headscan.DocumentService, checker headscan.CannibalizationChecker, log *slog.Logger) *Server {
	s := &Server{
		log:       log,
		documents: documents,
		checker:   checker,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Post("/api/analyze", s.handleAnalyze)
	r.Post("/api/toc", s.handleTOC)
	r.Post("/api/cannibalization", s.handleCannibalization)

	r.Post("/api/documents", s.handleCreateDocument)
	r.Get("/api/documents", s.handleListDocuments)
	r.Get("/api/documents/{docID}", s.handleGetDocument)
	r.Delete("/api/documents/{docID}", s.handleDeleteDocument)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

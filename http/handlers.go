package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/go-chi/chi/v5"
)

// analyzeRequest is the shared request body for the analysis endpoints.
// A nil Config means defaults.
type analyzeRequest struct {
	Content   string           `json:"content"`
	Title     string           `json:"title"`
	ExcludeID string           `json:"excludeId"`
	Config    *headscan.Config `json:"config"`
}

func (req *analyzeRequest) config() headscan.Config {
	if req.Config == nil {
		return headscan.DefaultConfig()
	}
	return req.Config.Normalize()
}

// handleAnalyze runs the heading structure analysis on submitted content.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		jsonError(w, "content is required", http.StatusBadRequest)
		return
	}

	analysis := headscan.Analyze(req.Content, req.Title, req.config())

	writeJSON(w, http.StatusOK, analysis)
}

// handleTOC builds a table of contents and returns the content with
// heading ids injected and the TOC inserted.
func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		jsonError(w, "content is required", http.StatusBadRequest)
		return
	}

	cfg := req.config()
	content := headscan.AddHeadingIDs(req.Content, cfg.HeadingLevels)
	toc := headscan.BuildTOC(content, cfg.TOCTitle, cfg)

	writeJSON(w, http.StatusOK, map[string]any{
		"toc":     toc,
		"content": headscan.InsertTOC(content, toc, cfg.TOCInsertPosition),
	})
}

// handleCannibalization compares submitted content against the stored corpus.
func (s *Server) handleCannibalization(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	cfg := req.config()
	headlines := headscan.ExtractHeadings(req.Content, cfg.HeadingLevels)
	texts := make([]string, 0, len(headlines))
	for _, h := range headlines {
		texts = append(texts, h.Text)
	}

	matches, err := s.checker.Check(r.Context(), texts, req.Title, req.ExcludeID, cfg)
	if err != nil {
		errorResponse(w, err)
		return
	}
	if matches == nil {
		matches = []headscan.CannibalizationMatch{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleCreateDocument stores a document in the corpus.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var doc headscan.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.documents.CreateDocument(r.Context(), &doc); err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &doc)
}

// handleListDocuments lists published documents, most recent first.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	var filter headscan.DocumentFilter
	q := r.URL.Query()
	if v := q.Get("type"); v != "" {
		filter.Types = []string{v}
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			jsonError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	docs, err := s.documents.FindPublishedDocuments(r.Context(), filter)
	if err != nil {
		errorResponse(w, err)
		return
	}
	if docs == nil {
		docs = []*headscan.Document{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

// handleGetDocument retrieves a single document by id.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.FindDocumentByID(r.Context(), chi.URLParam(r, "docID"))
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleDeleteDocument removes a document from the corpus.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.documents.DeleteDocument(r.Context(), chi.URLParam(r, "docID")); err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// errorResponse maps domain error codes onto HTTP status codes.
func errorResponse(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch headscan.ErrorCode(err) {
	case headscan.EINVALID:
		code = http.StatusBadRequest
	case headscan.ENOTFOUND:
		code = http.StatusNotFound
	case headscan.ECONFLICT:
		code = http.StatusConflict
	}
	jsonError(w, headscan.ErrorMessage(err), code)
}

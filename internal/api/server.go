// Package api exposes the contract analysis pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/legal-search/internal/config"
	"github.com/sells-group/legal-search/internal/pipeline"
)

// Server wires the pipeline into HTTP handlers.
type Server struct {
	pipeline *pipeline.Pipeline
	cfg      config.ServerConfig
}

// NewServer creates the HTTP server wrapper around the pipeline.
func NewServer(p *pipeline.Pipeline, cfg config.ServerConfig) *Server {
	return &Server{pipeline: p, cfg: cfg}
}

// Router builds the chi router with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.Get("/", s.handleRoot)
	r.Route("/api/legal", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/health", s.handleHealth)
	})

	return r
}

type analyzeRequest struct {
	ContractText string `json:"contract_text"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Minimum-length validation lives at this boundary; the pipeline itself
	// accepts any non-empty text.
	minLen := s.cfg.MinTextLength
	if len(strings.TrimSpace(req.ContractText)) < minLen {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("contract text must be at least %d characters long", minLen))
		return
	}

	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.RequestTimeout)*time.Second)
		defer cancel()
	}

	result, err := s.pipeline.AnalyzeAndSearch(ctx, req.ContractText)
	if err != nil {
		zap.L().Error("api: analysis failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "legal-search-api",
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Legal Search API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"analyze": "/api/legal/analyze",
			"health":  "/api/legal/health",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("api: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

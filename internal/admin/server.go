// Package admin provides an HTTP-based operational API: a decision
// dump for on-call debugging, a force-evaluate trigger, and the
// Prometheus scrape endpoint, following the teacher's admin server
// shape (options, mux, writeJSON, audit+rate-limit middleware).
package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emperorhan/auto-data-switch-controller/internal/engine"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBodyBytes = 1 << 20 // 1 MB

// EngineInspector exposes the read-only state the dump endpoint
// reports, satisfied by *engine.Engine.
type EngineInspector interface {
	Snapshot() engine.Snapshot
}

// EngineEvaluator exposes the force-evaluate trigger.
type EngineEvaluator interface {
	ForceEvaluate()
}

// Server provides the admin HTTP API for one running ADSC instance.
type Server struct {
	inspector EngineInspector
	evaluator EngineEvaluator
	logger    *slog.Logger
	rateLimit *RateLimitMiddleware
}

// ServerOption configures optional Server behavior.
type ServerOption func(*Server)

// WithRateLimitMiddleware overrides the default per-IP rate limiter.
func WithRateLimitMiddleware(rl *RateLimitMiddleware) ServerOption {
	return func(s *Server) { s.rateLimit = rl }
}

// NewServer creates an admin API server bound to one engine.
func NewServer(inspector EngineInspector, evaluator EngineEvaluator, logger *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		inspector: inspector,
		evaluator: evaluator,
		logger:    logger.With("component", "admin"),
		rateLimit: NewRateLimitMiddleware(logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close stops the rate limiter's background cleanup goroutine.
func (s *Server) Close() {
	s.rateLimit.Stop()
}

// Handler returns the HTTP handler for the admin API, wrapped in
// rate-limiting and audit middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/v1/dump", s.handleDump)
	mux.HandleFunc("POST /admin/v1/force-evaluate", s.handleForceEvaluate)
	mux.Handle("GET /metrics", promhttp.Handler())

	return AuditMiddleware(s.logger, s.rateLimit.Wrap(mux))
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.inspector.Snapshot())
}

func (s *Server) handleForceEvaluate(w http.ResponseWriter, r *http.Request) {
	s.evaluator.ForceEvaluate()
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "evaluation requested"})
}

// writeJSON writes v as JSON with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Package status declares the optional HTTP listener that exposes a
// running season retrieval: Prometheus metrics, a JSON progress
// snapshot and a small embedded progress page.
package status

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/boxscore/internal/domain/types"
)

// ProgressProvider supplies the point-in-time run snapshot served at
// /progress. Using an interface keeps the handler layer loosely
// coupled to the pipeline.
type ProgressProvider interface {
	Progress() types.Progress
}

// Server wires HTTP routes for the status listener.
type Server struct {
	healthHandler   *HealthHandler
	progressHandler *ProgressHandler
	indexHandler    *indexHandler
}

// NewServer creates a new status server with all handlers.
func NewServer(provider ProgressProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		progressHandler: NewProgressHandler(provider),
		indexHandler:    newIndexHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/progress", MetricsMiddleware(s.progressHandler.HandleProgress, "progress"))
	mux.HandleFunc("/", s.indexHandler.HandleIndex)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

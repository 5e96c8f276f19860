// Package api pkg/api/server.go exposes the analyzer over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mfreeman451/regionpulse/pkg/analyzer"
	"github.com/mfreeman451/regionpulse/pkg/httpx"
	"github.com/mfreeman451/regionpulse/pkg/models"
	"github.com/rs/zerolog/log"
)

// APIServer routes analyze and status requests to the analyzer service.
type APIServer struct {
	analyzer AnalyzerService
	router   *mux.Router
}

// NewAPIServer creates the server and wires its routes and middleware.
func NewAPIServer(svc AnalyzerService, rateLimit float64, rateBurst int) *APIServer {
	s := &APIServer{
		analyzer: svc,
		router:   mux.NewRouter(),
	}
	s.setupRoutes(rateLimit, rateBurst)

	return s
}

// Router returns the configured handler, mainly for tests and lifecycle wiring.
func (s *APIServer) Router() http.Handler {
	return s.router
}

func (s *APIServer) setupRoutes(rateLimit float64, rateBurst int) {
	s.router.Use(httpx.CommonMiddleware)
	s.router.Use(httpx.RequestLogger)
	s.router.Use(httpx.RateLimit(rateLimit, rateBurst))

	s.router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	s.router.HandleFunc("/analyze", s.handlePreflight).Methods(http.MethodOptions)
	s.router.HandleFunc("/", s.handleStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleStatus).Methods(http.MethodGet)
}

func (s *APIServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// An empty list is valid, an absent field is not.
	if req.Regions == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: regions")
		return
	}

	results, err := s.analyzer.Analyze(r.Context(), &req)
	if err != nil {
		var unknownErr *analyzer.UnknownRegionsError
		if errors.As(err, &unknownErr) {
			writeError(w, http.StatusBadRequest, unknownErr.Error())
			return
		}

		log.Error().Err(err).Msg("Analyze request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	// Canonical response shape: the region->metrics mapping, unwrapped.
	writeJSON(w, http.StatusOK, results)
}

// handlePreflight answers CORS preflight with an empty body; the allow
// headers are set by CommonMiddleware.
func (*APIServer) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleStatus serves the liveness probes on / and /health. It never touches
// the dataset, so it stays 200 even when the dataset fails to load.
func (*APIServer) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "regionpulse",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// Start serves the API on addr, blocking until the listener fails.
func (s *APIServer) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

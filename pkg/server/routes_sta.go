package server

import (
	"io"
	"net/http"
	"time"

	"github.com/yesoreyeram/neram/pkg/engine"
	"github.com/yesoreyeram/neram/pkg/telemetry"
)

// handleAnalyze runs a full analysis (including critical paths) on the
// posted payload.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	startTime := time.Now()
	eng, err := engine.NewWithConfig(body, s.engineConfig)
	if err != nil {
		s.writeErrorResponse(w, "Failed to create engine", http.StatusBadRequest, err)
		return
	}

	eng.RegisterObserver(telemetry.NewTelemetryObserver(s.telemetryProvider))

	report, err := eng.Report(r.Context(), 0)
	duration := time.Since(startTime)

	if err != nil {
		s.writeErrorResponse(w, "Analysis failed", http.StatusInternalServerError, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"analysis_id":   eng.AnalysisID(),
		"report":        report,
		"analysis_time": duration.String(),
	})
}

// handleValidate checks that the posted payload parses into an analyzable
// netlist without running the sweeps.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	eng, err := engine.NewWithConfig(body, s.engineConfig)
	if err != nil {
		s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"valid":       true,
		"nets":        eng.Graph().NodeCount(),
		"edges":       eng.Graph().EdgeCount(),
		"startpoints": len(eng.Startpoints()),
		"endpoints":   len(eng.Endpoints()),
	})
}

// readBody reads the request body under the configured size limit.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeErrorResponse(w, "Failed to read request body", http.StatusBadRequest, err)
		return nil, false
	}
	return body, true
}

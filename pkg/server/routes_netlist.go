package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/yesoreyeram/neram/pkg/engine"
	"github.com/yesoreyeram/neram/pkg/storage"
	"github.com/yesoreyeram/neram/pkg/telemetry"
	"github.com/yesoreyeram/neram/pkg/types"
)

// saveNetlistRequest is the body of POST /api/v1/netlist/save.
type saveNetlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

// handleNetlistSave stores a netlist and returns its ID.
func (s *Server) handleNetlistSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var req saveNetlistRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeErrorResponse(w, "Invalid save request", http.StatusBadRequest, err)
		return
	}

	id, err := s.store.Save(req.Name, req.Description, req.Source)
	if err != nil {
		s.writeErrorResponse(w, "Failed to save netlist", http.StatusBadRequest, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      id,
	})
}

// handleNetlistList returns the summaries of all stored netlists.
func (s *Server) handleNetlistList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"netlists": s.store.List(),
	})
}

// handleNetlistLoad returns one stored netlist by ID.
func (s *Server) handleNetlistLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := pathSuffix(r.URL.Path, "/api/v1/netlist/load/")
	netlist, err := s.store.Load(id)
	if err != nil {
		s.writeErrorResponse(w, "Failed to load netlist", storeStatus(err), err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"netlist": netlist,
	})
}

// handleNetlistDelete removes one stored netlist by ID.
func (s *Server) handleNetlistDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := pathSuffix(r.URL.Path, "/api/v1/netlist/delete/")
	if err := s.store.Delete(id); err != nil {
		s.writeErrorResponse(w, "Failed to delete netlist", storeStatus(err), err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// handleNetlistAnalyze analyzes a stored netlist. The optional request
// body carries the same clock parameters as the analyze payload.
func (s *Server) handleNetlistAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := pathSuffix(r.URL.Path, "/api/v1/netlist/analyze/")
	stored, err := s.store.Load(id)
	if err != nil {
		s.writeErrorResponse(w, "Failed to load netlist", storeStatus(err), err)
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	// Reuse the analyze payload shape for overrides; the netlist source
	// comes from the store.
	var payload types.Payload
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			s.writeErrorResponse(w, "Invalid analyze request", http.StatusBadRequest, err)
			return
		}
	}
	payload.Netlist = stored.Source
	payload.NetlistID = stored.ID

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		s.writeErrorResponse(w, "Failed to assemble payload", http.StatusInternalServerError, err)
		return
	}

	eng, err := engine.NewWithConfig(payloadJSON, s.engineConfig)
	if err != nil {
		s.writeErrorResponse(w, "Failed to create engine", http.StatusBadRequest, err)
		return
	}

	eng.RegisterObserver(telemetry.NewTelemetryObserver(s.telemetryProvider))

	report, err := eng.Report(r.Context(), 0)
	if err != nil {
		s.writeErrorResponse(w, "Analysis failed", http.StatusInternalServerError, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"analysis_id": eng.AnalysisID(),
		"netlist_id":  stored.ID,
		"report":      report,
	})
}

// pathSuffix extracts the trailing path element after a route prefix.
func pathSuffix(path, prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(path, prefix), "/")
}

// storeStatus maps store errors onto HTTP status codes.
func storeStatus(err error) int {
	if errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

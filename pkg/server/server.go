package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yesoreyeram/neram/pkg/config"
	"github.com/yesoreyeram/neram/pkg/health"
	"github.com/yesoreyeram/neram/pkg/logging"
	"github.com/yesoreyeram/neram/pkg/storage"
	"github.com/yesoreyeram/neram/pkg/telemetry"
)

// Config holds server configuration
type Config struct {
	// Address to listen on (e.g., ":8080")
	Address string

	// ReadTimeout for HTTP requests
	ReadTimeout time.Duration

	// WriteTimeout for HTTP responses
	WriteTimeout time.Duration

	// ShutdownTimeout for graceful shutdown
	ShutdownTimeout time.Duration

	// MaxRequestBodySize limits request body size
	MaxRequestBodySize int64

	// EnableCORS enables CORS headers
	EnableCORS bool
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Address:            ":8080",
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 10 * 1024 * 1024, // 10MB
		EnableCORS:         true,
	}
}

// Server is the HTTP API server
type Server struct {
	config            Config
	httpServer        *http.Server
	healthChecker     *health.Checker
	telemetryProvider *telemetry.Provider
	logger            *logging.Logger
	engineConfig      *config.Config
	store             storage.Store
}

// New creates a new server instance
func New(cfg Config, engineConfig *config.Config) (*Server, error) {
	if err := engineConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}

	logger := logging.New(logging.DefaultConfig())

	telemetryProvider, err := telemetry.NewProvider(context.Background(), telemetry.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry provider: %w", err)
	}

	healthChecker := health.NewChecker("neram-timing-engine", "0.1.0")
	healthChecker.RegisterCheck("engine", func(ctx context.Context) error {
		// The engine is pure computation; serving at all means ready.
		return nil
	}, 5*time.Second, true)

	server := &Server{
		config:            cfg,
		healthChecker:     healthChecker,
		telemetryProvider: telemetryProvider,
		logger:            logger,
		engineConfig:      engineConfig,
		store:             storage.NewInMemoryStore(),
	}

	mux := http.NewServeMux()
	server.registerRoutes(mux)

	server.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      server.middlewareChain(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, nil
}

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health endpoints
	mux.HandleFunc("/health", s.healthChecker.HTTPHandler())
	mux.HandleFunc("/health/live", s.healthChecker.LivenessHandler())
	mux.HandleFunc("/health/ready", s.healthChecker.ReadinessHandler())

	// Metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Analysis endpoints
	mux.HandleFunc("/api/v1/sta/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/v1/sta/validate", s.handleValidate)

	// Netlist store endpoints
	mux.HandleFunc("/api/v1/netlist/save", s.handleNetlistSave)
	mux.HandleFunc("/api/v1/netlist/list", s.handleNetlistList)
	mux.HandleFunc("/api/v1/netlist/load/", s.handleNetlistLoad)
	mux.HandleFunc("/api/v1/netlist/delete/", s.handleNetlistDelete)
	mux.HandleFunc("/api/v1/netlist/analyze/", s.handleNetlistAnalyze)
}

// middlewareChain applies middleware to the handler
func (s *Server) middlewareChain(handler http.Handler) http.Handler {
	if s.config.EnableCORS {
		handler = s.corsMiddleware(handler)
	}
	handler = s.loggingMiddleware(handler)
	handler = s.recoveryMiddleware(handler)
	return handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting server", "address", s.config.Address)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	if err := s.telemetryProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown telemetry: %w", err)
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// writeJSONResponse writes a JSON response
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// writeErrorResponse writes an error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int, err error) {
	s.logger.WithError(err).Error(message, "status_code", statusCode)

	s.writeJSONResponse(w, statusCode, map[string]interface{}{
		"success": false,
		"error":   message,
		"details": err.Error(),
	})
}

// corsMiddleware adds CORS headers
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(startTime)

		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"remote_addr", r.RemoteAddr)
	})
}

// recoveryMiddleware recovers from panics
func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"path", r.URL.Path)

				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

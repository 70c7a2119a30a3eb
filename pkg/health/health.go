package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Status represents the health status
type Status string

const (
	// StatusHealthy indicates the component is healthy
	StatusHealthy Status = "healthy"

	// StatusUnhealthy indicates the component is unhealthy
	StatusUnhealthy Status = "unhealthy"
)

// CheckFunc is a function that performs a health check
type CheckFunc func(ctx context.Context) error

// check is one registered health check with its timeout and criticality.
type check struct {
	name      string
	checkFunc CheckFunc
	timeout   time.Duration
	critical  bool
}

// Checker manages health checks for the service
type Checker struct {
	checks []*check
	mu     sync.RWMutex

	serviceName    string
	serviceVersion string
	startTime      time.Time
}

// Response is the health check response body
type Response struct {
	Status         Status                 `json:"status"`
	ServiceName    string                 `json:"service_name"`
	ServiceVersion string                 `json:"service_version"`
	Uptime         string                 `json:"uptime"`
	Timestamp      time.Time              `json:"timestamp"`
	Checks         map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the result of a single health check
type CheckResult struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewChecker creates a new health checker
func NewChecker(serviceName, serviceVersion string) *Checker {
	return &Checker{
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
		startTime:      time.Now(),
	}
}

// RegisterCheck registers a new health check. Critical checks flip the
// whole service unhealthy on failure.
func (c *Checker) RegisterCheck(name string, fn CheckFunc, timeout time.Duration, critical bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checks = append(c.checks, &check{
		name:      name,
		checkFunc: fn,
		timeout:   timeout,
		critical:  critical,
	})
}

// Check performs all registered health checks
func (c *Checker) Check(ctx context.Context) Response {
	c.mu.RLock()
	checks := make([]*check, len(c.checks))
	copy(checks, c.checks)
	c.mu.RUnlock()

	results := make(map[string]CheckResult, len(checks))
	overall := StatusHealthy

	for _, ch := range checks {
		result := runCheck(ctx, ch)
		results[ch.name] = result

		if ch.critical && result.Status == StatusUnhealthy {
			overall = StatusUnhealthy
		}
	}

	return Response{
		Status:         overall,
		ServiceName:    c.serviceName,
		ServiceVersion: c.serviceVersion,
		Uptime:         time.Since(c.startTime).String(),
		Timestamp:      time.Now(),
		Checks:         results,
	}
}

// runCheck executes a single health check with its timeout.
func runCheck(ctx context.Context, ch *check) CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, ch.timeout)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- ch.checkFunc(checkCtx)
	}()

	var err error
	select {
	case err = <-errChan:
	case <-checkCtx.Done():
		err = fmt.Errorf("health check timed out after %v", ch.timeout)
	}

	if err != nil {
		return CheckResult{Status: StatusUnhealthy, Error: err.Error()}
	}
	return CheckResult{Status: StatusHealthy}
}

// Liveness returns a simple liveness response (healthy whenever the
// process is serving).
func (c *Checker) Liveness(ctx context.Context) Response {
	return Response{
		Status:         StatusHealthy,
		ServiceName:    c.serviceName,
		ServiceVersion: c.serviceVersion,
		Uptime:         time.Since(c.startTime).String(),
		Timestamp:      time.Now(),
	}
}

// Readiness performs all checks and returns readiness status
func (c *Checker) Readiness(ctx context.Context) Response {
	return c.Check(ctx)
}

// HTTPHandler returns an HTTP handler for health checks
func (c *Checker) HTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, c.Check(r.Context()))
	}
}

// LivenessHandler returns an HTTP handler for liveness probes
func (c *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := c.Liveness(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}
}

// ReadinessHandler returns an HTTP handler for readiness probes
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, c.Readiness(r.Context()))
	}
}

func writeResponse(w http.ResponseWriter, response Response) {
	w.Header().Set("Content-Type", "application/json")

	statusCode := http.StatusOK
	if response.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// Command server starts the neram timing engine HTTP API server.
//
// Usage:
//
//	server [flags]
//
// Flags:
//
//	-addr string
//	    Server address (default ":8080")
//	-read-timeout duration
//	    HTTP read timeout (default 30s)
//	-write-timeout duration
//	    HTTP write timeout (default 30s)
//	-tclk float
//	    Default clock period in seconds (default 1.0)
//	-setup float
//	    Default setup time in seconds (default 0.05)
//	-clock-to-q float
//	    Default clock-to-Q delay in seconds (default 0.05)
//	-max-paths int
//	    Default number of critical paths per analysis (default 5)
//
// Example:
//
//	# Start server on default port
//	server
//
//	# Start server with a tight default clock
//	server -addr :9090 -tclk 0.25
//
// The server exposes the following endpoints:
//
//	POST   /api/v1/sta/analyze          - Analyze a netlist payload
//	POST   /api/v1/sta/validate         - Validate a payload
//	POST   /api/v1/netlist/save         - Save a netlist
//	GET    /api/v1/netlist/list         - List saved netlists
//	GET    /api/v1/netlist/load/{id}    - Load a netlist by ID
//	DELETE /api/v1/netlist/delete/{id}  - Delete a netlist by ID
//	POST   /api/v1/netlist/analyze/{id} - Analyze a saved netlist
//	GET    /health                      - Health check
//	GET    /health/live                 - Liveness probe
//	GET    /health/ready                - Readiness probe
//	GET    /metrics                     - Prometheus metrics
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yesoreyeram/neram/pkg/config"
	"github.com/yesoreyeram/neram/pkg/server"
)

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	tclk := flag.Float64("tclk", 1.0, "Default clock period in seconds")
	setup := flag.Float64("setup", 0.05, "Default setup time in seconds")
	clockToQ := flag.Float64("clock-to-q", 0.05, "Default clock-to-Q delay in seconds")
	maxPaths := flag.Int("max-paths", 5, "Default number of critical paths per analysis")

	flag.Parse()

	serverConfig := server.Config{
		Address:            *addr,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 10 * 1024 * 1024, // 10MB
		EnableCORS:         true,
	}

	engineConfig := config.Default()
	engineConfig.Tclk = *tclk
	engineConfig.Setup = *setup
	engineConfig.ClockToQ = *clockToQ
	engineConfig.MaxPaths = *maxPaths

	srv, err := server.New(serverConfig, engineConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create server: %v\n", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		fmt.Printf("Starting Neram Timing Engine Server on %s\n", *addr)
		fmt.Printf("Health check:     http://localhost%s/health\n", *addr)
		fmt.Printf("Liveness probe:   http://localhost%s/health/live\n", *addr)
		fmt.Printf("Readiness probe:  http://localhost%s/health/ready\n", *addr)
		fmt.Printf("Metrics:          http://localhost%s/metrics\n", *addr)
		fmt.Printf("API endpoint:     http://localhost%s/api/v1/sta/analyze\n", *addr)
		fmt.Println("\nPress Ctrl+C to shutdown")

		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)
		fmt.Println("Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Server stopped")
	}
}

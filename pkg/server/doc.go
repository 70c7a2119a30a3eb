// Package server exposes the timing engine over HTTP.
//
// Routes:
//
//	POST   /api/v1/sta/analyze          - Analyze a netlist payload
//	POST   /api/v1/sta/validate         - Validate a payload without analyzing
//	POST   /api/v1/netlist/save         - Save a netlist
//	GET    /api/v1/netlist/list         - List saved netlists
//	GET    /api/v1/netlist/load/{id}    - Load a netlist by ID
//	DELETE /api/v1/netlist/delete/{id}  - Delete a netlist by ID
//	POST   /api/v1/netlist/analyze/{id} - Analyze a saved netlist
//	GET    /health                      - Health check
//	GET    /health/live                 - Liveness probe
//	GET    /health/ready                - Readiness probe
//	GET    /metrics                     - Prometheus metrics
//
// The server wraps every request in recovery, logging and (optionally)
// CORS middleware, enforces a request body size limit, and records
// analysis telemetry through the shared provider.
package server

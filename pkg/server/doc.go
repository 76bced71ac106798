// Package server provides the HTTP serving layer for the info service.
//
// # Overview
//
// The server wraps net/http with the operational plumbing a pod needs to
// run behind a Kubernetes Service with Prometheus scraping: Prometheus
// instrumentation, request IDs, panic recovery, rate limiting, structured
// request logging, health/readiness probes, and graceful shutdown bounded
// by a configurable timeout.
//
// # Routes
//
// Three system routes are always registered and bypass the middleware
// chain so probes and scrapes never inflate request counters:
//
//	GET /health   liveness probe
//	GET /ready    readiness probe (503 while starting or draining)
//	GET /metrics  Prometheus text exposition (default registry)
//
// Application routes are supplied via WithHandler and served through the
// middleware chain. A discovery handler is installed on "/" unless the
// caller provides one; as the mux catch-all it also produces 404s for
// unmatched paths.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("info-service"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/get_info": h.HandleGetInfo,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// Config defaults come from pkg/defaults. The PORT environment variable
// overrides the listen port (default 8000) and SHUTDOWN_TIMEOUT_SECONDS
// overrides the drain window to match the pod's termination grace period.
//
// # Metrics
//
// All request metrics use the infod_ prefix. infod_http_requests_total is
// labeled by method, path, and status and is incremented exactly once per
// request served through the middleware chain.
package server

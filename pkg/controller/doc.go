// Package controller holds the net/http middlewares wrapped around the API
// router and the debug listener.
//
//   - WithCORS answers preflights for the configured site origins.
//   - WithLogger tags each request with an id and writes the access log.
//   - WithMetrics records per-route counters and latency.
//   - PprofMux mounts net/http/pprof under a prefix.
package controller

// Package controller contains the HTTP middlewares shared by the API server:
// CORS, access logging with request IDs, per-client rate limiting and request
// duration metrics, plus the pprof debug mux.
package controller

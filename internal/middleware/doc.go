// Package middleware provides HTTP middleware for the Reserve API.
//
// The middleware package contains reusable middleware components for
// request identification, logging, rate limiting, idempotent writes,
// metrics collection, and response processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: Assigns a unique identifier to every request
//   - Logger: Structured request logging via slog
//   - Recovery: Panic recovery with a problem-details response
//   - CORS: Cross-origin request handling
//   - RateLimit: Token-bucket rate limiting per client address
//   - Idempotency: Replay protection for write requests
//   - Metrics: Prometheus request counters and latency histograms
//   - Compress: Gzip response compression
//
// # Composition
//
// Middleware is composed with Chain, which applies wrappers in the
// order listed so the first entry is the outermost:
//
//	wrapped := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//	)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(r): Returns the unique request identifier
package middleware

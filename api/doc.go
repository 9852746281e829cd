// Package api provides the HTTP API layer for the Reading Display application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// The display device polls a single endpoint:
//
//   - GET /display-data: the fused current reading payload
//
// The remaining endpoints exist for operating and debugging the pipeline:
//
//   - GET /debug: fresh extraction pass with per-book groups
//   - GET /debug-entries: raw feed entries with classification results
//   - GET /test-challenge: forced challenge lookup
//   - GET /clear-cache: reset both cache slots
//   - GET /test-data: static sample payload for layout work
//
// # Middleware
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	readingHandler := handlers.NewReadingHandler(readingService)
//	readingHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":5050", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807. The display
// endpoint never returns an error payload; upstream failures degrade to a
// clearly labeled fallback record so the device always has something to
// render.
package api

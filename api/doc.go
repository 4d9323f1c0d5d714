// Package api provides the HTTP API layer for the CareerCompass application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Routes
//
//	GET  /api/health             liveness probe
//	POST /api/register           create an account
//	POST /api/login              issue a bearer token
//	GET  /api/profile/{user_id}  caller's own profile
//	POST /api/smart-search       aggregated course links (bearer token required)
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Middleware
//
// The router applies, in order:
// - CORS handling
// - Request logging with unique request IDs
// - Rate limiting per client IP (feature flag rate_limit_enabled)
//
// # Usage Example
//
//	humaAPI, router := api.NewAPI(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.RegisterHealthRoutes(humaAPI)
//	handlers.NewAuthHandler(authService, flags).RegisterRoutes(humaAPI)
//	handlers.NewSearchHandler(searchService, authService, logger, flags).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 401,
//	    "title": "Unauthorized",
//	    "detail": "unauthorized"
//	}
//
// Domain errors are mapped to HTTP status codes by the handlers.
package api

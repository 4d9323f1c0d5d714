// Package core contains the business logic for the CareerCompass API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SearchRequest, LinkResult, User, Identity)
// - search: Query variants, provider fetching, link extraction and aggregation
// - auth: Registration, login and bearer token resolution
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, user store)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "careercompass-api/core/domain"
//	    "careercompass-api/core/interfaces"
//	    "careercompass-api/core/search"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	searchService := search.NewSearchService(deps)
//
//	// Aggregate course links
//	resp := searchService.Search(ctx, domain.SearchRequest{
//	    Skills:    []string{"python"},
//	    Interests: []string{"data"},
//	    Limit:     12,
//	})
package core

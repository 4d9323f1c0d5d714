// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, request logging and rate limiting

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"careercompass-api/api/middleware"
	"careercompass-api/core/interfaces"
	"careercompass-api/pkg/featureflags"
)

const (
	// Title is the OpenAPI title
	Title = "CareerCompass API"

	// Version is the OpenAPI version
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	AllowedOrigins []string
	RateLimit      int           // requests per window
	RateWindow     time.Duration // rate limit window
	Flags          featureflags.Manager
}

// NewConfig returns the Huma configuration. Response bodies are plain JSON
// without $schema links.
func NewConfig() huma.Config {
	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Account management and smart course search across Coursera, Udemy, Skillshare and Udacity"
	config.CreateHooks = nil
	config.Transformers = nil
	return config
}

// NewAPI creates a Huma API with middleware configured
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run before anything that can reject the request
	router.Use(cors.Handler(corsOptions(cfg.AllowedOrigins)))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 && rateLimitEnabled(cfg.Flags) {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	api := humachi.New(router, NewConfig())

	return api, router
}

func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
	if len(origins) == 0 {
		opts.AllowedOrigins = []string{"*"}
		opts.AllowCredentials = false
	}
	return opts
}

func rateLimitEnabled(flags featureflags.Manager) bool {
	if flags == nil {
		return true
	}
	return flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled)
}

// ABOUTME: Main entry point for the CareerCompass API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careercompass-api/api"
	"careercompass-api/api/handlers"
	"careercompass-api/core/auth"
	"careercompass-api/core/interfaces"
	"careercompass-api/core/search"
	"careercompass-api/infrastructure/cache/memory"
	"careercompass-api/infrastructure/cache/redis"
	stdhttp "careercompass-api/infrastructure/http/standard"
	logruslogger "careercompass-api/infrastructure/logger/logrus"
	"careercompass-api/infrastructure/storage/sqlite"
	"careercompass-api/pkg/config"
	"careercompass-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Starting CareerCompass API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"database":   cfg.Database.Path,
		"flags":      flags.GetAllFlags(),
	})

	// Create cache
	var cache interfaces.Cache
	memoryExpiration := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(memoryExpiration)
		} else {
			defer redisCache.Close()
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(memoryExpiration)
		logger.Info("Using memory cache", nil)
	}

	// Create user store
	users, err := sqlite.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to open user store", map[string]interface{}{
			"path":  cfg.Database.Path,
			"error": err.Error(),
		})
		log.Fatalf("Failed to open user store: %v", err)
	}
	defer users.Close()

	if stats, err := users.Stats(context.Background()); err == nil {
		logger.Info("User store ready", stats)
	}

	// Create HTTP client; the fetcher applies its own per-request deadline
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Search.FetchTimeout, cfg.Search.UserAgent)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Users:      users,
	}

	// Create services
	authService := auth.NewAuthService(deps,
		auth.WithSessionTTL(cfg.Auth.SessionTTL),
		auth.WithSessionCache(flags.IsEnabled(context.Background(), featureflags.SessionCacheEnabled)),
	)
	searchService := search.NewSearchService(deps,
		search.WithFetchTimeout(cfg.Search.FetchTimeout),
		search.WithPoliteDelay(cfg.Search.PoliteDelay),
		search.WithVariantCap(cfg.Search.VariantCap),
		search.WithProviderLimit(cfg.Search.ProviderLimit),
	)

	// Create API with middleware
	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit.Limit,
		RateWindow:     cfg.RateLimit.Window,
		Flags:          flags,
	})

	// Create and register handlers
	handlers.RegisterHealthRoutes(humaAPI)

	authHandler := handlers.NewAuthHandler(authService, flags)
	authHandler.RegisterRoutes(humaAPI)

	searchHandler := handlers.NewSearchHandler(searchService, authService, logger, flags)
	searchHandler.RegisterRoutes(humaAPI)

	// A smart search runs up to variants x providers sequential fetches
	writeTimeout := searchWriteTimeout(cfg.Search)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address":       srv.Addr,
			"write_timeout": writeTimeout.String(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return
	}

	logger.Info("Server stopped", nil)
}

// searchWriteTimeout bounds a response by the worst case of every fetch timing out
func searchWriteTimeout(s config.SearchConfig) time.Duration {
	calls := time.Duration(s.VariantCap * len(search.DefaultProviders()))
	return calls*(s.FetchTimeout+s.PoliteDelay) + 15*time.Second
}

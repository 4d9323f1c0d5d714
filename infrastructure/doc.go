// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, persistence, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache on patrickmn/go-cache
// - cache/redis: Redis-based cache on go-redis
// - storage/sqlite: SQLite user store on mattn/go-sqlite3
// - http/standard: net/http client with a browser identity and redirect handling
// - logger/logrus: Structured logrus logger with optional lumberjack rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # User Store
//
//	store, err := sqlite.NewSQLiteStore("careercompass.db")
//	defer store.Close()
//
// # HTTP Client
//
// Requests never retry; a failed fetch is reported once to the caller:
//
//	client := standard.NewStandardHTTPClient(7*time.Second, "")
//	resp, err := client.Get(ctx, "https://www.udemy.com/courses/search/?q=go")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "user_id": "123",
//	    "action":  "smart_search",
//	})
package infrastructure

// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Per-IP fixed window counters kept in an expiring go-cache store

package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// RateLimiter counts requests per key within a fixed window
type RateLimiter struct {
	counters *gocache.Cache
	limit    int
	window   time.Duration
}

// NewRateLimiter creates a new rate limiter; expired windows are purged every window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counters: gocache.New(window, window),
		limit:    limit,
		window:   window,
	}
}

// Allow records a request for key and reports whether it fits in the current window
func (rl *RateLimiter) Allow(key string) bool {
	for {
		if err := rl.counters.Add(key, 1, rl.window); err == nil {
			return rl.limit >= 1
		}
		n, err := rl.counters.IncrementInt(key, 1)
		if err != nil {
			// window expired between Add and Increment
			continue
		}
		return n <= rl.limit
	}
}

// RetryAfter returns how long until key's window resets
func (rl *RateLimiter) RetryAfter(key string) time.Duration {
	_, expires, ok := rl.counters.GetWithExpiration(key)
	if !ok || expires.IsZero() {
		return rl.window
	}
	if d := time.Until(expires); d > 0 {
		return d
	}
	return 0
}

// extractIP gets the client IP from the request
func extractIP(r *http.Request) string {
	// The first X-Forwarded-For entry is the originating client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			w.Header().Set("X-RateLimit-Window", limiter.window.String())

			if !limiter.Allow(ip) {
				retry := int(limiter.RetryAfter(ip).Round(time.Second).Seconds())
				if retry < 1 {
					retry = 1
				}
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ABOUTME: HTML fetcher performs one best-effort GET against a provider search page
// ABOUTME: Returns the body only for 200 text/html responses and never surfaces failures

package search

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"careercompass-api/core/interfaces"
)

const (
	// DefaultFetchTimeout bounds a single provider fetch
	DefaultFetchTimeout = 7 * time.Second

	// maxBodyBytes caps how much of a search page is read
	maxBodyBytes = 5 << 20
)

// Fetcher retrieves provider HTML through an HTTPClient
type Fetcher struct {
	client  interfaces.HTTPClient
	logger  interfaces.Logger
	timeout time.Duration
}

// NewFetcher creates a fetcher; a non-positive timeout selects DefaultFetchTimeout
func NewFetcher(client interfaces.HTTPClient, logger interfaces.Logger, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{
		client:  client,
		logger:  logger,
		timeout: timeout,
	}
}

// FetchHTML returns the page body and true when the response status is exactly 200
// and its content type contains text/html. Any other outcome, including transport
// errors and timeouts, yields ("", false).
func (f *Fetcher) FetchHTML(ctx context.Context, pageURL string) (string, bool) {
	if f.client == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.Get(ctx, pageURL)
	if err != nil {
		f.warn("Fetch failed", map[string]interface{}{
			"method": http.MethodGet,
			"url":    pageURL,
			"error":  err.Error(),
		})
		return "", false
	}
	body := resp.Body()
	if body != nil {
		defer body.Close()
	}

	contentType := resp.Header("Content-Type")
	f.info("Fetched provider page", map[string]interface{}{
		"method":       http.MethodGet,
		"url":          pageURL,
		"status":       resp.StatusCode(),
		"content_type": contentType,
	})

	if resp.StatusCode() != http.StatusOK || !strings.Contains(contentType, "text/html") || body == nil {
		return "", false
	}

	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		f.warn("Reading provider page failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return "", false
	}
	return string(data), true
}

func (f *Fetcher) info(msg string, fields map[string]interface{}) {
	if f.logger != nil {
		f.logger.Info(msg, fields)
	}
}

func (f *Fetcher) warn(msg string, fields map[string]interface{}) {
	if f.logger != nil {
		f.logger.Warn(msg, fields)
	}
}

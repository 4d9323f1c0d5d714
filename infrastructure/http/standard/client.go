// ABOUTME: Standard HTTP client implementation presenting a desktop browser identity
// ABOUTME: Performs exactly one attempt per request with timeout support and redirect following

package standard

import (
	"context"
	"net/http"
	"time"

	"careercompass-api/core/interfaces"
)

const (
	// DefaultUserAgent is the desktop browser identity sent to learning platforms
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/124.0 Safari/537.36"

	maxRedirects = 10
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// An empty userAgent selects DefaultUserAgent.
func NewStandardHTTPClient(timeout time.Duration, userAgent string) *StandardHTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	c := &StandardHTTPClient{userAgent: userAgent}
	c.client = &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			// keep the browser identity on every hop
			req.Header.Set("User-Agent", c.userAgent)
			return nil
		},
	}
	return c
}

// Get performs a single HTTP GET request; failed attempts are not retried
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

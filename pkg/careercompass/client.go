// ABOUTME: Embeddable client running smart search without the HTTP server
// ABOUTME: Offers a clean API over the search core for CLIs, jobs and other Go programs

package careercompass

import (
	"context"
	"time"

	"careercompass-api/core/domain"
	"careercompass-api/core/interfaces"
	"careercompass-api/core/search"
)

// Re-exported domain types so callers need only this package
type (
	SearchRequest      = domain.SearchRequest
	LinkResult         = domain.LinkResult
	AggregatedResponse = domain.AggregatedResponse
)

// Client is the main entry point for library use
type Client struct {
	searchService *search.SearchService
	config        Config
}

// Config holds the configuration for the client
type Config struct {
	// HTTPClient performs provider fetches
	HTTPClient interfaces.HTTPClient

	// Logger receives fetch and search logs
	Logger interfaces.Logger

	// UserAgent is used when the default HTTP client is built
	UserAgent string

	// FetchTimeout bounds each provider fetch
	FetchTimeout time.Duration

	// PoliteDelay spaces consecutive provider requests
	PoliteDelay time.Duration

	// VariantCap bounds the number of query variants
	VariantCap int

	// ProviderLimit bounds links extracted per provider call
	ProviderLimit int

	// Providers replaces the built-in platform set when non-empty
	Providers []search.Provider
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.HTTPClient == nil {
		config.HTTPClient = DefaultHTTPClient(config.FetchTimeout, config.UserAgent)
	}
	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	searchOpts := []search.Option{
		search.WithFetchTimeout(config.FetchTimeout),
		search.WithPoliteDelay(config.PoliteDelay),
		search.WithVariantCap(config.VariantCap),
		search.WithProviderLimit(config.ProviderLimit),
	}
	if len(config.Providers) > 0 {
		searchOpts = append(searchOpts, search.WithProviders(config.Providers))
	}

	return &Client{
		searchService: search.NewSearchService(deps, searchOpts...),
		config:        config,
	}, nil
}

// Search runs a smart search. Unreachable platforms contribute a link to their
// search page instead of an error.
func (c *Client) Search(ctx context.Context, req SearchRequest) AggregatedResponse {
	return c.searchService.Search(ctx, req)
}

// Variants returns the query variants a request expands to, in query order
func (c *Client) Variants(req SearchRequest) []string {
	variants := search.BuildVariants(req.Skills, req.Interests, req.Industry, c.config.VariantCap)
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		out = append(out, v.Text())
	}
	return out
}

// Platforms lists the platform names queried for each variant
func (c *Client) Platforms() []string {
	providers := c.config.Providers
	if len(providers) == 0 {
		providers = search.DefaultProviders()
	}
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name)
	}
	return names
}

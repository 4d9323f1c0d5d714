// ABOUTME: Smart search service aggregates course links from every learning platform
// ABOUTME: Drives variants x providers sequentially, then deduplicates by URL and caps the result

package search

import (
	"context"
	"fmt"
	"time"

	"careercompass-api/core/domain"
	"careercompass-api/core/interfaces"
)

const (
	// DefaultProviderLimit is the extraction limit for each provider call
	DefaultProviderLimit = 12

	// MinResultCap is the smallest cap applied to the aggregated response
	MinResultCap = 6
)

// SearchService aggregates provider results for a smart search request
type SearchService struct {
	deps          interfaces.Dependencies
	fetcher       *Fetcher
	providers     []Provider
	newPacer      PacerFactory
	variantCap    int
	providerLimit int
	fetchTimeout  time.Duration
}

// Option configures a SearchService
type Option func(*SearchService)

// WithProviders replaces the default provider set
func WithProviders(providers []Provider) Option {
	return func(s *SearchService) {
		s.providers = providers
	}
}

// WithPacerFactory replaces the polite delay pacer
func WithPacerFactory(factory PacerFactory) Option {
	return func(s *SearchService) {
		s.newPacer = factory
	}
}

// WithPoliteDelay sets the pause after each provider request
func WithPoliteDelay(delay time.Duration) Option {
	return WithPacerFactory(IntervalPacerFactory(delay))
}

// WithVariantCap bounds the number of query variants
func WithVariantCap(n int) Option {
	return func(s *SearchService) {
		if n > 0 {
			s.variantCap = n
		}
	}
}

// WithProviderLimit bounds the results extracted per provider call
func WithProviderLimit(n int) Option {
	return func(s *SearchService) {
		if n > 0 {
			s.providerLimit = n
		}
	}
}

// WithFetchTimeout bounds each provider fetch
func WithFetchTimeout(d time.Duration) Option {
	return func(s *SearchService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, opts ...Option) *SearchService {
	s := &SearchService{
		deps:          deps,
		providers:     DefaultProviders(),
		newPacer:      IntervalPacerFactory(DefaultPoliteDelay),
		variantCap:    DefaultVariantCap,
		providerLimit: DefaultProviderLimit,
		fetchTimeout:  DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.fetcher = NewFetcher(deps.HTTPClient, deps.Logger, s.fetchTimeout)
	return s
}

// Search runs the smart search. It never fails: fetch and extraction problems
// degrade to one synthetic record per (variant, provider) pair pointing at the
// provider's search page.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) domain.AggregatedResponse {
	started := time.Now()
	variants := BuildVariants(req.Skills, req.Interests, req.Industry, s.variantCap)
	pacer := s.newPacer()

	var aggregated []domain.LinkResult
	for _, variant := range variants {
		query := variant.Text()
		for _, p := range s.providers {
			if err := pacer.Wait(ctx); err != nil {
				s.log().Debug("Polite delay interrupted", map[string]interface{}{
					"error": err.Error(),
				})
			}
			aggregated = append(aggregated, s.searchProvider(ctx, p, query)...)
			pacer.Done()
		}
	}

	items := DedupeByURL(aggregated, ResultCap(req.Limit))

	s.log().Info("Smart search completed", map[string]interface{}{
		"variants":    len(variants),
		"providers":   len(s.providers),
		"candidates":  len(aggregated),
		"items":       len(items),
		"duration_ms": time.Since(started).Milliseconds(),
	})

	return domain.AggregatedResponse{Items: items}
}

// searchProvider fetches and extracts one provider page for one query
func (s *SearchService) searchProvider(ctx context.Context, p Provider, query string) []domain.LinkResult {
	searchURL := p.SearchURL(query)

	var links []domain.LinkResult
	if html, ok := s.fetcher.FetchHTML(ctx, searchURL); ok && p.Extractor != nil {
		links = p.Extractor.Extract(html, s.providerLimit)
	}

	if len(links) == 0 {
		return []domain.LinkResult{FallbackResult(p.Name, query, searchURL)}
	}
	return links
}

// FallbackResult is the synthetic record standing in for a provider with no extracted links
func FallbackResult(platform, query, searchURL string) domain.LinkResult {
	return domain.LinkResult{
		Title:    fmt.Sprintf("Search results for %s on %s", query, platform),
		URL:      searchURL,
		Platform: platform,
	}
}

// ResultCap returns max(MinResultCap, limit)
func ResultCap(limit int) int {
	if limit < MinResultCap {
		return MinResultCap
	}
	return limit
}

// DedupeByURL keeps the first occurrence of each URL, in order, up to limit items.
// Items without a URL are dropped.
func DedupeByURL(items []domain.LinkResult, limit int) []domain.LinkResult {
	if limit < 0 {
		limit = 0
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.LinkResult, 0, min(len(items), limit))
	for _, it := range items {
		if len(out) >= limit {
			break
		}
		if it.URL == "" {
			continue
		}
		if _, ok := seen[it.URL]; ok {
			continue
		}
		seen[it.URL] = struct{}{}
		out = append(out, it)
	}
	return out
}

func (s *SearchService) log() interfaces.Logger {
	if s.deps.Logger != nil {
		return s.deps.Logger
	}
	return interfaces.NopLogger{}
}

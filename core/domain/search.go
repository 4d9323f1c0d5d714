// ABOUTME: Search domain models for course link aggregation across learning platforms
// ABOUTME: Defines the request, query variant, link result and aggregated response shapes

package domain

import "strings"

// SearchRequest describes one smart search call
type SearchRequest struct {
	// Skills are the user's skills, in priority order
	Skills []string

	// Interests are the user's interests, in priority order
	Interests []string

	// Industry is an optional target industry
	Industry string

	// Limit is the requested number of results (the response holds at least 6 when available)
	Limit int
}

// QueryVariant is one search phrase made of 1 or 2 terms
type QueryVariant []string

// Text joins the terms with a single space
func (v QueryVariant) Text() string {
	return strings.Join(v, " ")
}

// Key returns the case-insensitive identity of the variant
func (v QueryVariant) Key() string {
	return strings.ToLower(v.Text())
}

// LinkResult is a normalized course or class link found on a platform
type LinkResult struct {
	// Title is the whitespace-normalized anchor text, never empty
	Title string `json:"title"`

	// URL is absolute and carries no fragment
	URL string `json:"url"`

	// Platform is the provider name, e.g. "Coursera"
	Platform string `json:"platform"`
}

// AggregatedResponse is the deduplicated, capped result of a smart search
type AggregatedResponse struct {
	Items []LinkResult `json:"items"`
}

// ABOUTME: Query variant builder turns skills, interests and industry into search phrases
// ABOUTME: Produces a bounded, case-insensitively unique list of 1-2 term variants

package search

import (
	"strings"

	"careercompass-api/core/domain"
)

const (
	// DefaultVariantCap bounds the number of variants per request
	DefaultVariantCap = 10

	maxSingleTerms = 4
	maxPairTerms   = 3
)

// BuildVariants derives search phrases from the request inputs.
//
// Singles come first (up to 4 skills, up to 4 interests, then the industry),
// followed by skill x interest pairs over the first 3 of each. Variants are
// deduplicated by their lowercase text, keeping first-seen order, and the
// list is truncated to maxVariants. A value <= 0 selects DefaultVariantCap.
func BuildVariants(skills, interests []string, industry string, maxVariants int) []domain.QueryVariant {
	if maxVariants <= 0 {
		maxVariants = DefaultVariantCap
	}

	s := cleanTerms(skills)
	i := cleanTerms(interests)
	ind := strings.TrimSpace(industry)

	terms := make([]domain.QueryVariant, 0, maxVariants)
	for _, x := range head(s, maxSingleTerms) {
		terms = append(terms, domain.QueryVariant{x})
	}
	for _, x := range head(i, maxSingleTerms) {
		terms = append(terms, domain.QueryVariant{x})
	}
	if ind != "" {
		terms = append(terms, domain.QueryVariant{ind})
	}
	for _, a := range head(s, maxPairTerms) {
		for _, b := range head(i, maxPairTerms) {
			terms = append(terms, domain.QueryVariant{a, b})
		}
	}
	if len(terms) == 0 && ind != "" {
		terms = append(terms, domain.QueryVariant{ind})
	}

	seen := make(map[string]struct{}, len(terms))
	out := make([]domain.QueryVariant, 0, maxVariants)
	for _, v := range terms {
		if len(out) >= maxVariants {
			break
		}
		key := v.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// cleanTerms trims every entry and drops the blank ones
func cleanTerms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func head(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}

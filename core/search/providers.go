// ABOUTME: Provider registry for the supported learning platforms
// ABOUTME: Holds each platform's search URL template and its selector-based extractor

package search

import (
	"net/url"
	"strings"

	"careercompass-api/core/interfaces"
)

// QueryPlaceholder is replaced with the encoded query in a provider URL template
const QueryPlaceholder = "{q}"

// Platform names
const (
	Coursera   = "Coursera"
	Udemy      = "Udemy"
	Skillshare = "Skillshare"
	Udacity    = "Udacity"
)

// Provider is one learning platform queried by smart search
type Provider struct {
	Name        string
	URLTemplate string
	Extractor   interfaces.Extractor
}

// SearchURL substitutes the percent-encoded query into the template
func (p Provider) SearchURL(query string) string {
	return strings.Replace(p.URLTemplate, QueryPlaceholder, EncodeQuery(query), 1)
}

// EncodeQuery percent-encodes a query with spaces as %20. Slashes stay literal.
func EncodeQuery(query string) string {
	return queryEncoder.Replace(url.QueryEscape(query))
}

var queryEncoder = strings.NewReplacer("+", "%20", "%2F", "/")

// DefaultProviders returns the fixed provider set in query order
func DefaultProviders() []Provider {
	return []Provider{
		{
			Name:        Coursera,
			URLTemplate: "https://www.coursera.org/search?query={q}",
			Extractor:   NewCourseraExtractor(),
		},
		{
			Name:        Udemy,
			URLTemplate: "https://www.udemy.com/courses/search/?q={q}",
			Extractor:   NewUdemyExtractor(),
		},
		{
			Name:        Skillshare,
			URLTemplate: "https://www.skillshare.com/en/search/classes?query={q}",
			Extractor:   NewSkillshareExtractor(),
		},
		{
			Name:        Udacity,
			URLTemplate: "https://www.udacity.com/catalog?sort=relevance&searchValue={q}",
			Extractor:   NewUdacityExtractor(),
		},
	}
}

// NewCourseraExtractor matches course, specialization and certificate pages plus
// search cards. There is no fallback tier and anchors without text are skipped.
func NewCourseraExtractor() *SelectorExtractor {
	return &SelectorExtractor{
		Platform: Coursera,
		Origin:   "https://www.coursera.org",
		Domain:   "coursera.org",
		Primary: []string{
			`a[href*="/learn/"]`,
			`a[href*="/specializations/"]`,
			`a[href*="/professional-certificates/"]`,
			`a[data-click-key="search.search.click.search_card"]`,
		},
	}
}

// NewUdemyExtractor prefers course links inside result headings
func NewUdemyExtractor() *SelectorExtractor {
	return &SelectorExtractor{
		Platform:     Udemy,
		Origin:       "https://www.udemy.com",
		Domain:       "udemy.com",
		DefaultTitle: "Course",
		Primary:      []string{`h3 a[href*="/course/"]`},
		Fallback:     []string{`a[href*="/course/"]`},
	}
}

// NewSkillshareExtractor prefers anchors carrying the class-link class
func NewSkillshareExtractor() *SelectorExtractor {
	return &SelectorExtractor{
		Platform:     Skillshare,
		Origin:       "https://www.skillshare.com",
		Domain:       "skillshare.com",
		DefaultTitle: "Class",
		Primary:      []string{`a.class-link[href*="/en/classes/"], a.class-link[href*="/classes/"]`},
		Fallback:     []string{`a[href*="/en/classes/"], a[href*="/classes/"]`},
	}
}

// NewUdacityExtractor prefers heading-styled course anchors
func NewUdacityExtractor() *SelectorExtractor {
	return &SelectorExtractor{
		Platform:     Udacity,
		Origin:       "https://www.udacity.com",
		Domain:       "udacity.com",
		DefaultTitle: "Course",
		Primary:      []string{`a.chakra-heading[href^="/course/"]`},
		Fallback:     []string{`a[href^="/course/"], a[href*="/course/"]`},
	}
}

// ABOUTME: Two-tier selector extraction shared by every provider extractor
// ABOUTME: Applies primary selectors, falls back to broader ones, and normalizes each anchor

package search

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"careercompass-api/core/domain"
	"careercompass-api/pkg/utils/text"
)

// SelectorExtractor implements interfaces.Extractor with a primary and a fallback
// selector tier. Each tier is a list of CSS selectors applied as sequential passes
// over the document; a selector containing a comma group matches in document order.
// The fallback tier only runs when the primary tier produced nothing.
type SelectorExtractor struct {
	// Platform tags every result
	Platform string

	// Origin resolves root-relative hrefs, e.g. "https://www.udemy.com"
	Origin string

	// Domain must be contained in the resolved host, e.g. "udemy.com"
	Domain string

	// DefaultTitle replaces empty anchor text; when empty such anchors are skipped
	DefaultTitle string

	// Primary holds the preferred selectors
	Primary []string

	// Fallback holds the looser selectors
	Fallback []string
}

// Extract parses html and returns up to limit link results in document order.
// Absent or unparsable html yields an empty slice.
func (e *SelectorExtractor) Extract(html string, limit int) []domain.LinkResult {
	results := []domain.LinkResult{}
	if strings.TrimSpace(html) == "" || limit <= 0 {
		return results
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return results
	}

	results = e.collect(doc, e.Primary, limit)
	if len(results) == 0 && len(e.Fallback) > 0 {
		results = e.collect(doc, e.Fallback, limit)
	}
	return results
}

// collect walks the selectors in order and stops as soon as limit results exist
func (e *SelectorExtractor) collect(doc *goquery.Document, selectors []string, limit int) []domain.LinkResult {
	results := []domain.LinkResult{}

	for _, sel := range selectors {
		doc.Find(sel).EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, ok := a.Attr("href")
			if !ok {
				return true
			}
			link, ok := e.resolve(href)
			if !ok {
				return true
			}

			title := text.NormalizeTitle(a.Text())
			if title == "" {
				if e.DefaultTitle == "" {
					return true
				}
				title = e.DefaultTitle
			}

			results = append(results, domain.LinkResult{
				Title:    title,
				URL:      link,
				Platform: e.Platform,
			})
			return len(results) < limit
		})

		if len(results) >= limit {
			break
		}
	}

	return results
}

// resolve turns href into an absolute http(s) URL on the platform's domain with
// the fragment removed. Scheme-relative hrefs get https, root-relative hrefs get Origin.
func (e *SelectorExtractor) resolve(href string) (string, bool) {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return "", false
	case strings.HasPrefix(href, "//"):
		href = "https:" + href
	case strings.HasPrefix(href, "/"):
		href = strings.TrimRight(e.Origin, "/") + href
	}

	u, err := url.Parse(href)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if !strings.Contains(strings.ToLower(u.Hostname()), e.Domain) {
		return "", false
	}

	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), true
}

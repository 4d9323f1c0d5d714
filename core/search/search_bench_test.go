package search

import (
	"fmt"
	"strings"
	"testing"

	"careercompass-api/core/domain"
)

func udemyPage(n int) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, `<h3><a href="/course/course-%d/#overview">Course %d   title</a></h3>`, i, i)
	}
	sb.WriteString("</body></html>")
	return sb.String()
}

func BenchmarkUdemyExtract(b *testing.B) {
	html := udemyPage(200)
	e := NewUdemyExtractor()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Extract(html, DefaultProviderLimit)
	}
}

func BenchmarkBuildVariants(b *testing.B) {
	skills := []string{"python", "sql", "statistics", "excel", "tableau"}
	interests := []string{"data", "finance", "healthcare", "sports"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildVariants(skills, interests, "banking", DefaultVariantCap)
	}
}

func BenchmarkDedupeByURL(b *testing.B) {
	// Every URL appears twice
	items := make([]domain.LinkResult, 0, 480)
	for i := 0; i < 240; i++ {
		link := domain.LinkResult{
			Title:    fmt.Sprintf("Course %d", i),
			URL:      fmt.Sprintf("https://www.udemy.com/course/%d/", i%120),
			Platform: Udemy,
		}
		items = append(items, link, link)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DedupeByURL(items, 36)
	}
}

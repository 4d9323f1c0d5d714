// ABOUTME: Text utilities for normalizing scraped anchor text
// ABOUTME: Collapses whitespace and bounds titles by rune count

package text

import (
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of runes kept in a normalized title
const MaxTitleLength = 160

// CollapseWhitespace trims the string and replaces every whitespace run with a single space
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most max runes
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// NormalizeTitle collapses whitespace and bounds the result to MaxTitleLength runes.
// Returns an empty string when nothing printable remains.
func NormalizeTitle(s string) string {
	return Truncate(CollapseWhitespace(s), MaxTitleLength)
}

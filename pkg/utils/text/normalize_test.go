package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
		{"inner runs", "Machine   Learning\n\tSpecialization", "Machine Learning Specialization"},
		{"leading and trailing", "  Go  ", "Go"},
		{"non-breaking space", "Data Science", "Data Science"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseWhitespace(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "héll", Truncate("héllo", 4), "truncation counts runes, not bytes")
}

func TestNormalizeTitle_BoundsLength(t *testing.T) {
	long := strings.Repeat("word ", 100)

	got := NormalizeTitle(long)

	assert.Len(t, []rune(got), MaxTitleLength)
	assert.False(t, strings.Contains(got, "  "))
}

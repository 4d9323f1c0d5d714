package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"careercompass-api/core/domain"
)

func TestBuildVariants_IndustryOnly(t *testing.T) {
	got := BuildVariants(nil, []string{}, "Data Science", DefaultVariantCap)

	assert.Equal(t, []domain.QueryVariant{{"Data Science"}}, got)
}

func TestBuildVariants_DeduplicatesAfterTrim(t *testing.T) {
	got := BuildVariants([]string{"Python", "Python "}, nil, "", DefaultVariantCap)

	assert.Equal(t, []domain.QueryVariant{{"Python"}}, got)
}

func TestBuildVariants_CaseInsensitiveDedup(t *testing.T) {
	got := BuildVariants([]string{"Go", "go", "GO"}, []string{"go"}, "Go", DefaultVariantCap)

	// the pair "Go go" survives because its key differs from every single
	assert.Equal(t, []domain.QueryVariant{{"Go"}, {"Go", "go"}}, got)
}

func TestBuildVariants_DropsBlanks(t *testing.T) {
	got := BuildVariants([]string{"", "  ", "SQL"}, []string{"\t"}, "   ", DefaultVariantCap)

	assert.Equal(t, []domain.QueryVariant{{"SQL"}}, got)
}

func TestBuildVariants_Empty(t *testing.T) {
	assert.Empty(t, BuildVariants(nil, nil, "", DefaultVariantCap))
	assert.Empty(t, BuildVariants([]string{" "}, []string{""}, " ", DefaultVariantCap))
}

func TestBuildVariants_Order(t *testing.T) {
	got := BuildVariants([]string{"Python", "SQL"}, []string{"AI"}, "Finance", DefaultVariantCap)

	want := []domain.QueryVariant{
		{"Python"},
		{"SQL"},
		{"AI"},
		{"Finance"},
		{"Python", "AI"},
		{"SQL", "AI"},
	}
	assert.Equal(t, want, got)
}

func TestBuildVariants_CapsAndLimitsTerms(t *testing.T) {
	skills := []string{"s1", "s2", "s3", "s4", "s5"}
	interests := []string{"i1", "i2", "i3", "i4", "i5"}

	got := BuildVariants(skills, interests, "ind", DefaultVariantCap)

	assert.Len(t, got, DefaultVariantCap)
	// 4 skills, 4 interests, industry, then the first pair
	assert.Equal(t, domain.QueryVariant{"s4"}, got[3])
	assert.Equal(t, domain.QueryVariant{"i4"}, got[7])
	assert.Equal(t, domain.QueryVariant{"ind"}, got[8])
	assert.Equal(t, domain.QueryVariant{"s1", "i1"}, got[9])
	for _, v := range got {
		assert.NotContains(t, v, "s5")
		assert.NotContains(t, v, "i5")
	}
}

func TestBuildVariants_Properties(t *testing.T) {
	inputs := []struct {
		skills    []string
		interests []string
		industry  string
	}{
		{[]string{"Python", "python", "Go"}, []string{"ML", "Web", "ml "}, "Tech"},
		{[]string{"a", "b", "c", "d"}, []string{"e", "f", "g", "h"}, "i"},
		{[]string{"Design"}, []string{"Design"}, "design"},
		{nil, []string{"Music", "Art"}, ""},
	}

	for _, in := range inputs {
		got := BuildVariants(in.skills, in.interests, in.industry, DefaultVariantCap)

		assert.LessOrEqual(t, len(got), DefaultVariantCap)
		seen := map[string]bool{}
		for _, v := range got {
			assert.GreaterOrEqual(t, len(v), 1)
			assert.LessOrEqual(t, len(v), 2)
			for _, term := range v {
				assert.NotEmpty(t, term)
				assert.Equal(t, strings.TrimSpace(term), term)
			}
			assert.False(t, seen[v.Key()], "duplicate variant %q", v.Text())
			seen[v.Key()] = true
		}
	}
}

func TestBuildVariants_CustomCap(t *testing.T) {
	got := BuildVariants([]string{"a", "b", "c"}, nil, "", 2)
	assert.Equal(t, []domain.QueryVariant{{"a"}, {"b"}}, got)

	got = BuildVariants([]string{"a"}, nil, "", 0)
	assert.Len(t, got, 1, "non-positive cap falls back to the default")
}

func TestBuildVariants_Deterministic(t *testing.T) {
	skills := []string{"Rust", "Go", "C"}
	interests := []string{"Systems", "Games"}

	first := BuildVariants(skills, interests, "Gaming", DefaultVariantCap)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildVariants(skills, interests, "Gaming", DefaultVariantCap))
	}
}

package converter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeComplexity_CanonicalFixture(t *testing.T) {
	doc := mustParse(t, canonicalFixture)
	stats := AnalyzeComplexity(doc)

	assert.Equal(t, 7, stats.TotalKeys)
	assert.Equal(t, 3, stats.MaxDepth)
	assert.Equal(t, 0, stats.ArrayCount)
	assert.Empty(t, stats.Recommendations)
}

func TestAnalyzeComplexity_CountsArrays(t *testing.T) {
	doc := mustParse(t, `{"a": [1, [2, 3]], "b": {"c": ["x"]}}`)
	stats := AnalyzeComplexity(doc)

	assert.Equal(t, 3, stats.TotalKeys)
	assert.Equal(t, 3, stats.ArrayCount)
}

func TestAnalyzeComplexity_KeyCountRecommendation(t *testing.T) {
	var builder strings.Builder
	builder.WriteString("{")
	for i := 0; i < 120; i++ {
		if i > 0 {
			builder.WriteString(",")
		}
		fmt.Fprintf(&builder, `"key%d": %d`, i, i)
	}
	builder.WriteString("}")

	doc := mustParse(t, builder.String())
	stats := AnalyzeComplexity(doc)

	assert.Equal(t, 120, stats.TotalKeys)
	require.Len(t, stats.Recommendations, 1)
	assert.Contains(t, stats.Recommendations[0], "120 keys")
}

func TestAnalyzeComplexity_DepthRecommendation(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":{"c":{"d":{"e":{"f":{"g": 1}}}}}}}`)
	stats := AnalyzeComplexity(doc)

	assert.Equal(t, 7, stats.MaxDepth)
	require.Len(t, stats.Recommendations, 1)
	assert.Contains(t, stats.Recommendations[0], "nesting")
}

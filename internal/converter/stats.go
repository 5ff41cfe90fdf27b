package converter

import (
	"fmt"

	"github.com/mcrawford/flatenv/internal/models"
)

// Advisory thresholds for complexity recommendations.
const (
	keyCountThreshold   = 100
	maxDepthThreshold   = 6
	arrayCountThreshold = 10
)

// AnalyzeComplexity walks the document counting keys, nesting depth and
// arrays, and derives advisory recommendations when totals exceed fixed
// thresholds. Read-only and independent of conversion options.
func AnalyzeComplexity(doc *models.JSONObject) models.ComplexityStats {
	stats := models.ComplexityStats{Recommendations: make([]string, 0)}
	measureObject(doc, 1, &stats)

	if stats.TotalKeys > keyCountThreshold {
		stats.Recommendations = append(stats.Recommendations,
			fmt.Sprintf("document has %d keys (more than %d), consider splitting configuration by service", stats.TotalKeys, keyCountThreshold))
	}
	if stats.MaxDepth > maxDepthThreshold {
		stats.Recommendations = append(stats.Recommendations,
			fmt.Sprintf("nesting reaches %d levels (more than %d), flattened names will be long", stats.MaxDepth, maxDepthThreshold))
	}
	if stats.ArrayCount > arrayCountThreshold {
		stats.Recommendations = append(stats.Recommendations,
			fmt.Sprintf("document contains %d arrays (more than %d), indexed variables may be hard to maintain", stats.ArrayCount, arrayCountThreshold))
	}
	return stats
}

func measureObject(obj *models.JSONObject, depth int, stats *models.ComplexityStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		stats.TotalKeys++
		measureValue(pair.Value, depth+1, stats)
	}
}

func measureValue(value models.JSONValue, depth int, stats *models.ComplexityStats) {
	switch v := value.(type) {
	case *models.JSONObject:
		measureObject(v, depth, stats)
	case models.JSONArray:
		stats.ArrayCount++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		for _, element := range v {
			measureValue(element, depth+1, stats)
		}
	}
}

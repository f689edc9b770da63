package political

import "strings"

// relevanceThreshold is the fixed cutoff below which a hit is discarded
// regardless of its other scores.
const relevanceThreshold = 0.3

// filterByRelevance drops results below the relevance threshold. This is
// the only hard gate in the pipeline: recency, by contrast, only
// re-weights.
func filterByRelevance(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Relevance >= relevanceThreshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// applyTimeScope sets the recency signal on each result. Hits whose
// title+snippet mention a keyword of the scope get full time relevance,
// everything else keeps the neutral default. No hit is ever dropped here.
func applyTimeScope(results []Result, scope TimeScope) []Result {
	if scope == TimeScopeAll {
		return results
	}
	keywords, ok := timeKeywords[scope]
	if !ok {
		return results
	}

	for i := range results {
		combined := results[i].Title + " " + results[i].Snippet
		results[i].TimeRelevance = defaultTimeRelevance
		for _, keyword := range keywords {
			if strings.Contains(combined, keyword) {
				results[i].TimeRelevance = 1.0
				break
			}
		}
	}
	return results
}

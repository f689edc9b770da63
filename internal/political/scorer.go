package political

import (
	"strings"

	"github.com/tsim-imai/polisearch/internal/backend"
)

// Signal weights for the political-relevance score. Title matches count
// twice as much as snippet matches; the source domain contributes the
// remainder.
const (
	titleKeywordFactor   = 0.4
	snippetKeywordFactor = 0.2
	siteWeightFactor     = 0.3
	exclusionPenalty     = 0.5
)

// scoreHit enriches a raw hit with the political-relevance, site-weight
// and query-match signals. Missing fields are treated as empty strings;
// scoring never fails.
func scoreHit(hit backend.Hit, query string) Result {
	title := strings.ToLower(hit.Title)
	snippet := strings.ToLower(hit.Snippet)
	url := strings.ToLower(hit.URL)

	siteWeight := lookupSiteWeight(url)

	relevance := 0.0
	for keyword, weight := range keywordWeights {
		kw := strings.ToLower(keyword)
		if strings.Contains(title, kw) {
			relevance += weight * titleKeywordFactor
		}
		if strings.Contains(snippet, kw) {
			relevance += weight * snippetKeywordFactor
		}
	}
	relevance += siteWeight * siteWeightFactor

	combined := title + snippet
	for _, keyword := range exclusionKeywords {
		if strings.Contains(combined, strings.ToLower(keyword)) {
			relevance -= exclusionPenalty
		}
	}

	return Result{
		Hit:           hit,
		Relevance:     clamp01(relevance),
		SiteWeight:    siteWeight,
		KeywordScore:  keywordScore(title, snippet, query),
		TimeRelevance: defaultTimeRelevance,
	}
}

// keywordScore measures how well the hit matches the original query:
// full-query containment scores highest, then individual tokens. Title
// and snippet contributions are additive before clamping.
func keywordScore(title, snippet, query string) float64 {
	q := strings.ToLower(query)

	score := 0.0
	if strings.Contains(title, q) {
		score += 0.5
	}
	if strings.Contains(snippet, q) {
		score += 0.3
	}

	for _, token := range strings.Fields(q) {
		if strings.Contains(title, token) {
			score += 0.2
		}
		if strings.Contains(snippet, token) {
			score += 0.1
		}
	}

	return clamp01(score)
}

// lookupSiteWeight resolves the trust weight of a URL by ordered substring
// match over the domain table. Unknown domains get a middling weight.
func lookupSiteWeight(lowerURL string) float64 {
	for _, dw := range siteWeights {
		if strings.Contains(lowerURL, dw.domain) {
			return dw.weight
		}
	}
	return unknownSiteWeight
}

// lookupMediaBias resolves an outlet's political lean; unknown outlets are
// treated as neutral.
func lookupMediaBias(url string) float64 {
	lowerURL := strings.ToLower(url)
	for _, dw := range mediaBias {
		if strings.Contains(lowerURL, dw.domain) {
			return dw.weight
		}
	}
	return 0.0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package political

import (
	"sort"
	"strings"
)

// Base-score weights for the composite ranking formula.
const (
	rankRelevanceFactor = 0.4
	rankSiteFactor      = 0.3
	rankKeywordFactor   = 0.2
	rankTimeFactor      = 0.1
)

// siteType is the coarse classification of a result's source domain.
type siteType int

const (
	siteTypeOther siteType = iota
	siteTypeGovernment
	siteTypeParty
	siteTypeMedia
)

// classifySite buckets a URL by substring match against the fixed domain
// lists. Buckets are checked in a fixed order (government, party, media);
// the first match wins.
func classifySite(url string) siteType {
	lowerURL := strings.ToLower(url)
	for _, d := range governmentDomains {
		if strings.Contains(lowerURL, d) {
			return siteTypeGovernment
		}
	}
	for _, d := range partyDomains {
		if strings.Contains(lowerURL, d) {
			return siteTypeParty
		}
	}
	for _, d := range mediaDomains {
		if strings.Contains(lowerURL, d) {
			return siteTypeMedia
		}
	}
	return siteTypeOther
}

// rankByIntent computes the final composite score for each result and
// sorts descending. The sort is stable: equal scores keep the relative
// order established by the upstream merge.
func rankByIntent(results []Result, intent Intent) []Result {
	multipliers, ok := intentMultipliers[intent]
	if !ok {
		multipliers = neutralMultipliers
	}

	for i := range results {
		base := results[i].Relevance*rankRelevanceFactor +
			results[i].SiteWeight*rankSiteFactor +
			results[i].KeywordScore*rankKeywordFactor +
			results[i].TimeRelevance*rankTimeFactor

		multiplier := 1.0
		switch classifySite(results[i].URL) {
		case siteTypeGovernment:
			multiplier = multipliers.government
		case siteTypeParty:
			multiplier = multipliers.party
		case siteTypeMedia:
			multiplier = multipliers.media
		}

		results[i].FinalScore = base * multiplier
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	return results
}

// sortByRelevance orders results by political relevance alone, descending
// and stable. Used by the site-restricted searches, which skip the
// composite formula.
func sortByRelevance(results []Result) []Result {
	for i := range results {
		results[i].FinalScore = results[i].Relevance
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	return results
}

// Package political layers a politics-specific relevance, filtering and
// ranking pipeline on top of a generic web-search backend. A query is
// expanded into intent-tailored variants, fanned out concurrently,
// deduplicated, scored against static weight tables and ranked with
// intent-dependent site-type multipliers.
package political

import "github.com/tsim-imai/polisearch/internal/backend"

// Intent is the caller-declared purpose of a search. It parameterizes
// query expansion and ranking weights.
type Intent string

const (
	IntentSupportRating      Intent = "support_rating"
	IntentElectionPrediction Intent = "election_prediction"
	IntentPolicyAnalysis     Intent = "policy_analysis"
	IntentPoliticalNews      Intent = "political_news"
	IntentPoliticianInfo     Intent = "politician_info"
	IntentPartyInfo          Intent = "party_info"
	IntentPoliticalScandal   Intent = "political_scandal"
	IntentCoalitionAnalysis  Intent = "coalition_analysis"

	// IntentGeneral is the default when the caller declares nothing
	// specific. Unknown intents degrade to the same behavior.
	IntentGeneral Intent = "general_political"
)

// TimeScope is the coarse recency bucket used to re-weight (not filter)
// results.
type TimeScope string

const (
	TimeScopeAll    TimeScope = "all"
	TimeScopeRecent TimeScope = "recent"
	TimeScopeWeek   TimeScope = "week"
	TimeScopeMonth  TimeScope = "month"
)

// defaultTimeRelevance is the neutral recency signal assigned to hits the
// time scope says nothing about.
const defaultTimeRelevance = 0.5

// Result is a raw hit enriched by the pipeline stages. Instances live for
// one pipeline run; they are never shared across fan-out branches.
type Result struct {
	backend.Hit

	// Relevance is the political-relevance score in [0,1].
	Relevance float64 `json:"relevance"`

	// SiteWeight is the static trust score of the source domain in [0,1].
	SiteWeight float64 `json:"site_weight"`

	// KeywordScore measures how well the hit matches the original query,
	// in [0,1].
	KeywordScore float64 `json:"keyword_score"`

	// TimeRelevance is the soft recency signal in [0,1]. Defaults to 0.5.
	TimeRelevance float64 `json:"time_relevance"`

	// FinalScore is the composite ranking score. Unbounded but small.
	FinalScore float64 `json:"final_score"`

	// GovernmentRelevance is set to 1.0 by government-restricted search.
	GovernmentRelevance float64 `json:"government_relevance,omitempty"`

	// MediaBias is the outlet's political lean in [-1,1], negative left.
	// Set by media-restricted search.
	MediaBias float64 `json:"media_bias,omitempty"`
}

// SearchOptions configures a political search.
type SearchOptions struct {
	// Intent declares the purpose of the search (default: general).
	Intent Intent

	// Limit is the maximum number of results to return (default: 10).
	Limit int

	// TimeScope re-weights results by coarse recency (default: all).
	TimeScope TimeScope
}

// withDefaults fills in zero values.
func (o SearchOptions) withDefaults() SearchOptions {
	if o.Intent == "" {
		o.Intent = IntentGeneral
	}
	if o.Limit <= 0 {
		o.Limit = 10
	}
	if o.TimeScope == "" {
		o.TimeScope = TimeScopeAll
	}
	return o
}

package political

import (
	"context"
	"log/slog"
	"time"

	"github.com/tsim-imai/polisearch/internal/backend"
	"github.com/tsim-imai/polisearch/internal/cache"
)

// overFetchFactor is how many extra hits each fan-out branch requests so
// that the relevance filter still leaves enough results to fill the limit.
const overFetchFactor = 2

// Engine is the politics-specific search orchestrator. It owns the full
// pipeline: expansion, fan-out, dedup, scoring, filtering and ranking.
//
// All public search methods share the same availability contract: they
// never return an error. Failures are logged and absorbed into fewer or
// zero results.
type Engine struct {
	backend backend.Backend
	cache   *cache.Cache[[]Result]
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithCache sets the query-result cache. Without it every search goes to
// the backend.
func WithCache(c *cache.Cache[[]Result]) EngineOption {
	return func(e *Engine) {
		e.cache = c
	}
}

// NewEngine creates a search engine on top of the given backend.
func NewEngine(be backend.Backend, opts ...EngineOption) *Engine {
	e := &Engine{backend: be}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search runs the full political search pipeline and returns at most
// opts.Limit ranked results.
func (e *Engine) Search(ctx context.Context, query string, opts SearchOptions) []Result {
	opts = opts.withDefaults()
	start := time.Now()

	cacheKey := query + "|" + string(opts.Intent) + "|" + string(opts.TimeScope)
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey); ok {
			return truncate(cached, opts.Limit)
		}
	}

	variants := ExpandQuery(query, opts.Intent)
	hits, err := fanout(ctx, e.backend, variants, opts.Limit*overFetchFactor)
	if err != nil {
		slog.Error("political search failed",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return []Result{}
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range dedupeByURL(hits) {
		results = append(results, scoreHit(hit, query))
	}

	results = filterByRelevance(results)
	results = applyTimeScope(results, opts.TimeScope)
	results = rankByIntent(results, opts.Intent)

	if e.cache != nil {
		e.cache.Add(cacheKey, results)
	}

	slog.Info("political search complete",
		slog.String("query", query),
		slog.String("intent", string(opts.Intent)),
		slog.Int("variants", len(variants)),
		slog.Int("results", len(results)),
		slog.Duration("duration", time.Since(start)))

	return truncate(results, opts.Limit)
}

// SearchGovernment searches official government domains only. Each listed
// domain gets one site-scoped query with an even share of the limit;
// ranking uses political relevance alone.
func (e *Engine) SearchGovernment(ctx context.Context, query string, limit int) []Result {
	results := e.searchRestricted(ctx, query, governmentSearchDomains, limit)
	for i := range results {
		results[i].GovernmentRelevance = 1.0
	}
	return truncate(sortByRelevance(results), limit)
}

// SearchMedia searches the major news outlets only and annotates each hit
// with the outlet's political lean.
func (e *Engine) SearchMedia(ctx context.Context, query string, limit int) []Result {
	results := e.searchRestricted(ctx, query, mediaSearchDomains, limit)
	for i := range results {
		results[i].MediaBias = lookupMediaBias(results[i].URL)
	}
	return truncate(sortByRelevance(results), limit)
}

// searchRestricted issues one site:-scoped query per domain, sequentially,
// splitting the limit evenly (integer division; the remainder is dropped).
// Per-domain failures are logged and skipped.
func (e *Engine) searchRestricted(ctx context.Context, query string, domains []string, limit int) []Result {
	if limit <= 0 {
		limit = 10
	}
	perDomain := limit / len(domains)

	var results []Result
	for _, domain := range domains {
		hits, err := e.backend.Search(ctx, backend.SiteQuery(domain, query), perDomain)
		if err != nil {
			slog.Warn("restricted search domain failed",
				slog.String("domain", domain),
				slog.String("error", err.Error()))
			continue
		}
		for _, hit := range hits {
			results = append(results, scoreHit(hit, query))
		}
	}
	return results
}

func truncate(results []Result, limit int) []Result {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}

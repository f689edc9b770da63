// Package backend provides search backends that turn a textual query into
// raw web search hits. Backends scrape the HTML result pages of public
// search engines and are selected by name through a registry.
package backend

import (
	"context"
	"strings"
)

// Hit is a single raw search result as returned by a backend.
// It is immutable once produced; enrichment happens downstream.
type Hit struct {
	// Title is the result title text.
	Title string `json:"title"`

	// URL is the result link. May be empty if extraction failed.
	URL string `json:"url"`

	// Snippet is the short description text under the title.
	Snippet string `json:"snippet"`

	// Source is the engine name that produced this hit (e.g. "bing").
	Source string `json:"source"`
}

// Backend executes a search query against one engine.
type Backend interface {
	// Search returns up to maxResults hits for the query.
	// A returned error carries a *Error describing the failure class.
	Search(ctx context.Context, query string, maxResults int) ([]Hit, error)

	// Name returns the engine name (e.g. "duckduckgo").
	Name() string
}

// SiteQuery scopes a query to a single domain using the site: operator
// understood by all supported engines.
func SiteQuery(domain, query string) string {
	return "site:" + domain + " " + query
}

// cleanText collapses runs of whitespace (including newlines) into single
// spaces and trims the result.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// validHit reports whether a hit carries the fields required downstream.
// Hits without a title or snippet are dropped at extraction time so the
// scorer never sees malformed input.
func validHit(h Hit) bool {
	return h.Title != "" && h.Snippet != ""
}

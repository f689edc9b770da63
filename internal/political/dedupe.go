package political

import (
	"strings"

	"github.com/tsim-imai/polisearch/internal/backend"
)

// dedupeByURL drops hits whose normalized URL was already seen, keeping
// the first occurrence and preserving input order. Hits without a URL are
// never deduplicated against each other: an empty URL cannot collide
// meaningfully.
func dedupeByURL(hits []backend.Hit) []backend.Hit {
	seen := make(map[string]bool, len(hits))
	unique := make([]backend.Hit, 0, len(hits))

	for _, hit := range hits {
		key := normalizeURL(hit.URL)
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		unique = append(unique, hit)
	}

	return unique
}

// normalizeURL canonicalizes a URL for duplicate detection.
func normalizeURL(rawURL string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(rawURL), "/"))
}

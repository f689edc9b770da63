package political

import "strings"

// maxSuggestions caps the suggestion list.
const maxSuggestions = 10

// Suggest generates search-suggestion strings for a query by pure string
// templating; no backend call is made. Queries mentioning a known
// politician or party get extra tailored suggestions.
func Suggest(query string) []string {
	suggestions := make([]string, 0, maxSuggestions)
	for _, suffix := range suggestionSuffixes {
		suggestions = append(suggestions, query+" "+suffix)
	}

	if containsAny(query, politicianNames) {
		for _, suffix := range politicianSuffixes {
			suggestions = append(suggestions, query+" "+suffix)
		}
	}
	if containsAny(query, partyNames) {
		for _, suffix := range partySuffixes {
			suggestions = append(suggestions, query+" "+suffix)
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

package political

import "strings"

// ExpandQuery derives intent-tailored query variants from the original
// query. The original query is always the first variant; an unrecognized
// intent appends a single generic political augmentation instead of
// failing.
func ExpandQuery(query string, intent Intent) []string {
	variants := []string{query}

	templates, ok := intentTemplates[intent]
	if !ok {
		templates = []string{genericTemplate}
	}
	for _, tmpl := range templates {
		variants = append(variants, strings.ReplaceAll(tmpl, "{q}", query))
	}

	return variants
}

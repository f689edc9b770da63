package backend

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// duckDuckGoBaseURL is the non-JavaScript HTML endpoint, which serves
// plain markup suitable for scraping.
const duckDuckGoBaseURL = "https://html.duckduckgo.com/html/"

// DuckDuckGo scrapes the DuckDuckGo HTML search results page.
type DuckDuckGo struct {
	baseURL   string
	transport *transport
}

// NewDuckDuckGo creates a DuckDuckGo backend with the given transport tuning.
func NewDuckDuckGo(cfg TransportConfig) *DuckDuckGo {
	return &DuckDuckGo{
		baseURL:   duckDuckGoBaseURL,
		transport: newTransport(cfg),
	}
}

// Name returns the engine name.
func (d *DuckDuckGo) Name() string { return "duckduckgo" }

// Search executes a DuckDuckGo search and extracts up to maxResults hits.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]Hit, error) {
	const op = "duckduckgo.search"

	if maxResults <= 0 {
		return nil, nil
	}

	searchURL := d.baseURL + "?" + url.Values{"q": {query}}.Encode()
	body, err := d.transport.get(ctx, op, searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, NewError(KindParse, op, err)
	}

	var hits []Hit
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := cleanText(sel.Find(".result__a").First().Text())
		snippet := cleanText(sel.Find(".result__snippet").First().Text())
		href, _ := sel.Find(".result__a").First().Attr("href")

		hit := Hit{
			Title:   title,
			URL:     resolveDuckDuckGoURL(href),
			Snippet: snippet,
			Source:  d.Name(),
		}
		if validHit(hit) {
			hits = append(hits, hit)
		}
		return len(hits) < maxResults
	})

	return hits, nil
}

// resolveDuckDuckGoURL unwraps the redirect links DuckDuckGo serves on its
// HTML endpoint (//duckduckgo.com/l/?uddg=<escaped target>). Links that are
// not redirects pass through unchanged.
func resolveDuckDuckGoURL(href string) string {
	if href == "" {
		return ""
	}
	if !strings.Contains(href, "duckduckgo.com/l/") {
		return href
	}

	raw := href
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

var _ Backend = (*DuckDuckGo)(nil)

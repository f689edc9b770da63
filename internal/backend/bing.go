package backend

import (
	"bytes"
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

const bingBaseURL = "https://www.bing.com/search"

// Bing scrapes the Bing search results page.
type Bing struct {
	baseURL   string
	transport *transport
}

// NewBing creates a Bing backend with the given transport tuning.
func NewBing(cfg TransportConfig) *Bing {
	return &Bing{
		baseURL:   bingBaseURL,
		transport: newTransport(cfg),
	}
}

// Name returns the engine name.
func (b *Bing) Name() string { return "bing" }

// Search executes a Bing search and extracts up to maxResults hits.
func (b *Bing) Search(ctx context.Context, query string, maxResults int) ([]Hit, error) {
	const op = "bing.search"

	if maxResults <= 0 {
		return nil, nil
	}

	params := url.Values{
		"q":     {query},
		"count": {"30"},
		"mkt":   {"ja-JP"},
	}
	body, err := b.transport.get(ctx, op, b.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, NewError(KindParse, op, err)
	}

	var hits []Hit
	doc.Find("li.b_algo").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("h2 a").First()
		href, _ := link.Attr("href")

		snippet := cleanText(sel.Find(".b_caption p").First().Text())
		if snippet == "" {
			// Some layouts put the abstract in a bare <p> under the item.
			snippet = cleanText(sel.Find("p").First().Text())
		}

		hit := Hit{
			Title:   cleanText(link.Text()),
			URL:     href,
			Snippet: snippet,
			Source:  b.Name(),
		}
		if validHit(hit) {
			hits = append(hits, hit)
		}
		return len(hits) < maxResults
	})

	return hits, nil
}

var _ Backend = (*Bing)(nil)

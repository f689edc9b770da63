package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bingPage = `<!DOCTYPE html>
<html><body><ol id="b_results">
<li class="b_algo">
  <h2><a href="https://www.shugiin.go.jp/">衆議院</a></h2>
  <div class="b_caption"><p>衆議院の公式ウェブサイト。国会の審議情報を掲載。</p></div>
</li>
<li class="b_algo">
  <h2><a href="https://www3.nhk.or.jp/news/">NHKニュース</a></h2>
  <p>政治や選挙のニュースを速報でお届けします。</p>
</li>
<li class="b_algo">
  <h2><a href="https://example.com/empty"></a></h2>
  <div class="b_caption"><p>タイトルが空の結果。</p></div>
</li>
</ol></body></html>`

func TestBing_Search_ExtractsHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "国会 審議", r.URL.Query().Get("q"))
		assert.Equal(t, "ja-JP", r.URL.Query().Get("mkt"))
		_, _ = w.Write([]byte(bingPage))
	}))
	defer srv.Close()

	bing := NewBing(fastTransport())
	bing.baseURL = srv.URL

	hits, err := bing.Search(context.Background(), "国会 審議", 10)
	require.NoError(t, err)

	// The third result has an empty title and must be dropped.
	require.Len(t, hits, 2)
	assert.Equal(t, "衆議院", hits[0].Title)
	assert.Equal(t, "https://www.shugiin.go.jp/", hits[0].URL)
	assert.Equal(t, "bing", hits[0].Source)

	// Fallback snippet extraction from a bare <p>.
	assert.Equal(t, "NHKニュース", hits[1].Title)
	assert.Equal(t, "政治や選挙のニュースを速報でお届けします。", hits[1].Snippet)
}

func TestBing_Search_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><ol id=\"b_results\"></ol></body></html>"))
	}))
	defer srv.Close()

	bing := NewBing(fastTransport())
	bing.baseURL = srv.URL

	hits, err := bing.Search(context.Background(), "存在しない検索語", 10)
	require.NoError(t, err)
	assert.Empty(t, hits, "no results is a success with an empty list, not an error")
}

func TestBing_Search_ZeroMaxResults(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(bingPage))
	}))
	defer srv.Close()

	bing := NewBing(fastTransport())
	bing.baseURL = srv.URL

	hits, err := bing.Search(context.Background(), "国会", 0)
	require.NoError(t, err)
	assert.Empty(t, hits, "a zero cap must yield no hits")
	assert.Zero(t, calls, "a zero cap must not issue a request")
}

func TestSiteQuery(t *testing.T) {
	assert.Equal(t, "site:kantei.go.jp 記者会見", SiteQuery("kantei.go.jp", "記者会見"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "内閣 支持率 調査", cleanText("  内閣 \n 支持率\t調査  "))
	assert.Equal(t, "", cleanText("  \n\t "))
}

package political

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsim-imai/polisearch/internal/backend"
)

func TestScoreHit_HighRelevancePoliticalHit(t *testing.T) {
	// High-weight keyword in the title plus a trusted domain must clear
	// the relevance threshold comfortably.
	r := scoreHit(backend.Hit{
		Title:   "内閣総理大臣が発言",
		Snippet: "支持率調査",
		URL:     "https://nhk.or.jp/x",
	}, "岸田")

	assert.Greater(t, r.Relevance, relevanceThreshold)
	assert.Equal(t, 0.9, r.SiteWeight)
	assert.Equal(t, defaultTimeRelevance, r.TimeRelevance)
}

func TestScoreHit_NonPoliticalHitScoresNearZero(t *testing.T) {
	// Horoscope-and-recipes content: several exclusion keywords and a
	// low-trust blog domain push the score to the floor.
	r := scoreHit(backend.Hit{
		Title:   "今日の占いとレシピ",
		Snippet: "天気とファッション",
		URL:     "https://ameblo.jp/y",
	}, "岸田")

	assert.Equal(t, 0.0, r.Relevance)
	assert.Equal(t, 0.3, r.SiteWeight)
}

func TestScoreHit_ScoresAlwaysClamped(t *testing.T) {
	// A title stuffed with every heavy keyword overflows 1.0 before
	// clamping.
	r := scoreHit(backend.Hit{
		Title:   "内閣総理大臣 首相 内閣支持率 世論調査 総選挙 国会",
		Snippet: "衆議院選挙 参議院選挙 閣議決定 政府",
		URL:     "https://kantei.go.jp/page",
	}, "内閣支持率 国会")

	assert.Equal(t, 1.0, r.Relevance)
	assert.InDelta(t, 0.4, r.KeywordScore, 1e-9) // both tokens in the title
	assert.GreaterOrEqual(t, r.Relevance, 0.0)
}

func TestScoreHit_TitleAndSnippetContributeIndependently(t *testing.T) {
	// The same keyword in both fields contributes from each: the title
	// factor (0.4) plus the snippet factor (0.2), plus the default site
	// weight share (0.5*0.3).
	r := scoreHit(backend.Hit{
		Title:   "首相の会見",
		Snippet: "首相が記者会見",
		URL:     "https://example.com/a",
	}, "会見")

	assert.InDelta(t, 1.0*0.4+1.0*0.2+unknownSiteWeight*0.3, r.Relevance, 1e-9)
}

func TestScoreHit_MissingFieldsTreatedAsEmpty(t *testing.T) {
	r := scoreHit(backend.Hit{}, "岸田")
	assert.InDelta(t, unknownSiteWeight*0.3, r.Relevance, 1e-9)
	assert.Equal(t, 0.0, r.KeywordScore)
}

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		snippet string
		query   string
		want    float64
	}{
		{
			name:    "full query in title and snippet plus token matches",
			title:   "選挙速報",
			snippet: "選挙の結果",
			query:   "選挙",
			want:    1.0, // 0.5+0.3+0.2+0.1 clamped
		},
		{
			name:    "tokens only",
			title:   "岸田内閣の方針",
			snippet: "内閣が決定",
			query:   "岸田 内閣",
			want:    0.2 + 0.2 + 0.1, // 岸田+内閣 in title, 内閣 in snippet
		},
		{
			name:    "no match",
			title:   "無関係な話題",
			snippet: "別の内容",
			query:   "選挙",
			want:    0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keywordScore(tt.title, tt.snippet, tt.query)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLookupSiteWeight(t *testing.T) {
	tests := []struct {
		url  string
		want float64
	}{
		{"https://www.kantei.go.jp/jp/", 1.0},
		{"https://nhk.or.jp/politics", 0.9},
		{"https://ameblo.jp/someone", 0.3},
		{"https://unknown-site.example", unknownSiteWeight},
		// kokkai.ndl.go.jp is listed before the other go.jp entries, so
		// the more specific weight wins.
		{"https://kokkai.ndl.go.jp/minutes", 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, lookupSiteWeight(tt.url))
		})
	}
}

func TestLookupMediaBias(t *testing.T) {
	assert.Equal(t, 0.4, lookupMediaBias("https://www.sankei.com/article/1"))
	assert.Equal(t, -0.3, lookupMediaBias("https://www.asahi.com/articles/2"))
	assert.Equal(t, 0.0, lookupMediaBias("https://www.nhk.or.jp/news/3"))
	assert.Equal(t, 0.0, lookupMediaBias("https://unknown-outlet.example"))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.7))
	assert.Equal(t, 0.42, clamp01(0.42))
	assert.Equal(t, 1.0, clamp01(2.3))
}

package political

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsim-imai/polisearch/internal/backend"
)

func hit(title, url string) backend.Hit {
	return backend.Hit{Title: title, URL: url, Snippet: title + "の説明"}
}

func TestDedupeByURL_KeepsFirstOccurrence(t *testing.T) {
	hits := []backend.Hit{
		hit("一件目", "https://nhk.or.jp/a"),
		hit("二件目", "https://asahi.com/b"),
		hit("重複", "https://nhk.or.jp/a"),
		hit("三件目", "https://jimin.jp/c"),
	}

	unique := dedupeByURL(hits)

	require.Len(t, unique, 3)
	assert.Equal(t, "一件目", unique[0].Title, "the first occurrence must survive")
	assert.Equal(t, "二件目", unique[1].Title)
	assert.Equal(t, "三件目", unique[2].Title)
}

func TestDedupeByURL_NormalizesCaseAndTrailingSlash(t *testing.T) {
	hits := []backend.Hit{
		hit("原本", "https://NHK.or.jp/News/"),
		hit("重複", "https://nhk.or.jp/news"),
	}

	unique := dedupeByURL(hits)
	require.Len(t, unique, 1)
	assert.Equal(t, "原本", unique[0].Title)
}

func TestDedupeByURL_EmptyURLsNeverCollide(t *testing.T) {
	hits := []backend.Hit{
		hit("URLなし1", ""),
		hit("URLなし2", ""),
		hit("URLなし3", "   "),
	}

	unique := dedupeByURL(hits)
	assert.Len(t, unique, 3, "hits without a URL must not deduplicate against each other")
}

func TestDedupeByURL_Empty(t *testing.T) {
	assert.Empty(t, dedupeByURL(nil))
}

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_AddGet(t *testing.T) {
	c := New[[]string](8, time.Minute)

	c.Add("岸田内閣 支持率", []string{"a", "b"})

	got, ok := c.Get("岸田内閣 支持率")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	_, ok = c.Get("別のクエリ")
	assert.False(t, ok)
}

func TestCache_KeyNormalization(t *testing.T) {
	c := New[int](8, time.Minute)

	c.Add("  Kishida   Cabinet ", 42)

	// Case and whitespace differences map to the same entry.
	got, ok := c.Get("kishida cabinet")
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New[int](8, 20*time.Millisecond)

	c.Add("q", 1)
	_, ok := c.Get("q")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = c.Get("q")
	assert.False(t, ok, "entries must expire after the TTL")
}

func TestCache_SizeBound(t *testing.T) {
	c := New[int](2, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	assert.LessOrEqual(t, c.Len(), 2)
}

func TestCache_RemoveAndPurge(t *testing.T) {
	c := New[int](8, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)

	c.Remove("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Purge()
	assert.Zero(t, c.Len())
}

func TestCache_Stats(t *testing.T) {
	c := New[int](8, time.Minute)
	c.Add("a", 1)

	c.Get("a")
	c.Get("a")
	c.Get("missing")

	hits, misses := c.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(1), misses)
}

func TestCache_DefaultsOnBadArguments(t *testing.T) {
	c := New[int](0, 0)
	c.Add("a", 1)
	_, ok := c.Get("a")
	assert.True(t, ok)
}

func TestKey_Deterministic(t *testing.T) {
	assert.Equal(t, Key("国会  審議"), Key("国会 審議"))
	assert.NotEqual(t, Key("国会"), Key("審議"))
	assert.Len(t, Key("anything"), 64) // hex-encoded SHA-256
}

// Package cache provides a TTL-bounded LRU cache keyed by normalized
// query strings. It keeps repeated searches from hammering the scraped
// engines within a short window.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Default sizing. Entries are small (a slice of scored hits), so a few
// hundred queries fit comfortably in memory.
const (
	DefaultSize = 256
	DefaultTTL  = 15 * time.Minute
)

// Cache is a size- and TTL-bounded LRU keyed by query. The zero value is
// not usable; construct with New.
type Cache[V any] struct {
	lru *expirable.LRU[string, V]

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a cache with the given capacity and TTL. Non-positive
// values fall back to the defaults.
func New[V any](size int, ttl time.Duration) *Cache[V] {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{
		lru: expirable.NewLRU[string, V](size, nil, ttl),
	}
}

// Get returns the cached value for a query, if present and unexpired.
func (c *Cache[V]) Get(query string) (V, bool) {
	v, ok := c.lru.Get(Key(query))
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Add stores a value under the query's key.
func (c *Cache[V]) Add(query string, value V) {
	c.lru.Add(Key(query), value)
}

// Remove invalidates a single query.
func (c *Cache[V]) Remove(query string) {
	c.lru.Remove(Key(query))
}

// Purge drops all entries.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// Stats reports cumulative hit and miss counts.
func (c *Cache[V]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Key derives the cache key for a query: lowercased, whitespace-collapsed,
// then hashed so arbitrary query text cannot grow keys unboundedly.
func Key(query string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

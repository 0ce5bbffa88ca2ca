package cache

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/LaurelLatin/core/segment"
)

// ResultCache is a specialized cache for segmentation results, keyed by a
// BLAKE3 digest of the input text and the options it was segmented with.
type ResultCache struct {
	cache Cache[string, []segment.Sentence]
}

// NewResultCache creates a new segmentation result cache.
func NewResultCache(config Config) *ResultCache {
	return &ResultCache{
		cache: NewLRUCache[string, []segment.Sentence](config),
	}
}

// NewDefaultResultCache creates a result cache with default configuration.
func NewDefaultResultCache() *ResultCache {
	config := DefaultConfig()
	config.MaxSize = 256 // Results are small relative to corpora, keep more
	return NewResultCache(config)
}

// Key derives the cache key for a text segmented under the given options.
// The options fingerprint is hashed alongside the text so the same input
// segmented under different configurations never collides.
func Key(text string, opts segment.Options) string {
	h := blake3.New()
	_, _ = h.WriteString(opts.Fingerprint())
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(text)
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached result by key.
func (c *ResultCache) Get(key string) ([]segment.Sentence, bool) {
	return c.cache.Get(key)
}

// Put stores a segmentation result.
func (c *ResultCache) Put(key string, sentences []segment.Sentence) {
	c.cache.Put(key, sentences)
}

// Remove removes a result from the cache.
func (c *ResultCache) Remove(key string) {
	c.cache.Remove(key)
}

// Clear removes all results from the cache.
func (c *ResultCache) Clear() {
	c.cache.Clear()
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	return c.cache.Len()
}

// Stats returns cache statistics.
func (c *ResultCache) Stats() Stats {
	return c.cache.Stats()
}

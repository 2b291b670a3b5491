package suggest

import (
	"github.com/bastiangx/triesearch/pkg/trie"
	"github.com/charmbracelet/log"
)

// DefaultCacheSize is the number of prefixes a Completer caches by default.
const DefaultCacheSize = 2048

// Completer answers completion queries against a trie index.
// Like the index it wraps, it is not safe for concurrent mutation.
type Completer struct {
	index    *trie.Index
	hotCache *HotCache
}

// NewCompleter wraps index with a hot cache of cacheSize prefixes.
// A nil index starts the completer empty.
func NewCompleter(index *trie.Index, cacheSize int) *Completer {
	if index == nil {
		index = trie.Empty()
	}
	return &Completer{
		index:    index,
		hotCache: NewHotCache(cacheSize),
	}
}

// Complete returns the completions of prefix in lexicographic order,
// truncated to limit when limit is positive.
func (c *Completer) Complete(prefix string, limit int) []string {
	words, ok := c.hotCache.Get(prefix)
	if !ok {
		words = c.index.Suggest(prefix)
		c.hotCache.Put(prefix, words)
	} else {
		log.Debugf("Hot cache hit for prefix '%s'", prefix)
	}

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

// AddWord inserts word and drops cached results it would change.
func (c *Completer) AddWord(word string) {
	if c.index.Contains(word) {
		return
	}
	c.index.Insert(word)
	c.hotCache.Invalidate(word)
}

// Stats reports index size and hot cache counters.
func (c *Completer) Stats() map[string]int {
	stats := map[string]int{
		"totalWords": c.index.Len(),
		"totalNodes": c.index.NodeCount(),
	}
	for k, v := range c.hotCache.Stats() {
		stats[k] = v
	}
	return stats
}

package suggest

import (
	"math"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// keyMark leads every cache key so the empty prefix has a non-empty key.
const keyMark = '\x00'

// HotCache keeps the full suggestion lists of recently queried prefixes.
// Entries live in a patricia trie so that all cached prefixes of a newly
// inserted word can be found and dropped in a single walk.
type HotCache struct {
	entries     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int
	misses      int
	maxEntries  int
	mu          sync.Mutex
}

// NewHotCache creates a cache holding at most maxEntries prefixes.
// A non-positive maxEntries disables caching.
func NewHotCache(maxEntries int) *HotCache {
	return &HotCache{
		entries:    patricia.NewTrie(),
		accessTime: make(map[string]int64, max(maxEntries, 0)),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached suggestions for prefix.
func (hc *HotCache) Get(prefix string) ([]string, bool) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	item := hc.entries.Get(cacheKey(prefix))
	if item == nil {
		hc.misses++
		return nil, false
	}

	hc.hits++
	hc.markAccessed(prefix)
	return slices.Clone(item.([]string)), true
}

// Put stores the suggestions for prefix, evicting the least recently used
// entry when the cache is full.
func (hc *HotCache) Put(prefix string, words []string) {
	if hc.maxEntries <= 0 {
		return
	}

	hc.mu.Lock()
	defer hc.mu.Unlock()

	if _, exists := hc.accessTime[prefix]; !exists && len(hc.accessTime) >= hc.maxEntries {
		hc.evictLRU()
	}

	hc.entries.Set(cacheKey(prefix), slices.Clone(words))
	hc.markAccessed(prefix)
}

// Invalidate drops every cached prefix of word, the empty prefix included.
func (hc *HotCache) Invalidate(word string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	var stale []patricia.Prefix
	err := hc.entries.VisitPrefixes(cacheKey(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, slices.Clone(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting cached prefixes: %v", err)
	}

	for _, p := range stale {
		hc.entries.Delete(p)
		delete(hc.accessTime, string(p[1:]))
	}

	if len(stale) > 0 {
		log.Debugf("Invalidated %d cached prefixes of '%s'", len(stale), word)
	}
}

// Len returns the number of cached prefixes.
func (hc *HotCache) Len() int {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	return len(hc.accessTime)
}

func (hc *HotCache) Stats() map[string]int {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	return map[string]int{
		"cacheEntries":    len(hc.accessTime),
		"maxCacheEntries": hc.maxEntries,
		"cacheHits":       hc.hits,
		"cacheMisses":     hc.misses,
	}
}

func (hc *HotCache) markAccessed(prefix string) {
	hc.accessCount++
	hc.accessTime[prefix] = hc.accessCount
}

func (hc *HotCache) evictLRU() {
	var oldestPrefix string
	var oldestTime int64 = math.MaxInt64
	found := false

	for prefix, accessTime := range hc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestPrefix = prefix
			found = true
		}
	}

	if found {
		hc.entries.Delete(cacheKey(oldestPrefix))
		delete(hc.accessTime, oldestPrefix)
		log.Debugf("Evicted prefix '%s' from hot cache", oldestPrefix)
	}
}

func cacheKey(prefix string) patricia.Prefix {
	key := make(patricia.Prefix, 0, len(prefix)+1)
	key = append(key, keyMark)
	return append(key, prefix...)
}

package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/triesearch/pkg/trie"
)

func newCompleter(t *testing.T, words []string, cacheSize int) *Completer {
	t.Helper()

	idx, err := trie.New(words)
	require.NoError(t, err)

	return NewCompleter(idx, cacheSize)
}

func TestCompleteLimits(t *testing.T) {
	t.Parallel()

	c := newCompleter(t, []string{"car", "cart", "cat", "cattle", "dog"}, 16)

	for _, tc := range []struct {
		uc       string
		prefix   string
		limit    int
		expected []string
	}{
		{uc: "no limit", prefix: "ca", limit: 0, expected: []string{"car", "cart", "cat", "cattle"}},
		{uc: "negative limit", prefix: "ca", limit: -1, expected: []string{"car", "cart", "cat", "cattle"}},
		{uc: "limit truncates", prefix: "ca", limit: 2, expected: []string{"car", "cart"}},
		{uc: "limit above count", prefix: "d", limit: 10, expected: []string{"dog"}},
		{uc: "unknown prefix", prefix: "x", limit: 5, expected: []string{}},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Complete(tc.prefix, tc.limit))
		})
	}
}

func TestCompleteUsesCache(t *testing.T) {
	t.Parallel()

	c := newCompleter(t, []string{"go", "gopher"}, 16)

	first := c.Complete("go", 0)
	second := c.Complete("go", 0)

	assert.Equal(t, first, second)
	stats := c.Stats()
	assert.Equal(t, 1, stats["cacheHits"])
	assert.Equal(t, 1, stats["cacheMisses"])
	assert.Equal(t, 1, stats["cacheEntries"])
}

func TestCachedResultsAreCopies(t *testing.T) {
	t.Parallel()

	c := newCompleter(t, []string{"go", "gopher"}, 16)

	c.Complete("go", 0)
	hit := c.Complete("go", 0)
	hit[0] = "mutated"

	assert.Equal(t, []string{"go", "gopher"}, c.Complete("go", 0))
}

func TestAddWordInvalidatesPrefixes(t *testing.T) {
	t.Parallel()

	c := newCompleter(t, []string{"tea", "ten"}, 16)

	assert.Equal(t, []string{"tea", "ten"}, c.Complete("te", 0))
	assert.Equal(t, []string{"tea", "ten"}, c.Complete("", 0))
	assert.Equal(t, []string{}, c.Complete("x", 0))

	c.AddWord("ted")

	assert.Equal(t, []string{"tea", "ted", "ten"}, c.Complete("te", 0))
	assert.Equal(t, []string{"tea", "ted", "ten"}, c.Complete("", 0))
	assert.Equal(t, 3, c.Stats()["totalWords"])
	// "x" is unrelated to "ted" and stays cached
	assert.Equal(t, []string{}, c.Complete("x", 0))
	assert.Equal(t, 1, c.Stats()["cacheHits"])
}

func TestAddExistingWordKeepsCache(t *testing.T) {
	t.Parallel()

	c := newCompleter(t, []string{"tea"}, 16)
	c.Complete("t", 0)

	c.AddWord("tea")

	assert.Equal(t, []string{"tea"}, c.Complete("t", 0))
	assert.Equal(t, 1, c.Stats()["cacheHits"])
}

func TestNilIndexStartsEmpty(t *testing.T) {
	t.Parallel()

	c := NewCompleter(nil, 0)

	assert.Equal(t, []string{}, c.Complete("", 0))

	c.AddWord("one")

	assert.Equal(t, []string{"one"}, c.Complete("o", 0))
	assert.Equal(t, 0, c.Stats()["cacheEntries"])
}

package trie

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, source any, opts ...Option) *Index {
	t.Helper()

	idx, err := New(source, opts...)
	require.NoError(t, err)

	return idx
}

func TestSuggestReturnsCompletions(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, []string{"cat", "car", "cart"})

	for _, tc := range []struct {
		prefix   string
		expected []string
	}{
		{prefix: "car", expected: []string{"car", "cart"}},
		{prefix: "ca", expected: []string{"car", "cart", "cat"}},
		{prefix: "", expected: []string{"car", "cart", "cat"}},
		{prefix: "cart", expected: []string{"cart"}},
		{prefix: "cats", expected: []string{}},
		{prefix: "dog", expected: []string{}},
		{prefix: "c", expected: []string{"car", "cart", "cat"}},
	} {
		t.Run("prefix_"+tc.prefix, func(t *testing.T) {
			got := idx.Suggest(tc.prefix)

			require.NotNil(t, got)
			assert.ElementsMatch(t, tc.expected, got)
		})
	}
}

func TestEveryPrefixOfAnInsertedWordFindsIt(t *testing.T) {
	t.Parallel()

	words := []string{"apple", "app", "application", "banana", "band", "bandana", "ünïcödé", "日本語"}
	idx := mustNew(t, words)

	for _, w := range words {
		runes := []rune(w)
		for i := 0; i <= len(runes); i++ {
			prefix := string(runes[:i])
			assert.Contains(t, idx.Suggest(prefix), w, "prefix %q of %q", prefix, w)
		}
	}
}

func TestSuggestOutputIsSortedAndUnique(t *testing.T) {
	t.Parallel()

	words := []string{"zeta", "alpha", "beta", "alphabet", "al", "b", "gamma", "alpha"}
	idx := mustNew(t, words)

	got := idx.Suggest("")

	assert.True(t, slices.IsSorted(got))
	assert.Equal(t, []string{"al", "alpha", "alphabet", "b", "beta", "gamma", "zeta"}, got)
	assert.Equal(t, got, idx.Suggest(""), "traversal must be deterministic")
}

func TestInsertIsIdempotent(t *testing.T) {
	t.Parallel()

	once := Empty()
	once.Insert("hello")

	many := Empty()
	for i := 0; i < 5; i++ {
		many.Insert("hello")
	}

	for _, prefix := range []string{"", "h", "hel", "hello", "hellos"} {
		assert.Equal(t, once.Suggest(prefix), many.Suggest(prefix))
	}
	assert.Equal(t, once.Len(), many.Len())
	assert.Equal(t, once.NodeCount(), many.NodeCount())
}

func TestInsertEmptyStringMarksRoot(t *testing.T) {
	t.Parallel()

	idx := Empty()
	idx.Insert("")

	assert.Equal(t, []string{""}, idx.Suggest(""))
	assert.True(t, idx.Contains(""))
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, 1, idx.NodeCount())

	idx.Insert("a")
	assert.Equal(t, []string{"", "a"}, idx.Suggest(""))
	assert.Equal(t, []string{"a"}, idx.Suggest("a"))
}

func TestEmptyIndex(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, []string{})

	assert.Equal(t, []string{}, idx.Suggest(""))
	assert.Equal(t, []string{}, idx.Suggest("x"))
	assert.Zero(t, idx.Len())
	assert.Equal(t, 1, idx.NodeCount())
}

func TestContainsAndCounts(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, []string{"to", "tea", "ted", "ten", "i", "in", "inn"})

	assert.True(t, idx.Contains("tea"))
	assert.True(t, idx.Contains("i"))
	assert.False(t, idx.Contains("te"))
	assert.False(t, idx.Contains("teapot"))
	assert.Equal(t, 7, idx.Len())
	// root, t, o, e, a, d, n, i, n, n
	assert.Equal(t, 10, idx.NodeCount())
}

func TestSuggestHandlesDeepSingleLetterChains(t *testing.T) {
	t.Parallel()

	idx := Empty()
	long := strings.Repeat("a", 100_000)
	idx.Insert(long)
	idx.Insert("aaa")

	got := idx.Suggest("aa")

	require.Len(t, got, 2)
	assert.Equal(t, "aaa", got[0])
	assert.Equal(t, long, got[1])
}

func TestMultiByteRunesAreSingleEdges(t *testing.T) {
	t.Parallel()

	idx := mustNew(t, []string{"héllo", "hélium", "hello"})

	assert.ElementsMatch(t, []string{"héllo", "hélium"}, idx.Suggest("hé"))
	assert.Equal(t, []string{"hello"}, idx.Suggest("he"))
	// h, é, l, l, o, i, u, m, e, l, l, o + root
	assert.Equal(t, 13, idx.NodeCount())
}

func TestInvalidUTF8WordsRoundTrip(t *testing.T) {
	t.Parallel()

	idx := Empty()
	idx.Insert("a\xff")
	idx.Insert("a\xfe")
	idx.Insert("a\uFFFD")
	idx.Insert("ab")

	assert.Equal(t, 4, idx.Len())
	assert.True(t, idx.Contains("a\xff"))
	assert.True(t, idx.Contains("a\xfe"))
	assert.True(t, idx.Contains("a\uFFFD"))
	assert.False(t, idx.Contains("a\xfd"))

	// raw bytes sort after every valid code point
	assert.Equal(t, []string{"ab", "a\uFFFD", "a\xfe", "a\xff"}, idx.Suggest(""))
	assert.Equal(t, []string{"a\xff"}, idx.Suggest("a\xff"))
	assert.Equal(t, []string{"a\uFFFD"}, idx.Suggest("a\uFFFD"))

	for _, w := range idx.Suggest("a") {
		assert.True(t, idx.Contains(w), "suggested %q was never inserted", w)
	}
}

func BenchmarkSuggest(b *testing.B) {
	words := make([]string, 0, 10_000)
	for _, a := range "abcdefghij" {
		for _, c := range "abcdefghij" {
			for _, d := range "abcdefghijklmnopqrstuvwxyz" {
				words = append(words, string([]rune{a, c, d})+"word")
			}
		}
	}
	idx, err := New(words)
	require.NoError(b, err)

	b.ResetTimer()

	prefixes := []string{"a", "ab", "abc", "j", "ja"}
	for i := 0; i < b.N; i++ {
		idx.Suggest(prefixes[i%len(prefixes)])
	}
}

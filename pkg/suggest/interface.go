// Package suggest serves prefix completions from a trie index, keeping the
// results of recently queried prefixes in a hot cache.
package suggest

// ICompleter defines the interface for completion engines
type ICompleter interface {
	// Complete returns up to limit completions of prefix, all of them when limit <= 0
	Complete(prefix string, limit int) []string

	// AddWord indexes a single word
	AddWord(word string)

	// Stats returns statistics about the index and the cache
	Stats() map[string]int
}

// Package trie implements the prefix index behind every suggestion lookup.
//
// An Index is built once from a source sequence (strings, or records projected
// to strings through a key) and grows only through Insert. Suggest walks the
// tree along a prefix and returns every indexed word below it.
//
// Edges are Unicode code points. A byte that is not part of a valid UTF-8
// sequence gets an edge of its own, keyed above the Unicode range, so words
// round-trip byte for byte and sort after every valid code point.
//
// An Index is not safe for concurrent mutation; callers that share one across
// goroutines must synchronize Insert against Suggest themselves.
package trie

import (
	"errors"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// ErrInvalidInputKind is returned by New when the source is not a sequence,
// or when its elements are neither strings nor records carrying the key.
var ErrInvalidInputKind = errors.New("invalid input kind")

// Index is a prefix tree over the indexed words.
type Index struct {
	root  *node
	words int
	nodes int
}

// Option configures construction of an Index.
type Option func(*options)

type options struct {
	key string
}

// WithKey names the field used to project record elements to strings.
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// New builds an Index from source.
//
// Source must be a slice or an array. When every element is a string each
// one is inserted as is. Otherwise, given a key, every element must be a
// record; the value stored under key is inserted when it is a non-empty
// string and the record is skipped when it is missing or not a string.
func New(source any, opts ...Option) (*Index, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	idx := Empty()
	words, err := project(source, o.key)
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		idx.Insert(w)
	}

	log.Debugf("Built index: %d words, %d nodes", idx.words, idx.nodes)
	return idx, nil
}

// Empty returns an Index holding no words.
func Empty() *Index {
	return &Index{root: newNode(), nodes: 1}
}

// Insert adds word to the index. Inserting the empty string marks the root
// as a complete word. Inserting a word twice has no further effect.
func (idx *Index) Insert(word string) {
	n := idx.root
	for i := 0; i < len(word); {
		r, size := decodeKey(word[i:])
		i += size

		var created bool
		if n, created = n.child(r); created {
			idx.nodes++
		}
	}
	if !n.isWord {
		n.isWord = true
		idx.words++
	}
}

// Suggest returns every indexed word that starts with prefix, in ascending
// lexicographic order. An absent prefix yields an empty, non-nil slice.
func (idx *Index) Suggest(prefix string) []string {
	start := idx.find(prefix)
	if start == nil {
		return []string{}
	}
	return collect(start, prefix)
}

// Contains reports whether word was inserted as a complete word.
func (idx *Index) Contains(word string) bool {
	n := idx.find(word)
	return n != nil && n.isWord
}

// Len returns the number of distinct words in the index.
func (idx *Index) Len() int {
	return idx.words
}

// NodeCount returns the number of nodes in the tree, root included.
func (idx *Index) NodeCount() int {
	return idx.nodes
}

// find walks the tree along s and returns the node reached, or nil when
// some transition is missing.
func (idx *Index) find(s string) *node {
	n := idx.root
	for i := 0; i < len(s); {
		r, size := decodeKey(s[i:])
		i += size

		next, ok := n.children[r]
		if !ok {
			return nil
		}
		n = next
	}
	return n
}

// rawByteBase offsets the edge keys of bytes that are not valid UTF-8.
const rawByteBase = utf8.MaxRune + 1

// decodeKey returns the edge key at the start of s and its width in bytes.
func decodeKey(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return rawByteBase + rune(s[0]), 1
	}
	return r, size
}

// appendKey writes the bytes spelled by edge key r to buf.
func appendKey(buf []byte, r rune) []byte {
	if r >= rawByteBase {
		return append(buf, byte(r-rawByteBase))
	}
	return utf8.AppendRune(buf, r)
}

// frame is a pending node on the traversal stack. off is the length of the
// spelled path before r is appended.
type frame struct {
	n   *node
	r   rune
	off int
}

// collect gathers the words of the subtree rooted at start with an explicit
// stack. Children are pushed in descending order so they pop in ascending
// order, which keeps the output sorted. The spelled path is kept in one
// shared buffer so deep chains stay linear.
func collect(start *node, prefix string) []string {
	results := []string{}
	if start.isWord {
		results = append(results, prefix)
	}

	path := []byte(prefix)
	stack := pushChildren(nil, start, len(path))
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path = appendKey(path[:top.off], top.r)
		if top.n.isWord {
			results = append(results, string(path))
		}
		stack = pushChildren(stack, top.n, len(path))
	}
	return results
}

func pushChildren(stack []frame, n *node, off int) []frame {
	keys := n.sortedKeys()
	for i := len(keys) - 1; i >= 0; i-- {
		stack = append(stack, frame{n: n.children[keys[i]], r: keys[i], off: off})
	}
	return stack
}

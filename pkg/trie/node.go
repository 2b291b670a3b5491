package trie

import "slices"

// node is a single vertex of the prefix tree.
// The path from the root to a node spells a prefix; isWord marks
// prefixes that were inserted as complete words.
type node struct {
	children map[rune]*node
	isWord   bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// child returns the child for r, creating it when missing.
// The second value reports whether a node was created.
func (n *node) child(r rune) (*node, bool) {
	if next, ok := n.children[r]; ok {
		return next, false
	}
	next := newNode()
	n.children[r] = next
	return next, true
}

// sortedKeys returns the child transitions in ascending key order.
func (n *node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

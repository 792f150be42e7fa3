package search

import "github.com/fiftymoves/lookahead/game"

// MoveTree maps an encoded move to the tree of moves explored after it. Each
// node is owned by exactly one parent; subtrees are never shared. An empty
// map is a leaf.
type MoveTree map[game.Key]MoveTree

// Size returns the total number of moves recorded in the tree.
func (t MoveTree) Size() int {
	n := len(t)
	for _, sub := range t {
		n += sub.Size()
	}
	return n
}

// Contains reports whether every move in other, at every level, is also
// present in t. A pruned search's tree is contained in the exhaustive one.
func (t MoveTree) Contains(other MoveTree) bool {
	for k, sub := range other {
		tsub, ok := t[k]
		if !ok || !tsub.Contains(sub) {
			return false
		}
	}
	return true
}

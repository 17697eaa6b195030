// Package solve implements the branch-and-bound search that builds an
// optimal Mastermind decision tree: the recursive generator, guarded by
// the morphology cache in package morph, ranked by package rank.
package solve

import (
	"sort"
	"strings"

	"github.com/mastermind-tree/solver/internal/code"
	"github.com/mastermind-tree/solver/internal/response"
)

// Tree is a rooted decision-tree node: a guess, and one child per
// Response that guess can produce against the node's answer set. A
// present key whose value is nil denotes a leaf -- the secret has been
// identified. A present key with a non-nil value denotes continuation
// after that feedback.
//
// The key set of Children always equals exactly the set of responses
// Guess produces against the node's answer set; there are no missing or
// spurious keys. Every non-nil child's answer set is a strict subset of
// its parent's, so the recursion (and any walk of the resulting Tree) is
// well-founded.
type Tree struct {
	Guess    code.Code
	Children map[response.Response]*Tree
}

// sortedResponses returns the keys of children in ascending Response
// order, for any caller that needs to walk a Tree deterministically (the
// map itself does not iterate in Response order).
func sortedResponses(children map[response.Response]*Tree) []response.Response {
	out := make([]response.Response, 0, len(children))
	for r := range children {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// String renders t as a single-line, Go-struct-style debug form. Package
// render builds a nicer, terminal-aware presentation on top of the same
// data.
func (t *Tree) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("Tree{Guess: ")
	b.WriteString(t.Guess.String())
	b.WriteString(", Children: {")
	for i, r := range sortedResponses(t.Children) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
		b.WriteString(": ")
		if child := t.Children[r]; child != nil {
			b.WriteString(child.String())
		} else {
			b.WriteString("leaf")
		}
	}
	b.WriteString("}}")
	return b.String()
}

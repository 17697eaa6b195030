// Package rank provides ranking functions for candidate decision trees.
// Depth (height) is the only ranking the core requires; the generator in
// package solve accepts any solve.RankFunc, so alternative rankings can be
// added here without touching the search itself.
package rank

import "github.com/mastermind-tree/solver/internal/solve"

// ByDepth returns the height of t: 1 if every child is a leaf (nil),
// otherwise 1 + the maximum depth among its non-leaf children. This is
// the metric solve.Generate minimises; lower is better.
func ByDepth(t *solve.Tree) int {
	max := 0
	for _, child := range t.Children {
		if child == nil {
			continue
		}
		if d := ByDepth(child); d > max {
			max = d
		}
	}
	return 1 + max
}

package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastermind-tree/solver/internal/code"
	"github.com/mastermind-tree/solver/internal/rank"
	"github.com/mastermind-tree/solver/internal/response"
	"github.com/mastermind-tree/solver/internal/solve"
)

func TestGenerateSmallExample(t *testing.T) {
	c00 := code.Code{0, 0}
	c01 := code.Code{0, 1}

	// An artificial rank that prefers trees rooted at 00 over trees rooted
	// at 01, used to isolate Generate's mechanics from ByDepth.
	testRank := func(tr *solve.Tree) int {
		if tr.Guess.Equal(c00) {
			return 0
		}
		return 1
	}

	got := solve.Generate([]code.Code{c00, c01}, []code.Code{c00, c01}, testRank, 3)
	require.NotNil(t, got)

	assert.True(t, got.Guess.Equal(c00))
	assert.Len(t, got.Children, 2)

	terminal := response.Response{Correct: 2, Misplaced: 0, Wrong: 0}
	require.Contains(t, got.Children, terminal)
	assert.Nil(t, got.Children[terminal])

	nonTerminal := response.Response{Correct: 1, Misplaced: 0, Wrong: 1}
	require.Contains(t, got.Children, nonTerminal)
	child := got.Children[nonTerminal]
	require.NotNil(t, child)
	assert.True(t, child.Guess.Equal(c01))
	require.Contains(t, child.Children, terminal)
	assert.Nil(t, child.Children[terminal])
}

func TestGenerateExhaustivelyDepthL2B2(t *testing.T) {
	tree, err := solve.GenerateExhaustively(2, 2, rank.ByDepth)
	require.NoError(t, err)
	assert.Equal(t, 3, rank.ByDepth(tree))
}

func TestGenerateExhaustivelyChildrenMatchAnswerSet(t *testing.T) {
	tree, err := solve.GenerateExhaustively(2, 2, rank.ByDepth)
	require.NoError(t, err)

	universe, err := code.Universe(2, 2)
	require.NoError(t, err)

	assertChildrenMatchResponses(t, tree, universe)
}

// assertChildrenMatchResponses walks tree and checks the invariant that
// the key set of children equals exactly the set of responses
// guess produces against the answers still possible at that node. It
// reconstructs each node's answer set by filtering the root's answer set
// through the accumulated responses along the path, since Tree itself
// does not store answer sets (only guesses and children).
func assertChildrenMatchResponses(t *testing.T, tree *solve.Tree, answers []code.Code) {
	t.Helper()
	if tree == nil {
		return
	}

	want := make(map[response.Response]bool)
	for _, a := range answers {
		want[code.Compare(tree.Guess, a)] = true
	}

	got := make(map[response.Response]bool, len(tree.Children))
	for r := range tree.Children {
		got[r] = true
	}
	assert.Equal(t, want, got)

	for r, child := range tree.Children {
		if response.IsCorrect(r) {
			assert.Nil(t, child, "terminal response %v must be a leaf", r)
			continue
		}
		require.NotNil(t, child, "non-terminal response %v must continue", r)

		var remaining []code.Code
		for _, a := range answers {
			if code.Compare(tree.Guess, a) == r {
				remaining = append(remaining, a)
			}
		}
		assertChildrenMatchResponses(t, child, remaining)
	}
}

func TestGenerateExhaustivelyOptimalAmongAllValidTreesL2B2(t *testing.T) {
	universe, err := code.Universe(2, 2)
	require.NoError(t, err)

	got, err := solve.GenerateExhaustively(2, 2, rank.ByDepth)
	require.NoError(t, err)
	gotDepth := rank.ByDepth(got)

	best := exhaustiveOptimalDepth(t, universe, universe)
	assert.Equal(t, best, gotDepth)
}

// exhaustiveOptimalDepth brute-forces the minimum worst-case depth over
// every valid tree for (guesses, answers) by trying every guess and every
// way of building children (the response invariant fully determines the
// children, so "every way" reduces to "every guess"), without any
// morphology pruning. Used only to cross-check solve.Generate's output at
// a universe small enough to brute-force in full.
func exhaustiveOptimalDepth(t *testing.T, guesses, answers []code.Code) int {
	t.Helper()
	best := -1
	for gi, guess := range guesses {
		partition := make(map[response.Response][]code.Code)
		for _, a := range answers {
			r := code.Compare(guess, a)
			partition[r] = append(partition[r], a)
		}

		depth := 1
		feasible := true
		remainingGuesses := append(append([]code.Code{}, guesses[:gi]...), guesses[gi+1:]...)
		for r, remaining := range partition {
			if response.IsCorrect(r) {
				continue
			}
			childDepth := exhaustiveOptimalDepth(t, remainingGuesses, remaining)
			if childDepth < 0 {
				feasible = false
				break
			}
			if 1+childDepth > depth {
				depth = 1 + childDepth
			}
		}
		if !feasible {
			continue
		}
		if best < 0 || depth < best {
			best = depth
		}
	}
	return best
}

func TestGenerateReturnsNilWhenBoundIsZero(t *testing.T) {
	universe, err := code.Universe(2, 2)
	require.NoError(t, err)
	got := solve.Generate(universe, universe, rank.ByDepth, 0)
	assert.Nil(t, got)
}

func TestGenerateReturnsNilWhenBoundUnsatisfiable(t *testing.T) {
	universe, err := code.Universe(2, 2)
	require.NoError(t, err)
	// The true optimum for (L=2,B=2) is depth 3; nothing can beat 2.
	got := solve.Generate(universe, universe, rank.ByDepth, 2)
	assert.Nil(t, got)
}

package solve

import (
	"fmt"

	"github.com/mastermind-tree/solver/internal/code"
	"github.com/mastermind-tree/solver/internal/morph"
	"github.com/mastermind-tree/solver/internal/response"
)

// RankFunc ranks a candidate Tree; lower is better. Defined here rather
// than in package rank so package rank's implementations (ByDepth) can
// depend on *Tree without creating an import cycle.
type RankFunc func(*Tree) int

// Generate is the recursive branch-and-bound search.
//
//   - guesses: the codes still permitted as guesses at this subtree (the
//     full universe at the root; one code fewer per ancestor frame).
//   - answers: the codes still consistent with the feedback accumulated
//     so far (the full universe at the root).
//   - rank: ranks a candidate Tree; lower is better.
//   - bound: a strict upper bound -- only trees with rank < bound are
//     acceptable.
//
// It returns the tree of minimum rank among all valid trees satisfying
// the invariants of Tree (subject to the morphology pruning of package
// morph), or nil if no tree has rank < bound.
func Generate(guesses, answers []code.Code, rank RankFunc, bound int) *Tree {
	if bound <= 0 {
		// For the parent to beat bound, this subtree would already need
		// to have differentiated all answers, which is impossible: the
		// caller decremented past the achievable minimum.
		return nil
	}

	cache := morph.New()
	localBound := bound
	var best *Tree

guessLoop:
	for gi, guess := range guesses {
		partition := morph.PartitionAnswers(guess, answers)
		if !cache.IsNewMorph(partition.Signature()) {
			continue
		}

		children := make(map[response.Response]*Tree, len(partition))
		for r, remaining := range partition {
			if response.IsCorrect(r) {
				children[r] = nil
				continue
			}

			remainingGuesses := without(guesses, gi)
			child := Generate(remainingGuesses, remaining, rank, localBound-1)
			if child == nil {
				// No subtree under this response can beat localBound, so
				// no tree rooted at guess can either: abandon guess
				// wholesale without building its other children.
				continue guessLoop
			}
			children[r] = child
		}

		candidate := &Tree{Guess: guess, Children: children}
		candidateRank := rank(candidate)
		if candidateRank < localBound {
			best = candidate
			localBound = candidateRank
		}
	}

	return best
}

// GenerateExhaustively builds the universe for (length, base) and returns
// the tree of minimum rank over it, seeding the branch-and-bound bound at
// |universe|+1 -- a value strictly greater than the depth of any valid
// tree, since every tree has depth <= |answers|. A tree is guaranteed to
// exist whenever answers is non-empty and answers is a subset of guesses,
// which holds here because both are the same universe.
//
// A nil result from the underlying Generate call would mean the search
// found no tree despite that guarantee -- a bug rather than ordinary
// user error, so it is surfaced as an error here rather than silently
// returning nil.
func GenerateExhaustively(length, base int, rank RankFunc) (*Tree, error) {
	universe, err := code.Universe(length, base)
	if err != nil {
		return nil, err
	}

	bound := len(universe) + 1
	tree := Generate(universe, universe, rank, bound)
	if tree == nil {
		return nil, fmt.Errorf("no tree satisfies bound %d for code-length=%d code-base=%d: this indicates a bug, not invalid input", bound, length, base)
	}
	return tree, nil
}

// without returns a copy of guesses with the element at index i removed,
// preserving the order of the rest. The chosen guess is removed from the
// guesses set but deliberately not from answers: a guess once played
// gives no new information if repeated, but a previously-guessed code may
// still be the secret.
func without(guesses []code.Code, i int) []code.Code {
	out := make([]code.Code, 0, len(guesses)-1)
	out = append(out, guesses[:i]...)
	out = append(out, guesses[i+1:]...)
	return out
}

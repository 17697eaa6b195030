// Package morph implements the per-frame morphology cache: the pruning
// that lets package solve skip candidate guesses which are isomorphic to
// one already tried at the same recursion frame.
package morph

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mastermind-tree/solver/internal/code"
	"github.com/mastermind-tree/solver/internal/response"
)

// Partition groups a fixed answer set by the Response a guess produces
// against each answer.
type Partition map[response.Response][]code.Code

// PartitionAnswers computes the partition of answers induced by guess.
func PartitionAnswers(guess code.Code, answers []code.Code) Partition {
	p := make(Partition)
	for _, a := range answers {
		r := code.Compare(guess, a)
		p[r] = append(p[r], a)
	}
	return p
}

// Signature reduces a partition to its "shape": for every Response, how
// many answers landed in that bucket, discarding which answers they were.
// Two guesses at the same frame with equal signatures are isomorphic --
// swapping one for the other yields depth-identical subtrees, since what
// determines tree structure under depth-ranking is the sizes of the
// resulting answer groups, not their particular members.
//
// The signature is returned as a canonical string (responses sorted by
// their lexicographic order) so it can be used directly as a Go map key;
// Go does not allow a map itself to be a map key.
func (p Partition) Signature() string {
	responses := make([]response.Response, 0, len(p))
	for r := range p {
		responses = append(responses, r)
	}
	sort.Slice(responses, func(i, j int) bool { return responses[i].Less(responses[j]) })

	var b strings.Builder
	for _, r := range responses {
		b.WriteString(r.String())
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(len(p[r])))
		b.WriteByte('|')
	}
	return b.String()
}

// Cache is the per-frame signature cache. Create one with
// New() at the start of a single call frame of solve.Generate and discard
// it when that frame returns; it must never be shared or reused across
// frames, since isomorphism is only meaningful relative to one fixed
// answer set.
type Cache struct {
	seen map[string]struct{}
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{seen: make(map[string]struct{})}
}

// IsNewMorph reports whether signature has not been seen yet in this
// cache, recording it either way -- the first representative of each
// signature class returns true; every later candidate with the same
// signature returns false.
func (c *Cache) IsNewMorph(signature string) bool {
	if _, ok := c.seen[signature]; ok {
		return false
	}
	c.seen[signature] = struct{}{}
	return true
}

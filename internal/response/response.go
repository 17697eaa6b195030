// Package response defines Mastermind feedback: the triple of counts a
// guess produces against a secret.
package response

import "fmt"

// Response is feedback for a (guess, secret) comparison: a triple of
// non-negative counts that always sums to the code length L.
//
//   - Correct:   positions where guess and secret agree.
//   - Misplaced: guess digits that match some other secret digit in a
//     different position, counted with multiplicity via a greedy
//     bipartite matching.
//   - Wrong:     leftover.
//
// Response is a plain struct of comparable fields, so it is usable as a
// map key directly -- there is no need for a separate hashing scheme.
type Response struct {
	Correct   int
	Misplaced int
	Wrong     int
}

// IsCorrect reports whether r is the terminal response: the secret has
// been fully identified (equivalently Correct == L).
func IsCorrect(r Response) bool {
	return r.Misplaced == 0 && r.Wrong == 0
}

// Less implements the lexicographic order on (Correct, Misplaced, Wrong).
// It is used wherever Response needs a deterministic total order: sorting
// a morphology signature, or rendering a tree's children in a stable
// order.
func (r Response) Less(other Response) bool {
	if r.Correct != other.Correct {
		return r.Correct < other.Correct
	}
	if r.Misplaced != other.Misplaced {
		return r.Misplaced < other.Misplaced
	}
	return r.Wrong < other.Wrong
}

func (r Response) String() string {
	return fmt.Sprintf("(%d,%d,%d)", r.Correct, r.Misplaced, r.Wrong)
}

// MarshalText renders r as "correct,misplaced,wrong" so it can be used as
// a JSON object key (encoding/json requires map keys to be strings or
// implement encoding.TextMarshaler).
func (r Response) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d,%d", r.Correct, r.Misplaced, r.Wrong)), nil
}

// UnmarshalText parses the format written by MarshalText.
func (r *Response) UnmarshalText(text []byte) error {
	_, err := fmt.Sscanf(string(text), "%d,%d,%d", &r.Correct, &r.Misplaced, &r.Wrong)
	if err != nil {
		return fmt.Errorf("parse response %q: %w", text, err)
	}
	return nil
}

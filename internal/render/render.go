// Package render turns a solve.Tree into its external textual forms: a
// styled terminal outline and, for machine consumption, JSON. The core
// (packages code, response, morph, rank, solve) only provides the small
// String/MarshalText forms of its own values; the outline and JSON layouts
// live here, separate from the search logic they render.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mastermind-tree/solver/internal/response"
	"github.com/mastermind-tree/solver/internal/solve"
)

var (
	guessStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	responseStyle = lipgloss.NewStyle().Faint(true)
	leafStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Tree renders t as an indented, coloured outline. Width adapts to the
// terminal: a detected width below narrowThreshold moves each leaf's
// "solved" marker onto its own line instead of trailing its "(c,m,w) ->"
// response label, which can otherwise wrap mid-token on narrow
// terminals.
func Tree(t *solve.Tree) string {
	const narrowThreshold = 40
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	var b strings.Builder
	writeNode(&b, t, 0, width < narrowThreshold)
	return b.String()
}

func writeNode(b *strings.Builder, t *solve.Tree, depth int, narrow bool) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%sguess %s\n", indent, guessStyle.Render(formatCode(t)))

	for _, r := range sortedResponses(t) {
		child := t.Children[r]
		label := responseStyle.Render(r.String())

		sep := " "
		if narrow {
			sep = "\n" + indent + "    "
		}

		if child == nil {
			fmt.Fprintf(b, "%s  %s ->%s%s\n", indent, label, sep, leafStyle.Render("solved"))
			continue
		}
		fmt.Fprintf(b, "%s  %s ->\n", indent, label)
		writeNode(b, child, depth+2, narrow)
	}
}

// formatCode renders a Tree's guess the same way solve.Tree.String does,
// kept as its own small helper so render never needs solve's internals
// beyond the exported Guess/Children fields.
func formatCode(t *solve.Tree) string {
	return t.Guess.String()
}

// sortedResponses returns t's child responses in ascending order, so
// rendering is deterministic across runs (Go map iteration is not).
func sortedResponses(t *solve.Tree) []response.Response {
	out := make([]response.Response, 0, len(t.Children))
	for r := range t.Children {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// jsonNode mirrors solve.Tree but with JSON-friendly field names and a
// pointer-to-struct child (nil for a leaf), since solve.Tree is not
// itself tagged for JSON -- the core has no opinion on output format.
type jsonNode struct {
	Guess    []int                        `json:"guess"`
	Children map[response.Response]*jsonNode `json:"children"`
}

func toJSONNode(t *solve.Tree) *jsonNode {
	if t == nil {
		return nil
	}
	children := make(map[response.Response]*jsonNode, len(t.Children))
	for r, child := range t.Children {
		children[r] = toJSONNode(child)
	}
	return &jsonNode{Guess: t.Guess, Children: children}
}

// JSON marshals t as indented JSON. Response map keys are rendered via
// response.Response's MarshalText as "correct,misplaced,wrong".
func JSON(t *solve.Tree) (string, error) {
	data, err := json.MarshalIndent(toJSONNode(t), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tree: %w", err)
	}
	return string(data), nil
}

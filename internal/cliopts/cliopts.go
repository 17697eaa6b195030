// Package cliopts parses and validates the two flags the core needs:
// --code-length and --code-base. It is a thin collaborator that sits
// outside the core -- it never touches package solve, code, response,
// morph or rank directly.
package cliopts

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
)

// ErrHelpRequested is returned by Parse when the user asked for --help;
// kong has already written the help output, and the caller
// should exit 0 without running the core.
var ErrHelpRequested = errors.New("help requested")

// Options holds the two parameters the core needs, plus the handful of
// presentation flags that belong to the CLI layer, not the search itself.
type Options struct {
	CodeLength int `name:"code-length" help:"Length of each code (number of pegs)." required:"" short:"L"`
	CodeBase   int `name:"code-base" help:"Number of distinct colours per peg." required:"" short:"B"`

	JSON    bool `help:"Emit the resulting tree as JSON instead of the styled outline." name:"json"`
	Verbose bool `help:"Enable debug logging." short:"v"`
}

// Validate rejects L<=0 or B<=0 before the core ever sees it. Kong
// invokes this automatically once flags are parsed and assigned.
func (o *Options) Validate() error {
	if o.CodeLength <= 0 {
		return fmt.Errorf("--code-length must be a positive integer, got %d", o.CodeLength)
	}
	if o.CodeBase <= 0 {
		return fmt.Errorf("--code-base must be a positive integer, got %d", o.CodeBase)
	}
	return nil
}

// Parse parses args (typically os.Args[1:]) into Options. It never calls
// os.Exit itself -- kong.Exit is overridden to a no-op recorder so a
// --help request, or a validation failure, surfaces as a
// returned error/sentinel and lets the caller (cmd/mastermind) choose the
// process exit code.
func Parse(args []string) (Options, error) {
	var opts Options
	exited := false

	parser, err := kong.New(&opts,
		kong.Name("mastermind"),
		kong.Description("Computes an optimal worst-case Mastermind decision tree for a given code length and base."),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return opts, fmt.Errorf("build CLI parser: %w", err)
	}

	_, err = parser.Parse(args)
	if exited {
		return opts, ErrHelpRequested
	}
	if err != nil {
		return opts, fmt.Errorf("parse CLI flags: %w", err)
	}
	return opts, nil
}

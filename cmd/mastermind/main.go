// Command mastermind computes an optimal worst-case decision tree for
// playing Mastermind over a universe of codes of a given length and base,
// then prints it.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mastermind-tree/solver/internal/applog"
	"github.com/mastermind-tree/solver/internal/cliopts"
	"github.com/mastermind-tree/solver/internal/rank"
	"github.com/mastermind-tree/solver/internal/render"
	"github.com/mastermind-tree/solver/internal/solve"
)

func main() {
	// Never let an unexpected panic crash without a message.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "mastermind: panic: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, cliopts.ErrHelpRequested) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "mastermind: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	opts, err := cliopts.Parse(args)
	if err != nil {
		return err
	}

	applog.Configure(opts.Verbose, os.Stderr)
	slog.Debug("parsed options", "code-length", opts.CodeLength, "code-base", opts.CodeBase)

	tree, err := solve.GenerateExhaustively(opts.CodeLength, opts.CodeBase, rank.ByDepth)
	if err != nil {
		return fmt.Errorf("generate tree: %w", err)
	}
	slog.Info("search complete", "worst_case_depth", rank.ByDepth(tree))

	if opts.JSON {
		out, err := render.JSON(tree)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
		return nil
	}

	fmt.Fprint(stdout, render.Tree(tree))
	return nil
}

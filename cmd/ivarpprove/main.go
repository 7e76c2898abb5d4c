// Command ivarpprove runs the bundled example branch-and-bound proofs from
// the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gitrdm/ivarpgo/examples/equilateral"
	"github.com/gitrdm/ivarpgo/examples/threshold"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ivarpprove",
		Short: "Run verified interval-arithmetic branch-and-bound proofs",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var abortAtHeight uint64
	var abortOnSatisfiable bool
	var trace bool

	run := &cobra.Command{
		Use:   "run [equilateral|threshold]",
		Short: "Run one of the bundled example proofs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "equilateral":
				p := equilateral.Prove()
				if cmd.Flags().Changed("abort-at-height") {
					p.AbortAtHeight(abortAtHeight)
				}
				p.AbortOnSatisfiable(abortOnSatisfiable)
				p.Trace(trace)
				if trace {
					p.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
				}
				p.SetReporter(func(box equilateral.Variables, definitely bool) {
					fmt.Printf("reported (definitely=%v): %v\n", definitely, box)
				})
				result := p.Prove()
				fmt.Printf("equilateral case 3 proof result: %v\n", result)
				return nil
			case "threshold":
				p := threshold.Prove(0)
				if cmd.Flags().Changed("abort-at-height") {
					p.AbortAtHeight(abortAtHeight)
				}
				p.AbortOnSatisfiable(abortOnSatisfiable)
				p.Trace(trace)
				if trace {
					p.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
				}
				p.SetReporter(func(box threshold.Variables, definitely bool) {
					fmt.Printf("reported (definitely=%v): %v\n", definitely, box)
				})
				result := p.Prove()
				fmt.Printf("threshold proof result: %v\n", result)
				return nil
			default:
				return errors.Errorf("unknown proof %q: expected equilateral or threshold", args[0])
			}
		},
	}
	run.Flags().Uint64Var(&abortAtHeight, "abort-at-height", 100, "stop splitting a box once it reaches this search-tree height")
	run.Flags().BoolVar(&abortOnSatisfiable, "abort-on-satisfiable", false, "stop the whole search as soon as one box is decided")
	run.Flags().BoolVar(&trace, "trace", false, "log every visited box at debug level")
	return run
}

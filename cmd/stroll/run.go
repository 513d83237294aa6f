package main

import (
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stroll/bfs"
	"github.com/katalvlaran/stroll/dfs"
	"github.com/katalvlaran/stroll/trace"
)

// clearScreen is the ANSI home-and-erase sequence printed before each
// animated frame.
const clearScreen = "\033[H\033[2J"

var runCmd = &cobra.Command{
	Use:   "run (bfs|dfs)",
	Short: "Run one traversal in plain terminal mode",
	Long: "run animates a single traversal on the plain terminal: each step\n" +
		"clears the screen, prints the current node, frontier, and visited set,\n" +
		"then pauses. When stdout is not a TTY the clear and pause are dropped\n" +
		"and the steps stream as plain lines.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bfs", "dfs"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		log.Debug("plain run", "algorithm", args[0], "start", cfg.StartNode)

		var seq iter.Seq2[trace.Step, error]
		if args[0] == "bfs" {
			seq = bfs.Stream(cfg.Graph, cfg.StartNode)
		} else {
			seq = dfs.Stream(cfg.Graph, cfg.StartNode)
		}

		animate := isatty.IsTerminal(os.Stdout.Fd())
		return playSteps(cmd.OutOrStdout(), seq, cfg.Delay, animate)
	},
}

// playSteps writes each step of seq to w. In animate mode every step is
// a fresh frame: clear, print, pause. Otherwise steps stream as plain
// blocks with no pacing, which keeps piped output useful. Engine errors
// (e.g. an unknown start node) abort with the error.
func playSteps(w io.Writer, seq iter.Seq2[trace.Step, error], delay time.Duration, animate bool) error {
	var order []string
	for step, err := range seq {
		if err != nil {
			return err
		}
		if animate {
			fmt.Fprint(w, clearScreen)
		}
		fmt.Fprint(w, step)
		if step.Kind == trace.StepVisit {
			order = append(order, step.Node)
		}
		if animate {
			sleepFor(delay)
		} else {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "\nTraversal order: %s\n", joinArrow(order))

	return nil
}

// joinArrow renders the order summary the way the final screen shows it.
func joinArrow(order []string) string {
	out := ""
	for i, id := range order {
		if i > 0 {
			out += " → "
		}
		out += id
	}

	return out
}

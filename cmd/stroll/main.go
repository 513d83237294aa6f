// Command stroll is an interactive walkthrough of breadth-first and
// depth-first traversal over a small in-memory graph. Run it bare for
// the full-screen menu, or use the run / graph / maze subcommands for
// plain terminal output.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stroll:", err)
		os.Exit(1)
	}
}

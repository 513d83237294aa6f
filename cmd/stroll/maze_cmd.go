package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stroll/maze"
)

var mazeCmd = &cobra.Command{
	Use:   "maze (bfs|dfs)",
	Short: "Solve the maze with one algorithm and print the result",
	Long: "maze runs a single solver over the configured grid and prints the\n" +
		"grid with the found path marked, plus how many cells the search\n" +
		"entered before reaching the exit.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bfs", "dfs"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		log.Debug("maze solve", "algorithm", args[0])

		var sol *maze.Solution
		if args[0] == "bfs" {
			sol, err = cfg.Maze.SolveBFS(cmd.Context())
		} else {
			sol, err = cfg.Maze.SolveDFS(cmd.Context())
		}
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprint(w, cfg.Maze.Render(sol.Path))
		fmt.Fprintf(w, "\n%s: %d cells visited, path length %d\n",
			args[0], sol.VisitedCount, len(sol.Path))

		return nil
	},
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stroll/dfs"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the graph structure and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		log.Debug("graph dump", "vertices", cfg.Graph.VertexCount())

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Adjacency list:")
		fmt.Fprintln(w)
		fmt.Fprint(w, cfg.Graph.String())
		fmt.Fprintln(w)

		for _, id := range cfg.Graph.Vertices() {
			nbrs, err := cfg.Graph.NeighborIDs(id)
			if err != nil {
				return err
			}
			if len(nbrs) == 0 {
				fmt.Fprintf(w, "Node %s: leaf (no outgoing edges)\n", id)
			} else {
				fmt.Fprintf(w, "Node %s: connected to %s\n", id, strings.Join(nbrs, ", "))
			}
		}

		found, cycle, err := dfs.HasCycle(cfg.Graph)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		if found {
			fmt.Fprintf(w, "Cycle: %s\n", strings.Join(cycle, " → "))
		} else {
			fmt.Fprintln(w, "Acyclic.")
		}

		return nil
	},
}

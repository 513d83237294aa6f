package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stroll/config"
	"github.com/katalvlaran/stroll/tui"
)

var rootCmd = &cobra.Command{
	Use:   "stroll",
	Short: "Animated BFS/DFS graph traversal walkthrough",
	Long: "stroll animates breadth-first and depth-first traversal over a small\n" +
		"in-memory graph, one step per frame: current node, frontier, visited set.\n" +
		"Without a subcommand it opens the interactive full-screen menu.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		return tui.Run(cfg, log)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("graph", "", "path to a YAML graph definition (default: built-in six-node graph)")
	pf.String("start", "", "start node (default: from definition, else first node)")
	// zero means "not set"; the file value or config.DefaultDelay applies
	pf.Duration("delay", 0, "pause between animation steps (default 600ms)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")

	// flags are also reachable as STROLL_GRAPH, STROLL_START, ...
	viper.SetEnvPrefix("STROLL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"graph", "start", "delay", "log-level"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(runCmd, graphCmd, mazeCmd)
}

// setup resolves configuration from file, flags, and environment, and
// builds the logger. Malformed definitions fail here, before any screen
// is drawn.
func setup() (*config.Config, *slog.Logger, error) {
	log := newLogger(viper.GetString("log-level"))

	path := viper.GetString("graph")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if start := viper.GetString("start"); start != "" {
		cfg.StartNode = start
	}
	if d := viper.GetDuration("delay"); d > 0 {
		cfg.Delay = d
	}

	log.Debug("configuration resolved",
		slog.String("graph", path),
		slog.String("start", cfg.StartNode),
		slog.Duration("delay", cfg.Delay),
		slog.Int("vertices", cfg.Graph.VertexCount()),
	)

	return cfg, log, nil
}

// newLogger builds the process logger on stderr. Unknown levels fall
// back to warn rather than failing startup.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// sleepFor is stubbed in tests to keep plain-mode runs instant.
var sleepFor = func(d time.Duration) { time.Sleep(d) }

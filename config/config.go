// Package config resolves the startup configuration: which graph to
// walk, where to start, how long to pause between animation steps, and
// the maze used by the race mode.
//
// What:
//
//   - Config: explicit value handed to the menu loop and the engines at
//     startup. There is no package-level graph; everything flows through
//     this struct.
//   - Load reads an optional YAML definition file; Default supplies the
//     built-in graph and maze when no file is given.
//
// Why YAML through yaml.Node:
//
//	A graph definition is an ORDERED mapping: adjacency order decides
//	the visit sequence. Decoding into a Go map would scramble it, so the
//	graph section is walked as a yaml.Node and entry order is preserved
//	exactly as written.
//
// Errors (all fatal at startup, by design):
//
//   - ErrParse: unreadable or structurally invalid YAML.
//   - ErrBadDelay: delay that does not parse as a positive duration.
//   - graph.ErrDanglingNeighbor et al.: malformed graph definitions.
//   - maze.ErrNonRectangular et al.: malformed maze definitions.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stroll/graph"
	"github.com/katalvlaran/stroll/maze"
)

// Sentinel errors for configuration loading.
var (
	// ErrParse indicates unreadable or structurally invalid YAML.
	ErrParse = errors.New("config: cannot parse definition file")

	// ErrBadDelay indicates a delay value that is not a positive duration.
	ErrBadDelay = errors.New("config: delay must be a positive duration")
)

// DefaultDelay is the pause between animation steps when none is
// configured. Long enough to read a frame, short enough to not bore.
const DefaultDelay = 600 * time.Millisecond

// Config carries everything the menu loop and engines need for one run.
type Config struct {
	// Graph is the structure the traversals walk. Never nil.
	Graph *graph.Graph

	// StartNode is the initial traversal start. It may name a node the
	// graph does not have; the interactive loop reports that condition
	// and lets the user pick another; it is not a startup failure.
	StartNode string

	// Delay is the pause between animation steps.
	Delay time.Duration

	// Maze is the grid for the race mode. Never nil.
	Maze *maze.Maze
}

// Default returns the built-in configuration: the six-node demonstration
// graph, start node A, DefaultDelay, and the demonstration maze.
func Default() *Config {
	return &Config{
		Graph:     graph.Default(),
		StartNode: "A",
		Delay:     DefaultDelay,
		Maze:      maze.Default(),
	}
}

// file mirrors the YAML document layout. The graph section stays a raw
// yaml.Node so mapping order survives decoding.
type file struct {
	Start string    `yaml:"start"`
	Delay string    `yaml:"delay"`
	Graph yaml.Node `yaml:"graph"`
	Maze  *mazeFile `yaml:"maze"`
}

type mazeFile struct {
	Grid  [][]int `yaml:"grid"`
	Start []int   `yaml:"start"`
	Exit  []int   `yaml:"exit"`
}

// Load reads a YAML definition from path and resolves it against the
// defaults; an empty path returns Default() unchanged. Any malformed
// section is fatal: the caller is expected to exit with the error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	var f file
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if f.Graph.Kind != 0 {
		g, err := decodeGraph(&f.Graph)
		if err != nil {
			return nil, err
		}
		cfg.Graph = g
		// a new graph invalidates the default start; fall back to its
		// first vertex unless the file names one
		if verts := g.Vertices(); len(verts) > 0 {
			cfg.StartNode = verts[0]
		}
	}
	if f.Start != "" {
		cfg.StartNode = f.Start
	}
	if f.Delay != "" {
		d, err := time.ParseDuration(f.Delay)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadDelay, f.Delay)
		}
		cfg.Delay = d
	}
	if f.Maze != nil {
		m, err := decodeMaze(f.Maze)
		if err != nil {
			return nil, err
		}
		cfg.Maze = m
	}

	return cfg, nil
}

// decodeGraph walks the graph mapping node in document order and builds
// the definition entries verbatim, so dangling neighbors are caught by
// graph.FromDefinition rather than silently auto-created.
func decodeGraph(n *yaml.Node) (*graph.Graph, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: graph section must be a mapping", ErrParse)
	}
	// mapping nodes store key and value alternating in Content
	entries := make([]graph.Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		var neighbors []string
		if err := val.Decode(&neighbors); err != nil {
			return nil, fmt.Errorf("%w: neighbors of %q: %v", ErrParse, key.Value, err)
		}
		entries = append(entries, graph.Entry{ID: key.Value, Neighbors: neighbors})
	}
	g, err := graph.FromDefinition(entries)
	if err != nil {
		return nil, fmt.Errorf("config: graph definition: %w", err)
	}

	return g, nil
}

// decodeMaze validates coordinate pairs and defers grid checks to
// maze.New.
func decodeMaze(f *mazeFile) (*maze.Maze, error) {
	start, err := cellOf(f.Start, "maze start")
	if err != nil {
		return nil, err
	}
	exit, err := cellOf(f.Exit, "maze exit")
	if err != nil {
		return nil, err
	}
	m, err := maze.New(f.Grid, start, exit)
	if err != nil {
		return nil, fmt.Errorf("config: maze definition: %w", err)
	}

	return m, nil
}

func cellOf(pair []int, what string) (maze.Cell, error) {
	if len(pair) != 2 {
		return maze.Cell{}, fmt.Errorf("%w: %s must be a [row, col] pair", ErrParse, what)
	}

	return maze.Cell{Row: pair[0], Col: pair[1]}, nil
}

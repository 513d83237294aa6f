package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stroll/bfs"
	"github.com/katalvlaran/stroll/graph"
)

func TestPlaySteps_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	err := playSteps(&buf, bfs.Stream(graph.Default(), "A"), time.Second, false)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Visiting A")
	require.Contains(t, out, "Traversal order: A → B → C → D → E → F")
	require.NotContains(t, out, clearScreen, "plain mode must not clear the screen")
}

func TestPlaySteps_UnknownStart(t *testing.T) {
	var buf bytes.Buffer
	err := playSteps(&buf, bfs.Stream(graph.Default(), "Z"), time.Second, false)
	require.ErrorIs(t, err, bfs.ErrStartNotFound)
}

func TestPlaySteps_AnimatePacesEveryFrame(t *testing.T) {
	orig := sleepFor
	defer func() { sleepFor = orig }()
	sleeps := 0
	sleepFor = func(time.Duration) { sleeps++ }

	var buf bytes.Buffer
	err := playSteps(&buf, bfs.Stream(graph.Default(), "A"), time.Millisecond, true)
	require.NoError(t, err)

	frames := strings.Count(buf.String(), clearScreen)
	require.Positive(t, frames)
	require.Equal(t, frames, sleeps, "one pause per frame")
}

func TestJoinArrow(t *testing.T) {
	if got := joinArrow(nil); got != "" {
		t.Fatalf("joinArrow(nil) = %q, want empty", got)
	}
	if got := joinArrow([]string{"A"}); got != "A" {
		t.Fatalf("joinArrow single = %q", got)
	}
	if got := joinArrow([]string{"A", "B"}); got != "A → B" {
		t.Fatalf("joinArrow pair = %q", got)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return buf.String(), err
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph")
	require.NoError(t, err)
	require.Contains(t, out, "A → [B C]")
	require.Contains(t, out, "Node F: leaf (no outgoing edges)")
	require.Contains(t, out, "Acyclic.")
}

func TestMazeCommand(t *testing.T) {
	out, err := execute(t, "maze", "dfs")
	require.NoError(t, err)
	require.Contains(t, out, "dfs: 5 cells visited, path length 5")
	require.Contains(t, out, "S..")
	require.Contains(t, out, "**E")
}

func TestMazeCommand_RejectsUnknownAlgorithm(t *testing.T) {
	_, err := execute(t, "maze", "astar")
	require.Error(t, err)
}

func TestRunCommand_UnknownStart(t *testing.T) {
	viper.Set("start", "ZZ")
	defer viper.Set("start", "")

	_, err := execute(t, "run", "bfs")
	require.Error(t, err)
	require.True(t, errors.Is(err, bfs.ErrStartNotFound))
}

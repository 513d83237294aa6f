package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stroll/config"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Delay = time.Millisecond // keep ticks fast if anything schedules them

	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// drive applies Update and re-types the returned model.
func drive(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(Model)
	require.True(t, ok, "Update must return tui.Model")

	return typed, cmd
}

func TestMenu_InvalidKeyReprompts(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, key("x"))
	assert.Equal(t, stateMenu, m.state, "invalid input must not change state")
	assert.Contains(t, m.status, "Invalid choice")

	// the menu is still usable afterwards
	m, _ = drive(t, m, key("3"))
	assert.Equal(t, stateGraph, m.state)
}

func TestMenu_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m := newTestModel(t)
		var msg tea.Msg = key(k)
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}
		m, cmd := drive(t, m, msg)
		assert.True(t, m.quitting, "key %q must quit", k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd(), "key %q must issue tea.Quit", k)
	}
}

func TestBeginRun_UnknownStartReported(t *testing.T) {
	m := newTestModel(t)
	m.startNode = "Z"
	m, cmd := drive(t, m, key("1"))

	assert.Equal(t, stateMenu, m.state, "menu must stay usable")
	assert.Contains(t, m.status, "node not found")
	assert.Nil(t, cmd, "no animation may start")

	// recovery: pick a valid node and run again
	m.startNode = "A"
	m, cmd = drive(t, m, key("1"))
	assert.Equal(t, stateRunning, m.state)
	assert.NotNil(t, cmd)
}

func TestRun_BFSToCompletion(t *testing.T) {
	m := newTestModel(t)
	m, cmd := drive(t, m, key("1"))
	require.Equal(t, stateRunning, m.state)
	require.NotNil(t, cmd)

	// feed ticks until the stream drains
	for i := 0; m.state == stateRunning; i++ {
		require.Less(t, i, 100, "animation must terminate")
		m, _ = drive(t, m, tickMsg(time.Now()))
	}

	assert.Equal(t, stateSummary, m.state)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, m.order)
	assert.NotEmpty(t, m.stepLog)

	// any key returns to the menu
	m, _ = drive(t, m, key("x"))
	assert.Equal(t, stateMenu, m.state)
}

func TestRun_DFSOrder(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, key("2"))
	require.Equal(t, stateRunning, m.state)

	for i := 0; m.state == stateRunning; i++ {
		require.Less(t, i, 100)
		m, _ = drive(t, m, tickMsg(time.Now()))
	}
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, m.order)
}

func TestRun_KeysIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, key("1"))
	require.Equal(t, stateRunning, m.state)

	m, _ = drive(t, m, key("q"))
	assert.Equal(t, stateRunning, m.state, "no mid-traversal cancellation")
}

func TestStartPick_Flow(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, key("4"))
	require.Equal(t, stateStartPick, m.state)
	assert.Equal(t, 0, m.cursor, "cursor begins on current start A")

	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, stateMenu, m.state)
	assert.Equal(t, "C", m.startNode)
}

func TestStartPick_EscKeepsOldStart(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, key("4"))
	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, stateMenu, m.state)
	assert.Equal(t, "A", m.startNode)
}

func TestGraphView_ShowsStructure(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, key("3"))
	require.Equal(t, stateGraph, m.state)

	view := m.View()
	assert.Contains(t, view, "A → [B C]")
	assert.Contains(t, view, "Node D: leaf")
	assert.Contains(t, view, "Acyclic")
}

func TestMazeRace(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, key("5"))
	require.Equal(t, stateMaze, m.state)

	assert.Contains(t, m.mazeView, "BFS")
	assert.Contains(t, m.mazeView, "DFS")
	assert.Contains(t, m.mazeView, "visited 8 cells")
	assert.Contains(t, m.mazeView, "visited 5 cells")

	m, _ = drive(t, m, key("x"))
	assert.Equal(t, stateMenu, m.state)
}

func TestView_MenuLinesPresent(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{
		"Run BFS traversal",
		"Run DFS traversal",
		"View graph structure",
		"Change start node",
		"Maze race",
	} {
		assert.True(t, strings.Contains(view, want), "menu must offer %q", want)
	}
}

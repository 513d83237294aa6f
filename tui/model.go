// Package tui provides the interactive terminal front end: a menu loop
// over the traversal engines, an animated step-by-step run view, a graph
// structure view, a start-node picker, and the BFS-vs-DFS maze race.
//
// # State machine
//
// stateMenu is home. Choosing an algorithm moves through stateRunning
// (one trace.Step per animation tick) into stateSummary, then back to
// the menu on a key press. stateGraph, stateStartPick, and stateMaze
// are side trips that return to the menu. Invalid input never changes
// state; it sets a status line and re-prompts. Quitting from the menu
// ends the program; that is the only terminal transition.
//
// # Thread safety
//
// The model is single-threaded inside the bubbletea event loop, which
// matches the engines' one-walk-at-a-time design. Do not share a Model
// across goroutines.
package tui

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/stroll/bfs"
	"github.com/katalvlaran/stroll/config"
	"github.com/katalvlaran/stroll/dfs"
	"github.com/katalvlaran/stroll/trace"
)

// state identifies which screen the model is showing.
type state int

const (
	// stateMenu is the main menu loop.
	stateMenu state = iota

	// stateStartPick selects the traversal start node.
	stateStartPick

	// stateRunning animates one traversal to completion.
	stateRunning

	// stateSummary shows the finished traversal order, waiting for a key.
	stateSummary

	// stateGraph shows the adjacency structure.
	stateGraph

	// stateMaze shows the BFS-vs-DFS race outcome.
	stateMaze
)

// tickMsg paces the animation; one step is consumed per tick.
type tickMsg time.Time

// stepper pulls traversal steps one at a time.
type stepper struct {
	next func() (trace.Step, error, bool)
	stop func()
}

// Model is the bubbletea model for the whole interactive session.
type Model struct {
	cfg *config.Config
	log *slog.Logger

	state     state
	startNode string
	algorithm string // "bfs" or "dfs" while running

	// start picker
	cursor int

	// running traversal
	run       *stepper
	stepLog   []string
	lastStep  *trace.Step
	order     []string
	viewport  viewport.Model
	ready     bool

	// maze race
	mazeView string

	status   string
	width    int
	height   int
	quitting bool
}

// New builds a Model around the resolved configuration.
func New(cfg *config.Config, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}

	return Model{
		cfg:       cfg,
		log:       log,
		state:     stateMenu,
		startNode: cfg.StartNode,
	}
}

// Run launches the interactive session on the alternate screen and
// blocks until the user quits.
func Run(cfg *config.Config, log *slog.Logger) error {
	p := tea.NewProgram(New(cfg, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// tick schedules the next animation frame.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight, footerHeight := 3, 3
		vpHeight := m.height - headerHeight - footerHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		return m, nil

	case tickMsg:
		return m.advance()

	case tea.KeyMsg:
		// ctrl+c quits from anywhere; everything else is per-state
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateStartPick:
			return m.updateStartPick(msg)
		case stateRunning:
			// no mid-traversal cancellation: runs are short and bounded
			return m, nil
		case stateSummary, stateGraph, stateMaze:
			m.state = stateMenu
			return m, nil
		}
	}

	if m.state == stateRunning && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// quit releases any live stepper and ends the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.run != nil {
		m.run.stop()
		m.run = nil
	}
	m.quitting = true

	return m, tea.Quit
}

// updateMenu handles main-menu keys. Invalid input keeps the state and
// sets the status line.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "1", "b":
		return m.beginRun("bfs")
	case "2", "d":
		return m.beginRun("dfs")
	case "3", "g":
		m.state = stateGraph
		return m, nil
	case "4", "s":
		m.cursor = indexOf(m.cfg.Graph.Vertices(), m.startNode)
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.state = stateStartPick
		return m, nil
	case "5", "m":
		return m.runMaze()
	case "q", "esc":
		return m.quit()
	default:
		m.status = fmt.Sprintf("Invalid choice %q — press 1-5 or q", msg.String())
		return m, nil
	}
}

// updateStartPick moves the cursor over the vertex list.
func (m Model) updateStartPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	verts := m.cfg.Graph.Vertices()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(verts)-1 {
			m.cursor++
		}
	case "enter":
		if len(verts) > 0 {
			m.startNode = verts[m.cursor]
			m.status = fmt.Sprintf("Start node set to %s", m.startNode)
		}
		m.state = stateMenu
	case "esc", "q":
		m.state = stateMenu
	}

	return m, nil
}

// beginRun validates the start node and arms the stepper. An unknown
// start is reported on the status line; the menu stays usable.
func (m Model) beginRun(algorithm string) (tea.Model, tea.Cmd) {
	if !m.cfg.Graph.HasVertex(m.startNode) {
		m.status = fmt.Sprintf("node not found: %q — pick another start node", m.startNode)
		return m, nil
	}
	m.log.Debug("starting traversal",
		slog.String("algorithm", algorithm),
		slog.String("start", m.startNode),
	)

	var seq iter.Seq2[trace.Step, error]
	if algorithm == "bfs" {
		seq = bfs.Stream(m.cfg.Graph, m.startNode)
	} else {
		seq = dfs.Stream(m.cfg.Graph, m.startNode)
	}
	next, stop := iter.Pull2(seq)

	m.algorithm = algorithm
	m.run = &stepper{next: next, stop: stop}
	m.stepLog = nil
	m.lastStep = nil
	m.order = nil
	m.state = stateRunning
	if m.ready {
		m.viewport.SetContent("")
		m.viewport.GotoTop()
	}

	return m, m.tick()
}

// advance consumes one traversal step per tick until the walk finishes.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.state != stateRunning || m.run == nil {
		return m, nil
	}
	step, err, ok := m.run.next()
	if !ok {
		// sequence drained: traversal is complete
		m.run.stop()
		m.run = nil
		m.state = stateSummary
		return m, nil
	}
	if err != nil {
		m.run.stop()
		m.run = nil
		m.status = err.Error()
		m.state = stateMenu
		return m, nil
	}

	if step.Kind == trace.StepVisit {
		m.order = append(m.order, step.Node)
	}
	m.lastStep = &step
	m.stepLog = append(m.stepLog, renderStep(step))
	if m.ready {
		m.viewport.SetContent(strings.Join(m.stepLog, "\n"))
		m.viewport.GotoBottom()
	}

	return m, m.tick()
}

// runMaze races both engines over the configured maze. The solves are
// instant at interactive sizes, so the race is shown as a finished
// comparison rather than animated.
func (m Model) runMaze() (tea.Model, tea.Cmd) {
	view, err := renderMazeRace(m.cfg.Maze)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.mazeView = view
	m.state = stateMaze

	return m, nil
}

// indexOf returns the first index of val in s, or -1.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

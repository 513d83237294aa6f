package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/stroll/dfs"
	"github.com/katalvlaran/stroll/maze"
	"github.com/katalvlaran/stroll/trace"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.state {
	case stateMenu:
		b.WriteString(m.renderMenu())
	case stateStartPick:
		b.WriteString(m.renderStartPick())
	case stateRunning:
		if m.ready {
			b.WriteString(m.viewport.View())
		} else {
			b.WriteString(strings.Join(m.stepLog, "\n"))
		}
	case stateSummary:
		b.WriteString(m.renderSummary())
	case stateGraph:
		b.WriteString(m.renderGraph())
	case stateMaze:
		b.WriteString(m.mazeView)
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	switch m.state {
	case stateRunning:
		return titleStyle.Render(fmt.Sprintf("%s from %s", strings.ToUpper(m.algorithm), m.startNode))
	case stateSummary:
		return titleStyle.Render(fmt.Sprintf("%s complete", strings.ToUpper(m.algorithm)))
	case stateGraph:
		return titleStyle.Render("Graph structure")
	case stateMaze:
		return titleStyle.Render("Maze race: BFS vs DFS")
	case stateStartPick:
		return titleStyle.Render("Choose a start node")
	default:
		return titleStyle.Render("Graph traversal walkthrough")
	}
}

func (m Model) renderMenu() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", infoStyle.Render(fmt.Sprintf("Current start node: %s", m.startNode)))
	for _, line := range []string{
		"1. Run BFS traversal",
		"2. Run DFS traversal",
		"3. View graph structure",
		"4. Change start node",
		"5. Maze race (BFS vs DFS)",
		"q. Exit",
	} {
		b.WriteString(menuItemStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderStartPick() string {
	var b strings.Builder
	for i, id := range m.cfg.Graph.Vertices() {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + id))
		} else {
			b.WriteString(menuItemStyle.Render(id))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("enter: select · esc: cancel"))

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString(summaryStyle.Render("Traversal order: " + strings.Join(m.order, " → ")))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d nodes visited\n", len(m.order))

	return b.String()
}

// renderGraph prints the adjacency list in definition order plus the
// per-node detail the structure view of the original offered.
func (m Model) renderGraph() string {
	g := m.cfg.Graph

	var b strings.Builder
	b.WriteString("Adjacency list:\n\n")
	b.WriteString(g.String())
	b.WriteString("\n")

	for _, id := range g.Vertices() {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			continue
		}
		if len(nbrs) == 0 {
			fmt.Fprintf(&b, "Node %s: leaf (no outgoing edges)\n", id)
		} else {
			fmt.Fprintf(&b, "Node %s: connected to %s\n", id, strings.Join(nbrs, ", "))
		}
	}

	found, cycle, err := dfs.HasCycle(g)
	b.WriteString("\n")
	switch {
	case err != nil:
		b.WriteString(statusStyle.Render("cycle check failed: " + err.Error()))
	case found:
		fmt.Fprintf(&b, "Contains a cycle: %s\n", strings.Join(cycle, " → "))
	default:
		b.WriteString("Acyclic\n")
	}

	return b.String()
}

func (m Model) renderFooter() string {
	var parts []string
	switch m.state {
	case stateMenu:
		parts = append(parts, infoStyle.Render("press a menu key"))
	case stateRunning:
		parts = append(parts, infoStyle.Render("running — watch the frontier"))
	default:
		parts = append(parts, infoStyle.Render("any key: back to menu"))
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}

	return strings.Join(parts, "  ")
}

// renderStep colors one trace.Step the way the animation shows it.
func renderStep(s trace.Step) string {
	var b strings.Builder
	switch s.Kind {
	case trace.StepStart:
		b.WriteString(nodeStyle.Render(fmt.Sprintf("Starting at %s", s.Node)))
	case trace.StepEnqueue:
		b.WriteString(frontierStyle.Render(fmt.Sprintf("Discovered %s", s.Node)))
	case trace.StepDequeue:
		b.WriteString(frontierStyle.Render(fmt.Sprintf("Dequeued %s", s.Node)))
	case trace.StepVisit:
		b.WriteString(nodeStyle.Render(fmt.Sprintf("Visiting %s", s.Node)))
	case trace.StepSkip:
		b.WriteString(infoStyle.Render(fmt.Sprintf("Skipping %s (already visited)", s.Node)))
	case trace.StepBacktrack:
		b.WriteString(infoStyle.Render(fmt.Sprintf("Backtracking from %s", s.Node)))
	case trace.StepDone:
		b.WriteString(nodeStyle.Render("Traversal complete"))
	}
	b.WriteString("\n")
	b.WriteString(frontierStyle.Render(fmt.Sprintf("Frontier: %v", s.Frontier)))
	b.WriteString("\n")
	b.WriteString(visitedStyle.Render(fmt.Sprintf("Visited: {%s}", strings.Join(s.Visited, ", "))))
	b.WriteString("\n")

	return b.String()
}

// renderMazeRace solves the configured maze both ways and lays the
// results side by side.
func renderMazeRace(m *maze.Maze) (string, error) {
	ctx := context.Background()

	bSol, err := m.SolveBFS(ctx)
	if err != nil {
		return "", fmt.Errorf("maze race: %w", err)
	}
	dSol, err := m.SolveDFS(ctx)
	if err != nil {
		return "", fmt.Errorf("maze race: %w", err)
	}

	var b strings.Builder
	b.WriteString(summaryStyle.Render("BFS") + "\n")
	b.WriteString(m.Render(bSol.Path))
	fmt.Fprintf(&b, "visited %d cells, path length %d\n\n", bSol.VisitedCount, len(bSol.Path))
	b.WriteString(summaryStyle.Render("DFS") + "\n")
	b.WriteString(m.Render(dSol.Path))
	fmt.Fprintf(&b, "visited %d cells, path length %d\n", dSol.VisitedCount, len(dSol.Path))

	return b.String(), nil
}

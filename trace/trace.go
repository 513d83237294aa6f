// Package trace defines the step events both traversal engines emit
// while walking a graph, plus the line rendering shared by the
// interactive views and the plain-terminal mode.
//
// What:
//
//   - Step: one observable moment of a traversal (a node entering the
//     frontier, being dequeued, being visited, being skipped, or the
//     walk finishing), with frontier and visited-set snapshots.
//   - Observer: callback signature the engines accept to stream Steps.
//   - Recorder: convenience Observer that collects Steps into a slice.
//
// Why:
//
//   - The point of the tool is showing HOW a traversal unfolds, so the
//     engines report every state change, not just the final order.
//   - Snapshots are copies: a Step stays truthful after the walk moves on,
//     which is what lets the animation replay them frame by frame.
package trace

import (
	"fmt"
	"strings"
)

// Kind classifies a traversal step.
type Kind int

const (
	// StepStart is emitted once, before anything enters the frontier.
	StepStart Kind = iota

	// StepEnqueue marks a node being discovered and added to the frontier.
	StepEnqueue

	// StepDequeue marks a node leaving the frontier to be processed (BFS).
	StepDequeue

	// StepVisit marks a node being emitted in visitation order.
	StepVisit

	// StepSkip marks an already-visited neighbor being passed over.
	StepSkip

	// StepBacktrack marks a DFS branch being fully explored (post-order).
	StepBacktrack

	// StepDone is emitted once, after the frontier has drained.
	StepDone
)

// String returns a short human label for the kind.
func (k Kind) String() string {
	switch k {
	case StepStart:
		return "start"
	case StepEnqueue:
		return "enqueue"
	case StepDequeue:
		return "dequeue"
	case StepVisit:
		return "visit"
	case StepSkip:
		return "skip"
	case StepBacktrack:
		return "backtrack"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Step is one observable moment of a traversal. Frontier and Visited are
// snapshots taken when the event fired; mutating them affects nothing.
type Step struct {
	// Kind classifies the event.
	Kind Kind

	// Node is the subject of the event; empty for StepStart / StepDone.
	Node string

	// Depth is the node's distance (in edges) from the start node, where
	// the engine knows it; -1 otherwise.
	Depth int

	// Frontier is the queue (BFS) or implicit stack (DFS) right after
	// the event, earliest-out first.
	Frontier []string

	// Visited holds the marked nodes right after the event, in marking
	// order.
	Visited []string

	// Note carries an optional one-line explanation, e.g. why a neighbor
	// was skipped.
	Note string
}

// String renders the step as the multi-line block the terminal views
// print between pauses:
//
//	Visiting B
//	Frontier: [C D E]
//	Visited: {A, B, C, D, E}
func (s Step) String() string {
	var b strings.Builder
	switch s.Kind {
	case StepStart:
		fmt.Fprintf(&b, "Starting at %s\n", s.Node)
	case StepEnqueue:
		fmt.Fprintf(&b, "Discovered %s\n", s.Node)
	case StepDequeue:
		fmt.Fprintf(&b, "Dequeued %s\n", s.Node)
	case StepVisit:
		fmt.Fprintf(&b, "Visiting %s\n", s.Node)
	case StepSkip:
		fmt.Fprintf(&b, "Skipping %s (already visited)\n", s.Node)
	case StepBacktrack:
		fmt.Fprintf(&b, "Backtracking from %s\n", s.Node)
	case StepDone:
		b.WriteString("Traversal complete\n")
	}
	fmt.Fprintf(&b, "Frontier: %v\n", s.Frontier)
	fmt.Fprintf(&b, "Visited: {%s}\n", strings.Join(s.Visited, ", "))
	if s.Note != "" {
		fmt.Fprintf(&b, "%s\n", s.Note)
	}

	return b.String()
}

// Observer receives each Step as it happens, in order.
type Observer func(Step)

// Recorder is an Observer that keeps every Step it sees.
type Recorder struct {
	Steps []Step
}

// Observe appends the step; pass it as trace.Observer.
func (r *Recorder) Observe(s Step) {
	r.Steps = append(r.Steps, s)
}

// Order extracts the visitation order from the recorded steps.
func (r *Recorder) Order() []string {
	var out []string
	for _, s := range r.Steps {
		if s.Kind == StepVisit {
			out = append(out, s.Node)
		}
	}

	return out
}

// Snapshot copies a working slice for embedding into a Step, so later
// mutation by the engine cannot rewrite history.
func Snapshot(xs []string) []string {
	out := make([]string, len(xs))
	copy(out, xs)

	return out
}

package dfs

import (
	"context"
	"errors"
	"iter"

	"github.com/katalvlaran/stroll/graph"
	"github.com/katalvlaran/stroll/trace"
)

// Stream returns a lazy, finite, non-restartable sequence of the
// trace.Steps a depth-first walk from startID produces. No work happens
// until the sequence is pulled; breaking out of the range stops the
// descent at the next cancellation point. Input and option errors
// surface as the error half of the final pair.
//
// The sequence is single-use: iterating it a second time yields nothing.
func Stream(g *graph.Graph, startID string, opts ...Option) iter.Seq2[trace.Step, error] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	done := false
	return func(yield func(trace.Step, error) bool) {
		if done {
			return
		}
		done = true

		// Consumer break → cancel, so the recursion unwinds promptly.
		ctx, cancel := context.WithCancel(o.Ctx)
		defer cancel()
		o.Ctx = ctx

		stopped := false
		prev := o.Observer
		o.Observer = func(s trace.Step) {
			if stopped {
				return
			}
			if prev != nil {
				prev(s)
			}
			if !yield(s, nil) {
				stopped = true
				cancel()
			}
		}

		if _, err := run(g, startID, o); err != nil {
			if stopped || errors.Is(err, context.Canceled) {
				return
			}
			yield(trace.Step{}, err)
		}
	}
}

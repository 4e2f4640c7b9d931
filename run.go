package weft

import "context"

// Run drives root — and, transitively, every task it requires — to its
// final readiness. Deduplication completes before any action runs, so no
// running action ever observes a Node about to be replaced by dedup in
// another's requirements list.
//
// Cancelling ctx stops the scheduler from dispatching new work; actions
// already running are allowed to finish. Run itself never returns
// an error for task-level failures — those are recorded in the returned
// Result — only for engine-level setup failures such as a detected cycle.
func Run(ctx context.Context, root *Node, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := buildGraph(root)
	if err != nil {
		return nil, err
	}

	return schedule(ctx, g, o), nil
}

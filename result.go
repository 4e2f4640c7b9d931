package weft

import (
	"fmt"
	"strings"
)

// Result is the outcome of a Run invocation.
type Result struct {
	// Ready is the root task's final readiness.
	Ready bool
	// Readiness maps every Node visited to its final readiness.
	Readiness map[string]bool
	// Records is one diagnostic Record per Node visited, in the order
	// each finished.
	Records []Record

	graph *graph
}

// DOT renders the dedup'd graph as Graphviz-DOT text, colored by final
// readiness. A Node the scheduler never visited — because it was
// pruned out of every reachable path before execution — falls back to a
// freshly computed Ready() rather than showing as not-ready by omission.
// A node whose own assets were already ready when the graph was built has
// its requirement edges cleared at build time (§4.3), so it renders as an
// edgeless box even though its declaration named requirements.
func (r *Result) DOT() string {
	var b strings.Builder
	b.WriteString("digraph weft {\n")
	if r.graph != nil {
		for _, name := range r.graph.order {
			n, ok := r.graph.nodes[name]
			if !ok {
				continue
			}
			ready, visited := r.Readiness[n.Taskname()]
			if !visited {
				ready = n.Ready()
			}
			color := "lightcoral"
			if ready {
				color = "palegreen"
			}
			fmt.Fprintf(&b, "  %q [style=filled, fillcolor=%q];\n", n.Taskname(), color)
			for _, req := range n.reqs.nodes() {
				fmt.Fprintf(&b, "  %q -> %q;\n", n.Taskname(), req.Taskname())
			}
		}
	}
	b.WriteString("}\n")
	return b.String()
}

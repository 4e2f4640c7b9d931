package weft

// graph is the result of deduplicating a declared task tree by name.
// Declaration is eager in Go — by the time a task function's call
// to a requirement task function returns a *Node, that requirement's own
// goroutine is already parked at its final yield — so the whole tree is
// structurally complete before graph construction ever begins, and
// dedup reduces to a single DFS over it.
type graph struct {
	root  *Node
	order []taskName // insertion order of each name's first observation.
	nodes map[taskName]*Node

	discarded []*Node // duplicates folded away, released once dedup settles.
}

// buildGraph walks root's requirement tree, folding every Node that shares
// a Taskname with an already-visited Node into that first-seen Node, and
// abandoning the parked declaration goroutine (and action, if any) behind
// every duplicate it discards. visiting guards against cycles by pointer
// identity, independent of the canon map, so a cycle through not-yet-named
// nodes can't loop construction forever.
func buildGraph(root *Node) (*graph, error) {
	g := &graph{nodes: make(map[taskName]*Node)}
	visiting := make(map[*Node]bool)

	canon, err := g.dedup(root, visiting)
	if err != nil {
		return nil, err
	}
	g.root = canon
	for _, d := range g.discarded {
		g.abandonSubtree(d)
	}
	g.abandonUnreachable()
	return g, nil
}

func (g *graph) dedup(n *Node, visiting map[*Node]bool) (*Node, error) {
	if visiting[n] {
		return nil, ErrCycleDetected
	}

	if n.declErr == nil {
		if existing, ok := g.nodes[n.taskname]; ok {
			if existing != n {
				g.discarded = append(g.discarded, n)
			}
			return existing, nil
		}
		g.nodes[n.taskname] = n
	}
	g.order = append(g.order, n.taskname)

	visiting[n] = true
	defer delete(visiting, n)

	var dedupErr error
	n.reqs.replace(func(req *Node) *Node {
		if dedupErr != nil {
			return req
		}
		canonReq, err := g.dedup(req, visiting)
		if err != nil {
			dedupErr = err
			return req
		}
		return canonReq
	})
	if dedupErr != nil {
		return nil, dedupErr
	}

	// A Node already ready once its requirements are resolved is kept in
	// the graph but its requirements are cleared: they are no longer
	// relevant to execution or to diagnostics.
	if n.declErr == nil && n.Ready() {
		n.reqs = NoReqs()
	}

	return n, nil
}

// abandonSubtree releases the declaration goroutine of a duplicate Node and
// of every requirement beneath it that is not itself the canonical Node
// recorded for its name — a shared requirement reached through a discarded
// duplicate must survive, since the canonical graph still needs it.
func (g *graph) abandonSubtree(n *Node) {
	if canon, ok := g.nodes[n.taskname]; ok && canon == n {
		return
	}
	n.abandonAction()
	for _, req := range n.reqs.nodes() {
		g.abandonSubtree(req)
	}
}

// abandonUnreachable releases every canonical Node's parked declaration
// goroutine that readiness-first pruning left registered in g.nodes but
// disconnected from g.root: a Node whose own assets were already ready has
// its requirements cleared in dedup, and any requirement subtree reachable
// only through that cleared edge never gets another chance at cleanup.
// This must run once, after dedup has settled every Node's final
// requirement set — a prune site can't tell on its own whether a
// requirement it's dropping is still reachable through some other parent.
func (g *graph) abandonUnreachable() {
	reachable := make(map[*Node]bool, len(g.nodes))
	var visit func(*Node)
	visit = func(n *Node) {
		if n == nil || reachable[n] {
			return
		}
		reachable[n] = true
		for _, req := range n.reqs.nodes() {
			visit(req)
		}
	}
	visit(g.root)

	for _, n := range g.nodes {
		if !reachable[n] {
			n.abandonAction()
		}
	}
}

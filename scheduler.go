package weft

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// schedule walks g in reverse-topological order, running each
// Basic's action through a pool of at most opts.workers concurrent
// workers, and resolving Collection/External readiness without running
// anything. It implements Kahn's algorithm: a Node becomes eligible for
// dispatch once every requirement named in its (already dedup-pruned)
// Requirements has reached a final readiness verdict.
func schedule(ctx context.Context, g *graph, opts Options) *Result {
	// A ready Node's requirements were already cleared during graph build,
	// so walking from root along current requirement edges — not
	// iterating every Node dedup ever observed — is what actually keeps
	// whole subtrees of already-ready prerequisites from ever being
	// dispatched in an eagerly-constructed tree: a pruned edge simply
	// makes its far side unreachable from here.
	nodes := reachableFrom(g.root)

	indegree := make(map[*Node]int, len(nodes))
	dependents := make(map[*Node][]*Node, len(nodes))
	for _, n := range nodes {
		reqs := n.reqs.nodes()
		indegree[n] = len(reqs)
		for _, req := range reqs {
			dependents[req] = append(dependents[req], n)
		}
	}

	res := &Result{Readiness: make(map[string]bool, len(nodes))}

	var mu sync.Mutex // guards res, indegree and the ready queue below.
	var ready []*Node
	for _, n := range nodes {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}

	sem := semaphore.NewWeighted(opts.workers)
	var wg sync.WaitGroup
	var dispatch func()

	// finish records n's verdict, frees whichever dependents had n as
	// their last pending requirement, and re-enters dispatch for them.
	// Every Node reaches finish exactly once — including ones abandoned
	// by cancellation — so a dependent is never left waiting forever.
	finish := func(n *Node, rec *Record) {
		mu.Lock()
		nodeReady := false
		if rec != nil {
			res.Records = append(res.Records, *rec)
			nodeReady = rec.Ready
		}
		res.Readiness[n.Taskname()] = nodeReady
		var freed []*Node
		for _, dep := range dependents[n] {
			indegree[dep]--
			if indegree[dep] == 0 {
				freed = append(freed, dep)
			}
		}
		ready = append(ready, freed...)
		mu.Unlock()
		if len(freed) > 0 {
			dispatch()
		}
	}

	dispatch = func() {
		mu.Lock()
		batch := ready
		ready = nil
		mu.Unlock()

		for _, n := range batch {
			n := n
			if ctx.Err() != nil {
				// Stop dispatching new work; let in-flight actions finish.
				n.abandonAction()
				finish(n, nil)
				continue
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				n.abandonAction()
				finish(n, nil)
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := processNode(ctx, n, opts)
				sem.Release(1) // release before finish, which may recurse into dispatch.
				finish(n, &rec)
			}()
		}
	}

	dispatch()
	wg.Wait()

	res.Ready = g.root == nil || res.Readiness[g.root.Taskname()]
	res.graph = g
	return res
}

// reachableFrom collects every Node reachable from root along current
// requirement edges, in post-order (dependencies before dependents), so a
// requirement pruned away by dedup's readiness-first pass simply never
// appears.
func reachableFrom(root *Node) []*Node {
	if root == nil {
		return nil
	}
	var order []*Node
	visited := make(map[*Node]bool)
	var visit func(*Node)
	visit = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, req := range n.reqs.nodes() {
			visit(req)
		}
		order = append(order, n)
	}
	visit(root)
	return order
}

// processNode runs the readiness-first decision for a single Node
// and produces its diagnostic Record. It never mutates shared scheduler
// state; the caller records the result.
func processNode(ctx context.Context, n *Node, opts Options) Record {
	span := opts.tel.Start(ctx, n.Taskname())

	if n.DeclarationError() != nil {
		opts.logger.Error(ctx, "protocol error", "task", n.Taskname(), "err", n.DeclarationError())
		span.Done(n.DeclarationError())
		return Record{Taskname: n.Taskname(), Kind: n.Kind(), Ready: false, Err: n.DeclarationError()}
	}

	switch n.Kind() {
	case External:
		ready := n.assets.ready()
		if !ready {
			opts.logger.Warn(ctx, "external asset not ready", "task", n.Taskname())
		}
		span.Done(nil)
		return Record{Taskname: n.Taskname(), Kind: External, Ready: ready, External: !ready}

	case Collection:
		breakdown, allReady := reqBreakdown(n)
		if !allReady {
			opts.logger.Info(ctx, "requirement not ready", "task", n.Taskname(), "requirements", breakdownLine(breakdown))
		}
		span.Done(nil)
		return Record{Taskname: n.Taskname(), Kind: Collection, Ready: allReady, Requirements: breakdown}

	default: // Basic
		return processBasic(ctx, n, opts, span)
	}
}

func processBasic(ctx context.Context, n *Node, opts Options, span Span) Record {
	if n.assets.ready() {
		// Step 1: own assets are already ready; requirements are ignored
		// and no action runs. The parked declaration goroutine never gets
		// resumed past its last yield, so it must be abandoned here.
		n.abandonAction()
		span.Cached()
		span.Done(nil)
		return Record{Taskname: n.Taskname(), Kind: Basic, Ready: true}
	}

	breakdown, allReady := reqBreakdown(n)
	if !allReady {
		// Step 2: a requirement is not ready; the action must not run.
		n.abandonAction()
		opts.logger.Info(ctx, "requirement not ready, skipping action", "task", n.Taskname(), "requirements", breakdownLine(breakdown))
		span.Done(nil)
		return Record{Taskname: n.Taskname(), Kind: Basic, Ready: false, Requirements: breakdown}
	}

	if opts.dryRun {
		// Step 3, dry branch: skip the action outright.
		n.abandonAction()
		opts.logger.Info(ctx, "dry run, skipping action", "task", n.Taskname(), "requirements", breakdownLine(breakdown))
		span.Done(nil)
		return Record{Taskname: n.Taskname(), Kind: Basic, Ready: false, Requirements: breakdown}
	}

	// Step 3: run the action.
	actionErr := n.runAction()
	if actionErr != nil {
		opts.logger.Error(ctx, "action failed", "task", n.Taskname(), "err", actionErr)
	}

	// Step 4: re-query readiness regardless of the action's outcome.
	ready := n.assets.ready()
	span.Done(actionErr)
	return Record{Taskname: n.Taskname(), Kind: Basic, Ready: ready, Requirements: breakdown, Err: actionErr}
}

func reqBreakdown(n *Node) ([]ReqReadiness, bool) {
	reqs := n.reqs.nodes()
	breakdown := make([]ReqReadiness, len(reqs))
	allReady := true
	for i, req := range reqs {
		r := req.Ready()
		breakdown[i] = ReqReadiness{Taskname: req.Taskname(), Ready: r}
		if !r {
			allReady = false
		}
	}
	return breakdown, allReady
}

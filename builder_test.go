package weft_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	weft "go.weft.dev/weft"
)

// TestDedupRunsSharedRequirementActionOnce is end-to-end scenario 4: two
// tasks requiring the same task by name collapse to one Node, whose action
// runs at most once per run.
func TestDedupRunsSharedRequirementActionOnce(t *testing.T) {
	calls := 0
	makeZ := func() *weft.Node {
		zReady := false
		return weft.Basic(func(y *weft.Y) error {
			y.Name("z")
			y.Assets(weft.AssetOf(weft.Asset{Ref: "z", Ready: func() bool { return zReady }}))
			y.Requirements(weft.NoReqs())
			calls++
			zReady = true
			return nil
		})
	}

	x := weft.Basic(func(y *weft.Y) error {
		y.Name("x")
		y.Assets(weft.AssetOf(weft.Asset{Ref: "x", Ready: func() bool { return true }}))
		y.Requirements(weft.ReqOf(makeZ()))
		return nil
	})

	root := weft.Collection(func(y *weft.Y) error {
		y.Name("root")
		y.Requirements(weft.ReqSeq(x, makeZ()))
		return nil
	})

	_, err := weft.Run(context.Background(), root, weft.WithWorkers(1))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

// TestReadinessFirstSkipsRequirementExpansion checks the readiness-first
// rule: a Basic task whose assets are already ready never runs its action
// nor touches its requirements.
func TestReadinessFirstSkipsRequirementExpansion(t *testing.T) {
	reqActionRan := false
	actionRan := false

	req := weft.Basic(func(y *weft.Y) error {
		y.Name("req")
		y.Assets(weft.AssetOf(weft.Asset{Ref: "r", Ready: func() bool { return false }}))
		y.Requirements(weft.NoReqs())
		reqActionRan = true
		return nil
	})

	n := weft.Basic(func(y *weft.Y) error {
		y.Name("already-ready")
		y.Assets(weft.AssetOf(weft.Asset{Ref: "a", Ready: func() bool { return true }}))
		y.Requirements(weft.ReqOf(req))
		actionRan = true
		return nil
	})

	res, err := weft.Run(context.Background(), n, weft.WithWorkers(1))
	require.NoError(t, err)
	require.True(t, res.Ready)
	// Neither action body ran: the parent was already ready, so its
	// requirement was pruned from the graph before scheduling and never
	// got a chance to execute.
	require.False(t, actionRan)
	require.False(t, reqActionRan)
}

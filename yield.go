package weft

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/zerr"
)

// callTag identifies which Y method produced a given yield, so the driver
// can verify the task function is calling them in the sequence its Kind
// requires.
type callTag int

const (
	callName callTag = iota
	callAssets
	callRequirements
)

// Y is the handle a task function uses to yield its staged declaration.
// Exactly one goroutine — the one running the task function — ever
// calls Y's methods; the constructor driving it (Basic/Collection/External)
// and, later, the scheduler (for a Basic task's action) are the only
// readers on the other end of the channel pair.
type Y struct {
	kind Kind
	seq  []callTag
	idx  int

	out chan any
	in  chan struct{}
	ctx context.Context
}

// protocolError is panicked by Y when a task function calls its methods
// out of the order its Kind demands; the driver recovers it and turns it
// into the Node's DeclarationError.
type protocolError struct {
	kind Kind
	want callTag
	got  callTag
	idx  int
}

func (e protocolError) Error() string {
	if e.idx >= len(kindSequence(e.kind)) {
		return fmt.Sprintf("%s task yielded an unexpected extra stage", e.kind)
	}
	return fmt.Sprintf("%s task yielded stage %d out of order: want %v, got %v", e.kind, e.idx, e.want, e.got)
}

func kindSequence(k Kind) []callTag {
	switch k {
	case Basic:
		return []callTag{callName, callAssets, callRequirements}
	case Collection:
		return []callTag{callName, callRequirements}
	case External:
		return []callTag{callName, callAssets}
	default:
		return nil
	}
}

// Name yields stage 1: the task's name. Every Kind expects this first.
func (y *Y) Name(name string) { y.step(callName, name) }

// Assets yields stage 2 for Basic and External tasks.
func (y *Y) Assets(a Assets) { y.step(callAssets, a) }

// Requirements yields stage 2 for Collection tasks and stage 3 for Basic
// tasks.
func (y *Y) Requirements(r Requirements) { y.step(callRequirements, r) }

func (y *Y) step(tag callTag, v any) {
	if y.idx >= len(y.seq) || y.seq[y.idx] != tag {
		want := callTag(-1)
		if y.idx < len(y.seq) {
			want = y.seq[y.idx]
		}
		panic(protocolError{kind: y.kind, want: want, got: tag, idx: y.idx})
	}
	y.idx++
	y.send(v)
}

// send hands a yielded value to the driver and blocks until resumed, or
// until the driver abandons this declaration (ctx canceled), in which case
// the task function's goroutine exits without running any further code —
// this is how a deduplicated or never-needed task's goroutine is disposed
// of without leaking (Design Notes open question (a)).
func (y *Y) send(v any) {
	select {
	case y.out <- v:
	case <-y.ctx.Done():
		runtime.Goexit()
	}
	select {
	case <-y.in:
	case <-y.ctx.Done():
		runtime.Goexit()
	}
}

// actionHandle is the Basic-task-only mechanism by which the scheduler
// resumes a parked declaration goroutine past its final yield so the
// action body runs, or abandons it so it never does.
type actionHandle struct {
	in     chan struct{}
	result chan error
	cancel context.CancelFunc
}

func (a *actionHandle) run() error {
	a.in <- struct{}{}
	return <-a.result
}

func (a *actionHandle) abandon() {
	a.cancel()
}

// driveDeclaration runs fn's goroutine and pumps it through the stage
// sequence its kind demands, stopping just past the last stage (for Basic)
// or immediately abandoning the goroutine once the last stage is captured
// (for Collection/External, which never run an action body).
func driveDeclaration(kind Kind, fn func(y *Y) error) *Node {
	ctx, cancel := context.WithCancel(context.Background())
	y := &Y{
		kind: kind,
		seq:  kindSequence(kind),
		out:  make(chan any),
		in:   make(chan struct{}),
		ctx:  ctx,
	}
	result := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if pe, ok := r.(protocolError); ok {
					result <- pe
					return
				}
				panic(r)
			}
		}()
		result <- fn(y)
	}()

	n := &Node{kind: kind}

	nameVal, err := awaitStage(y, result)
	if err != nil {
		cancel()
		n.declErr = declarationFailed(kind, err)
		return n
	}
	n.taskname = newTaskName(nameVal.(string))
	resume(y)

	switch kind {
	case Basic:
		assetsVal, err := awaitStage(y, result)
		if err != nil {
			cancel()
			n.declErr = declarationFailed(kind, err)
			return n
		}
		n.assets = assetsVal.(Assets)
		resume(y)

		reqsVal, err := awaitStage(y, result)
		if err != nil {
			cancel()
			n.declErr = declarationFailed(kind, err)
			return n
		}
		n.reqs = reqsVal.(Requirements)
		n.action = &actionHandle{in: y.in, result: result, cancel: cancel}

	case Collection:
		reqsVal, err := awaitStage(y, result)
		if err != nil {
			cancel()
			n.declErr = declarationFailed(kind, err)
			return n
		}
		n.reqs = reqsVal.(Requirements)
		cancel() // no action body; abandon immediately.

	case External:
		assetsVal, err := awaitStage(y, result)
		if err != nil {
			cancel()
			n.declErr = declarationFailed(kind, err)
			return n
		}
		n.assets = assetsVal.(Assets)
		cancel() // no action body; abandon immediately.
	}

	return n
}

// awaitStage waits for the next yielded value, or for the task function to
// return/panic before yielding it — the latter is always a protocol error,
// because every stage the Kind's sequence names must be reached.
func awaitStage(y *Y, result chan error) (any, error) {
	select {
	case v := <-y.out:
		return v, nil
	case err := <-result:
		if err == nil {
			err = ErrProtocol
		}
		return nil, err
	}
}

func resume(y *Y) {
	y.in <- struct{}{}
}

func declarationFailed(kind Kind, err error) error {
	return zerr.With(zerr.Wrap(ErrProtocol, err.Error()), "kind", kind.String())
}

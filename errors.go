package weft

import "go.trai.ch/zerr"

var (
	// ErrProtocol is returned when a task function fails to yield the
	// stages its Kind requires, in order.
	ErrProtocol = zerr.New("task declaration protocol violation")

	// ErrCycleDetected is returned by buildGraph when the requirement tree
	// revisits a Node still being dedup'd. Cyclic graphs are undefined
	// input; detecting them explicitly keeps a malformed workflow from
	// hanging instead of terminating.
	ErrCycleDetected = zerr.New("cycle detected in task graph")

	// ErrUnknownTask is returned when the CLI names a root task that the
	// loaded module does not define, or omits the task name for a module
	// that does not define exactly one task.
	ErrUnknownTask = zerr.New("unknown task")

	// ErrUnknownModule is returned when a module argument cannot be
	// resolved to a plugin or a registered workflow.
	ErrUnknownModule = zerr.New("unknown module")
)

package weft

import "strings"

// Record is the structured diagnostic the executor emits for a Node once
// its final readiness is known.
type Record struct {
	Taskname string
	Kind     Kind
	Ready    bool

	// Requirements lists each requirement's name and readiness, in
	// declaration order, for every Basic or Collection Node whose
	// requirements the scheduler weighed. It is empty for a Basic Node whose
	// own assets were already ready and for a Node with a declaration error.
	Requirements []ReqReadiness

	// External marks a not-ready External Node: a benign condition the
	// engine cannot ever resolve by running an action.
	External bool

	// Err holds a protocol or action error surfaced while processing this
	// Node, or nil.
	Err error
}

// ReqReadiness is one line of a Record's per-requirement breakdown.
type ReqReadiness struct {
	Taskname string
	Ready    bool
}

func marker(ready bool) string {
	if ready {
		return "✔"
	}
	return "✖"
}

// breakdownLine renders a per-requirement readiness breakdown as a single
// marker-prefixed string, for inclusion in a log line's args.
func breakdownLine(breakdown []ReqReadiness) string {
	parts := make([]string, len(breakdown))
	for i, r := range breakdown {
		parts[i] = marker(r.Ready) + " " + r.Taskname
	}
	return strings.Join(parts, ", ")
}

package weft

// Basic declares a task that exposes assets, depends on requirements, and
// carries an action body run to produce those assets when the scheduler
// decides it is needed. fn must yield, in order, a name (Y.Name), its
// assets (Y.Assets), and its requirements (Y.Requirements), and then return
// the error its action body produced (nil on success).
func Basic(fn func(y *Y) error) *Node {
	return driveDeclaration(Basic, fn)
}

// Collection declares a task with no assets and no action of its own; its
// readiness is the conjunction of its requirements' readiness. fn must
// yield, in order, a name (Y.Name) and its requirements (Y.Requirements),
// and then return nil.
func Collection(fn func(y *Y) error) *Node {
	return driveDeclaration(Collection, fn)
}

// External declares a task the engine can observe but never produce; its
// readiness is the conjunction of its assets. fn must yield, in order, a
// name (Y.Name) and its assets (Y.Assets), and then return nil.
func External(fn func(y *Y) error) *Node {
	return driveDeclaration(External, fn)
}

package weft

// Asset describes a single observable piece of state: an opaque reference
// (ref) and a predicate (Ready) that tells the engine whether it is, right
// now, ready to use. Ready must be side-effect free and must not memoize
// its own result — the engine re-queries it whenever a readiness decision
// is engine-visible.
type Asset struct {
	Ref   any
	Ready func() bool
}

func (a Asset) ready() bool {
	if a.Ready == nil {
		return false
	}
	return a.Ready()
}

// Assets holds the zero-or-more assets a task exposes, preserving whichever
// of the three shapes — scalar, ordered sequence, or string-keyed mapping —
// the task declared.
type Assets struct {
	c container[Asset]
}

// NoAssets is the empty Assets container, used by Collection tasks (which
// never yield assets) and by Basic/External tasks with nothing to expose.
func NoAssets() Assets { return Assets{} }

// AssetOf wraps a single asset.
func AssetOf(a Asset) Assets { return Assets{c: containerOf(a)} }

// AssetSeq wraps an ordered sequence of assets.
func AssetSeq(as ...Asset) Assets { return Assets{c: containerSeq(as...)} }

// AssetMap wraps a string-keyed mapping of assets.
func AssetMap(m map[string]Asset) Assets { return Assets{c: containerMap(m)} }

// Ref projects the container's ref values, preserving shape: a scalar
// Assets yields a bare value, a sequence yields a []any in declaration
// order, and a mapping yields a map[string]any with identical keys.
func (a Assets) Ref() any {
	switch a.c.shape {
	case shapeScalar:
		return a.c.scalar.Ref
	case shapeSequence:
		refs := make([]any, len(a.c.seq))
		for i, asset := range a.c.seq {
			refs[i] = asset.Ref
		}
		return refs
	case shapeMapping:
		refs := make(map[string]any, len(a.c.mapping))
		for k, asset := range a.c.mapping {
			refs[k] = asset.Ref
		}
		return refs
	default:
		return nil
	}
}

// ready is the conjunction of every asset's readiness. An empty Assets is
// vacuously ready.
func (a Assets) ready() bool {
	for _, asset := range a.c.values() {
		if !asset.ready() {
			return false
		}
	}
	return true
}

func (a Assets) isEmpty() bool { return a.c.isEmpty() }

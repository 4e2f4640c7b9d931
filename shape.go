package weft

import "slices"

// shape tags which of the three container forms an Assets or Requirements
// value holds. Task authors yield one of: nothing, a single value, an
// ordered sequence, or a string-keyed mapping — the shape is preserved
// through to the Ref/requirement projection.
type shape int

const (
	shapeNone shape = iota
	shapeScalar
	shapeSequence
	shapeMapping
)

// container is the generic backing store for both Assets (T = Asset) and
// Requirements (T = *Node). It is not exported: callers only ever see the
// named Assets/Requirements types and their constructors.
type container[T any] struct {
	shape   shape
	scalar  T
	seq     []T
	mapping map[string]T
}

func containerOf[T any](v T) container[T] {
	return container[T]{shape: shapeScalar, scalar: v}
}

func containerSeq[T any](vs ...T) container[T] {
	if len(vs) == 0 {
		return container[T]{shape: shapeNone}
	}
	return container[T]{shape: shapeSequence, seq: vs}
}

func containerMap[T any](m map[string]T) container[T] {
	if len(m) == 0 {
		return container[T]{shape: shapeNone}
	}
	return container[T]{shape: shapeMapping, mapping: m}
}

// values returns every element in this container in a stable order:
// scalar (one element), sequence (declaration order), or mapping (sorted
// by key, so diagnostics and dedup are deterministic).
func (c container[T]) values() []T {
	switch c.shape {
	case shapeScalar:
		return []T{c.scalar}
	case shapeSequence:
		return c.seq
	case shapeMapping:
		keys := sortedKeys(c.mapping)
		out := make([]T, 0, len(keys))
		for _, k := range keys {
			out = append(out, c.mapping[k])
		}
		return out
	default:
		return nil
	}
}

func (c container[T]) isEmpty() bool {
	return c.shape == shapeNone
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

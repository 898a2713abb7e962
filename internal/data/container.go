// Package data implements the data layer between structured training data
// and a batch-consuming training loop: a type-dispatching indexer over
// nested heterogeneous containers, a length resolver, a Dataset serving
// device-placed tensors, and CVSplit, which produces one reproducible
// train/validation partition from a loose cross-validation spec.
package data

import (
	"sort"
)

// Kind tags the variants of Container.
type Kind int

// Container kinds.
const (
	KindArray Kind = iota
	KindTensor
	KindFrame
	KindMapping
	KindSequence
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindTensor:
		return "tensor"
	case KindFrame:
		return "frame"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Container is a closed union over *Array, *Tensor, *Frame, Mapping and
// Sequence. Mappings and sequences nest arbitrarily.
type Container interface {
	Kind() Kind
	container()
}

// Mapping is a set of named containers. Keys carry no ordering; operations
// that must be deterministic walk them in sorted order.
type Mapping map[string]Container

// Kind returns KindMapping.
func (Mapping) Kind() Kind { return KindMapping }
func (Mapping) container() {}

// Keys returns the mapping keys in sorted order.
func (m Mapping) Keys() []string {
	return sortedKeys(m)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sequence is an ordered list. When every element is a container the
// sequence is a container of containers; otherwise (plain numbers, strings,
// mixed content) it is a single opaque leaf.
type Sequence []any

// Kind returns KindSequence.
func (Sequence) Kind() Kind { return KindSequence }
func (Sequence) container() {}

// Nested reports whether s is a container of containers.
// An empty sequence is an opaque leaf of length 0.
func (s Sequence) Nested() bool {
	if len(s) == 0 {
		return false
	}
	for _, e := range s {
		if !isIndexableContainer(e) {
			return false
		}
	}
	return true
}

// isIndexableContainer reports whether x can be recursed into by the
// indexer and the length resolver.
func isIndexableContainer(x any) bool {
	if x == nil {
		return false
	}
	switch v := x.(type) {
	case *Array:
		return v != nil
	case *Tensor:
		return v != nil && v.raw != nil
	case *Frame:
		return v != nil
	case Mapping, Sequence:
		return true
	default:
		return false
	}
}

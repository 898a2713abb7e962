package data

import (
	"github.com/pkg/errors"
)

// LengthTree mirrors the shape of a container with leaf lengths: Keys for
// a Mapping, Items for a Sequence of containers, Leaf otherwise.
type LengthTree struct {
	Leaf  int
	Keys  map[string]LengthTree
	Items []LengthTree
}

// IsLeaf reports whether t is a single leaf length.
func (t LengthTree) IsLeaf() bool {
	return t.Keys == nil && t.Items == nil
}

// Flatten returns the leaf lengths depth first, walking mapping keys in
// sorted order.
func (t LengthTree) Flatten() []int {
	if t.IsLeaf() {
		return []int{t.Leaf}
	}
	var out []int
	if t.Keys != nil {
		for _, k := range sortedKeys(t.Keys) {
			out = append(out, t.Keys[k].Flatten()...)
		}
		return out
	}
	for _, item := range t.Items {
		out = append(out, item.Flatten()...)
	}
	return out
}

// ResolveKeyed returns the length of every leaf of c, keeping its nesting.
func ResolveKeyed(c Container) (LengthTree, error) {
	switch v := c.(type) {
	case Mapping:
		keys := make(map[string]LengthTree, len(v))
		for k, e := range v {
			t, err := ResolveKeyed(e)
			if err != nil {
				return LengthTree{}, errors.Wrapf(err, "key %q", k)
			}
			keys[k] = t
		}
		return LengthTree{Keys: keys}, nil
	case Sequence:
		if !v.Nested() {
			return LengthTree{Leaf: len(v)}, nil
		}
		items := make([]LengthTree, len(v))
		for i, e := range v {
			t, err := ResolveKeyed(e.(Container))
			if err != nil {
				return LengthTree{}, errors.Wrapf(err, "element %d", i)
			}
			items[i] = t
		}
		return LengthTree{Items: items}, nil
	default:
		n, err := leafLen(c)
		if err != nil {
			return LengthTree{}, err
		}
		return LengthTree{Leaf: n}, nil
	}
}

// Resolve returns the common length of every leaf of c. Leaves that
// disagree, or a container without leaves, fail with ErrInconsistentLength.
func Resolve(c Container) (int, error) {
	tree, err := ResolveKeyed(c)
	if err != nil {
		return 0, err
	}
	lengths := tree.Flatten()
	if len(lengths) == 0 {
		return 0, errors.Wrap(ErrInconsistentLength, "no leaves")
	}
	for _, n := range lengths[1:] {
		if n != lengths[0] {
			return 0, errors.Wrapf(ErrInconsistentLength, "found lengths %v", distinct(lengths))
		}
	}
	return lengths[0], nil
}

func leafLen(c Container) (int, error) {
	switch v := c.(type) {
	case *Array:
		if v == nil {
			break
		}
		return v.Len()
	case *Tensor:
		if v == nil || v.raw == nil {
			break
		}
		return v.Len()
	case *Frame:
		if v == nil {
			break
		}
		return v.Len(), nil
	}
	return 0, errors.Wrapf(ErrUnsupported, "no length for %T", c)
}

func distinct(values []int) []int {
	var out []int
	seen := map[int]bool{}
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

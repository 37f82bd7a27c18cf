package pathtree

import (
	"encoding/json"
	"slices"
)

// Value is either a Leaf or a Node.
type Value interface {
	isValue()
}

// Leaf is a terminal slot holding a Scalar.
type Leaf struct {
	Scalar
}

// Node is a container slot. A Node returned by Build is owned by the caller.
type Node map[string]Value

func (Leaf) isValue() {}
func (Node) isValue() {}

// Lookup follows path from n and returns the value found there.
// An empty path returns n itself.
func (n Node) Lookup(path Path) (Value, bool) {
	var cur Value = n

	for _, seg := range path {
		node, ok := cur.(Node)
		if !ok {
			return nil, false
		}

		cur, ok = node[seg]
		if !ok {
			return nil, false
		}
	}

	return cur, true
}

// Get returns the scalar stored at path, if the slot is a leaf.
func (n Node) Get(path ...string) (Scalar, bool) {
	v, ok := n.Lookup(path)
	if !ok {
		return Scalar{}, false
	}

	leaf, ok := v.(Leaf)
	if !ok {
		return Scalar{}, false
	}

	return leaf.Scalar, true
}

// Equal reports whether n and o have the same shape and leaf values.
func (n Node) Equal(o Node) bool {
	if len(n) != len(o) {
		return false
	}

	for k, v := range n {
		ov, ok := o[k]
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}

	return true
}

func valuesEqual(a, b Value) bool {
	switch x := a.(type) {
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x.Equal(y.Scalar)
	case Node:
		y, ok := b.(Node)
		return ok && x.Equal(y)
	default:
		return false
	}
}

// ToMap converts n into plain Go values: map[string]any for containers and
// string, bool or float64 for leaves. The result shares nothing with n.
func (n Node) ToMap() map[string]any {
	m := make(map[string]any, len(n))

	for k, v := range n {
		switch x := v.(type) {
		case Leaf:
			m[k] = x.Interface()
		case Node:
			m[k] = x.ToMap()
		}
	}

	return m
}

// Paths returns the path of every leaf, sorted segment by segment.
func (n Node) Paths() []Path {
	var paths []Path

	n.walk(nil, func(p Path, _ Scalar) {
		paths = append(paths, p.Clone())
	})

	slices.SortFunc(paths, func(a, b Path) int {
		return slices.Compare(a, b)
	})

	return paths
}

// Entries flattens n back into one Entry per leaf, in Paths order.
// Building the result reproduces n, except that empty containers are lost.
func (n Node) Entries() []Entry {
	paths := n.Paths()

	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		v, _ := n.Get(p...)
		entries = append(entries, Entry{Path: p, Value: v})
	}

	return entries
}

func (n Node) walk(prefix Path, fn func(Path, Scalar)) {
	for k, v := range n {
		p := append(prefix[:len(prefix):len(prefix)], k)

		switch x := v.(type) {
		case Leaf:
			fn(p, x.Scalar)
		case Node:
			x.walk(p, fn)
		}
	}
}

// MarshalJSON implements json.Marshaler. Keys are emitted in sorted order.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToMap())
}

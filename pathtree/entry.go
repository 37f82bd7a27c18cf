package pathtree

import (
	"slices"
	"strings"
)

// Path is an ordered list of segments addressing a location in a Node.
type Path []string

// String renders the path with "." between segments, for messages only.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Clone returns a copy of p that shares no memory with it.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Entry is one input unit for Build.
type Entry struct {
	Path  Path
	Value Scalar
}

// NewEntry returns an Entry assigning value at the given segments.
func NewEntry(value Scalar, segments ...string) Entry {
	return Entry{Path: Path(segments), Value: value}
}

package pathtree

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"
)

// Ordering selects how paths are compared to form the canonical order.
type Ordering int

const (
	// OrderingJoined joins segments with "," and compares the joined strings
	// as UTF-16 code units. A segment containing "," can sort differently
	// from what its segment structure suggests.
	OrderingJoined Ordering = iota
	// OrderingSegmented compares paths segment by segment, each segment as
	// UTF-16 code units, with a path sorting before any path it prefixes.
	OrderingSegmented
)

const joinedSeparator = ","

// String returns the flag name of the ordering.
func (o Ordering) String() string {
	switch o {
	case OrderingJoined:
		return "joined"
	case OrderingSegmented:
		return "segmented"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// ParseOrdering returns the ordering with the given flag name.
func ParseOrdering(name string) (Ordering, error) {
	switch name {
	case "joined", "":
		return OrderingJoined, nil
	case "segmented":
		return OrderingSegmented, nil
	default:
		return 0, fmt.Errorf("unknown ordering %q (want joined or segmented)", name)
	}
}

// JoinedKey returns the serialized form of p compared by OrderingJoined.
func JoinedKey(p Path) string {
	return strings.Join(p, joinedSeparator)
}

// sortKey is computed once per entry so the sort does not re-encode.
type sortKey struct {
	joined   []uint16
	segments [][]uint16
}

func newSortKey(p Path, o Ordering) sortKey {
	if o == OrderingSegmented {
		segments := make([][]uint16, len(p))
		for i, s := range p {
			segments[i] = utf16.Encode([]rune(s))
		}

		return sortKey{segments: segments}
	}

	return sortKey{joined: utf16.Encode([]rune(JoinedKey(p)))}
}

func compareKeys(a, b sortKey, o Ordering) int {
	if o == OrderingSegmented {
		return slices.CompareFunc(a.segments, b.segments, func(x, y []uint16) int {
			return slices.Compare(x, y)
		})
	}

	return slices.Compare(a.joined, b.joined)
}

// ComparePaths compares two paths under the given ordering.
func ComparePaths(a, b Path, o Ordering) int {
	return compareKeys(newSortKey(a, o), newSortKey(b, o), o)
}

// indexedEntry remembers where an entry sat in the caller's slice.
type indexedEntry struct {
	Entry
	index int
	key   sortKey
}

func canonicalize(entries []Entry, o Ordering) []indexedEntry {
	ordered := make([]indexedEntry, len(entries))
	for i, e := range entries {
		ordered[i] = indexedEntry{Entry: e, index: i, key: newSortKey(e.Path, o)}
	}

	slices.SortStableFunc(ordered, func(a, b indexedEntry) int {
		return compareKeys(a.key, b.key, o)
	})

	return ordered
}

// CanonicalOrder returns a copy of entries sorted into processing order.
// Entries with equal keys keep their relative input order. The input slice is
// not modified.
func CanonicalOrder(entries []Entry, o Ordering) []Entry {
	ordered := canonicalize(entries, o)

	result := make([]Entry, len(ordered))
	for i := range ordered {
		result[i] = ordered[i].Entry
	}

	return result
}

// Package pathtree assembles flat (path, value) entries into one nested tree.
//
// Each Entry addresses a location with an ordered list of string segments:
//
//	{Path: ["git", "name"], Value: "Alice"}
//	{Path: ["git", "email"], Value: "a@x.com"}
//
// Build turns these into
//
//	{"git": {"name": "Alice", "email": "a@x.com"}}
//
// # Canonical order
//
// Entries are applied in a canonical order that does not depend on the order
// of the input slice. With the default OrderingJoined the segments of each path
// are joined with "," and the resulting strings are compared as UTF-16 code
// units; ties keep their input order. OrderingSegmented compares segment by
// segment instead, so a "," inside a segment cannot change which entry wins.
//
// # Conflicts
//
// Two entries may disagree about whether a slot is a leaf or a container.
// Nothing is rejected: the entry applied later in canonical order wins at the
// slot it writes. A scalar standing where a container is needed is replaced by
// an empty container, and a container standing where a scalar is written is
// replaced by that scalar. With either ordering a path sorts before every
// longer path it prefixes, so
//
//	{["a"], 1} and {["a", "b"], 2}
//
// always build {"a": {"b": 2}}.
//
// # Errors
//
// The only failure is an entry with an empty path, reported as an
// *InvalidPathError (errors.Is(err, ErrInvalidPath)). No tree is returned in
// that case.
package pathtree

package form

import (
	"errors"
	"fmt"
	"strings"

	"formtree/pathtree"
)

// ParsePath parses a dotted path string into segments.
// Supports: "name", "git.name", "editor.tab_size".
func ParsePath(path string) (pathtree.Path, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	var segments pathtree.Path

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		segments = append(segments, part)
	}

	return segments, nil
}

// PathSpec is a field path as written in YAML: either a dotted string or a
// list of segments.
type PathSpec struct {
	// Dotted is set when the path was written as a string.
	Dotted string
	// Segments is set when the path was written as a list.
	Segments []string
}

// DottedPath returns a PathSpec for a dotted string.
func DottedPath(s string) PathSpec {
	return PathSpec{Dotted: s}
}

// SegmentPath returns a PathSpec for explicit segments.
func SegmentPath(segments ...string) PathSpec {
	return PathSpec{Segments: segments}
}

// IsZero reports whether no path was written.
func (p PathSpec) IsZero() bool {
	return p.Dotted == "" && p.Segments == nil
}

// Resolve returns the segments p addresses.
func (p PathSpec) Resolve() (pathtree.Path, error) {
	if p.Segments != nil {
		if len(p.Segments) == 0 {
			return nil, errors.New("empty path")
		}

		return pathtree.Path(p.Segments).Clone(), nil
	}

	return ParsePath(p.Dotted)
}

// String renders p for messages.
func (p PathSpec) String() string {
	if p.Segments != nil {
		return fmt.Sprintf("%q", p.Segments)
	}

	return p.Dotted
}

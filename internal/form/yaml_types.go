package form

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"formtree/internal/common"
	"formtree/pathtree"
)

// --- PathSpec YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for PathSpec.
// Accepts either a dotted string or an array of segments.
func (p *PathSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*p = PathSpec{Dotted: str}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		if arr == nil {
			arr = []string{}
		}

		*p = PathSpec{Segments: arr}

		return nil

	default:
		return fmt.Errorf("line %d: path: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for PathSpec.
// Outputs the form it was written in.
func (p PathSpec) MarshalYAML() (any, error) {
	if p.Segments != nil {
		return p.Segments, nil
	}

	return p.Dotted, nil
}

// IsZero is used by yaml.v3 for omitempty.
var _ yaml.IsZeroer = PathSpec{}

// First returns the first segment, or an empty string.
func (p PathSpec) First() string {
	if p.Segments != nil {
		if v, ok := common.First(p.Segments); ok {
			return v
		}

		return ""
	}

	segments, err := ParsePath(p.Dotted)
	if err != nil {
		return ""
	}

	return segments[0]
}

// --- Value YAML methods ---

// Value wraps a scalar read from YAML.
type Value struct {
	pathtree.Scalar
}

// NewValue wraps s.
func NewValue(s pathtree.Scalar) *Value {
	return &Value{Scalar: s}
}

// UnmarshalYAML implements custom YAML unmarshaling for Value.
// Only strings, bools and numbers are accepted.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	s, err := scalarFromNode(node)
	if err != nil {
		return err
	}

	v.Scalar = s

	return nil
}

// MarshalYAML implements custom YAML marshaling for Value.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// scalarFromNode converts a YAML scalar node by its resolved tag. Timestamps
// and other string-like tags stay strings.
func scalarFromNode(node *yaml.Node) (pathtree.Scalar, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return scalarFromNode(node.Alias)
	}

	if node.Kind != yaml.ScalarNode {
		return pathtree.Scalar{}, fmt.Errorf("line %d: expected a scalar, got %v", node.Line, kindName(node.Kind))
	}

	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return pathtree.Scalar{}, err
		}

		return pathtree.BoolValue(b), nil

	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return pathtree.Scalar{}, err
		}

		s, err := pathtree.FiniteNumber(f)
		if err != nil {
			return pathtree.Scalar{}, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return s, nil

	case "!!null":
		return pathtree.Scalar{}, fmt.Errorf("line %d: null is not a value", node.Line)

	default:
		return pathtree.StringValue(node.Value), nil
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "kind " + strconv.Itoa(int(k))
	}
}

package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"formtree/pathtree"
)

// LoadFile loads and parses a YAML form file from the given path.
func LoadFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Form.
func Parse(data []byte) (*Form, error) {
	var f Form

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse form YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *Form) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Fields {
		field := &f.Fields[i]
		if field.Type == "" {
			field.Type = pathtree.KindString.String()
		}

		if field.Path.IsZero() {
			field.Path = DottedPath(field.Name)
		}
	}
}

// Marshal serializes a Form to YAML with two-space indentation.
func Marshal(f *Form) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes a Form to the given path.
func WriteFile(f *Form, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal form: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write form file %s: %w", path, err)
	}

	return nil
}

// LoadAnswers reads an answers file. Files ending in .json or .jsonc are
// read as JSON with comments; anything else as YAML.
func LoadAnswers(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var answers Answers

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		answers, err = ParseAnswersJSON(data)
	default:
		answers, err = ParseAnswersYAML(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return answers, nil
}

// ParseAnswersYAML parses a YAML mapping of field name to scalar.
func ParseAnswersYAML(data []byte) (Answers, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse answers YAML: %w", err)
	}

	answers := Answers{}

	// An empty document has no content node.
	if len(doc.Content) == 0 {
		return answers, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("answers: expected a mapping, got %v", kindName(root.Kind))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		s, err := scalarFromNode(val)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", key.Value, err)
		}

		answers[key.Value] = s
	}

	return answers, nil
}

// ParseAnswersJSON parses a JSON object of field name to scalar. Comments and
// trailing commas are allowed.
func ParseAnswersJSON(data []byte) (Answers, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse answers JSON: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	answers := make(Answers, len(raw))

	for _, k := range keys {
		s, err := pathtree.ParseScalar(raw[k])
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", k, err)
		}

		answers[k] = s
	}

	return answers, nil
}

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"formtree/internal/form"
	"formtree/pathtree"
)

// entryDoc is one item of an entry file.
type entryDoc struct {
	Path  form.PathSpec `yaml:"path"`
	Value *form.Value   `yaml:"value"`
}

// ReadEntries reads an entry file from disk.
func ReadEntries(path string) ([]pathtree.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	entries, err := DecodeEntries(data, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}

// DecodeEntries parses an entry file. name only selects the syntax: names
// ending in .json or .jsonc are JSON, anything else YAML.
//
// An empty path is passed through so that building reports it.
func DecodeEntries(data []byte, name string) ([]pathtree.Entry, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonc":
		return decodeJSONEntries(data)
	default:
		return decodeYAMLEntries(data)
	}
}

func decodeYAMLEntries(data []byte) ([]pathtree.Entry, error) {
	var docs []entryDoc

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&docs); err != nil {
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}

		return nil, fmt.Errorf("parsing entries: %w", err)
	}

	entries := make([]pathtree.Entry, 0, len(docs))

	for i, doc := range docs {
		if doc.Value == nil {
			return nil, fmt.Errorf("entry %d: missing value", i)
		}

		path, err := entryPath(doc.Path)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		entries = append(entries, pathtree.Entry{Path: path, Value: doc.Value.Scalar})
	}

	return entries, nil
}

func decodeJSONEntries(data []byte) ([]pathtree.Entry, error) {
	var docs []struct {
		Path  json.RawMessage `json:"path"`
		Value any             `json:"value"`
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("parsing entries: %w", err)
	}

	entries := make([]pathtree.Entry, 0, len(docs))

	for i, doc := range docs {
		spec, err := jsonPathSpec(doc.Path)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		path, err := entryPath(spec)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		value, err := pathtree.ParseScalar(doc.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		entries = append(entries, pathtree.Entry{Path: path, Value: value})
	}

	return entries, nil
}

func jsonPathSpec(raw json.RawMessage) (form.PathSpec, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return form.PathSpec{}, nil
	}

	var dotted string
	if err := json.Unmarshal(raw, &dotted); err == nil {
		return form.DottedPath(dotted), nil
	}

	var segments []string
	if err := json.Unmarshal(raw, &segments); err != nil {
		return form.PathSpec{}, errors.New("path: expected string or array of strings")
	}

	if segments == nil {
		segments = []string{}
	}

	return form.SegmentPath(segments...), nil
}

// entryPath resolves a decoded path, mapping an absent or empty path to an empty Path.
func entryPath(spec form.PathSpec) (pathtree.Path, error) {
	if spec.IsZero() || (spec.Segments != nil && len(spec.Segments) == 0) {
		return pathtree.Path{}, nil
	}

	return spec.Resolve()
}

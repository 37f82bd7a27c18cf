package form

import (
	"formtree/pathtree"
)

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// Form represents the root of a YAML form definition file.
type Form struct {
	// Version of the form schema.
	Version string `yaml:"version,omitempty"`

	// Title is an optional human-readable heading, shown by the prompt.
	Title string `yaml:"title,omitempty"`

	// Fields in declaration order.
	Fields []Field `yaml:"fields"`
}

// Field is one question of the form.
type Field struct {
	// Name is the answer key. Unique within a form.
	Name string `yaml:"name"`

	// Path addresses the field's value in the built tree.
	Path PathSpec `yaml:"path,omitempty"`

	// Type is "string", "bool" or "number".
	Type string `yaml:"type,omitempty"`

	// Label and Description are shown by the prompt.
	Label       string `yaml:"label,omitempty"`
	Description string `yaml:"description,omitempty"`

	// Default applies when no answer is given.
	Default *Value `yaml:"default,omitempty"`

	// Required fields must end up with a value.
	Required bool `yaml:"required,omitempty"`

	// Hidden and Disabled fields contribute nothing unless extraction is
	// configured to include them.
	Hidden   bool `yaml:"hidden,omitempty"`
	Disabled bool `yaml:"disabled,omitempty"`
}

// Kind returns the scalar kind declared by Type.
func (f *Field) Kind() (pathtree.Kind, error) {
	return pathtree.ParseKind(f.Type)
}

// Active reports whether the field takes part in extraction under cfg.
func (f *Field) Active(cfg ExtractConfig) bool {
	if f.Hidden && !cfg.IncludeHidden {
		return false
	}

	if f.Disabled && !cfg.IncludeDisabled {
		return false
	}

	return true
}

// DisplayLabel returns the label, falling back to the name.
func (f *Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}

	return f.Name
}

// FieldByName returns the field with the given name, or nil.
func (f *Form) FieldByName(name string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}

	return nil
}

// FieldNames returns the names of all fields in declaration order.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for i := range f.Fields {
		names = append(names, f.Fields[i].Name)
	}

	return names
}

// Answers maps field names to answered values.
type Answers map[string]pathtree.Scalar

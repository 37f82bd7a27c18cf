package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"formtree/internal/common"
)

// Diagnostics holds all diagnostic information from validation and extraction.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Field names the form field or answer key this relates to (if any).
	Field string
	// Path is the dotted address path this relates to (if any).
	Path string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic and returns it for further decoration.
func (d *Diagnostics) AddError(code, message, field, path string) *Diagnostic {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, field, path))
	return &d.Errors[len(d.Errors)-1]
}

// AddWarning adds a warning diagnostic and returns it for further decoration.
func (d *Diagnostics) AddWarning(code, message, field, path string) *Diagnostic {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, field, path))
	return &d.Warnings[len(d.Warnings)-1]
}

// AddInfo adds an info diagnostic and returns it for further decoration.
func (d *Diagnostics) AddInfo(code, message, field, path string) *Diagnostic {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, field, path))
	return &d.Infos[len(d.Infos)-1]
}

func newDiagnostic(severity DiagnosticSeverity, code, message, field, path string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Field:    field,
		Path:     path,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Codes returns the code of every diagnostic in All order.
func (d *Diagnostics) Codes() []string {
	all := d.All()

	codes := make([]string, len(all))
	for i := range all {
		codes[i] = all[i].Code
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// WithSuggestions attaches suggestions to the diagnostic.
func (d *Diagnostic) WithSuggestions(suggestions ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, suggestions...)
	return d
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Field != "" {
		prefix = append(prefix, "["+d.Field+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

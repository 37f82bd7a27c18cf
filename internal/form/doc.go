// Package form provides the YAML form schema, its validation, and the
// extraction of filled-in answers into pathtree entries.
//
// A form declares fields; each field has an answer key (its name) and an
// address path telling where its value lands in the built tree:
//
//	version: "1"
//	fields:
//	  - name: gitName
//	    path: git.name          # dotted string...
//	    label: Git user name
//	    required: true
//	  - name: gitEmail
//	    path: [git, email]      # ...or a list of segments
//	  - name: telemetry
//	    type: bool
//	    default: false
//	  - name: token
//	    path: auth.token
//	    hidden: true
//
// # Defaults
//
//   - version: "1"
//   - type: string
//   - path: the field name, parsed as a dotted path
//
// # Path Syntax
//
// A dotted string is split on "."; empty segments are rejected. A list keeps
// its segments verbatim, so a segment may itself contain a dot.
//
// # Extraction
//
// Extract walks the fields in declaration order. Hidden and disabled fields
// are skipped unless configured otherwise. An answer takes precedence over
// the field default; a required field with neither is an error. Answer keys
// that match no field produce warnings with "did you mean" suggestions.
package form

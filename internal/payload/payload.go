// Package payload assembles a built answer tree with user, session and
// environment data and renders text templates against the result.
//
// The assembled payload has four top-level keys:
//
//	answers  the built tree
//	user     identity values (name, email, ...)
//	session  per-run values
//	env      environment variables selected by prefix
//
// Templates address values as {{ .answers.git.name }} or {{ .env.HOME }}.
// A reference to a missing key is an error.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"formtree/pathtree"
)

// Context holds the data merged next to the answers.
type Context struct {
	User    map[string]string
	Session map[string]string
	Env     map[string]string
}

// Assemble returns the payload for tree and ctx. Nil maps become empty ones
// so templates can range over them.
func Assemble(tree pathtree.Node, ctx Context) map[string]any {
	return map[string]any{
		"answers": tree.ToMap(),
		"user":    stringMap(ctx.User),
		"session": stringMap(ctx.Session),
		"env":     stringMap(ctx.Env),
	}
}

func stringMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// EnvFromOS returns the environment variables starting with prefix, keyed by
// the remainder of their name. An empty prefix selects nothing.
func EnvFromOS(prefix string) map[string]string {
	return envFrom(os.Environ(), prefix)
}

func envFrom(environ []string, prefix string) map[string]string {
	env := map[string]string{}
	if prefix == "" {
		return env
	}

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) || name == prefix {
			continue
		}

		env[strings.TrimPrefix(name, prefix)] = value
	}

	return env
}

// ParsePairs parses "key=value" arguments. Later keys override earlier ones.
func ParsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid pair %q (want key=value)", p)
		}

		out[k] = v
	}

	return out, nil
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}

		return string(data), nil
	},
	"default": func(def, v any) any {
		if v == nil || v == "" {
			return def
		}

		return v
	},
	"keys": func(m map[string]any) []string {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		return keys
	},
}

// Parse compiles a payload template.
func Parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	return tmpl, nil
}

// Render executes tmpl against payload and writes the output to w. Nothing
// is written if execution fails.
func Render(w io.Writer, tmpl *template.Template, payload map[string]any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, payload); err != nil {
		return fmt.Errorf("rendering template %s: %w", tmpl.Name(), err)
	}

	_, err := buf.WriteTo(w)

	return err
}

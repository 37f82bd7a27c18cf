package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formtree/internal/codec"
	"formtree/pathtree"
)

const testForm = `
version: "1"
fields:
  - name: gitName
    path: git.name
    required: true
  - name: gitEmail
    path: git.email
  - name: tabSize
    path: editor.tab_size
    type: number
    default: 4
  - name: token
    path: auth.token
    hidden: true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand("test")
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))

	return m
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	entries := writeFile(t, dir, "entries.yaml", `
- path: a
  value: 1
- path: a.b
  value: 2
- path: [x, "y.z"]
  value: true
`)

	out, _, err := run(t, "build", "--entries", entries)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": map[string]any{"b": 2.0},
		"x": map[string]any{"y.z": true},
	}, decodeJSON(t, out))
}

func TestBuildCommandJSONC(t *testing.T) {
	dir := t.TempDir()
	entries := writeFile(t, dir, "entries.jsonc", `[
  // the name
  {"path": "user.name", "value": "ada"},
  {"path": ["user", "admin"], "value": false},
]`)

	out, _, err := run(t, "build", "--entries", entries, "--format", "yaml")
	require.NoError(t, err)

	assert.Equal(t, "user:\n  admin: false\n  name: ada\n", out)
}

func TestBuildCommandDigestIgnoresOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.yaml", `
- {path: a, value: 1}
- {path: a.b, value: 2}
- {path: c, value: x}
`)
	second := writeFile(t, dir, "second.yaml", `
- {path: c, value: x}
- {path: a.b, value: 2}
- {path: a, value: 1}
`)

	sumA, _, err := run(t, "build", "--entries", first, "--digest")
	require.NoError(t, err)

	sumB, _, err := run(t, "build", "--entries", second, "--digest")
	require.NoError(t, err)

	assert.Equal(t, sumA, sumB)
	assert.Len(t, strings.TrimSpace(sumA), 64)
}

func TestBuildCommandEmptyPath(t *testing.T) {
	dir := t.TempDir()
	entries := writeFile(t, dir, "entries.yaml", `
- {path: a, value: 1}
- {path: [], value: 2}
`)

	_, _, err := run(t, "build", "--entries", entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, pathtree.ErrInvalidPath)
}

func TestBuildCommandBadFormat(t *testing.T) {
	dir := t.TempDir()
	entries := writeFile(t, dir, "entries.yaml", "- {path: a, value: 1}\n")

	_, _, err := run(t, "build", "--entries", entries, "--format", "xml")
	require.Error(t, err)

	_, _, err = run(t, "build", "--entries", entries, "--ordering", "random")
	require.Error(t, err)
}

func TestBuildCommandRequiresEntries(t *testing.T) {
	_, _, err := run(t, "build")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entries")
}

func TestFillCommand(t *testing.T) {
	dir := t.TempDir()
	formPath := writeFile(t, dir, "form.yaml", testForm)
	answers := writeFile(t, dir, "answers.yaml", `
gitName: Ada
gitEmial: ada@example.com
token: secret
`)

	out, stderr, err := run(t, "fill", "--form", formPath, "--answers", answers)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"git":    map[string]any{"name": "Ada"},
		"editor": map[string]any{"tab_size": 4.0},
	}, decodeJSON(t, out))

	assert.Contains(t, stderr, "unknown_answer")
	assert.Contains(t, stderr, "did you mean gitEmail?")
}

func TestFillCommandIncludeHidden(t *testing.T) {
	dir := t.TempDir()
	formPath := writeFile(t, dir, "form.yaml", testForm)
	answers := writeFile(t, dir, "answers.json", `{"gitName": "Ada", "token": "secret", "tabSize": 2}`)

	out, _, err := run(t, "fill", "--form", formPath, "--answers", answers, "--include-hidden")
	require.NoError(t, err)

	m := decodeJSON(t, out)
	assert.Equal(t, map[string]any{"token": "secret"}, m["auth"])
	assert.Equal(t, map[string]any{"tab_size": 2.0}, m["editor"])
}

func TestFillCommandMissingRequired(t *testing.T) {
	dir := t.TempDir()
	formPath := writeFile(t, dir, "form.yaml", testForm)
	answers := writeFile(t, dir, "answers.yaml", "gitEmail: ada@example.com\n")

	out, stderr, err := run(t, "fill", "--form", formPath, "--answers", answers)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "missing_required")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "good.yaml", testForm)
	out, stderr, err := run(t, "check", "--form", good)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "ok")

	bad := writeFile(t, dir, "bad.yaml", `
fields:
  - name: a
    type: date
  - name: a
    path: x..y
`)
	out, stderr, err = run(t, "check", "--form", bad)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "unknown_type")
	assert.Contains(t, stderr, "duplicate_field")
	assert.Contains(t, stderr, "invalid_path")
}

func TestCheckCommandWrite(t *testing.T) {
	dir := t.TempDir()
	formPath := writeFile(t, dir, "form.yaml", "fields:\n  - name: gitName\n    type: strin\n")

	_, stderr, err := run(t, "check", "--form", formPath, "--write")
	require.Error(t, err)
	assert.Contains(t, stderr, "did you mean string?")

	data, err := os.ReadFile(formPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "strin\n", "a form with errors is left alone")

	writeFile(t, dir, "form.yaml", "fields:\n  - name: gitName\n")

	_, _, err = run(t, "check", "--form", formPath, "--write")
	require.NoError(t, err)

	data, err = os.ReadFile(formPath)
	require.NoError(t, err)
	assert.Equal(t, "version: \"1\"\nfields:\n  - name: gitName\n    path: gitName\n    type: string\n", string(data))
}

func TestBuildCommandCBOR(t *testing.T) {
	dir := t.TempDir()
	entries := writeFile(t, dir, "entries.yaml", "- {path: a.b, value: 1}\n")

	out, _, err := run(t, "build", "--entries", entries, "--format", "cbor")
	require.NoError(t, err)

	m, err := codec.UnmarshalCBOR([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1.0}}, m)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.cbor"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, isTerminal(f))
}

func TestBuildCommandEntriesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	entries := writeFile(t, dir, "entries.yaml", `
- {path: editor, value: vim}
- {path: editor.tab_size, value: 2}
- {path: [git, "user.email"], value: ada@example.com}
`)

	flat, _, err := run(t, "build", "--entries", entries, "--format", "entries")
	require.NoError(t, err)

	again := writeFile(t, dir, "flat.yaml", flat)

	first, _, err := run(t, "build", "--entries", entries, "--digest")
	require.NoError(t, err)

	second, _, err := run(t, "build", "--entries", again, "--digest")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotContains(t, flat, "vim", "overwritten leaves are not flattened")
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	formPath := writeFile(t, dir, "form.yaml", testForm)
	answers := writeFile(t, dir, "answers.yaml", "gitName: Ada\n")
	tmpl := writeFile(t, dir, "gitconfig.tmpl",
		"[user]\n\tname = {{ .answers.git.name }}\n\tlogin = {{ .user.login }}\n\tshell = {{ .env.SHELL }}\n")

	t.Setenv("FORMTREE_TEST_SHELL", "zsh")

	out, _, err := run(t, "render",
		"--form", formPath, "--answers", answers, "--template", tmpl,
		"--user", "login=ada", "--env-prefix", "FORMTREE_TEST_")
	require.NoError(t, err)

	assert.Equal(t, "[user]\n\tname = Ada\n\tlogin = ada\n\tshell = zsh\n", out)
}

func TestRenderCommandMissingKey(t *testing.T) {
	dir := t.TempDir()
	formPath := writeFile(t, dir, "form.yaml", testForm)
	answers := writeFile(t, dir, "answers.yaml", "gitName: Ada\n")
	tmpl := writeFile(t, dir, "t.tmpl", "{{ .session.id }}\n")

	out, _, err := run(t, "render", "--form", formPath, "--answers", answers, "--template", tmpl)
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestLogLevelFlag(t *testing.T) {
	dir := t.TempDir()
	entries := writeFile(t, dir, "entries.yaml", "- {path: a, value: 1}\n")

	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "build", "--entries", entries)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"built tree"`)
	assert.Contains(t, stderr, `"run_id"`)

	_, _, err = run(t, "--log-level", "loud", "build", "--entries", entries)
	require.Error(t, err)
}

func TestDevsetupExample(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "devsetup")
	formPath := filepath.Join(dir, "form.yaml")

	_, stderr, err := run(t, "check", "--form", formPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "ok")

	out, _, err := run(t, "fill", "--form", formPath, "--answers", filepath.Join(dir, "answers.yaml"))
	require.NoError(t, err)

	m := decodeJSON(t, out)
	assert.Equal(t, map[string]any{"tab_size": 4.0, "color.theme": "dark"}, m["editor"])
	assert.Equal(t, map[string]any{"name": "Ada Lovelace", "email": "ada@example.com", "sign": true}, m["git"])

	out, _, err = run(t, "render",
		"--form", formPath,
		"--answers", filepath.Join(dir, "answers.jsonc"),
		"--template", filepath.Join(dir, "gitconfig.tmpl"))
	require.NoError(t, err)
	assert.Equal(t, "[user]\n\tname = Ada Lovelace\n\temail = ada@example.com\n[commit]\n\tgpgsign = true\n", out)

	out, _, err = run(t, "build", "--entries", filepath.Join(dir, "entries.yaml"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"editor": map[string]any{"tab_size": 2.0},
		"git":    map[string]any{"name": "Ada Lovelace", "user.email": "ada@example.com"},
	}, decodeJSON(t, out))
}

package payload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formtree/pathtree"
)

func sampleTree(t *testing.T) pathtree.Node {
	t.Helper()

	n, err := pathtree.Build([]pathtree.Entry{
		pathtree.NewEntry(pathtree.StringValue("Alice"), "git", "name"),
		pathtree.NewEntry(pathtree.StringValue("a@x.com"), "git", "email"),
		pathtree.NewEntry(pathtree.NumberValue(4), "editor", "tab_size"),
	})
	require.NoError(t, err)

	return n
}

func TestAssemble(t *testing.T) {
	p := Assemble(sampleTree(t), Context{
		User: map[string]string{"login": "alice"},
	})

	assert.Equal(t, map[string]any{"name": "Alice", "email": "a@x.com"}, p["answers"].(map[string]any)["git"])
	assert.Equal(t, map[string]any{"login": "alice"}, p["user"])
	assert.Equal(t, map[string]any{}, p["session"])
	assert.Equal(t, map[string]any{}, p["env"])
}

func TestRender(t *testing.T) {
	tmpl, err := Parse("gitconfig", `[user]
	name = {{ .answers.git.name }}
	email = {{ .answers.git.email }}
# tab {{ .answers.editor.tab_size }} for {{ .user.login }} in {{ default "unknown" .session.id }}
{{ range keys .answers.git }}{{ . }} {{ end }}{{ json .answers.editor }}`)
	require.NoError(t, err)

	p := Assemble(sampleTree(t), Context{
		User:    map[string]string{"login": "alice"},
		Session: map[string]string{"id": ""},
	})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tmpl, p))

	assert.Equal(t, `[user]
	name = Alice
	email = a@x.com
# tab 4 for alice in unknown
email name {"tab_size":4}`, buf.String())
}

func TestRender_MissingKey(t *testing.T) {
	tmpl, err := Parse("t", "{{ .answers.git.phone }}")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Render(&buf, tmpl, Assemble(sampleTree(t), Context{}))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("bad", "{{ .answers")
	assert.Error(t, err)
}

func TestEnvFrom(t *testing.T) {
	env := envFrom([]string{
		"FORMTREE_REGION=eu",
		"FORMTREE_=skip",
		"HOME=/home/alice",
		"FORMTREE_EMPTY=",
		"broken",
	}, "FORMTREE_")

	assert.Equal(t, map[string]string{"REGION": "eu", "EMPTY": ""}, env)
	assert.Empty(t, envFrom([]string{"A=1"}, ""))
}

func TestEnvFromOS(t *testing.T) {
	t.Setenv("FORMTREE_TEST_REGION", "eu")
	assert.Equal(t, "eu", EnvFromOS("FORMTREE_TEST_")["REGION"])
}

func TestParsePairs(t *testing.T) {
	got, err := ParsePairs([]string{"a=1", "b=x=y", "a=2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "2", "b": "x=y"}, got)

	_, err = ParsePairs([]string{"novalue"})
	assert.Error(t, err)

	_, err = ParsePairs([]string{"=v"})
	assert.Error(t, err)
}

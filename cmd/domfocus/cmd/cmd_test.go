package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/domfocus/pkg/dom"
	"github.com/go-drift/domfocus/pkg/errors"
)

func testdata(name string) string {
	return filepath.Join("..", "..", "..", "pkg", "scenario", "testdata", name)
}

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		dom.SetLogger(zerolog.Nop())
		errors.SetHandler(nil)
	})
	t.Chdir(t.TempDir())

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "domfocus version "+Version+" (built "+BuildTime+")\n", out)
}

func TestRunText(t *testing.T) {
	handoff, err := filepath.Abs(testdata("handoff.yaml"))
	require.NoError(t, err)

	out, _, err := execute(t, "run", handoff)
	require.NoError(t, err)
	assert.Equal(t, `PASS hand-off
  1: focus a rel=null
  1: focusin a rel=null
  2: blur a rel=b
  2: focusout a rel=b
  2: focus b rel=a
  2: focusin b rel=a
  active: b
`, out)
}

func TestRunJSON(t *testing.T) {
	blur, err := filepath.Abs(testdata("blur.yaml"))
	require.NoError(t, err)
	inert, err := filepath.Abs(testdata("inert.yaml"))
	require.NoError(t, err)

	out, _, err := execute(t, "run", "--format", "json", blur, inert)
	require.NoError(t, err)

	var reports []struct {
		Name   string `json:"name"`
		Active string `json:"active"`
		Passed bool   `json:"passed"`
		Trace  []struct {
			Type   string `json:"type"`
			Target string `json:"target"`
		} `json:"trace"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "blur", reports[0].Name)
	assert.Equal(t, "", reports[0].Active)
	assert.True(t, reports[0].Passed)
	assert.Len(t, reports[0].Trace, 4)
	assert.Equal(t, "inert", reports[1].Name)
	assert.Equal(t, "a", reports[1].Active)
}

func TestRunYAMLFromEnv(t *testing.T) {
	t.Setenv("DOMFOCUS_OUTPUT", "yaml")
	inert, err := filepath.Abs(testdata("inert.yaml"))
	require.NoError(t, err)

	out, _, err := execute(t, "run", inert)
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "inert", reports[0]["name"])
	assert.Equal(t, true, reports[0]["passed"])
}

func TestRunFailedExpectation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: v1.0.0
name: wrong
document:
  tag: html
  children:
    - {tag: div, id: a}
steps:
  - focus: a
expect:
  active: ""
`), 0o644))

	out, stderr, err := execute(t, "run", "--log-format", "json", path)
	require.Error(t, err)
	assert.Equal(t, "1 of 1 scenarios failed", err.Error())
	assert.Contains(t, out, "FAIL wrong")
	assert.Contains(t, out, `active element: got "a", want ""`)
	assert.Contains(t, stderr, `"message":"dom error"`)
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)

	_, _, err = execute(t, "run", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open scenario")

	_, _, err = execute(t, "run", "--format", "csv", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid output format "csv"`)
}

func TestConfigFlag(t *testing.T) {
	handoff, err := filepath.Abs(testdata("handoff.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "domfocus.yaml"),
		[]byte("log:\n  level: debug\n  format: json\n"), 0o644))

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"run", "--config", filepath.Join(dir, "domfocus.yaml"), handoff})
	t.Cleanup(func() {
		dom.SetLogger(zerolog.Nop())
		errors.SetHandler(nil)
	})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), `"message":"step applied"`)
	assert.Contains(t, stderr.String(), `"message":"focus"`)
}

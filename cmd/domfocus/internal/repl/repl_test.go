package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/domfocus/pkg/errors"
	"github.com/go-drift/domfocus/pkg/scenario"
)

const doc = `
version: v1.0.0
document:
  tag: html
  children:
    - {tag: input, id: a}
    - {tag: input, id: b}
    - tag: div
      id: box
steps: []
`

func newShell(t *testing.T) (*Shell, *scenario.Session, *bytes.Buffer) {
	t.Helper()
	s, err := scenario.Load(strings.NewReader(doc))
	require.NoError(t, err)
	sess, err := scenario.Build(s)
	require.NoError(t, err)
	var out bytes.Buffer
	return New(sess, &out), sess, &out
}

type recordingHandler struct {
	errs []*errors.DOMError
}

func (h *recordingHandler) HandleError(err *errors.DOMError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError)   {}

func TestShell_FocusPrintsNewEvents(t *testing.T) {
	sh, sess, out := newShell(t)

	assert.False(t, sh.Exec("focus a"))
	assert.Equal(t, "  focus a rel=null\n  focusin a rel=null\n", out.String())

	out.Reset()
	sh.Exec("f b")
	assert.Equal(t, strings.Join([]string{
		"  blur a rel=b",
		"  focusout a rel=b",
		"  focus b rel=a",
		"  focusin b rel=a",
		"",
	}, "\n"), out.String())
	assert.Equal(t, "b", sess.Active())
}

func TestShell_Attributes(t *testing.T) {
	sh, sess, out := newShell(t)

	sh.Exec("set box inert")
	el, ok := sess.Element("box")
	require.True(t, ok)
	v, ok := el.GetAttribute("inert")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	sh.Exec(`set a title="hello"`)
	a, _ := sess.Element("a")
	title, _ := a.GetAttribute("title")
	assert.Equal(t, "hello", title)

	sh.Exec("append a box")
	sh.Exec("focus a")
	assert.Empty(t, sess.Active(), "inert ancestor blocks focus")

	sh.Exec("unset box inert")
	sh.Exec("focus a")
	assert.Equal(t, "a", sess.Active())
	assert.Contains(t, out.String(), "focus a rel=null")
}

func TestShell_QueryCommands(t *testing.T) {
	sh, _, out := newShell(t)

	sh.Exec("active")
	assert.Equal(t, "(none)\n", out.String())

	sh.Exec("focus a")
	out.Reset()
	sh.Exec("active")
	assert.Equal(t, "a\n", out.String())

	out.Reset()
	sh.Exec("tree")
	assert.Contains(t, out.String(), `  <input id="a"> [*]`)

	out.Reset()
	sh.Exec("trace")
	assert.Equal(t, "1: focus a rel=null\n1: focusin a rel=null\n", out.String())

	out.Reset()
	sh.Exec("reset")
	sh.Exec("trace")
	assert.Empty(t, out.String())

	sh.Exec("blur a")
	assert.Equal(t, "  blur a rel=null\n  focusout a rel=null\n", out.String())
}

func TestShell_Errors(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	sh, _, out := newShell(t)

	sh.Exec("focus")
	assert.Contains(t, out.String(), "usage: focus <id>")

	out.Reset()
	sh.Exec("focus ghost")
	assert.Contains(t, out.String(), `unknown element id "ghost"`)

	out.Reset()
	sh.Exec("dance")
	assert.Contains(t, out.String(), `unknown command "dance"`)

	out.Reset()
	sh.Exec("set a =x")
	assert.Contains(t, out.String(), "empty name")

	require.NotEmpty(t, h.errs)
	assert.Equal(t, errors.KindScenario, h.errs[0].Kind)
}

func TestShell_Quit(t *testing.T) {
	sh, _, out := newShell(t)
	assert.False(t, sh.Exec("   "))
	assert.False(t, sh.Exec("help"))
	assert.Contains(t, out.String(), "Commands:")
	assert.True(t, sh.Exec("quit"))
	assert.True(t, sh.Exec("Q"))
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		line string
		want scenario.Step
	}{
		{"focus a", scenario.Step{Focus: "a"}},
		{"blur a", scenario.Step{Blur: "a"}},
		{"set a inert", scenario.Step{SetAttribute: &scenario.AttributeStep{Target: "a", Name: "inert"}}},
		{`set a inert=""`, scenario.Step{SetAttribute: &scenario.AttributeStep{Target: "a", Name: "inert"}}},
		{"set a id=x", scenario.Step{SetAttribute: &scenario.AttributeStep{Target: "a", Name: "id", Value: "x"}}},
		{"unset a inert", scenario.Step{RemoveAttribute: &scenario.AttributeStep{Target: "a", Name: "inert"}}},
		{"remove a", scenario.Step{Remove: "a"}},
		{"append a b", scenario.Step{Append: &scenario.AppendStep{Target: "a", Parent: "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			parts := strings.Fields(tt.line)
			step, err := parseStep(parts[0], parts[1:])
			require.NoError(t, err)
			assert.Equal(t, tt.want, step)

			again := strings.Fields(step.String())
			round, err := parseStep(again[0], again[1:])
			require.NoError(t, err)
			assert.Equal(t, step, round)
		})
	}
}

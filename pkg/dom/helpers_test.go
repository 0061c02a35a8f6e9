package dom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/domfocus/pkg/event"
)

// newDocument returns a document with an <html> root.
func newDocument(t *testing.T) (*Document, *Element) {
	t.Helper()
	doc := NewDocument()
	root, err := doc.CreateElement("html")
	require.NoError(t, err)
	_, err = doc.AppendChild(root)
	require.NoError(t, err)
	return doc, root
}

// newElement creates an element with an id and appends it to parent when
// parent is non-nil.
func newElement(t *testing.T, doc *Document, tag, id string, parent Node) *Element {
	t.Helper()
	el, err := doc.CreateElement(tag)
	require.NoError(t, err)
	if id != "" {
		require.NoError(t, el.SetAttribute("id", id))
	}
	if parent != nil {
		_, err = parent.AppendChild(el)
		require.NoError(t, err)
	}
	return el
}

// focusLog records focus-family events seen at their target.
type focusLog struct {
	entries []string
	events  []*event.FocusEvent
}

func (l *focusLog) watch(els ...*Element) {
	for _, el := range els {
		for _, typ := range []string{event.TypeBlur, event.TypeFocusOut, event.TypeFocus, event.TypeFocusIn} {
			el.AddEventListener(typ, func(inst event.Instance) {
				ev := inst.(*event.FocusEvent)
				if ev.Phase() != event.PhaseAtTarget {
					return
				}
				l.entries = append(l.entries, fmt.Sprintf("%s %s rel=%s", ev.Type, name(ev.Target()), name(ev.RelatedTarget)))
				l.events = append(l.events, ev)
			}, event.Options{})
		}
	}
}

func name(t event.Target) string {
	if t == nil {
		return "null"
	}
	if e, ok := t.(*Element); ok {
		return e.ID()
	}
	return fmt.Sprintf("%T", t)
}

package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/domfocus/pkg/dom"
)

// Render writes the session's document tree, one element per line.
// The focused element is marked with "*"; inert and disabled elements are
// flagged.
func (s *Session) Render(w io.Writer) error {
	return render(w, s.doc, 0)
}

func render(w io.Writer, n dom.Node, depth int) error {
	for _, c := range n.ChildNodes() {
		el, ok := c.(*dom.Element)
		if !ok {
			continue
		}
		var flags []string
		if el.MatchesFocus() {
			flags = append(flags, "*")
		}
		if el.HasAttribute("inert") {
			flags = append(flags, "inert")
		}
		if el.Disabled() {
			flags = append(flags, "disabled")
		}
		line := strings.Repeat("  ", depth) + el.String()
		if len(flags) > 0 {
			line += " [" + strings.Join(flags, " ") + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := render(w, el, depth+1); err != nil {
			return err
		}
	}
	return nil
}

package dom

import (
	"strings"
	"weak"

	"github.com/go-drift/domfocus/pkg/event"
)

// disableable lists the form-associated tags that carry a disabled flag.
var disableable = map[string]bool{
	"button":   true,
	"fieldset": true,
	"input":    true,
	"optgroup": true,
	"option":   true,
	"select":   true,
	"textarea": true,
}

// Element is an element node.
type Element struct {
	nodeBase

	localName string
	attrs     []Attr
	proxy     *Proxy
}

func (e *Element) canonical() *Element {
	return e
}

func (e *Element) NodeType() NodeType {
	return ElementNode
}

func (e *Element) NodeName() string {
	return e.TagName()
}

// TagName returns the upper-cased tag name.
func (e *Element) TagName() string {
	return strings.ToUpper(e.localName)
}

// LocalName returns the lower-cased tag name.
func (e *Element) LocalName() string {
	return e.localName
}

// ID returns the value of the id attribute.
func (e *Element) ID() string {
	v, _ := e.GetAttribute("id")
	return v
}

// Disabled reports whether the element is a disabled form control.
// Elements without a disabled flag always report false.
func (e *Element) Disabled() bool {
	return disableable[e.localName] && e.HasAttribute("disabled")
}

// ParentElement returns the parent if it is an element.
func (e *Element) ParentElement() *Element {
	p, _ := e.parent.(*Element)
	return p
}

// Remove detaches the element from its parent, if any.
func (e *Element) Remove() {
	if e.parent != nil {
		_, _ = e.parent.RemoveChild(e)
	}
}

// Focus moves focus to the element. See [Focus].
func (e *Element) Focus() {
	Focus(e)
}

// Blur removes focus from the element. See [Blur].
func (e *Element) Blur() {
	Blur(e)
}

// MatchesFocus reports whether the element is the focused element (:focus).
func (e *Element) MatchesFocus() bool {
	return e.doc.focusState().active == weak.Make(e)
}

// MatchesFocusWithin reports whether the element or a descendant is
// focused (:focus-within).
func (e *Element) MatchesFocusWithin() bool {
	_, ok := e.doc.focusState().within[weak.Make(e)]
	return ok
}

// DispatchEvent dispatches a script-created event at the element.
// Such events are never trusted.
func (e *Element) DispatchEvent(inst event.Instance) (bool, error) {
	return event.DispatchUntrusted(e, inst)
}

// String returns the element's start tag with its id, e.g. <button id="ok">.
func (e *Element) String() string {
	if id := e.ID(); id != "" {
		return "<" + e.localName + ` id="` + id + `">`
	}
	return "<" + e.localName + ">"
}

package dom

import (
	"weak"

	"github.com/google/uuid"

	"github.com/go-drift/domfocus/pkg/errors"
)

// Document is the root of a node tree and holds its focus state.
type Document struct {
	nodeBase

	id string

	// Non-owning: being focused does not keep an element alive.
	activeElement     weak.Pointer[Element]
	nextActiveElement weak.Pointer[Element]

	cache *focusCache
}

// focusCache holds query results derived from the focus state. Like the
// focus fields it does not keep elements alive.
type focusCache struct {
	active weak.Pointer[Element]
	within map[weak.Pointer[Element]]struct{}
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	d := &Document{id: uuid.NewString()}
	d.self = d
	return d
}

// ID returns the document's unique identifier, used to correlate log records.
func (d *Document) ID() string {
	return d.id
}

func (d *Document) NodeType() NodeType {
	return DocumentNode
}

func (d *Document) NodeName() string {
	return "#document"
}

// CreateElement creates a disconnected element owned by d.
func (d *Document) CreateElement(tagName string) (*Element, error) {
	if err := validateName(tagName); err != nil {
		return nil, errors.New("dom.Document.CreateElement", errors.KindInvalidCharacter,
			"invalid tag name %q: %v", tagName, err)
	}
	e := &Element{localName: asciiLower(tagName)}
	e.self = e
	e.doc = d
	return e, nil
}

// CreateDocumentFragment creates an empty fragment owned by d.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	f := &DocumentFragment{}
	f.self = f
	f.doc = d
	return f
}

// DocumentElement returns the document's element child, or nil.
func (d *Document) DocumentElement() *Element {
	for _, c := range d.children {
		if e, ok := c.(*Element); ok {
			return e
		}
	}
	return nil
}

// GetElementByID returns the first connected element, in tree order, whose
// id attribute equals id.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	walk(d, func(n Node) bool {
		if e, ok := n.(*Element); ok && e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// ActiveElement returns the focused element, or nil when nothing is focused
// or the focused element has been garbage collected.
func (d *Document) ActiveElement() *Element {
	return d.activeElement.Value()
}

// HasFocus reports whether an element of d is focused.
func (d *Document) HasFocus() bool {
	return d.ActiveElement() != nil
}

// ClearCache drops every query result derived from focus or tree state.
func (d *Document) ClearCache() {
	d.cache = nil
}

func (d *Document) setActiveElement(e *Element) {
	if e == nil {
		d.activeElement = weak.Pointer[Element]{}
		return
	}
	d.activeElement = weak.Make(e)
}

func (d *Document) pendingElement() *Element {
	return d.nextActiveElement.Value()
}

func (d *Document) setPendingElement(e *Element) {
	if e == nil {
		d.nextActiveElement = weak.Pointer[Element]{}
		return
	}
	d.nextActiveElement = weak.Make(e)
}

// focusState returns the cached focus queries, computing them if needed.
func (d *Document) focusState() *focusCache {
	if d.cache != nil {
		return d.cache
	}
	c := &focusCache{
		active: d.activeElement,
		within: make(map[weak.Pointer[Element]]struct{}),
	}
	if active := d.ActiveElement(); active != nil {
		for n := Node(active); n != nil; n = n.ParentNode() {
			if e, ok := n.(*Element); ok {
				c.within[weak.Make(e)] = struct{}{}
			}
		}
	}
	d.cache = c
	return c
}

// walk visits n's descendants in tree order until visit returns false.
func walk(n Node, visit func(Node) bool) bool {
	for _, c := range n.base().children {
		if !visit(c) || !walk(c, visit) {
			return false
		}
	}
	return true
}

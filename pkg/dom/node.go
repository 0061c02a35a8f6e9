package dom

import (
	"slices"

	"github.com/go-drift/domfocus/pkg/errors"
	"github.com/go-drift/domfocus/pkg/event"
)

// NodeType identifies the kind of a node, using the DOM's numeric values.
type NodeType int

const (
	ElementNode          NodeType = 1
	DocumentNode         NodeType = 9
	DocumentFragmentNode NodeType = 11
)

// Node is implemented by every node in a document tree.
type Node interface {
	event.Target

	NodeType() NodeType
	NodeName() string
	// ParentNode returns the parent, or nil for a root.
	ParentNode() Node
	ChildNodes() []Node
	// OwnerDocument returns the document that created the node, or nil for a Document.
	OwnerDocument() *Document
	// IsConnected reports whether the node's root is a Document.
	IsConnected() bool
	AppendChild(child Node) (Node, error)
	RemoveChild(child Node) (Node, error)
	AddEventListener(typ string, fn event.Listener, opts event.Options) event.ListenerID
	RemoveEventListener(typ string, id event.ListenerID)

	base() *nodeBase
}

// nodeBase holds the tree linkage shared by all node kinds.
type nodeBase struct {
	self      Node
	parent    Node
	children  []Node
	doc       *Document
	listeners event.Listeners
}

func (n *nodeBase) base() *nodeBase {
	return n
}

func (n *nodeBase) ParentNode() Node {
	return n.parent
}

func (n *nodeBase) ChildNodes() []Node {
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *nodeBase) OwnerDocument() *Document {
	return n.doc
}

func (n *nodeBase) IsConnected() bool {
	root := n.self
	for p := root.ParentNode(); p != nil; p = p.ParentNode() {
		root = p
	}
	_, ok := root.(*Document)
	return ok
}

func (n *nodeBase) EventParent() event.Target {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *nodeBase) EventListeners() *event.Listeners {
	return &n.listeners
}

// AddEventListener registers fn for events of type typ on this node.
func (n *nodeBase) AddEventListener(typ string, fn event.Listener, opts event.Options) event.ListenerID {
	return n.listeners.Add(typ, fn, opts)
}

// RemoveEventListener removes a listener registered with AddEventListener.
func (n *nodeBase) RemoveEventListener(typ string, id event.ListenerID) {
	n.listeners.Remove(typ, id)
}

// document returns the document this node belongs to, or the node itself
// when it is a Document.
func (n *nodeBase) document() *Document {
	if d, ok := n.self.(*Document); ok {
		return d
	}
	return n.doc
}

// AppendChild inserts child as the last child of this node. A fragment is
// replaced by its children. A node from another document is adopted.
func (n *nodeBase) AppendChild(child Node) (Node, error) {
	const op = "dom.Node.AppendChild"
	if child == nil {
		return nil, errors.New(op, errors.KindHierarchyRequest, "child is nil")
	}

	switch c := child.(type) {
	case *Document:
		return nil, errors.New(op, errors.KindHierarchyRequest, "a document cannot be inserted")
	case *DocumentFragment:
		if err := n.validateInsert(op, c); err != nil {
			return nil, err
		}
		for _, gc := range c.ChildNodes() {
			n.insert(gc)
		}
		return child, nil
	}

	if err := n.validateInsert(op, child); err != nil {
		return nil, err
	}
	n.insert(child)
	return child, nil
}

// RemoveChild detaches child from this node.
func (n *nodeBase) RemoveChild(child Node) (Node, error) {
	if child == nil || child.ParentNode() != n.self {
		return nil, errors.New("dom.Node.RemoveChild", errors.KindNotFound,
			"%s is not a child of %s", describe(child), describe(n.self))
	}
	n.detach(child)
	if doc := n.document(); doc != nil {
		doc.ClearCache()
	}
	return child, nil
}

// validateInsert checks the hierarchy rules for inserting child, or the
// children of child when it is a fragment.
func (n *nodeBase) validateInsert(op string, child Node) error {
	for p := n.self; p != nil; p = p.ParentNode() {
		if p == child {
			return errors.New(op, errors.KindHierarchyRequest,
				"%s is an inclusive ancestor of %s", describe(child), describe(n.self))
		}
	}

	doc, ok := n.self.(*Document)
	if !ok {
		return nil
	}
	incoming := 0
	if frag, isFrag := child.(*DocumentFragment); isFrag {
		for _, gc := range frag.children {
			if gc.NodeType() == ElementNode {
				incoming++
			}
		}
	} else if child.NodeType() == ElementNode {
		incoming = 1
	}
	if incoming == 0 {
		return nil
	}
	existing := doc.DocumentElement()
	if incoming > 1 || (existing != nil && Node(existing) != child) {
		return errors.New(op, errors.KindHierarchyRequest, "a document can have only one element child")
	}
	return nil
}

// insert moves child under this node, adopting it if needed.
func (n *nodeBase) insert(child Node) {
	cb := child.base()
	oldDoc := cb.doc
	if cb.parent != nil {
		cb.parent.base().detach(child)
	}
	cb.parent = n.self
	n.children = append(n.children, child)

	doc := n.document()
	if doc != oldDoc {
		adopt(child, doc)
		if oldDoc != nil {
			oldDoc.ClearCache()
		}
	}
	if doc != nil {
		doc.ClearCache()
	}
}

// detach removes child from the children list and clears its parent link.
func (n *nodeBase) detach(child Node) {
	for i, c := range n.children {
		if c == child {
			n.children = slices.Delete(n.children, i, i+1)
			break
		}
	}
	child.base().parent = nil
}

// adopt moves node and its descendants to doc.
func adopt(node Node, doc *Document) {
	nb := node.base()
	nb.doc = doc
	for _, c := range nb.children {
		adopt(c, doc)
	}
}

func describe(n Node) string {
	if n == nil {
		return "<nil>"
	}
	if e, ok := n.(*Element); ok {
		return e.String()
	}
	return n.NodeName()
}

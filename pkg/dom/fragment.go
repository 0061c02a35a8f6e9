package dom

// DocumentFragment is a parentless container for nodes. Appending a fragment
// moves its children instead of the fragment itself.
type DocumentFragment struct {
	nodeBase
}

func (f *DocumentFragment) NodeType() NodeType {
	return DocumentFragmentNode
}

func (f *DocumentFragment) NodeName() string {
	return "#document-fragment"
}

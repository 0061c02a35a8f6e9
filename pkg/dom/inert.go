package dom

// attributeReader is the capability the inert walk looks for on each node.
// Documents and fragments do not have it, which ends the walk.
type attributeReader interface {
	GetAttribute(name string) (string, bool)
}

// IsInert reports whether el or any ancestor carries an inert attribute.
// Any value counts, including the empty string. The walk follows parent
// nodes only; it does not cross into a host's tree.
func IsInert(el ElementLike) bool {
	target := resolve(el)
	if target == nil {
		return false
	}
	var current Node = target
	for current != nil {
		attrs, ok := current.(attributeReader)
		if !ok {
			return false
		}
		if _, ok := attrs.GetAttribute("inert"); ok {
			return true
		}
		current = current.ParentNode()
	}
	return false
}

package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInert(t *testing.T) {
	doc, root := newDocument(t)
	body := newElement(t, doc, "body", "body", root)
	section := newElement(t, doc, "section", "section", body)
	leaf := newElement(t, doc, "span", "leaf", section)
	sibling := newElement(t, doc, "span", "sibling", body)

	assert.False(t, IsInert(leaf))

	require.NoError(t, section.SetAttribute("inert", ""))
	assert.True(t, IsInert(section))
	assert.True(t, IsInert(leaf))
	assert.False(t, IsInert(body))
	assert.False(t, IsInert(sibling))

	section.RemoveAttribute("inert")
	require.NoError(t, leaf.SetAttribute("INERT", "yes"))
	assert.True(t, IsInert(leaf), "attribute names are case-insensitive")
	assert.False(t, IsInert(section))
}

func TestIsInert_StopsAtFragment(t *testing.T) {
	doc, _ := newDocument(t)
	frag := doc.CreateDocumentFragment()
	wrapper := newElement(t, doc, "div", "wrapper", frag)
	leaf := newElement(t, doc, "span", "leaf", wrapper)

	assert.False(t, IsInert(leaf))

	require.NoError(t, wrapper.SetAttribute("inert", ""))
	assert.True(t, IsInert(leaf))
}

func TestIsInert_DetachedElement(t *testing.T) {
	doc, _ := newDocument(t)
	el := newElement(t, doc, "div", "el", nil)
	assert.False(t, IsInert(el))

	require.NoError(t, el.SetAttribute("inert", ""))
	assert.True(t, IsInert(el))
}

func TestIsInert_ResolvesProxy(t *testing.T) {
	doc, root := newDocument(t)
	el := newElement(t, doc, "div", "el", root)
	require.NoError(t, root.SetAttribute("inert", ""))

	assert.True(t, IsInert(el.Proxy()))
}

// Package dom provides a headless document object model with platform
// focus semantics.
//
// A [Document] owns a tree of [Element] and [DocumentFragment] nodes and
// tracks which element is focused. Focus moves through [Focus] and [Blur]
// (or the equivalent methods on [Element] and [Proxy]), which follow the
// web platform's transition protocol:
//
//	blur     on the old element (relatedTarget = new element)
//	focusout on the old element (relatedTarget = new element)
//	focus    on the new element (relatedTarget = old element)
//	focusin  on the new element (relatedTarget = old element)
//
// Focus is refused for elements that are disconnected, disabled, or inside
// an inert subtree (see [IsInert]). Refusals are silent no-ops.
//
// # Re-entrancy
//
// Events are dispatched synchronously and listeners may call Focus or Blur
// again from inside a handler. The document only keeps two non-owning
// references, the active element and the hand-off target, and the order in
// which they are written keeps every nested transition consistent. There is
// no "transition in progress" flag.
//
// # Proxies
//
// Scripting surfaces hold a [Proxy] rather than the engine [Element]. Both
// implement [ElementLike]; every focus operation resolves its argument to
// the engine element before comparing or storing it.
//
// A Document and its nodes must be used from a single goroutine.
package dom

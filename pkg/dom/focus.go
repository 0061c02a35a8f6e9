package dom

import (
	"github.com/go-drift/domfocus/pkg/event"
)

// Blur removes focus from el. It is a no-op unless el is the focused
// element of its document, connected, and not disabled.
//
// The blur event reports the element about to receive focus as its related
// target when the blur is part of a Focus hand-off, and nil otherwise.
// Both events are cancelable, but canceling them does not restore focus.
func Blur(el ElementLike) {
	target := resolve(el)
	if target == nil {
		return
	}
	doc := target.OwnerDocument()

	if doc.ActiveElement() != target || !target.IsConnected() || target.Disabled() {
		logger.Trace().
			Str("document", doc.ID()).
			Stringer("element", target).
			Msg("blur ignored")
		return
	}

	relatedTarget := doc.pendingElement()

	doc.setActiveElement(nil)
	doc.ClearCache()

	logger.Debug().
		Str("document", doc.ID()).
		Stringer("element", target).
		Stringer("relatedTarget", stringer(relatedTarget)).
		Msg("blur")

	target.fire(event.TypeBlur, relatedTarget, event.Init{
		Bubbles:    false,
		Composed:   true,
		Cancelable: true,
	})
	target.fire(event.TypeFocusOut, relatedTarget, event.Init{
		Bubbles:    true,
		Composed:   true,
		Cancelable: true,
	})
}

// Focus moves focus to el, blurring the previously focused element first.
// It is a no-op if el is already focused, disconnected, disabled, or inert.
func Focus(el ElementLike) {
	target := resolve(el)
	if target == nil {
		return
	}
	doc := target.OwnerDocument()

	if doc.ActiveElement() == target || !target.IsConnected() || target.Disabled() || IsInert(target) {
		logger.Trace().
			Str("document", doc.ID()).
			Stringer("element", target).
			Msg("focus ignored")
		return
	}

	// Published for Blur so the outgoing element's events name the target.
	doc.setPendingElement(target)

	relatedTarget := doc.ActiveElement()
	if relatedTarget != nil {
		relatedTarget.Blur()
	}

	// Cleared before anything else runs so a later, unrelated Blur does not
	// report a stale target.
	doc.setPendingElement(nil)

	doc.setActiveElement(target)
	doc.ClearCache()

	logger.Debug().
		Str("document", doc.ID()).
		Stringer("element", target).
		Stringer("relatedTarget", stringer(relatedTarget)).
		Msg("focus")

	target.fire(event.TypeFocus, relatedTarget, event.Init{
		Bubbles:  false,
		Composed: true,
	})
	target.fire(event.TypeFocusIn, relatedTarget, event.Init{
		Bubbles:  true,
		Composed: true,
	})
}

// fire dispatches a trusted focus-family event at e.
func (e *Element) fire(typ string, related *Element, init event.Init) {
	ev := event.NewFocusEvent(typ, event.FocusEventInit{
		Init:          init,
		RelatedTarget: asTarget(related),
	})
	ev.IsTrusted = true
	if _, err := event.Dispatch(e, ev); err != nil {
		logger.Error().Err(err).Stringer("element", e).Msg("focus event dispatch failed")
	}
}

// asTarget avoids storing a typed nil in the event's RelatedTarget.
func asTarget(e *Element) event.Target {
	if e == nil {
		return nil
	}
	return e
}

type nilElement struct{}

func (nilElement) String() string { return "null" }

// stringer avoids handing a typed nil to the logger.
func stringer(e *Element) interface{ String() string } {
	if e == nil {
		return nilElement{}
	}
	return e
}

// Package event implements DOM-style events and their synchronous dispatch.
//
// An event travels along a propagation path built from [Target.EventParent]
// links: a capture pass from the root down to the target's parent, the
// at-target pass, and a bubble pass back up when [Event.Bubbles] is set.
// Dispatch is run-to-completion; listeners may re-enter the engine (for
// example to move focus) and may add or remove listeners while an event is
// in flight.
//
// Focus-family events carry the element on the other side of a focus
// transition as [FocusEvent.RelatedTarget]:
//
//	ev := event.NewFocusEvent(event.TypeBlur, event.FocusEventInit{
//	    Init:          event.Init{Composed: true, Cancelable: true},
//	    RelatedTarget: next,
//	})
//	event.Dispatch(el, ev)
package event

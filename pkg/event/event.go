package event

import "time"

// Focus-family event types.
const (
	TypeFocus    = "focus"
	TypeBlur     = "blur"
	TypeFocusIn  = "focusin"
	TypeFocusOut = "focusout"
)

// Phase is the dispatch phase an event is currently in.
type Phase int

const (
	// PhaseNone means the event is not being dispatched.
	PhaseNone Phase = iota
	// PhaseCapturing runs listeners from the root toward the target.
	PhaseCapturing
	// PhaseAtTarget runs listeners registered on the target itself.
	PhaseAtTarget
	// PhaseBubbling runs listeners from the target's parent toward the root.
	PhaseBubbling
)

func (p Phase) String() string {
	switch p {
	case PhaseCapturing:
		return "capturing"
	case PhaseAtTarget:
		return "at-target"
	case PhaseBubbling:
		return "bubbling"
	default:
		return "none"
	}
}

// Target is a node events can be dispatched to.
type Target interface {
	// EventParent returns the next hop of the propagation path, or nil at the root.
	EventParent() Target
	// EventListeners returns the target's listener registry.
	EventListeners() *Listeners
}

// Instance is implemented by every event type and exposes the shared state.
type Instance interface {
	Base() *Event
}

// Init holds the flags common to every event constructor.
type Init struct {
	Bubbles    bool
	Cancelable bool
	Composed   bool
}

// Event is the base event record.
type Event struct {
	Type       string
	Bubbles    bool
	Cancelable bool
	Composed   bool
	// IsTrusted is set for events fired by the engine rather than user code.
	IsTrusted bool
	TimeStamp time.Time

	target             Target
	currentTarget      Target
	phase              Phase
	defaultPrevented   bool
	stopped            bool
	stoppedImmediately bool
	dispatching        bool
}

// New creates an event of the given type.
func New(typ string, init Init) *Event {
	return &Event{
		Type:       typ,
		Bubbles:    init.Bubbles,
		Cancelable: init.Cancelable,
		Composed:   init.Composed,
		TimeStamp:  time.Now(),
	}
}

// Base returns the event itself.
func (e *Event) Base() *Event {
	return e
}

// Target returns the node the event was dispatched to.
func (e *Event) Target() Target {
	return e.target
}

// CurrentTarget returns the node whose listeners are running, or nil outside dispatch.
func (e *Event) CurrentTarget() Target {
	return e.currentTarget
}

// Phase returns the current dispatch phase.
func (e *Event) Phase() Phase {
	return e.phase
}

// DefaultPrevented reports whether a listener canceled the event.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PreventDefault cancels the event. It has no effect on non-cancelable events.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// StopPropagation prevents the event from reaching further targets.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// StopImmediatePropagation also skips the remaining listeners on the current target.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedImmediately = true
}

// FocusEventInit configures a FocusEvent.
type FocusEventInit struct {
	Init
	// RelatedTarget is the node on the other side of the focus transition.
	RelatedTarget Target
}

// FocusEvent is fired when a node gains or loses focus.
type FocusEvent struct {
	Event
	// RelatedTarget is the node losing focus for focus/focusin, or the node
	// gaining focus for blur/focusout. It is nil when there is none.
	RelatedTarget Target
}

// NewFocusEvent creates a focus-family event.
func NewFocusEvent(typ string, init FocusEventInit) *FocusEvent {
	return &FocusEvent{
		Event:         *New(typ, init.Init),
		RelatedTarget: init.RelatedTarget,
	}
}

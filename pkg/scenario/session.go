package scenario

import (
	"fmt"
	"sort"

	"github.com/go-drift/domfocus/pkg/dom"
	"github.com/go-drift/domfocus/pkg/errors"
	"github.com/go-drift/domfocus/pkg/event"
)

// TraceEvent is a focus-family event observed at its target.
type TraceEvent struct {
	Step          int    `json:"step" yaml:"step"`
	Type          string `json:"type" yaml:"type"`
	Target        string `json:"target" yaml:"target"`
	RelatedTarget string `json:"relatedTarget" yaml:"relatedTarget"`
}

// String formats the event as "<type> <target> rel=<related>", using
// "null" when there is no related target.
func (e TraceEvent) String() string {
	rel := e.RelatedTarget
	if rel == "" {
		rel = "null"
	}
	return fmt.Sprintf("%s %s rel=%s", e.Type, e.Target, rel)
}

var focusEvents = []string{
	event.TypeBlur,
	event.TypeFocusOut,
	event.TypeFocus,
	event.TypeFocusIn,
}

// Session is a live document built from a scenario.
type Session struct {
	doc   *dom.Document
	byID  map[string]*dom.Element
	trace []TraceEvent
	step  int
}

// Build creates the document described by s, registers its listeners, and
// starts recording focus events. Steps are not applied.
func Build(s *Scenario) (*Session, error) {
	sess := &Session{
		doc:  dom.NewDocument(),
		byID: make(map[string]*dom.Element),
	}

	root, err := sess.build(s.Document)
	if err != nil {
		return nil, err
	}
	if _, err := sess.doc.AppendChild(root); err != nil {
		return nil, err
	}
	for _, spec := range s.Detached {
		if _, err := sess.build(spec); err != nil {
			return nil, err
		}
	}
	for i, l := range s.Listeners {
		if err := sess.listen(l); err != nil {
			return nil, fmt.Errorf("listener %d: %w", i, err)
		}
	}
	return sess, nil
}

// build creates the element for spec and its subtree.
func (s *Session) build(spec NodeSpec) (*dom.Element, error) {
	el, err := s.doc.CreateElement(spec.Tag)
	if err != nil {
		return nil, err
	}
	if spec.ID != "" {
		if _, dup := s.byID[spec.ID]; dup {
			return nil, errors.New("scenario.Build", errors.KindScenario, "duplicate id %q", spec.ID)
		}
		if err := el.SetAttribute("id", spec.ID); err != nil {
			return nil, err
		}
		s.byID[spec.ID] = el
	}

	names := make([]string, 0, len(spec.Attributes))
	for name := range spec.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := el.SetAttribute(name, spec.Attributes[name]); err != nil {
			return nil, err
		}
	}

	for _, child := range spec.Children {
		c, err := s.build(child)
		if err != nil {
			return nil, err
		}
		if _, err := el.AppendChild(c); err != nil {
			return nil, err
		}
	}

	s.record(el)
	return el, nil
}

// record traces focus events that reach el as their target.
func (s *Session) record(el *dom.Element) {
	for _, typ := range focusEvents {
		el.AddEventListener(typ, func(inst event.Instance) {
			ev, ok := inst.(*event.FocusEvent)
			if !ok || ev.Phase() != event.PhaseAtTarget {
				return
			}
			s.trace = append(s.trace, TraceEvent{
				Step:          s.step,
				Type:          ev.Type,
				Target:        label(ev.Target()),
				RelatedTarget: label(ev.RelatedTarget),
			})
		}, event.Options{})
	}
}

func (s *Session) listen(l ListenerSpec) error {
	target, err := s.lookup(l.Target)
	if err != nil {
		return err
	}
	subject := target
	if l.Subject != "" {
		if subject, err = s.lookup(l.Subject); err != nil {
			return err
		}
	}

	var fn event.Listener
	switch l.Action {
	case ActionFocus:
		fn = func(event.Instance) { subject.Focus() }
	case ActionBlur:
		fn = func(event.Instance) { subject.Blur() }
	case ActionPreventDefault:
		fn = func(inst event.Instance) { inst.Base().PreventDefault() }
	case ActionStopPropagation:
		fn = func(inst event.Instance) { inst.Base().StopPropagation() }
	default:
		return errors.New("scenario.Build", errors.KindScenario, "unknown action %q", l.Action)
	}
	target.AddEventListener(l.Event, fn, event.Options{Once: l.Once, Capture: l.Capture})
	return nil
}

// Apply performs one step.
func (s *Session) Apply(step Step) error {
	s.step++
	switch {
	case step.Focus != "":
		el, err := s.lookup(step.Focus)
		if err != nil {
			return err
		}
		el.Focus()
	case step.Blur != "":
		el, err := s.lookup(step.Blur)
		if err != nil {
			return err
		}
		el.Blur()
	case step.SetAttribute != nil:
		el, err := s.lookup(step.SetAttribute.Target)
		if err != nil {
			return err
		}
		return el.SetAttribute(step.SetAttribute.Name, step.SetAttribute.Value)
	case step.RemoveAttribute != nil:
		el, err := s.lookup(step.RemoveAttribute.Target)
		if err != nil {
			return err
		}
		el.RemoveAttribute(step.RemoveAttribute.Name)
	case step.Remove != "":
		el, err := s.lookup(step.Remove)
		if err != nil {
			return err
		}
		el.Remove()
	case step.Append != nil:
		el, err := s.lookup(step.Append.Target)
		if err != nil {
			return err
		}
		parent, err := s.lookup(step.Append.Parent)
		if err != nil {
			return err
		}
		_, err = parent.AppendChild(el)
		return err
	default:
		return errors.New("scenario.Apply", errors.KindScenario, "empty step")
	}
	return nil
}

func (s *Session) lookup(id string) (*dom.Element, error) {
	el, ok := s.byID[id]
	if !ok {
		return nil, errors.New("scenario.lookup", errors.KindScenario, "unknown element id %q", id)
	}
	return el, nil
}

// Document returns the session's document.
func (s *Session) Document() *dom.Document {
	return s.doc
}

// Element returns the element with the given scenario id.
func (s *Session) Element(id string) (*dom.Element, bool) {
	el, ok := s.byID[id]
	return el, ok
}

// Active returns the label of the focused element, or "" when none.
func (s *Session) Active() string {
	el := s.doc.ActiveElement()
	if el == nil {
		return ""
	}
	return label(el)
}

// Trace returns the events recorded so far.
func (s *Session) Trace() []TraceEvent {
	out := make([]TraceEvent, len(s.trace))
	copy(out, s.trace)
	return out
}

// ResetTrace discards the recorded events.
func (s *Session) ResetTrace() {
	s.trace = nil
}

// label names an element by id, falling back to its tag.
func label(t event.Target) string {
	el, ok := t.(*dom.Element)
	if !ok || el == nil {
		return ""
	}
	if id := el.ID(); id != "" {
		return id
	}
	return el.LocalName()
}

package event

// Listener handles a dispatched event. Focus-family events arrive as *FocusEvent.
type Listener func(ev Instance)

// Options configures a listener registration.
type Options struct {
	// Capture runs the listener during the capture pass instead of the bubble pass.
	Capture bool
	// Once removes the listener before its first invocation.
	Once bool
}

// ListenerID identifies a registration for later removal.
type ListenerID uint64

type registration struct {
	id      ListenerID
	fn      Listener
	opts    Options
	removed bool
}

// Listeners is a per-target listener registry. The zero value is ready to use.
// It is not safe for concurrent use; dispatch is single-threaded.
type Listeners struct {
	byType map[string][]*registration
	nextID ListenerID
}

// Add registers fn for events of type typ.
func (l *Listeners) Add(typ string, fn Listener, opts Options) ListenerID {
	if fn == nil {
		return 0
	}
	if l.byType == nil {
		l.byType = make(map[string][]*registration)
	}
	l.nextID++
	l.byType[typ] = append(l.byType[typ], &registration{
		id:   l.nextID,
		fn:   fn,
		opts: opts,
	})
	return l.nextID
}

// Remove unregisters a listener. Removing an unknown ID is a no-op.
// A listener removed while an event is in flight is not invoked again.
func (l *Listeners) Remove(typ string, id ListenerID) {
	regs := l.byType[typ]
	for i, r := range regs {
		if r.id == id {
			r.removed = true
			l.byType[typ] = append(regs[:i:i], regs[i+1:]...)
			if len(l.byType[typ]) == 0 {
				delete(l.byType, typ)
			}
			return
		}
	}
}

// Has reports whether any listener is registered for typ.
func (l *Listeners) Has(typ string) bool {
	return l != nil && len(l.byType[typ]) > 0
}

// snapshot returns the registrations for typ as of now.
func (l *Listeners) snapshot(typ string) []*registration {
	regs := l.byType[typ]
	if len(regs) == 0 {
		return nil
	}
	out := make([]*registration, len(regs))
	copy(out, regs)
	return out
}

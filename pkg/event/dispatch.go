package event

import (
	"github.com/go-drift/domfocus/pkg/errors"
)

// Dispatch fires ev at target and runs listeners along the propagation path.
// It returns false if a listener canceled a cancelable event.
// Dispatching an event that is already in flight is an InvalidState error.
func Dispatch(target Target, inst Instance) (bool, error) {
	return dispatch(target, inst, false)
}

// DispatchUntrusted is Dispatch for events created by user code. The event
// is marked untrusted only once it is known not to be in flight, so a
// rejected re-dispatch leaves the running event unchanged.
func DispatchUntrusted(target Target, inst Instance) (bool, error) {
	return dispatch(target, inst, true)
}

func dispatch(target Target, inst Instance, untrusted bool) (bool, error) {
	ev := inst.Base()
	if ev.dispatching {
		return false, errors.New("event.Dispatch", errors.KindInvalidState,
			"%q event is already being dispatched", ev.Type)
	}
	if untrusted {
		ev.IsTrusted = false
	}
	ev.dispatching = true
	ev.target = target

	var path []Target
	for t := target.EventParent(); t != nil; t = t.EventParent() {
		path = append(path, t)
	}

	ev.phase = PhaseCapturing
	for i := len(path) - 1; i >= 0 && !ev.stopped; i-- {
		invoke(path[i], inst, true)
	}

	if !ev.stopped {
		ev.phase = PhaseAtTarget
		invoke(target, inst, true)
		if !ev.stopped {
			invoke(target, inst, false)
		}
	}

	if ev.Bubbles {
		ev.phase = PhaseBubbling
		for i := 0; i < len(path) && !ev.stopped; i++ {
			invoke(path[i], inst, false)
		}
	}

	ev.phase = PhaseNone
	ev.currentTarget = nil
	ev.stopped = false
	ev.stoppedImmediately = false
	ev.dispatching = false
	return !ev.defaultPrevented, nil
}

// invoke runs the capture or non-capture listeners registered on t.
func invoke(t Target, inst Instance, capture bool) {
	ev := inst.Base()
	ls := t.EventListeners()
	if ls == nil {
		return
	}
	ev.currentTarget = t
	for _, r := range ls.snapshot(ev.Type) {
		if r.removed || r.opts.Capture != capture {
			continue
		}
		if r.opts.Once {
			ls.Remove(ev.Type, r.id)
		}
		call(r.fn, inst)
		if ev.stoppedImmediately {
			return
		}
	}
}

// call runs a listener, reporting a panic instead of unwinding the dispatch.
func call(fn Listener, inst Instance) {
	defer errors.Recover("event.Dispatch")
	fn(inst)
}

package hostcanvas

import (
	"fmt"
	"slices"
)

// Listener receives dispatched events. A returned error is logged and does not
// stop the remaining listeners.
type Listener interface {
	HandleEvent(ev Event) error
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev Event)

// HandleEvent calls f(ev).
func (f ListenerFunc) HandleEvent(ev Event) error {
	f(ev)
	return nil
}

// ListenerOptions configures a registration.
type ListenerOptions struct {
	// Once removes the listener before its first invocation.
	Once bool
}

// EventTarget is the addEventListener/removeEventListener/dispatchEvent
// contract shared by the window, the document, elements and the canvas.
type EventTarget interface {
	AddEventListener(typ string, l Listener, opts ...ListenerOptions) ListenerHandle
	RemoveEventListener(h ListenerHandle)
	DispatchEvent(ev Event) bool
}

type listenerEntry struct {
	id   uint32
	l    Listener
	once bool
}

// ListenerRegistry maps event type names to ordered listener lists. Every
// dispatch scope and every element owns its own registry.
type ListenerRegistry struct {
	scope  string
	byType map[string][]listenerEntry
	nextID uint32
}

// NewListenerRegistry creates an empty registry. scope names it in logs.
func NewListenerRegistry(scope string) *ListenerRegistry {
	return &ListenerRegistry{scope: scope, byType: make(map[string][]listenerEntry)}
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id  uint32
	typ string
	reg *ListenerRegistry
}

// Remove unregisters the listener. Removing twice is a no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.typ, h.id)
}

// Type returns the event type the handle was registered for.
func (h ListenerHandle) Type() string { return h.typ }

// Add registers l for typ and returns a handle for removal. A nil listener is
// ignored and yields a zero handle.
func (r *ListenerRegistry) Add(typ string, l Listener, opts ...ListenerOptions) ListenerHandle {
	if l == nil {
		return ListenerHandle{}
	}
	var o ListenerOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	r.nextID++
	id := r.nextID
	r.byType[typ] = append(r.byType[typ], listenerEntry{id: id, l: l, once: o.Once})
	return ListenerHandle{id: id, typ: typ, reg: r}
}

// Remove unregisters the listener behind h if h belongs to r.
func (r *ListenerRegistry) Remove(h ListenerHandle) {
	if h.reg != r {
		return
	}
	r.remove(h.typ, h.id)
}

func (r *ListenerRegistry) remove(typ string, id uint32) {
	s := r.byType[typ]
	for i := range s {
		if s[i].id == id {
			s = slices.Delete(s, i, i+1)
			break
		}
	}
	if len(s) == 0 {
		delete(r.byType, typ)
		return
	}
	r.byType[typ] = s
}

func (r *ListenerRegistry) contains(typ string, id uint32) bool {
	for _, e := range r.byType[typ] {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of listeners registered for typ.
func (r *ListenerRegistry) Len(typ string) int {
	return len(r.byType[typ])
}

// Has reports whether any listener is registered for typ.
func (r *ListenerRegistry) Has(typ string) bool {
	return len(r.byType[typ]) > 0
}

// Dispatch delivers ev to every listener registered for its type, in
// registration order, with CurrentTarget set to current. Target is set to
// current unless an earlier scope already set it.
//
// With no listener for the type Dispatch returns false and leaves ev
// untouched. Otherwise it returns false only if a listener canceled the event.
// A failing listener is logged and the remaining listeners still run.
func (r *ListenerRegistry) Dispatch(ev Event, current EventTarget) bool {
	typ := ev.Type()
	entries := r.byType[typ]
	if len(entries) == 0 {
		return false
	}
	// Listeners added during dispatch wait for the next event.
	snapshot := slices.Clone(entries)

	b := ev.base()
	if b.Target == nil {
		b.Target = current
	}
	b.CurrentTarget = current
	b.immediateStopped = false

	for _, e := range snapshot {
		if !r.contains(typ, e.id) {
			continue // removed by an earlier listener
		}
		if e.once {
			r.remove(typ, e.id)
		}
		frameStats.listenersRun++
		if err := invokeListener(e.l, ev); err != nil {
			frameStats.listenerFailures++
			Logger().Warn("listener failed", "err", &ListenerError{Type: typ, Scope: r.scope, Err: err})
		}
		if b.immediateStopped {
			break
		}
	}
	return !b.defaultPrevented
}

// invokeListener runs l, converting a panic into an error.
func invokeListener(l Listener, ev Event) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return l.HandleEvent(ev)
}

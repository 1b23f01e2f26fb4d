package hostcanvas

import (
	"fmt"
	"time"
)

// pointerScopes are the scopes a pointer event is delivered to: the canvas
// for local hit testing, then the window for drag and release tracking.
var pointerScopes = []Scope{ScopeCanvas, ScopeWindow}

// Fanout delivers one event to several independent dispatch scopes.
type Fanout struct {
	env *Environment
}

// NewFanout creates a fan-out over env's scopes.
func NewFanout(env *Environment) *Fanout {
	return &Fanout{env: env}
}

// Dispatch delivers ev to each scope in order. Without scopes, pointer events
// go to the canvas and the window; any other event goes to the window.
// Scopes with no target (an unbound canvas) are skipped.
//
// StopPropagation does not keep the event from the remaining scopes. Target
// keeps the first scope that had listeners; CurrentTarget is nil afterwards.
//
// Dispatch reports whether at least one scope ran listeners and none of them
// canceled the event.
func (f *Fanout) Dispatch(ev Event, scopes ...Scope) bool {
	if len(scopes) == 0 {
		if _, ok := ev.(*PointerEvent); ok {
			scopes = pointerScopes
		} else {
			scopes = []Scope{ScopeWindow}
		}
	}
	start := time.Now()
	handled, canceled := false, false
	for _, s := range scopes {
		target := f.env.Target(s)
		if target == nil {
			continue
		}
		ok, ran := f.dispatchScope(target, s, ev)
		if ran {
			handled = true
			if !ok {
				canceled = true
			}
		}
	}
	ev.base().CurrentTarget = nil
	frameStats.eventsDispatched++
	frameStats.dispatchTime += time.Since(start)
	return handled && !canceled
}

// dispatchScope isolates one scope. A panic escaping a target is logged and
// the remaining scopes still run.
func (f *Fanout) dispatchScope(target EventTarget, s Scope, ev Event) (ok, ran bool) {
	defer func() {
		if p := recover(); p != nil {
			frameStats.listenerFailures++
			Logger().Warn("dispatch failed", "err", &ListenerError{Type: ev.Type(), Scope: s.String(), Err: fmt.Errorf("panic: %v", p)})
			ok, ran = true, true
		}
	}()
	b := ev.base()
	b.CurrentTarget = nil
	ok = target.DispatchEvent(ev)
	// The registry sets CurrentTarget only when it has listeners.
	ran = b.CurrentTarget != nil
	return ok, ran
}

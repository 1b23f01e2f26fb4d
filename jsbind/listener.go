package jsbind

import (
	"slices"

	"github.com/dop251/goja"
	"github.com/phanxgames/hostcanvas"
)

// jsListener adapts a script callback to hostcanvas.Listener. value is the
// original argument, kept so removeEventListener can match it with SameAs.
type jsListener struct {
	b       *Binding
	target  hostcanvas.EventTarget
	typ     string
	fn      goja.Callable
	value   goja.Value
	capture bool
	once    bool
	handle  hostcanvas.ListenerHandle
}

// HandleEvent calls the script callback. A thrown exception is returned as
// the *goja.Exception so the registry logs it and moves on.
func (l *jsListener) HandleEvent(ev hostcanvas.Event) error {
	if l.once {
		l.b.forget(l)
	}
	_, err := l.fn(l.b.targetValue(l.target), l.b.eventValue(ev))
	return err
}

// targetMethods returns addEventListener, removeEventListener and
// dispatchEvent bound to t.
func (b *Binding) targetMethods(t hostcanvas.EventTarget) map[string]func(goja.FunctionCall) goja.Value {
	return map[string]func(goja.FunctionCall) goja.Value{
		"addEventListener": func(call goja.FunctionCall) goja.Value {
			b.addListener(t, call)
			return goja.Undefined()
		},
		"removeEventListener": func(call goja.FunctionCall) goja.Value {
			b.removeListener(t, call)
			return goja.Undefined()
		},
		"dispatchEvent": func(call goja.FunctionCall) goja.Value {
			obj, ok := call.Argument(0).(*goja.Object)
			if !ok {
				panic(b.vm.NewTypeError("dispatchEvent: argument is not an event"))
			}
			ev := b.scriptEventOf(obj)
			t.DispatchEvent(ev)
			return b.vm.ToValue(!ev.DefaultPrevented())
		},
	}
}

// callable accepts a function or an object with a handleEvent method.
func (b *Binding) callable(v goja.Value) (goja.Callable, bool) {
	if fn, ok := goja.AssertFunction(v); ok {
		return fn, true
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	handle, ok := goja.AssertFunction(obj.Get("handleEvent"))
	if !ok {
		return nil, false
	}
	return func(_ goja.Value, args ...goja.Value) (goja.Value, error) {
		return handle(obj, args...)
	}, true
}

// listenerFlags reads the third addEventListener argument, either a boolean
// capture flag or an options object.
func listenerFlags(v goja.Value) (capture, once bool) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return false, false
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return v.ToBoolean(), false
	}
	return truthy(obj.Get("capture")), truthy(obj.Get("once"))
}

func truthy(v goja.Value) bool {
	return v != nil && v.ToBoolean()
}

func (b *Binding) addListener(t hostcanvas.EventTarget, call goja.FunctionCall) {
	if len(call.Arguments) < 2 {
		return
	}
	fn, ok := b.callable(call.Arguments[1])
	if !ok {
		return
	}
	typ := call.Arguments[0].String()
	capture, once := listenerFlags(call.Argument(2))
	if b.find(t, typ, call.Arguments[1], capture) != nil {
		return
	}
	l := &jsListener{
		b:       b,
		target:  t,
		typ:     typ,
		fn:      fn,
		value:   call.Arguments[1],
		capture: capture,
		once:    once,
	}
	l.handle = t.AddEventListener(typ, l, hostcanvas.ListenerOptions{Once: once})
	b.listeners[t] = append(b.listeners[t], l)
}

func (b *Binding) removeListener(t hostcanvas.EventTarget, call goja.FunctionCall) {
	if len(call.Arguments) < 2 {
		return
	}
	capture, _ := listenerFlags(call.Argument(2))
	l := b.find(t, call.Arguments[0].String(), call.Arguments[1], capture)
	if l == nil {
		return
	}
	l.handle.Remove()
	b.forget(l)
}

func (b *Binding) find(t hostcanvas.EventTarget, typ string, v goja.Value, capture bool) *jsListener {
	for _, l := range b.listeners[t] {
		if l.typ == typ && l.capture == capture && l.value.SameAs(v) {
			return l
		}
	}
	return nil
}

func (b *Binding) forget(l *jsListener) {
	s := slices.DeleteFunc(b.listeners[l.target], func(x *jsListener) bool { return x == l })
	if len(s) == 0 {
		delete(b.listeners, l.target)
		return
	}
	b.listeners[l.target] = s
}

// Close removes every listener the script registered from the environment
// and drops queued animation frames. The environment itself outlives the
// binding.
func (b *Binding) Close() {
	for _, ls := range b.listeners {
		for _, l := range ls {
			l.handle.Remove()
		}
	}
	clear(b.listeners)
	b.frames = nil
	clear(b.events)
}

// ListenerCount returns the number of script listeners registered on t.
func (b *Binding) ListenerCount(t hostcanvas.EventTarget) int {
	return len(b.listeners[t])
}

package jsbind

import (
	"strings"

	"github.com/dop251/goja"
	"github.com/phanxgames/hostcanvas"
)

// scriptEvent is an event constructed by a script. It carries the object the
// script holds so listeners receive that same object back.
type scriptEvent struct {
	*hostcanvas.BaseEvent
	obj *goja.Object
}

func (b *Binding) eventConstructor(custom bool) func(goja.ConstructorCall) *goja.Object {
	return func(call goja.ConstructorCall) *goja.Object {
		ev := &scriptEvent{BaseEvent: hostcanvas.NewEvent(call.Argument(0).String()), obj: call.This}
		if opts, ok := call.Argument(1).(*goja.Object); ok {
			ev.Bubbles = truthy(opts.Get("bubbles"))
			ev.Cancelable = truthy(opts.Get("cancelable"))
			if custom {
				if d := opts.Get("detail"); d != nil {
					_ = call.This.Set("detail", d)
				}
			}
		}
		if custom && call.This.Get("detail") == nil {
			_ = call.This.Set("detail", goja.Null())
		}
		ev.TimeStamp = b.now()
		b.decorateEvent(call.This, ev)
		_ = call.This.SetSymbol(b.eventKey, ev)
		return call.This
	}
}

// scriptEventOf recovers the event behind an object passed to dispatchEvent.
// Plain objects are adopted: their type and cancelable members are read and
// the event methods are added to them.
func (b *Binding) scriptEventOf(obj *goja.Object) *scriptEvent {
	if v := obj.GetSymbol(b.eventKey); v != nil {
		if ev, ok := v.Export().(*scriptEvent); ok {
			return ev
		}
	}
	typ := ""
	if v := obj.Get("type"); v != nil {
		typ = v.String()
	}
	ev := &scriptEvent{BaseEvent: hostcanvas.NewEvent(typ), obj: obj}
	ev.Bubbles = truthy(obj.Get("bubbles"))
	ev.Cancelable = truthy(obj.Get("cancelable"))
	ev.TimeStamp = b.now()
	b.decorateEvent(obj, ev)
	_ = obj.SetSymbol(b.eventKey, ev)
	return ev
}

// maxCachedEvents bounds the event cache for hosts that never call RunFrame.
const maxCachedEvents = 1024

// eventValue returns the object a script listener receives for ev.
func (b *Binding) eventValue(ev hostcanvas.Event) *goja.Object {
	if se, ok := ev.(*scriptEvent); ok {
		return se.obj
	}
	if obj, ok := b.events[ev]; ok {
		return obj
	}
	if len(b.events) >= maxCachedEvents {
		clear(b.events)
	}
	obj := b.vm.NewObject()
	b.decorateEvent(obj, ev)
	switch e := ev.(type) {
	case *hostcanvas.PointerEvent:
		b.pointerMembers(obj, e)
	case *hostcanvas.ResizeEvent:
		_ = obj.Set("width", e.Width)
		_ = obj.Set("height", e.Height)
	}
	b.events[ev] = obj
	return obj
}

// decorateEvent adds the Event members shared by every event object. The
// flags are read live from the Go event.
func (b *Binding) decorateEvent(obj *goja.Object, ev hostcanvas.Event) {
	base := hostcanvas.BaseOf(ev)
	_ = obj.Set("type", ev.Type())
	_ = obj.Set("bubbles", base.Bubbles)
	_ = obj.Set("cancelable", base.Cancelable)
	_ = obj.Set("isTrusted", base.IsTrusted)
	_ = obj.Set("timeStamp", millis(base.TimeStamp))
	_ = b.defineGetter(obj, "defaultPrevented", func() any { return base.DefaultPrevented() })
	_ = b.defineGetter(obj, "target", func() any { return b.targetValue(base.Target) })
	_ = b.defineGetter(obj, "currentTarget", func() any { return b.targetValue(base.CurrentTarget) })

	_ = obj.Set("preventDefault", func(goja.FunctionCall) goja.Value {
		base.PreventDefault()
		return goja.Undefined()
	})
	_ = obj.Set("stopPropagation", func(goja.FunctionCall) goja.Value {
		base.StopPropagation()
		return goja.Undefined()
	})
	_ = obj.Set("stopImmediatePropagation", func(goja.FunctionCall) goja.Value {
		base.StopImmediatePropagation()
		return goja.Undefined()
	})
	_ = obj.Set("composedPath", func(goja.FunctionCall) goja.Value {
		return b.vm.NewArray()
	})
}

func (b *Binding) pointerMembers(obj *goja.Object, e *hostcanvas.PointerEvent) {
	pointerType := ""
	if s := e.PointerType.String(); s != "Unknown" {
		pointerType = strings.ToLower(s)
	}
	members := map[string]any{
		"pointerId":          int(e.PointerID),
		"pointerType":        pointerType,
		"isPrimary":          e.IsPrimary,
		"screenX":            e.ScreenX,
		"screenY":            e.ScreenY,
		"clientX":            e.ClientX,
		"clientY":            e.ClientY,
		"x":                  e.X,
		"y":                  e.Y,
		"pageX":              e.PageX,
		"pageY":              e.PageY,
		"offsetX":            e.OffsetX,
		"offsetY":            e.OffsetY,
		"globalX":            e.GlobalX,
		"globalY":            e.GlobalY,
		"movementX":          e.MovementX,
		"movementY":          e.MovementY,
		"button":             int(e.Button),
		"buttons":            int(e.Buttons),
		"pressure":           e.Pressure,
		"width":              e.Width,
		"height":             e.Height,
		"tiltX":              e.TiltX,
		"tiltY":              e.TiltY,
		"twist":              e.Twist,
		"tangentialPressure": e.TangentialPressure,
		"detail":             e.Detail,
		"altKey":             e.AltKey,
		"ctrlKey":            e.CtrlKey,
		"metaKey":            e.MetaKey,
		"shiftKey":           e.ShiftKey,
	}
	for name, v := range members {
		_ = obj.Set(name, v)
	}
	empty := func(goja.FunctionCall) goja.Value { return b.vm.NewArray() }
	_ = obj.Set("getCoalescedEvents", empty)
	_ = obj.Set("getPredictedEvents", empty)
}

package jsbind

import (
	"maps"
	"slices"

	"github.com/dop251/goja"
	"github.com/phanxgames/hostcanvas"
)

// elementValue returns the wrapper for el, creating it on first use. The same
// element always yields the same object.
func (b *Binding) elementValue(el hostcanvas.Element) *goja.Object {
	if obj, ok := b.elements[el]; ok {
		return obj
	}
	h := b.newHostObject(el.Property)
	for name, fn := range b.targetMethods(el) {
		h.method(name, fn)
	}
	h.method("setAttribute", func(call goja.FunctionCall) goja.Value {
		el.SetAttribute(call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})
	h.method("getAttribute", func(call goja.FunctionCall) goja.Value {
		if v, ok := el.GetAttribute(call.Argument(0).String()); ok {
			return b.vm.ToValue(v)
		}
		return goja.Null()
	})
	h.method("hasAttribute", func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(el.HasAttribute(call.Argument(0).String()))
	})
	h.method("removeAttribute", func(call goja.FunctionCall) goja.Value {
		el.RemoveAttribute(call.Argument(0).String())
		return goja.Undefined()
	})
	// Child-list calls return their argument; there is no tree.
	passChild := func(call goja.FunctionCall) goja.Value { return call.Argument(0) }
	h.method("appendChild", passChild)
	h.method("removeChild", passChild)
	h.method("insertBefore", passChild)
	h.method("getBoundingClientRect", func(goja.FunctionCall) goja.Value {
		return b.rectValue(el.GetBoundingClientRect())
	})
	h.method("focus", func(goja.FunctionCall) goja.Value { el.Focus(); return goja.Undefined() })
	h.method("blur", func(goja.FunctionCall) goja.Value { el.Blur(); return goja.Undefined() })
	h.members["children"] = b.vm.NewArray()
	h.members["parentNode"] = goja.Null()

	switch e := el.(type) {
	case *hostcanvas.Canvas:
		b.canvasMembers(h, e)
	case *hostcanvas.MediaElement:
		b.mediaMembers(h, e)
	}

	obj := b.vm.NewDynamicObject(h)
	b.elements[el] = obj
	return obj
}

// elementOf unwraps a value produced by elementValue.
func (b *Binding) elementOf(v goja.Value) (hostcanvas.Element, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	for el, o := range b.elements {
		if o.SameAs(obj) {
			return el, true
		}
	}
	return nil, false
}

func (b *Binding) canvasMembers(h *hostObject, c *hostcanvas.Canvas) {
	h.setters["width"] = func(v goja.Value) { c.SetWidth(int(v.ToInteger())) }
	h.setters["height"] = func(v goja.Value) { c.SetHeight(int(v.ToInteger())) }
	h.method("getContext", func(call goja.FunctionCall) goja.Value {
		s := c.GetContext(hostcanvas.ContextKind(call.Argument(0).String()))
		if s == nil {
			return goja.Null()
		}
		return b.contextValue(c, s)
	})
	h.method("toDataURL", func(call goja.FunctionCall) goja.Value {
		url, err := c.ToDataURL(call.Argument(0).String())
		if err != nil {
			hostcanvas.Logger().Warn("canvas readback unavailable", "err", err)
		}
		return b.vm.ToValue(url)
	})
	h.method("toBlob", func(call goja.FunctionCall) goja.Value {
		_, err := c.ToBlob(call.Argument(1).String())
		hostcanvas.Logger().Warn("canvas readback unavailable", "err", err)
		if fn, ok := goja.AssertFunction(call.Argument(0)); ok {
			if _, err := fn(goja.Undefined(), goja.Null()); err != nil {
				hostcanvas.Logger().Warn("toBlob callback failed", "err", err)
			}
		}
		return goja.Undefined()
	})
	h.method("transferControlToOffscreen", func(goja.FunctionCall) goja.Value {
		panic(b.vm.NewGoError(c.TransferControlToOffscreen()))
	})
	h.method("captureStream", func(call goja.FunctionCall) goja.Value {
		panic(b.vm.NewGoError(c.CaptureStream(call.Argument(0).ToFloat())))
	})
}

func (b *Binding) mediaMembers(h *hostObject, m *hostcanvas.MediaElement) {
	h.method("canPlayType", func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(m.CanPlayType(call.Argument(0).String()))
	})
	h.method("load", func(goja.FunctionCall) goja.Value { m.Load(); return goja.Undefined() })
	h.method("pause", func(goja.FunctionCall) goja.Value { m.Pause(); return goja.Undefined() })
	h.method("play", func(goja.FunctionCall) goja.Value {
		p, _, reject := b.vm.NewPromise()
		_ = reject(b.vm.NewGoError(m.Play()))
		return b.vm.ToValue(p)
	})
}

// contextValue returns the object getContext hands out for s. It is created
// once per surface.
func (b *Binding) contextValue(c *hostcanvas.Canvas, s hostcanvas.Surface) *goja.Object {
	if obj, ok := b.contexts[s]; ok {
		return obj
	}
	ctx := b.vm.NewObject()
	_ = ctx.Set("canvas", b.elementValue(c))
	_ = b.defineGetter(ctx, "drawingBufferWidth", func() any { w, _ := s.DrawingBufferSize(); return w })
	_ = b.defineGetter(ctx, "drawingBufferHeight", func() any { _, h := s.DrawingBufferSize(); return h })
	_ = ctx.Set("isContextLost", func(goja.FunctionCall) goja.Value { return b.vm.ToValue(false) })
	_ = ctx.Set("getContextAttributes", func(goja.FunctionCall) goja.Value { return b.vm.NewObject() })
	if b.opts.DecorateContext != nil {
		b.opts.DecorateContext(b.vm, s, ctx)
	}
	b.contexts[s] = ctx
	return ctx
}

func (b *Binding) rectValue(r hostcanvas.DOMRect) *goja.Object {
	obj := b.vm.NewObject()
	for name, v := range map[string]float64{
		"x":      r.X,
		"y":      r.Y,
		"width":  r.Width,
		"height": r.Height,
		"left":   r.Left(),
		"top":    r.Top(),
		"right":  r.Right(),
		"bottom": r.Bottom(),
	} {
		_ = obj.Set(name, v)
	}
	return obj
}

// styleObject exposes a style bag as a CSSStyleDeclaration-like object.
// Property names are stored as written.
type styleObject struct {
	b       *Binding
	s       *hostcanvas.Style
	methods map[string]goja.Value
}

func (b *Binding) styleValue(s *hostcanvas.Style) *goja.Object {
	if obj, ok := b.styles[s]; ok {
		return obj
	}
	so := &styleObject{b: b, s: s, methods: make(map[string]goja.Value)}
	so.methods["setProperty"] = b.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		s.SetProperty(call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})
	so.methods["getPropertyValue"] = b.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(s.GetPropertyValue(call.Argument(0).String()))
	})
	so.methods["removeProperty"] = b.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(s.RemoveProperty(call.Argument(0).String()))
	})
	obj := b.vm.NewDynamicObject(so)
	b.styles[s] = obj
	return obj
}

func (so *styleObject) Get(key string) goja.Value {
	if m, ok := so.methods[key]; ok {
		return m
	}
	if v := so.s.Get(key); v != "" {
		return so.b.vm.ToValue(v)
	}
	return nil
}

func (so *styleObject) Set(key string, val goja.Value) bool {
	if goja.IsUndefined(val) || goja.IsNull(val) {
		so.s.RemoveProperty(key)
		return true
	}
	so.s.Set(key, val.String())
	return true
}

func (so *styleObject) Has(key string) bool { return so.Get(key) != nil }

func (so *styleObject) Delete(key string) bool {
	so.s.RemoveProperty(key)
	return true
}

func (so *styleObject) Keys() []string {
	return slices.Sorted(maps.Keys(so.s.Props()))
}

var _ goja.DynamicObject = (*styleObject)(nil)

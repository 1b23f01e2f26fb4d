package jsbind

import (
	"fmt"
	"slices"
	"time"

	"github.com/dop251/goja"
	"github.com/phanxgames/hostcanvas"
)

// Options configures Install.
type Options struct {
	// DecorateContext adds host drawing members to the object getContext
	// returns for s. The bare object only carries canvas and the
	// drawing-buffer size.
	DecorateContext func(vm *goja.Runtime, s hostcanvas.Surface, ctx *goja.Object)

	// Clock returns the time reported by performance.now and passed to
	// animation frame callbacks. Defaults to time since Install.
	Clock func() time.Duration
}

// Binding connects one goja runtime to one hostcanvas environment.
type Binding struct {
	vm   *goja.Runtime
	env  *hostcanvas.Environment
	opts Options

	epoch    time.Time
	eventKey *goja.Symbol

	window   *goja.Object
	document *goja.Object
	elements map[hostcanvas.Element]*goja.Object
	styles   map[*hostcanvas.Style]*goja.Object
	contexts map[hostcanvas.Surface]*goja.Object

	listeners map[hostcanvas.EventTarget][]*jsListener

	// Event objects handed to scripts since the last frame, so every
	// listener of one dispatch sees the same object even when a listener
	// triggers a nested dispatch.
	events map[hostcanvas.Event]*goja.Object

	frames      []frameCallback
	nextFrameID int64
}

type frameCallback struct {
	id int64
	fn goja.Callable
}

// Install publishes env into vm and returns the binding that owns the
// wrappers.
func Install(vm *goja.Runtime, env *hostcanvas.Environment, opts Options) (*Binding, error) {
	b := &Binding{
		vm:        vm,
		env:       env,
		opts:      opts,
		epoch:     time.Now(),
		eventKey:  goja.NewSymbol("hostcanvas.event"),
		elements:  make(map[hostcanvas.Element]*goja.Object),
		styles:    make(map[*hostcanvas.Style]*goja.Object),
		contexts:  make(map[hostcanvas.Surface]*goja.Object),
		listeners: make(map[hostcanvas.EventTarget][]*jsListener),
		events:    make(map[hostcanvas.Event]*goja.Object),
	}
	b.window = b.newWindow()
	b.document = b.newDocument()

	global := vm.GlobalObject()
	set := func(name string, v any) error {
		if err := global.Set(name, v); err != nil {
			return fmt.Errorf("install %s: %w", name, err)
		}
		return nil
	}
	globals := []struct {
		name string
		v    any
	}{
		{"window", b.window},
		{"self", b.window},
		{"document", b.document},
		{"navigator", b.toJS(&env.Window.Navigator)},
		{"location", b.toJS(&env.Window.Location)},
		{"performance", b.newPerformance()},
		{"requestAnimationFrame", b.requestAnimationFrame},
		{"cancelAnimationFrame", b.cancelAnimationFrame},
		{"Event", b.eventConstructor(false)},
		{"CustomEvent", b.eventConstructor(true)},
	}
	for _, g := range globals {
		if err := set(g.name, g.v); err != nil {
			return nil, err
		}
	}
	for name, fn := range b.targetMethods(env.Global) {
		if err := set(name, fn); err != nil {
			return nil, err
		}
	}
	w := env.Window
	getters := map[string]func() any{
		"devicePixelRatio": func() any { return w.DevicePixelRatio() },
		"innerWidth":       func() any { return w.InnerWidth() },
		"innerHeight":      func() any { return w.InnerHeight() },
	}
	for name, get := range getters {
		if err := b.defineGetter(global, name, get); err != nil {
			return nil, fmt.Errorf("install %s: %w", name, err)
		}
	}
	return b, nil
}

// Runtime returns the goja runtime the binding was installed into.
func (b *Binding) Runtime() *goja.Runtime { return b.vm }

// RunScript evaluates src as a classic script named name.
func (b *Binding) RunScript(name, src string) error {
	if _, err := b.vm.RunScript(name, src); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// Value returns the script-side object for a hostcanvas value: an element,
// the window, the document or a style bag. Other values go through goja's
// default conversion.
func (b *Binding) Value(v any) goja.Value {
	if jv := b.toJS(v); jv != nil {
		return jv
	}
	return goja.Undefined()
}

func (b *Binding) now() time.Duration {
	if b.opts.Clock != nil {
		return b.opts.Clock()
	}
	return time.Since(b.epoch)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (b *Binding) defineGetter(obj *goja.Object, name string, get func() any) error {
	getter := b.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return b.vm.ToValue(get())
	})
	return obj.DefineAccessorProperty(name, getter, nil, goja.FLAG_TRUE, goja.FLAG_TRUE)
}

func (b *Binding) newPerformance() *goja.Object {
	perf := b.vm.NewObject()
	_ = perf.Set("now", func(goja.FunctionCall) goja.Value {
		return b.vm.ToValue(millis(b.now()))
	})
	return perf
}

func (b *Binding) requestAnimationFrame(call goja.FunctionCall) goja.Value {
	fn, ok := goja.AssertFunction(call.Argument(0))
	if !ok {
		panic(b.vm.NewTypeError("requestAnimationFrame: callback is not a function"))
	}
	b.nextFrameID++
	b.frames = append(b.frames, frameCallback{id: b.nextFrameID, fn: fn})
	return b.vm.ToValue(b.nextFrameID)
}

func (b *Binding) cancelAnimationFrame(call goja.FunctionCall) goja.Value {
	id := call.Argument(0).ToInteger()
	b.frames = slices.DeleteFunc(b.frames, func(f frameCallback) bool { return f.id == id })
	return goja.Undefined()
}

// PendingFrames returns the number of queued animation frame callbacks.
func (b *Binding) PendingFrames() int { return len(b.frames) }

// RunFrame calls every animation frame callback queued before the call with
// the current time in milliseconds. Callbacks requested while running wait
// for the next frame. A throwing callback is logged and the rest still run.
// RunFrame returns the number of callbacks called.
func (b *Binding) RunFrame() int {
	queued := b.frames
	b.frames = nil
	clear(b.events)
	ts := b.vm.ToValue(millis(b.now()))
	for _, f := range queued {
		if _, err := f.fn(goja.Undefined(), ts); err != nil {
			hostcanvas.Logger().Warn("animation frame callback failed", "err", err)
		}
	}
	return len(queued)
}

// toJS converts a value returned by a hostcanvas Property probe. nil maps to
// nil so unknown members read as undefined.
func (b *Binding) toJS(v any) goja.Value {
	switch v := v.(type) {
	case nil:
		return nil
	case goja.Value:
		return v
	case *hostcanvas.Window:
		return b.window
	case *hostcanvas.Document:
		return b.document
	case *hostcanvas.Style:
		return b.styleValue(v)
	case hostcanvas.Element:
		return b.elementValue(v)
	case *hostcanvas.Navigator:
		return b.newNavigator(v)
	case *hostcanvas.Location:
		loc := b.vm.NewObject()
		_ = loc.Set("href", v.Href)
		_ = loc.Set("protocol", v.Protocol)
		return loc
	default:
		return b.vm.ToValue(v)
	}
}

// targetValue returns the script-side object for an event target.
func (b *Binding) targetValue(t hostcanvas.EventTarget) goja.Value {
	switch t := t.(type) {
	case nil:
		return goja.Null()
	case *hostcanvas.Global:
		return b.vm.GlobalObject()
	case *hostcanvas.Window:
		return b.window
	case *hostcanvas.Document:
		return b.document
	case hostcanvas.Element:
		return b.elementValue(t)
	}
	return goja.Null()
}

func (b *Binding) newNavigator(n *hostcanvas.Navigator) *goja.Object {
	h := b.newHostObject(func(name string) any {
		switch name {
		case "userAgent":
			return n.UserAgent
		case "platform":
			return n.Platform
		case "language":
			return n.Language
		case "languages":
			return []string{n.Language}
		case "maxTouchPoints":
			return n.MaxTouchPoints
		case "onLine", "cookieEnabled":
			return true
		}
		return nil
	})
	return b.vm.NewDynamicObject(h)
}

func (b *Binding) newWindow() *goja.Object {
	w := b.env.Window
	h := b.newHostObject(w.Property)
	for name, fn := range b.targetMethods(w) {
		h.method(name, fn)
	}
	h.method("requestAnimationFrame", b.requestAnimationFrame)
	h.method("cancelAnimationFrame", b.cancelAnimationFrame)
	h.method("getComputedStyle", func(call goja.FunctionCall) goja.Value {
		el, ok := b.elementOf(call.Argument(0))
		if !ok {
			panic(b.vm.NewTypeError("getComputedStyle: argument is not an element"))
		}
		return b.styleValue(el.Style())
	})
	h.members["performance"] = b.newPerformance()
	obj := b.vm.NewDynamicObject(h)
	for _, name := range []string{"window", "self", "top", "parent"} {
		h.members[name] = obj
	}
	return obj
}

func (b *Binding) newDocument() *goja.Object {
	d := b.env.Document
	h := b.newHostObject(d.Property)
	for name, fn := range b.targetMethods(d) {
		h.method(name, fn)
	}
	h.method("createElement", func(call goja.FunctionCall) goja.Value {
		return b.elementValue(d.CreateElement(call.Argument(0).String()))
	})
	h.method("createElementNS", func(call goja.FunctionCall) goja.Value {
		return b.elementValue(d.CreateElementNS(call.Argument(0).String(), call.Argument(1).String()))
	})
	h.method("getElementById", func(goja.FunctionCall) goja.Value { return goja.Null() })
	h.method("querySelector", func(goja.FunctionCall) goja.Value { return goja.Null() })
	h.method("querySelectorAll", func(goja.FunctionCall) goja.Value { return b.vm.NewArray() })
	obj := b.vm.NewDynamicObject(h)
	h.members["defaultView"] = b.window
	return obj
}

package hostcanvas

import (
	"github.com/gogpu/gpucontext"
)

// EventSink is the interface for optional forwarding of pointer events out of
// the browser-style dispatch path, for example into an ECS world. The sink
// receives a value copy after the event has been dispatched.
type EventSink interface {
	EmitEvent(ev gpucontext.PointerEvent)
}

// View is the host-facing side of the adapter. The host calls SetLayout when
// the view is laid out, SurfaceReady when its GPU surface exists,
// HandleGesture for every touch callback, Update once per frame and Unmount on
// teardown. All calls happen on the host's UI thread.
type View struct {
	cfg     Config
	env     *Environment
	table   *PointerTable
	builder *EventBuilder
	fanout  *Fanout
	sink    EventSink
	loaders *Loaders

	mounted bool

	// Frozen primary pointer of the gesture in progress.
	primary    PointerID
	hasPrimary bool

	layoutW, layoutH float64

	// Injection state, see inject.go.
	injectQueue []gestureBatch
	injected    []Touch
	runner      *GestureRunner
}

// NewView creates a mounted view. An invalid cfg is logged and replaced by
// DefaultConfig. The process-wide environment is reconfigured in place.
func NewView(cfg Config) *View {
	if err := cfg.Validate(); err != nil {
		Logger().Warn("invalid config, using defaults", "err", err)
		cfg = DefaultConfig()
	}
	env := Env()
	env.configure(cfg)
	table := NewPointerTable()
	return &View{
		cfg:     cfg,
		env:     env,
		table:   table,
		builder: NewEventBuilder(table, cfg.Builder),
		fanout:  NewFanout(env),
		loaders: &Loaders{},
		mounted: true,
	}
}

// Config returns the settings the view was created with.
func (v *View) Config() Config { return v.cfg }

// Env returns the environment the view dispatches into.
func (v *View) Env() *Environment { return v.env }

// Pointers returns the view's pointer table.
func (v *View) Pointers() *PointerTable { return v.table }

// Loaders returns the view's loader registry. Async completions are delivered
// from Update.
func (v *View) Loaders() *Loaders { return v.loaders }

// Mounted reports whether the view still produces events.
func (v *View) Mounted() bool { return v.mounted }

// SetEventSink sets an optional sink receiving every dispatched pointer event.
func (v *View) SetEventSink(s EventSink) { v.sink = s }

// SetLayout records the logical layout size of the view and updates the
// window viewport. The bound canvas, if any, takes the new display size.
func (v *View) SetLayout(width, height float64) {
	v.layoutW, v.layoutH = width, height
	dpr := v.env.Window.DevicePixelRatio()
	if c := Current(); c != nil {
		c.setClientSize(width, height)
		dpr = c.PixelRatio()
	}
	v.env.Window.SetViewport(width, height, dpr)
}

// SurfaceReady binds the host's native surface, sized physW x physH physical
// pixels, as the active context and returns the new canvas. The pixel ratio
// is derived from the layout size when known, otherwise from the config.
//
// SurfaceReady re-arms a view that was unmounted.
func (v *View) SurfaceReady(s Surface, physW, physH int) *Canvas {
	c := Bind(s, physW, physH)
	ratio := v.cfg.DevicePixelRatio
	if v.layoutW > 0 && physW > 0 {
		ratio = float64(physW) / v.layoutW
	}
	lw, lh := v.layoutW, v.layoutH
	if lw <= 0 || lh <= 0 {
		lw, lh = float64(physW)/ratio, float64(physH)/ratio
	}
	c.setClientSize(lw, lh)
	v.env.Window.SetViewport(lw, lh, ratio)
	v.mounted = true
	return c
}

// SurfaceResized updates the bound canvas after the host resized its native
// surface. The canvas keeps its identity; it dispatches resize when its size
// changed. Without a bound canvas it does nothing.
func (v *View) SurfaceResized(physW, physH int) {
	c := Current()
	if c == nil {
		return
	}
	c.setDrawingBuffer(physW, physH)
	lw, lh := v.layoutW, v.layoutH
	if lw <= 0 || lh <= 0 {
		lw, lh = c.ClientSize()
	}
	c.setClientSize(lw, lh)
	c.SetSize(physW, physH)
	v.env.Window.SetViewport(lw, lh, c.PixelRatio())
}

// mapper returns the coordinate mapper for the active canvas.
func (v *View) mapper() CoordMapper {
	ratio := v.env.Window.DevicePixelRatio()
	if c := Current(); c != nil {
		ratio = c.PixelRatio()
	}
	return NewCoordMapper(ratio, 0, 0)
}

// HandleGesture converts one host gesture callback into pointer events, one
// per changed touch in delivery order, and dispatches each to the canvas and
// window scopes. all is the host's full list of current contacts. It returns
// the number of events dispatched; after Unmount it does nothing.
func (v *View) HandleGesture(phase Phase, changed, all []Touch) int {
	if !v.mounted {
		return 0
	}
	m := v.mapper()
	perEvent, ok := PrimaryOf(all)
	if v.cfg.Primary == PrimaryFrozen && !v.hasPrimary && ok && !phase.Releases() {
		v.primary, v.hasPrimary = perEvent, true
	}

	n := 0
	for _, t := range changed {
		primary := ok && t.Identifier == perEvent
		if v.cfg.Primary == PrimaryFrozen && v.hasPrimary {
			primary = t.Identifier == v.primary
		}
		ev := v.builder.Build(t, phase, primary, m)
		v.fanout.Dispatch(ev, pointerScopes...)
		if v.sink != nil {
			v.sink.EmitEvent(ev.GPUEvent())
		}
		n++
	}

	if phase.Releases() && v.table.Len() == 0 {
		v.hasPrimary = false
	}
	if v.cfg.Debug {
		debugCheckPointerCount(v.table, v.cfg.MaxTouchPoints)
	}
	return n
}

// Update runs the per-frame work: queued loader completions, one injected
// gesture batch, the gesture script and debug stats.
func (v *View) Update() {
	v.loaders.Pump()
	if v.runner != nil {
		v.runner.step(v)
	}
	v.processInjected()
	if v.cfg.Debug {
		debugLog(frameStats)
	}
	frameStats = debugStats{}
}

// Unmount tears the view down synchronously: every tracked contact is
// dropped, the active context is cleared and no further events are produced.
// Listener registries are left as they are.
func (v *View) Unmount() {
	v.table.Reset()
	Clear()
	v.mounted = false
	v.hasPrimary = false
	v.injectQueue = nil
	v.injected = nil
}

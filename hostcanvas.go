package hostcanvas

// Touch is one raw contact record delivered by the host gesture system.
// X and Y are in host logical units relative to the view's top-left corner.
type Touch struct {
	Identifier PointerID
	X, Y       float64
}

// Phase is the lifecycle stage of a contact within one continuous touch.
type Phase uint8

const (
	PhaseStart  Phase = iota // contact began
	PhaseMove                // contact moved
	PhaseEnd                 // contact lifted
	PhaseCancel              // host aborted the contact
)

// String returns the lowercase phase name used by gesture scripts.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// EventType returns the pointer event type dispatched for this phase.
func (p Phase) EventType() string {
	switch p {
	case PhaseStart:
		return EventPointerDown
	case PhaseMove:
		return EventPointerMove
	case PhaseEnd:
		return EventPointerUp
	default:
		return EventPointerCancel
	}
}

// Releases reports whether the phase ends the contact.
func (p Phase) Releases() bool {
	return p == PhaseEnd || p == PhaseCancel
}

// Event type names dispatched by this package.
const (
	EventPointerDown   = "pointerdown"
	EventPointerMove   = "pointermove"
	EventPointerUp     = "pointerup"
	EventPointerCancel = "pointercancel"
	EventResize        = "resize"
)

// DOMRect is the rectangle returned by GetBoundingClientRect. The origin is
// the top-left of the view, Y grows downward.
type DOMRect struct {
	X, Y, Width, Height float64
}

func (r DOMRect) Left() float64   { return r.X }
func (r DOMRect) Top() float64    { return r.Y }
func (r DOMRect) Right() float64  { return r.X + r.Width }
func (r DOMRect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r DOMRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Scope is one of the independent listener registries a synthetic event can
// be delivered to.
type Scope uint8

const (
	ScopeGlobal Scope = iota // globalThis-equivalent
	ScopeWindow              // window-equivalent (global drag/release tracking)
	ScopeCanvas              // the active canvas (local hit testing)
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeWindow:
		return "window"
	case ScopeCanvas:
		return "canvas"
	default:
		return "unknown"
	}
}

// ContextKind names a drawing context requested through Canvas.GetContext.
type ContextKind string

const (
	ContextWebGL2            ContextKind = "webgl2"             // primary GPU context
	ContextWebGL             ContextKind = "webgl"              // primary GPU context
	ContextExperimentalWebGL ContextKind = "experimental-webgl" // legacy GPU variant, served with a fallback warning
	Context2D                ContextKind = "2d"                 // raster, unsupported
	ContextBitmapRenderer    ContextKind = "bitmaprenderer"     // raster, unsupported
)

// Surface is the native drawing handle the host hands over once its GPU
// surface is ready. It is what GetContext returns for GPU context kinds.
type Surface interface {
	// DrawingBufferSize returns the physical pixel size of the surface.
	DrawingBufferSize() (width, height int)
	// Present flushes the commands issued this frame to the display.
	Present() error
}

// Snapshotter is implemented by surfaces that can capture their contents for
// scripted visual checks.
type Snapshotter interface {
	Snapshot(label string)
}

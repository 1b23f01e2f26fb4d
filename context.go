package hostcanvas

// activeContext is the process-wide binding between the native surface and
// the canvas the engine renders into. Bind and Clear are its only mutation
// points; both run on the host's UI thread.
type activeContext struct {
	canvas  *Canvas
	surface Surface
	pending *Canvas // placeholder handed out before the first Bind
}

var active activeContext

// Bind attaches s to a canvas of the given physical size, records the pair as
// active and returns the canvas. When the engine already holds an unbound
// placeholder from Document.CreateElement, that placeholder is adopted, so
// its listeners and identity survive; otherwise a fresh canvas is created.
//
// A previous binding is retired: its canvas loses the surface and is no
// longer reachable through Current. Anything built on the previous canvas must
// already be torn down; Bind does not notify.
func Bind(s Surface, width, height int) *Canvas {
	if prev := active.canvas; prev != nil {
		prev.detach()
	}
	c := active.pending
	if c == nil {
		c = NewCanvas(width, height)
	} else {
		c.width, c.height = width, height
		c.clientW, c.clientH = float64(width), float64(height)
	}
	c.setDrawingBuffer(width, height)
	c.attach(s)
	active = activeContext{canvas: c, surface: s}
	return c
}

// placeholder returns the unbound canvas handed out before Bind, creating it
// on first use.
func placeholder(width, height int) *Canvas {
	if active.pending == nil {
		active.pending = NewCanvas(width, height)
	}
	return active.pending
}

// Current returns the active canvas or nil.
func Current() *Canvas {
	return active.canvas
}

// CurrentSurface returns the active native surface or nil.
func CurrentSurface() Surface {
	return active.surface
}

// Clear drops the active binding. The retired canvas keeps its listeners but
// no longer hands out the surface.
func Clear() {
	if active.canvas != nil {
		active.canvas.detach()
	}
	active = activeContext{}
}

package hostcanvas

import "github.com/gogpu/gpucontext"

// Canvas is the single object the rendering engine treats as its canvas
// element. It owns the engine-visible width/height, the physical size of the
// drawing surface, a style bag, and at most one bound native Surface.
//
// The engine maps pointer coordinates by dividing the canvas size by the
// bounding rect size. GetBoundingClientRect therefore reports the physical
// drawing-buffer size so that ratio stays 1; PointerEvent client coordinates
// are produced in the same physical space.
type Canvas struct {
	*BasicElement

	width, height    int     // engine-visible canvas size
	bufW, bufH       int     // physical drawing-buffer size
	clientW, clientH float64 // logical display size
	surface          Surface
}

// NewCanvas creates an unbound canvas. Until a surface is bound GetContext
// returns nil for every kind.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		BasicElement: newBasicElement("canvas"),
		width:        width,
		height:       height,
		bufW:         width,
		bufH:         height,
		clientW:      float64(width),
		clientH:      float64(height),
	}
	c.self = c
	c.listeners.scope = "canvas"
	return c
}

// Width returns the engine-visible width.
func (c *Canvas) Width() int { return c.width }

// Height returns the engine-visible height.
func (c *Canvas) Height() int { return c.height }

// SetWidth changes the width and dispatches resize when it differs.
func (c *Canvas) SetWidth(w int) { c.SetSize(w, c.height) }

// SetHeight changes the height and dispatches resize when it differs.
func (c *Canvas) SetHeight(h int) { c.SetSize(c.width, h) }

// SetSize changes both dimensions and dispatches one resize event when either
// differs.
func (c *Canvas) SetSize(w, h int) {
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.DispatchEvent(newResizeEvent(float64(w), float64(h)))
}

// DrawingBufferSize returns the physical size of the drawing surface. The
// bound surface is authoritative; an unbound canvas reports its last known size.
func (c *Canvas) DrawingBufferSize() (int, int) {
	if c.surface != nil {
		return c.surface.DrawingBufferSize()
	}
	return c.bufW, c.bufH
}

// ClientSize returns the logical display size.
func (c *Canvas) ClientSize() (float64, float64) {
	return c.clientW, c.clientH
}

// PixelRatio returns physical pixels per logical unit, 1 when the logical
// size is unknown.
func (c *Canvas) PixelRatio() float64 {
	bw, _ := c.DrawingBufferSize()
	if c.clientW <= 0 || bw <= 0 {
		return 1
	}
	return float64(bw) / c.clientW
}

func (c *Canvas) setDrawingBuffer(w, h int) {
	c.bufW, c.bufH = w, h
}

func (c *Canvas) setClientSize(w, h float64) {
	c.clientW, c.clientH = w, h
	c.style.SetProperty("width", formatPx(w))
	c.style.SetProperty("height", formatPx(h))
}

// GetBoundingClientRect reports the physical drawing-surface size, not the
// logical display size.
func (c *Canvas) GetBoundingClientRect() DOMRect {
	w, h := c.DrawingBufferSize()
	return DOMRect{Width: float64(w), Height: float64(h)}
}

// Surface returns the bound native surface or nil.
func (c *Canvas) Surface() Surface { return c.surface }

// Bound reports whether a native surface is attached.
func (c *Canvas) Bound() bool { return c.surface != nil }

func (c *Canvas) attach(s Surface) { c.surface = s }
func (c *Canvas) detach()          { c.surface = nil }

// GetContext negotiates a drawing context.
//
//   - webgl2, webgl: the bound surface, or nil with a warning when unbound
//   - experimental-webgl: the same surface as webgl, with a fallback warning
//   - 2d, bitmaprenderer: always nil with a warning; raster contexts are not emulated
//
// GetContext never fails hard; engines probe kinds speculatively.
func (c *Canvas) GetContext(kind ContextKind) Surface {
	switch kind {
	case ContextWebGL2, ContextWebGL:
		if c.surface == nil {
			Logger().Warn("context not ready: no native surface bound", "kind", string(kind))
			return nil
		}
		return c.surface
	case ContextExperimentalWebGL:
		if c.surface == nil {
			Logger().Warn("context not ready: no native surface bound", "kind", string(kind))
			return nil
		}
		Logger().Warn("serving primary GPU context for legacy kind", "kind", string(kind), "served", string(ContextWebGL))
		return c.surface
	case Context2D, ContextBitmapRenderer:
		Logger().Warn("context kind unavailable on this host", "kind", string(kind))
		return nil
	default:
		Logger().Warn("unknown context kind", "kind", string(kind))
		return nil
	}
}

// TransferControlToOffscreen always fails; the surface cannot move to another thread.
func (c *Canvas) TransferControlToOffscreen() error {
	return unsupported("transferControlToOffscreen")
}

// ToDataURL cannot read pixels back. It returns the placeholder "data:,"
// together with an error matching ErrUnsupported.
func (c *Canvas) ToDataURL(mime string) (string, error) {
	return "data:,", unsupported("toDataURL")
}

// ToBlob always fails.
func (c *Canvas) ToBlob(mime string) ([]byte, error) {
	return nil, unsupported("toBlob")
}

// CaptureStream always fails.
func (c *Canvas) CaptureStream(fps float64) error {
	return unsupported("captureStream")
}

// Property extends BasicElement.Property with canvas members.
func (c *Canvas) Property(name string) any {
	switch name {
	case "width":
		return c.width
	case "height":
		return c.height
	case "clientWidth", "offsetWidth":
		return c.clientW
	case "clientHeight", "offsetHeight":
		return c.clientH
	}
	return c.BasicElement.Property(name)
}

// OnPointer registers fn for every pointer event dispatched to this canvas,
// converted to the gpucontext vocabulary.
func (c *Canvas) OnPointer(fn func(gpucontext.PointerEvent)) {
	l := ListenerFunc(func(ev Event) {
		if pe, ok := ev.(*PointerEvent); ok {
			fn(pe.GPUEvent())
		}
	})
	for _, typ := range []string{EventPointerDown, EventPointerMove, EventPointerUp, EventPointerCancel} {
		c.AddEventListener(typ, l)
	}
}

var (
	_ Element                       = (*Canvas)(nil)
	_ gpucontext.PointerEventSource = (*Canvas)(nil)
)

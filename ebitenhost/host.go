package ebitenhost

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/hostcanvas"
)

// MousePointerID is the identifier reported for the mouse when
// Options.MouseAsTouch is set. Ebitengine touch ids are small non-negative
// numbers, so it never collides with a real contact.
const MousePointerID hostcanvas.PointerID = -1

// Engine is the rendering engine driven by the host. Mount is called once the
// canvas is bound, with the post-render extension point the engine renders
// through. Update runs every tick after input was dispatched; Render issues
// the frame's draw commands against the canvas' context.
type Engine interface {
	Mount(canvas *hostcanvas.Canvas, hooks hostcanvas.PostRenderer) error
	Update() error
	Render()
}

// Options configures the host window.
type Options struct {
	Title  string
	Width  int // logical window width
	Height int // logical window height

	// Config configures the adapter. Zero means hostcanvas.DefaultConfig.
	Config *hostcanvas.Config

	// MouseAsTouch reports the left mouse button as a touch contact with
	// MousePointerID, for desktop testing.
	MouseAsTouch bool
	// ShowFPS draws FPS and TPS in the top-left corner.
	ShowFPS bool
	// SnapshotDir receives PNGs from snapshot script steps. Defaults to "snapshots".
	SnapshotDir string
	// Script, when set, is a gesture script replayed from the first frame.
	Script []byte
}

// Host implements ebiten.Game on top of a hostcanvas.View.
type Host struct {
	opts    Options
	view    *hostcanvas.View
	engine  Engine
	surface *Surface
	hooks   hostcanvas.FrameHooks
	tracker contactTracker

	metrics       screenMetrics
	mounted       bool
	mountErr      error
	focused       bool
	touchBuf      []ebiten.TouchID
	removePresent func()
}

// NewHost creates a host for engine. Nothing is bound until the first
// Layout call.
func NewHost(engine Engine, opts Options) (*Host, error) {
	cfg := hostcanvas.DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ebitenhost: %w", err)
	}
	if opts.SnapshotDir == "" {
		opts.SnapshotDir = "snapshots"
	}
	h := &Host{
		opts:    opts,
		view:    hostcanvas.NewView(cfg),
		engine:  engine,
		metrics: newScreenMetrics(0, 0, 1),
		focused: true,
	}
	if len(opts.Script) > 0 {
		runner, err := hostcanvas.LoadGestureScript(opts.Script)
		if err != nil {
			return nil, fmt.Errorf("ebitenhost: %w", err)
		}
		h.view.SetGestureRunner(runner)
	}
	return h, nil
}

// View returns the adapter view driven by the host.
func (h *Host) View() *hostcanvas.View { return h.view }

// Surface returns the native surface, nil before the first Layout.
func (h *Host) Surface() *Surface { return h.surface }

// Update polls input, forwards it as gestures and advances the engine.
func (h *Host) Update() error {
	if h.mountErr != nil {
		return h.mountErr
	}
	focused := ebiten.IsFocused()
	if !focused && h.focused {
		h.deliver(h.tracker.cancelAll())
	}
	h.focused = focused
	if focused {
		h.deliver(h.tracker.diff(h.pollContacts()))
	}
	h.view.Update()
	if !h.mounted {
		return nil
	}
	return h.engine.Update()
}

// pollContacts reads every contact down this tick in host logical units.
func (h *Host) pollContacts() []hostcanvas.Touch {
	h.touchBuf = ebiten.AppendTouchIDs(h.touchBuf[:0])
	cur := make([]hostcanvas.Touch, 0, len(h.touchBuf)+1)
	for _, id := range h.touchBuf {
		x, y := ebiten.TouchPosition(id)
		cur = append(cur, h.touch(hostcanvas.PointerID(id), x, y))
	}
	if h.opts.MouseAsTouch && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		cur = append(cur, h.touch(MousePointerID, x, y))
	}
	return cur
}

// touch converts a screen position, which is in physical pixels because
// Layout returns the physical size, to host logical units.
func (h *Host) touch(id hostcanvas.PointerID, x, y int) hostcanvas.Touch {
	lx, ly := h.metrics.toLogical(x, y)
	return hostcanvas.Touch{Identifier: id, X: lx, Y: ly}
}

func (h *Host) deliver(gs []gesture) {
	for _, g := range gs {
		h.view.HandleGesture(g.phase, g.changed, g.all)
	}
}

// Draw lets the engine render and runs the post-render hooks, which present
// the surface onto screen.
func (h *Host) Draw(screen *ebiten.Image) {
	if !h.mounted {
		return
	}
	h.surface.beginFrame(screen)
	defer h.surface.endFrame()

	h.engine.Render()
	h.hooks.Run()

	if h.opts.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f\nTPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout sizes the screen in physical pixels. The first call creates the
// surface, binds it and mounts the engine; later size changes resize it.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	m := newScreenMetrics(outsideWidth, outsideHeight, deviceScale())
	if h.surface != nil && m == h.metrics {
		return m.physW, m.physH
	}
	h.metrics = m
	h.view.SetLayout(float64(m.logicalW), float64(m.logicalH))

	if h.surface == nil {
		h.surface = newSurface(m.physW, m.physH, h.opts.SnapshotDir)
		h.mount(h.surface, m.physW, m.physH)
		return m.physW, m.physH
	}
	if h.surface.resize(m.physW, m.physH) {
		h.view.SurfaceResized(m.physW, m.physH)
		hostcanvas.Logger().Debug("surface resized", "width", m.physW, "height", m.physH, "scale", m.scale)
	}
	return m.physW, m.physH
}

// mount binds s and installs the present hook before mounting the engine.
func (h *Host) mount(s hostcanvas.Surface, physW, physH int) {
	c := h.view.SurfaceReady(s, physW, physH)
	h.removePresent = hostcanvas.InstallPresentHook(&h.hooks)
	if err := h.engine.Mount(c, &h.hooks); err != nil {
		h.mountErr = fmt.Errorf("ebitenhost: mount engine: %w", err)
		return
	}
	h.mounted = true
}

// Close unmounts the view and uninstalls the present hook. Contacts still
// down are canceled first.
func (h *Host) Close() {
	h.deliver(h.tracker.cancelAll())
	if h.removePresent != nil {
		h.removePresent()
		h.removePresent = nil
	}
	h.view.Unmount()
	h.mounted = false
}

// Size returns the physical screen size.
func (h *Host) Size() (int, int) {
	if h.surface == nil {
		return 0, 0
	}
	return h.surface.DrawingBufferSize()
}

// ScaleFactor returns physical pixels per logical unit.
func (h *Host) ScaleFactor() float64 { return h.metrics.scale }

// RequestRedraw is a no-op; Ebitengine draws every frame.
func (h *Host) RequestRedraw() {}

// Run opens a window and drives engine until the window closes.
func Run(engine Engine, opts Options) error {
	h, err := NewHost(engine, opts)
	if err != nil {
		return err
	}
	defer h.Close()
	if opts.Title != "" {
		ebiten.SetWindowTitle(opts.Title)
	}
	if opts.Width > 0 && opts.Height > 0 {
		ebiten.SetWindowSize(opts.Width, opts.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(h)
}

var (
	_ ebiten.Game               = (*Host)(nil)
	_ gpucontext.WindowProvider = (*Host)(nil)
)

package hostcanvas

import (
	"fmt"
	"slices"
)

// PostRenderer is the rendering engine's end-of-frame extension point.
// Callbacks run after the engine has issued its draw commands for the frame.
type PostRenderer interface {
	AddPostRender(fn func()) (remove func())
}

type hookEntry struct {
	id uint32
	fn func()
}

// FrameHooks is an ordered list of post-render callbacks. Engines written in
// Go can embed it to provide PostRenderer; hosts call Run once per frame after
// drawing.
type FrameHooks struct {
	hooks  []hookEntry
	nextID uint32
}

// AddPostRender appends fn and returns a function removing it. Removing twice
// is a no-op.
func (h *FrameHooks) AddPostRender(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	h.nextID++
	id := h.nextID
	h.hooks = append(h.hooks, hookEntry{id: id, fn: fn})
	return func() {
		h.hooks = slices.DeleteFunc(h.hooks, func(e hookEntry) bool { return e.id == id })
	}
}

// Len returns the number of registered callbacks.
func (h *FrameHooks) Len() int { return len(h.hooks) }

// Run calls every callback in registration order. A panicking callback is
// logged and the rest still run.
func (h *FrameHooks) Run() {
	for _, e := range slices.Clone(h.hooks) {
		runHook(e.fn)
	}
}

func runHook(fn func()) {
	defer func() {
		if p := recover(); p != nil {
			Logger().Warn("post-render hook failed", "err", fmt.Errorf("panic: %v", p))
		}
	}()
	fn()
}

// InstallPresentHook registers Present on the engine's end-of-frame extension
// point and returns the function that uninstalls it.
func InstallPresentHook(r PostRenderer) (remove func()) {
	return r.AddPostRender(Present)
}

// Present flushes the currently bound surface. With nothing bound, as during
// teardown, it does nothing.
func Present() {
	s := CurrentSurface()
	if s == nil {
		return
	}
	if err := s.Present(); err != nil {
		Logger().Error("present failed", "err", err)
	}
}

var _ PostRenderer = (*FrameHooks)(nil)

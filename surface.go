package hostcanvas

import (
	"strings"
	"sync"
)

// Default placeholder canvas size, matching an unsized browser canvas.
const (
	defaultPlaceholderWidth  = 300
	defaultPlaceholderHeight = 150
)

// Environment bundles the browser-style globals the rendering engine expects.
// There is exactly one per process; see Env.
type Environment struct {
	Global   *Global
	Window   *Window
	Document *Document
}

var (
	envOnce sync.Once
	env     *Environment
)

// Env returns the process-wide virtual environment, creating it on first use.
// The same values are returned for the life of the process so listeners the
// engine registers survive re-initialization.
func Env() *Environment {
	envOnce.Do(func() {
		env = newEnvironment()
	})
	return env
}

func newEnvironment() *Environment {
	doc := &Document{
		listeners:         NewListenerRegistry("document"),
		Head:              newBasicElement("head"),
		Body:              newBasicElement("body"),
		DocumentElement:   newBasicElement("html"),
		placeholderWidth:  defaultPlaceholderWidth,
		placeholderHeight: defaultPlaceholderHeight,
	}
	win := &Window{
		listeners: NewListenerRegistry("window"),
		document:  doc,
		dpr:       1,
		Navigator: Navigator{UserAgent: defaultUserAgent, Platform: "hostcanvas", MaxTouchPoints: defaultMaxTouchPoints, Language: "en-US"},
		Location:  Location{Href: "about:blank", Protocol: "about:"},
	}
	glob := &Global{
		listeners: NewListenerRegistry("global"),
		window:    win,
		document:  doc,
	}
	return &Environment{Global: glob, Window: win, Document: doc}
}

// configure applies cfg to the existing singletons without replacing them.
func (e *Environment) configure(cfg Config) {
	e.Window.Navigator.UserAgent = cfg.UserAgent
	e.Window.Navigator.MaxTouchPoints = cfg.MaxTouchPoints
	if cfg.DevicePixelRatio > 0 {
		e.Window.dpr = cfg.DevicePixelRatio
	}
	e.Document.placeholderWidth = cfg.PlaceholderWidth
	e.Document.placeholderHeight = cfg.PlaceholderHeight
}

// Target returns the event target for a dispatch scope. ScopeCanvas resolves
// to the active canvas and is nil when nothing is bound.
func (e *Environment) Target(s Scope) EventTarget {
	switch s {
	case ScopeGlobal:
		return e.Global
	case ScopeWindow:
		return e.Window
	case ScopeCanvas:
		if c := Current(); c != nil {
			return c
		}
	}
	return nil
}

// Navigator carries the user-agent members engines sniff.
type Navigator struct {
	UserAgent      string
	Platform       string
	Language       string
	MaxTouchPoints int
}

// Location is a fixed, non-navigable location.
type Location struct {
	Href     string
	Protocol string
}

// Window is the window-equivalent dispatch scope. Engines register their
// global move and release listeners here to keep dragging after the pointer
// leaves its hit target.
type Window struct {
	listeners *ListenerRegistry
	document  *Document

	Navigator Navigator
	Location  Location

	innerW, innerH float64
	dpr            float64
}

// Document returns the document singleton.
func (w *Window) Document() *Document { return w.document }

// InnerWidth returns the logical viewport width.
func (w *Window) InnerWidth() float64 { return w.innerW }

// InnerHeight returns the logical viewport height.
func (w *Window) InnerHeight() float64 { return w.innerH }

// DevicePixelRatio returns physical pixels per logical unit.
func (w *Window) DevicePixelRatio() float64 { return w.dpr }

// SetViewport records the logical viewport and pixel ratio and dispatches
// resize to the window scope when anything changed.
func (w *Window) SetViewport(width, height, dpr float64) {
	if dpr <= 0 {
		dpr = w.dpr
	}
	if width == w.innerW && height == w.innerH && dpr == w.dpr {
		return
	}
	w.innerW, w.innerH, w.dpr = width, height, dpr
	w.DispatchEvent(newResizeEvent(width, height))
}

func (w *Window) AddEventListener(typ string, l Listener, opts ...ListenerOptions) ListenerHandle {
	return w.listeners.Add(typ, l, opts...)
}

func (w *Window) RemoveEventListener(h ListenerHandle) { w.listeners.Remove(h) }

func (w *Window) DispatchEvent(ev Event) bool { return w.listeners.Dispatch(ev, w) }

// Property answers speculative member probes on the window.
func (w *Window) Property(name string) any {
	switch name {
	case "innerWidth":
		return w.innerW
	case "innerHeight":
		return w.innerH
	case "devicePixelRatio":
		return w.dpr
	case "document":
		return w.document
	case "navigator":
		return &w.Navigator
	case "location":
		return &w.Location
	}
	return nil
}

// Document is the document singleton. It creates elements and answers
// queries; it holds no tree.
type Document struct {
	listeners *ListenerRegistry

	Head            *BasicElement
	Body            *BasicElement
	DocumentElement *BasicElement

	placeholderWidth  int
	placeholderHeight int
}

// CreateElement returns a structural stand-in for tag. For "canvas" it
// returns the active canvas when one is bound, otherwise a shared placeholder
// whose GetContext fails until Bind adopts it.
func (d *Document) CreateElement(tag string) Element {
	switch strings.ToLower(tag) {
	case "canvas":
		if c := Current(); c != nil {
			return c
		}
		return placeholder(d.placeholderWidth, d.placeholderHeight)
	case "audio", "video":
		return newMediaElement(tag)
	default:
		return newBasicElement(tag)
	}
}

// CreateElementNS ignores the namespace.
func (d *Document) CreateElementNS(ns, tag string) Element {
	return d.CreateElement(tag)
}

// GetElementByID always returns nil.
func (d *Document) GetElementByID(id string) Element { return nil }

// QuerySelector always returns nil.
func (d *Document) QuerySelector(sel string) Element { return nil }

// QuerySelectorAll always returns an empty list.
func (d *Document) QuerySelectorAll(sel string) []Element { return nil }

// ReadyState is always "complete".
func (d *Document) ReadyState() string { return "complete" }

// VisibilityState is always "visible".
func (d *Document) VisibilityState() string { return "visible" }

func (d *Document) AddEventListener(typ string, l Listener, opts ...ListenerOptions) ListenerHandle {
	return d.listeners.Add(typ, l, opts...)
}

func (d *Document) RemoveEventListener(h ListenerHandle) { d.listeners.Remove(h) }

func (d *Document) DispatchEvent(ev Event) bool { return d.listeners.Dispatch(ev, d) }

// Property answers speculative member probes on the document.
func (d *Document) Property(name string) any {
	switch name {
	case "body":
		return d.Body
	case "head":
		return d.Head
	case "documentElement":
		return d.DocumentElement
	case "readyState":
		return d.ReadyState()
	case "visibilityState":
		return d.VisibilityState()
	case "hidden":
		return false
	}
	return nil
}

// Global is the globalThis-equivalent dispatch scope.
type Global struct {
	listeners *ListenerRegistry
	window    *Window
	document  *Document
}

// Window returns the window singleton.
func (g *Global) Window() *Window { return g.window }

// Document returns the document singleton.
func (g *Global) Document() *Document { return g.document }

func (g *Global) AddEventListener(typ string, l Listener, opts ...ListenerOptions) ListenerHandle {
	return g.listeners.Add(typ, l, opts...)
}

func (g *Global) RemoveEventListener(h ListenerHandle) { g.listeners.Remove(h) }

func (g *Global) DispatchEvent(ev Event) bool { return g.listeners.Dispatch(ev, g) }

var (
	_ EventTarget = (*Window)(nil)
	_ EventTarget = (*Document)(nil)
	_ EventTarget = (*Global)(nil)
)

package hostcanvas

import "strings"

// Element lists every member the rendering engine probes on a DOM element.
// Attribute and child-list members are accepted and ignored; there is no
// DOM tree behind them.
type Element interface {
	EventTarget

	TagName() string
	Style() *Style

	SetAttribute(name, value string)
	GetAttribute(name string) (string, bool)
	HasAttribute(name string) bool
	RemoveAttribute(name string)

	AppendChild(child Element) Element
	RemoveChild(child Element) Element
	InsertBefore(child, ref Element) Element
	Children() []Element
	ParentNode() Element

	GetBoundingClientRect() DOMRect
	Focus()
	Blur()

	// Property answers a speculative member probe. Unknown names return nil.
	Property(name string) any
}

// BasicElement is the structural stand-in returned for ordinary tags.
type BasicElement struct {
	tag       string
	style     *Style
	listeners *ListenerRegistry
	self      Element // outermost value, used as event target
}

func newBasicElement(tag string) *BasicElement {
	e := &BasicElement{
		tag:       strings.ToLower(tag),
		style:     newStyle(),
		listeners: NewListenerRegistry("element:" + strings.ToLower(tag)),
	}
	e.self = e
	return e
}

// TagName returns the upper-case tag name, as browsers report it.
func (e *BasicElement) TagName() string { return strings.ToUpper(e.tag) }

// Style returns the element's style bag.
func (e *BasicElement) Style() *Style { return e.style }

func (e *BasicElement) SetAttribute(name, value string)         {}
func (e *BasicElement) GetAttribute(name string) (string, bool) { return "", false }
func (e *BasicElement) HasAttribute(name string) bool           { return false }
func (e *BasicElement) RemoveAttribute(name string)             {}

// AppendChild returns child unchanged; nothing is attached.
func (e *BasicElement) AppendChild(child Element) Element { return child }

// RemoveChild returns child unchanged.
func (e *BasicElement) RemoveChild(child Element) Element { return child }

// InsertBefore returns child unchanged.
func (e *BasicElement) InsertBefore(child, ref Element) Element { return child }

// Children is always empty.
func (e *BasicElement) Children() []Element { return nil }

// ParentNode is always nil.
func (e *BasicElement) ParentNode() Element { return nil }

// GetBoundingClientRect reports a zero-size rectangle.
func (e *BasicElement) GetBoundingClientRect() DOMRect { return DOMRect{} }

func (e *BasicElement) Focus() {}
func (e *BasicElement) Blur()  {}

// Property answers the members engines read directly off an element.
func (e *BasicElement) Property(name string) any {
	switch name {
	case "tagName", "nodeName":
		return e.TagName()
	case "nodeType":
		return 1
	case "style":
		return e.style
	case "clientWidth", "clientHeight", "offsetWidth", "offsetHeight", "scrollLeft", "scrollTop":
		return 0
	}
	return nil
}

// AddEventListener registers l on this element's private registry.
func (e *BasicElement) AddEventListener(typ string, l Listener, opts ...ListenerOptions) ListenerHandle {
	return e.listeners.Add(typ, l, opts...)
}

// RemoveEventListener unregisters a listener added to this element.
func (e *BasicElement) RemoveEventListener(h ListenerHandle) {
	e.listeners.Remove(h)
}

// DispatchEvent delivers ev to this element's listeners.
func (e *BasicElement) DispatchEvent(ev Event) bool {
	return e.listeners.Dispatch(ev, e.self)
}

// CanPlayUnsupported is the capability-probe answer for every media type.
const CanPlayUnsupported = ""

// MediaElement stands in for audio and video tags. It exists so feature
// detection can call CanPlayType without failing.
type MediaElement struct {
	*BasicElement
}

func newMediaElement(tag string) *MediaElement {
	m := &MediaElement{BasicElement: newBasicElement(tag)}
	m.self = m
	return m
}

// CanPlayType reports that no media type is playable.
func (m *MediaElement) CanPlayType(mime string) string { return CanPlayUnsupported }

// Load is a no-op.
func (m *MediaElement) Load() {}

// Play always fails; the host has no media pipeline here.
func (m *MediaElement) Play() error { return unsupported("media playback") }

// Pause is a no-op.
func (m *MediaElement) Pause() {}

// Property extends BasicElement.Property with media members.
func (m *MediaElement) Property(name string) any {
	switch name {
	case "paused":
		return true
	case "readyState", "duration", "currentTime":
		return 0
	}
	return m.BasicElement.Property(name)
}

var (
	_ Element = (*BasicElement)(nil)
	_ Element = (*MediaElement)(nil)
)

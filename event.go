package hostcanvas

import (
	"time"

	"github.com/gogpu/gpucontext"
)

// Event is a value delivered through an EventTarget. It is implemented by
// *BaseEvent and by every type that embeds BaseEvent.
type Event interface {
	Type() string
	base() *BaseEvent
}

// BaseEvent carries the members every dispatched event has.
type BaseEvent struct {
	EventType     string
	Target        EventTarget
	CurrentTarget EventTarget
	TimeStamp     time.Duration
	Bubbles       bool
	Cancelable    bool
	IsTrusted     bool

	defaultPrevented   bool
	propagationStopped bool
	immediateStopped   bool
}

// NewEvent creates a plain event of the given type, for engines that dispatch
// their own notifications through the virtual surface.
func NewEvent(typ string) *BaseEvent {
	return &BaseEvent{EventType: typ}
}

// Type returns the event type name.
func (e *BaseEvent) Type() string { return e.EventType }

func (e *BaseEvent) base() *BaseEvent { return e }

// BaseOf returns the BaseEvent embedded in ev.
func BaseOf(ev Event) *BaseEvent { return ev.base() }

// PreventDefault marks a cancelable event as canceled.
func (e *BaseEvent) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called on a cancelable event.
func (e *BaseEvent) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation is recorded but does not keep the event from reaching the
// other dispatch scopes; scopes are siblings, not ancestors.
func (e *BaseEvent) StopPropagation() { e.propagationStopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *BaseEvent) PropagationStopped() bool { return e.propagationStopped }

// StopImmediatePropagation skips the remaining listeners of the registry
// currently dispatching the event.
func (e *BaseEvent) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediateStopped = true
}

// ResizeEvent is dispatched when a canvas or the window changes size.
type ResizeEvent struct {
	BaseEvent
	Width, Height float64
}

func newResizeEvent(w, h float64) *ResizeEvent {
	return &ResizeEvent{BaseEvent: BaseEvent{EventType: EventResize}, Width: w, Height: h}
}

// PointerEvent is the synthetic pointer event built from one host touch and
// one gesture phase. It is never retained past its dispatch call.
//
// Coordinates are carried in three spaces:
//   - ScreenX/ScreenY: the raw host logical coordinate
//   - ClientX/ClientY (and X/Y, PageX/PageY, OffsetX/OffsetY): bounding-rect
//     space, which is the physical size of the drawing surface
//   - GlobalX/GlobalY: engine space, where one host logical unit is one unit
type PointerEvent struct {
	BaseEvent

	PointerID   PointerID
	PointerType gpucontext.PointerType
	IsPrimary   bool
	Phase       Phase

	ScreenX, ScreenY     float64
	ClientX, ClientY     float64
	X, Y                 float64
	PageX, PageY         float64
	OffsetX, OffsetY     float64
	GlobalX, GlobalY     float64
	MovementX, MovementY float64

	Button   gpucontext.Button
	Buttons  gpucontext.Buttons
	Pressure float32

	Width, Height      float32 // contact geometry
	TiltX, TiltY       float32
	Twist              float32
	TangentialPressure float32
	Detail             int

	AltKey, CtrlKey, MetaKey, ShiftKey bool
}

// GetCoalescedEvents always returns an empty list; the host does not batch
// sub-frame samples.
func (e *PointerEvent) GetCoalescedEvents() []*PointerEvent { return nil }

// GetPredictedEvents always returns an empty list.
func (e *PointerEvent) GetPredictedEvents() []*PointerEvent { return nil }

// GPUEvent converts the event into the gpucontext pointer vocabulary, using
// engine-space coordinates.
func (e *PointerEvent) GPUEvent() gpucontext.PointerEvent {
	return gpucontext.PointerEvent{
		Type:        gpuEventType(e.Phase),
		PointerID:   int(e.PointerID),
		X:           e.GlobalX,
		Y:           e.GlobalY,
		Pressure:    e.Pressure,
		TiltX:       e.TiltX,
		TiltY:       e.TiltY,
		Twist:       e.Twist,
		Width:       e.Width,
		Height:      e.Height,
		PointerType: e.PointerType,
		IsPrimary:   e.IsPrimary,
		Button:      e.Button,
		Buttons:     e.Buttons,
		Timestamp:   e.TimeStamp,
	}
}

func gpuEventType(p Phase) gpucontext.PointerEventType {
	switch p {
	case PhaseStart:
		return gpucontext.PointerDown
	case PhaseMove:
		return gpucontext.PointerMove
	case PhaseEnd:
		return gpucontext.PointerUp
	default:
		return gpucontext.PointerCancel
	}
}

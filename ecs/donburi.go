package ecs

import (
	"github.com/gogpu/gpucontext"
	"github.com/phanxgames/hostcanvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PointerEventType is the Donburi event type for dispatched pointer events.
// Coordinates are in engine space.
var PointerEventType = events.NewEventType[gpucontext.PointerEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) hostcanvas.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(ev gpucontext.PointerEvent) {
	PointerEventType.Publish(s.world, ev)
}

// Package ecs forwards hostcanvas pointer events into a Donburi world.
//
// [NewDonburiSink] returns a [hostcanvas.EventSink] that publishes every
// dispatched pointer event to [PointerEventType]. Systems subscribe to it and
// drain the queue with ProcessEvents:
//
//	sink := ecs.NewDonburiSink(world)
//	view.SetEventSink(sink)
//	ecs.PointerEventType.Subscribe(world, onPointer)
//
// Events are queued, not delivered during dispatch, so listener ordering in
// the virtual environment is unaffected.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

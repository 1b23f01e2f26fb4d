// Package hostcanvas lets a rendering engine written against a browser-style
// environment run on a host that only offers a native GPU surface and raw
// multi-touch callbacks.
//
// It provides a minimal virtual document, window and canvas, turns host touch
// gestures into fully populated pointer events, and binds the host's drawing
// surface to the single canvas the engine renders into.
//
// # Quick start
//
// The simplest way to get started is the Ebitengine host in
// hostcanvas/ebitenhost, which opens a window, forwards touches and presents
// every frame:
//
//	err := ebitenhost.Run(engine, ebitenhost.Options{
//		Title: "My Engine", Width: 640, Height: 480,
//	})
//
// For another host, drive a [View] yourself:
//
//	view := hostcanvas.NewView(hostcanvas.DefaultConfig())
//	view.SetLayout(360, 640)                  // logical layout size
//	canvas := view.SurfaceReady(surf, 1080, 1920) // physical surface size
//	remove := hostcanvas.InstallPresentHook(hooks)
//	// per touch callback:
//	view.HandleGesture(hostcanvas.PhaseMove, changed, all)
//	// per frame:
//	view.Update()
//
// # Coordinate spaces
//
// Host touches arrive in host logical units. Every [PointerEvent] carries the
// position three ways: ScreenX/ScreenY is the raw logical position,
// ClientX/ClientY is the physical drawing-surface position (the space
// [Canvas.GetBoundingClientRect] reports), and GlobalX/GlobalY is engine
// space, where one logical unit is one unit.
//
// # Dispatch
//
// Pointer events go to the canvas listeners first and then to the window
// listeners, so an engine tracking a drag on the window keeps receiving moves
// after the finger leaves its hit target. Listener failures are logged
// through [Logger] and never stop the other listeners.
//
// # Related packages
//
// hostcanvas/jsbind exposes the environment to JavaScript running in [goja].
// hostcanvas/ecs publishes pointer events into a [Donburi] world.
//
// [goja]: https://github.com/dop251/goja
// [Donburi]: https://github.com/yohamta/donburi
package hostcanvas

// Package ebitenhost runs a browser-style rendering engine on [Ebitengine]
// through the hostcanvas adapter.
//
// Ebitengine plays the part of the native host: the offscreen image the
// engine draws into is the native surface, the window's touch and mouse state
// is diffed into gesture callbacks, and the frame is presented onto the
// screen from the engine's post-render hook.
//
//	err := ebitenhost.Run(engine, ebitenhost.Options{
//		Title: "Engine", Width: 390, Height: 844,
//	})
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost

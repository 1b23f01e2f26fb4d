// Package jsbind exposes the hostcanvas virtual environment to JavaScript
// running in a goja runtime.
//
// Install publishes window, document, navigator and the event-target methods
// as globals. Objects handed to scripts are thin wrappers over the hostcanvas
// values, so listeners a script registers with addEventListener land in the
// same registries the pointer fan-out dispatches to:
//
//	vm := goja.New()
//	b, err := jsbind.Install(vm, hostcanvas.Env(), jsbind.Options{})
//	if err != nil {
//		return err
//	}
//	err = b.RunScript("engine.js", src)
//
// A listener that throws is reported through the hostcanvas logger and the
// remaining listeners still run. Members the environment does not know read
// as undefined.
//
// The binding is not safe for concurrent use. Drive it from the goroutine that
// owns the runtime, which is the host's UI thread.
package jsbind

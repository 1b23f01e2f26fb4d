package hostcanvas

import "testing"

func TestBindTwiceRetiresFirst(t *testing.T) {
	resetGlobals(t)
	s1 := &fakeSurface{w: 100, h: 100}
	s2 := &fakeSurface{w: 200, h: 200}

	first := Bind(s1, 100, 100)
	if Current() != first || CurrentSurface() != s1 {
		t.Fatal("first bind not active")
	}

	second := Bind(s2, 200, 200)
	if Current() == first {
		t.Error("Current still returns the first canvas")
	}
	if Current() != second || CurrentSurface() != s2 {
		t.Error("second bind not active")
	}
	if first.Bound() || first.GetContext(ContextWebGL2) != nil {
		t.Error("first canvas still hands out its surface")
	}
}

func TestClear(t *testing.T) {
	resetGlobals(t)
	c := Bind(&fakeSurface{w: 1, h: 1}, 1, 1)
	Clear()
	if Current() != nil || CurrentSurface() != nil {
		t.Error("Clear left a binding")
	}
	if c.Surface() != nil {
		t.Error("cleared canvas keeps its surface")
	}
	Clear() // idempotent
}

func TestCreateElementCanvasBeforeAndAfterBind(t *testing.T) {
	resetGlobals(t)
	doc := Env().Document

	placeholder, ok := doc.CreateElement("canvas").(*Canvas)
	if !ok {
		t.Fatal("createElement(canvas) did not return a *Canvas")
	}
	if placeholder.GetContext(ContextWebGL2) != nil {
		t.Error("placeholder handed out a context")
	}
	if placeholder.Width() != defaultPlaceholderWidth || placeholder.Height() != defaultPlaceholderHeight {
		t.Errorf("placeholder size = %dx%d", placeholder.Width(), placeholder.Height())
	}

	s := &fakeSurface{w: 640, h: 480}
	c := Bind(s, 640, 480)
	if doc.CreateElement("CANVAS") != Element(c) {
		t.Error("createElement(canvas) does not return the active canvas")
	}
	if c.GetContext(ContextWebGL) != s {
		t.Error("active canvas does not hand out its surface")
	}
}

func TestBindAdoptsPlaceholder(t *testing.T) {
	resetGlobals(t)
	doc := Env().Document

	placeholder := doc.CreateElement("canvas").(*Canvas)
	if doc.CreateElement("canvas") != Element(placeholder) {
		t.Fatal("second createElement(canvas) before bind returned a new canvas")
	}
	resized := 0
	placeholder.AddEventListener(EventResize, ListenerFunc(func(ev Event) { resized++ }))

	s := &fakeSurface{w: 640, h: 480}
	c := Bind(s, 640, 480)
	if c != placeholder {
		t.Fatal("Bind did not adopt the placeholder")
	}
	if placeholder.GetContext(ContextWebGL2) != s {
		t.Error("placeholder does not hand out the surface after bind")
	}

	placeholder.SetWidth(1280)
	if resized != 1 {
		t.Errorf("resize listener ran %d times, want 1", resized)
	}
	if r := placeholder.GetBoundingClientRect(); r.Width != 640 || r.Height != 480 {
		t.Errorf("rect = %vx%v, want 640x480", r.Width, r.Height)
	}

	Clear()
	if doc.CreateElement("canvas") == Element(placeholder) {
		t.Error("placeholder survived Clear")
	}
}

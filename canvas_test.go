package hostcanvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestBoundingRectIsPhysicalAfterResize(t *testing.T) {
	resetGlobals(t)
	s := &fakeSurface{w: 800, h: 600}
	c := Bind(s, 800, 600)
	c.setClientSize(400, 300)

	steps := []struct{ w, h int }{{800, 600}, {1024, 768}, {300, 150}}
	for _, st := range steps {
		s.w, s.h = st.w, st.h
		c.SetSize(st.w, st.h)
		r := c.GetBoundingClientRect()
		if r.Width != float64(st.w) || r.Height != float64(st.h) {
			t.Errorf("rect = %vx%v, want physical %dx%d", r.Width, r.Height, st.w, st.h)
		}
	}
}

func TestCanvasBufferRectRatioIsOne(t *testing.T) {
	resetGlobals(t)
	c := Bind(&fakeSurface{w: 1170, h: 2532}, 1170, 2532)
	c.setClientSize(390, 844)
	r := c.GetBoundingClientRect()
	if float64(c.Width())/r.Width != 1 || float64(c.Height())/r.Height != 1 {
		t.Errorf("canvas/rect ratio = %v, %v", float64(c.Width())/r.Width, float64(c.Height())/r.Height)
	}
	assertNear(t, "pixel ratio", c.PixelRatio(), 3)
}

func TestCanvasResizeEvent(t *testing.T) {
	c := NewCanvas(100, 50)
	var got []*ResizeEvent
	c.AddEventListener(EventResize, ListenerFunc(func(ev Event) {
		got = append(got, ev.(*ResizeEvent))
	}))

	c.SetWidth(100) // unchanged
	c.SetWidth(200)
	c.SetHeight(80)
	c.SetSize(200, 80) // unchanged

	if len(got) != 2 {
		t.Fatalf("resize events = %d, want 2", len(got))
	}
	if got[1].Width != 200 || got[1].Height != 80 {
		t.Errorf("last resize = %vx%v", got[1].Width, got[1].Height)
	}
	if got[0].Target != c {
		t.Error("resize target should be the canvas")
	}
}

func TestGetContext(t *testing.T) {
	resetGlobals(t)
	s := &fakeSurface{w: 64, h: 64}
	bound := Bind(s, 64, 64)
	unbound := NewCanvas(64, 64)

	tests := []struct {
		kind        ContextKind
		boundWant   Surface
		unboundWant Surface
		warning     string
	}{
		{ContextWebGL2, s, nil, ""},
		{ContextWebGL, s, nil, ""},
		{ContextExperimentalWebGL, s, nil, "legacy kind"},
		{Context2D, nil, nil, "unavailable"},
		{ContextBitmapRenderer, nil, nil, "unavailable"},
		{ContextKind("webgpu-ish"), nil, nil, "unknown context kind"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			logs := captureLog(t)
			if got := bound.GetContext(tt.kind); got != tt.boundWant {
				t.Errorf("bound GetContext = %v, want %v", got, tt.boundWant)
			}
			if tt.warning != "" && !strings.Contains(logs.String(), tt.warning) {
				t.Errorf("missing warning %q in %s", tt.warning, logs.String())
			}
			if got := unbound.GetContext(tt.kind); got != tt.unboundWant {
				t.Errorf("unbound GetContext = %v, want nil", got)
			}
		})
	}
}

func TestGetContextUnboundWarns(t *testing.T) {
	logs := captureLog(t)
	if NewCanvas(1, 1).GetContext(ContextWebGL2) != nil {
		t.Fatal("unbound canvas returned a context")
	}
	if !strings.Contains(logs.String(), "context not ready") {
		t.Errorf("missing not-ready warning: %s", logs.String())
	}
}

func TestCanvasUnsupportedOperations(t *testing.T) {
	c := NewCanvas(1, 1)
	if err := c.TransferControlToOffscreen(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("TransferControlToOffscreen err = %v", err)
	}
	url, err := c.ToDataURL("image/png")
	if url != "data:," || !errors.Is(err, ErrUnsupported) {
		t.Errorf("ToDataURL = %q, %v", url, err)
	}
	if b, err := c.ToBlob("image/png"); b != nil || !errors.Is(err, ErrUnsupported) {
		t.Errorf("ToBlob = %v, %v", b, err)
	}
	if err := c.CaptureStream(30); !errors.Is(err, ErrUnsupported) {
		t.Errorf("CaptureStream err = %v", err)
	}
	var ue *UnsupportedError
	if !errors.As(c.TransferControlToOffscreen(), &ue) || ue.Op != "transferControlToOffscreen" {
		t.Errorf("unexpected error type %T", ue)
	}
}

func TestCanvasProperty(t *testing.T) {
	c := NewCanvas(320, 240)
	c.setClientSize(160, 120)
	tests := []struct {
		name string
		want any
	}{
		{"width", 320},
		{"height", 240},
		{"clientWidth", 160.0},
		{"offsetHeight", 120.0},
		{"tagName", "CANVAS"},
		{"somethingElse", nil},
	}
	for _, tt := range tests {
		if got := c.Property(tt.name); got != tt.want {
			t.Errorf("Property(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if c.Style().Get("width") != "160px" {
		t.Errorf("style width = %q", c.Style().Get("width"))
	}
}

func TestCanvasOnPointer(t *testing.T) {
	resetGlobals(t)
	c := NewCanvas(10, 10)
	var got []gpucontext.PointerEvent
	c.OnPointer(func(ev gpucontext.PointerEvent) { got = append(got, ev) })

	b, _ := newTestBuilder()
	c.DispatchEvent(b.Build(Touch{Identifier: 1, X: 2, Y: 3}, PhaseStart, true, IdentityMapper()))
	c.DispatchEvent(b.Build(Touch{Identifier: 1, X: 2, Y: 3}, PhaseEnd, true, IdentityMapper()))
	c.DispatchEvent(newResizeEvent(1, 1))

	if len(got) != 2 {
		t.Fatalf("got %d gpu events, want 2", len(got))
	}
	if got[0].Type != gpucontext.PointerDown || got[1].Type != gpucontext.PointerUp {
		t.Errorf("types = %v, %v", got[0].Type, got[1].Type)
	}
}

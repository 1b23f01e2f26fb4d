package hostcanvas

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
)

// fakeSurface records presents and snapshots.
type fakeSurface struct {
	w, h     int
	presents int
	err      error
	snaps    []string
}

func (s *fakeSurface) DrawingBufferSize() (int, int) { return s.w, s.h }

func (s *fakeSurface) Present() error {
	s.presents++
	return s.err
}

func (s *fakeSurface) Snapshot(label string) { s.snaps = append(s.snaps, label) }

// plainSurface cannot snapshot.
type plainSurface struct{ w, h int }

func (s *plainSurface) DrawingBufferSize() (int, int) { return s.w, s.h }
func (s *plainSurface) Present() error                { return nil }

var errBoom = errors.New("boom")

// resetGlobals clears the active context and frame stats around a test.
func resetGlobals(t *testing.T) {
	t.Helper()
	Clear()
	frameStats = debugStats{}
	t.Cleanup(func() {
		Clear()
		frameStats = debugStats{}
	})
}

// captureLog routes the package logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

// recorder collects pointer events delivered to a target.
type recorder struct {
	events []*PointerEvent
	types  []string
}

func (r *recorder) HandleEvent(ev Event) error {
	r.types = append(r.types, ev.Type())
	if pe, ok := ev.(*PointerEvent); ok {
		cp := *pe
		r.events = append(r.events, &cp)
	}
	return nil
}

// listenPointer registers r for all pointer types on target and removes the
// registrations when the test ends.
func listenPointer(t *testing.T, target EventTarget, r *recorder) {
	t.Helper()
	for _, typ := range []string{EventPointerDown, EventPointerMove, EventPointerUp, EventPointerCancel} {
		h := target.AddEventListener(typ, r)
		t.Cleanup(h.Remove)
	}
}

package hostcanvas

import (
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
)

func newTestBuilder() (*EventBuilder, *PointerTable) {
	tb := NewPointerTable()
	cfg := DefaultConfig().Builder
	cfg.Clock = func() time.Duration { return 42 * time.Millisecond }
	return NewEventBuilder(tb, cfg), tb
}

func TestBuildButtonTable(t *testing.T) {
	tests := []struct {
		phase    Phase
		typ      string
		button   gpucontext.Button
		buttons  gpucontext.Buttons
		pressure float32
	}{
		{PhaseStart, EventPointerDown, gpucontext.ButtonLeft, gpucontext.ButtonsLeft, 0.5},
		{PhaseMove, EventPointerMove, gpucontext.ButtonNone, gpucontext.ButtonsLeft, 0.5},
		{PhaseEnd, EventPointerUp, gpucontext.ButtonLeft, gpucontext.ButtonsNone, 0},
		{PhaseCancel, EventPointerCancel, gpucontext.ButtonLeft, gpucontext.ButtonsNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			b, tb := newTestBuilder()
			tb.Update(1, 0, 0) // contact already down
			ev := b.Build(Touch{Identifier: 1, X: 4, Y: 4}, tt.phase, true, IdentityMapper())
			if ev.Type() != tt.typ {
				t.Errorf("type = %q, want %q", ev.Type(), tt.typ)
			}
			if ev.Button != tt.button || ev.Buttons != tt.buttons {
				t.Errorf("button/buttons = %d/%d, want %d/%d", ev.Button, ev.Buttons, tt.button, tt.buttons)
			}
			if ev.Pressure != tt.pressure {
				t.Errorf("pressure = %v, want %v", ev.Pressure, tt.pressure)
			}
		})
	}
}

func TestBuildMoveUntrackedHasNoButtons(t *testing.T) {
	b, _ := newTestBuilder()
	ev := b.Build(Touch{Identifier: 4, X: 1, Y: 1}, PhaseMove, false, IdentityMapper())
	if ev.Buttons != gpucontext.ButtonsNone {
		t.Errorf("buttons = %d, want none for untracked contact", ev.Buttons)
	}
}

func TestBuildMovementAndRelease(t *testing.T) {
	b, tb := newTestBuilder()
	m := IdentityMapper()

	down := b.Build(Touch{Identifier: 7, X: 10, Y: 10}, PhaseStart, true, m)
	if down.MovementX != 0 || down.MovementY != 0 {
		t.Errorf("down movement = (%v, %v), want 0", down.MovementX, down.MovementY)
	}
	move := b.Build(Touch{Identifier: 7, X: 15, Y: 8}, PhaseMove, true, m)
	if move.MovementX != 5 || move.MovementY != -2 {
		t.Errorf("move movement = (%v, %v), want (5, -2)", move.MovementX, move.MovementY)
	}
	// Delta is computed before the entry is cleared.
	up := b.Build(Touch{Identifier: 7, X: 20, Y: 8}, PhaseEnd, true, m)
	if up.MovementX != 5 || up.MovementY != 0 {
		t.Errorf("up movement = (%v, %v), want (5, 0)", up.MovementX, up.MovementY)
	}
	if tb.Tracked(7) {
		t.Error("end phase left the contact tracked")
	}
}

func TestBuildCancelReleases(t *testing.T) {
	b, tb := newTestBuilder()
	b.Build(Touch{Identifier: 2}, PhaseStart, true, IdentityMapper())
	ev := b.Build(Touch{Identifier: 2}, PhaseCancel, true, IdentityMapper())
	if tb.Tracked(2) {
		t.Error("cancel left the contact tracked")
	}
	if ev.Cancelable {
		t.Error("pointercancel should not be cancelable")
	}
}

func TestBuildCoordinateSpaces(t *testing.T) {
	b, _ := newTestBuilder()
	ev := b.Build(Touch{Identifier: 1, X: 10, Y: 5}, PhaseStart, true, NewCoordMapper(2, 0, 0))

	if ev.ScreenX != 10 || ev.ScreenY != 5 {
		t.Errorf("screen = (%v, %v), want host (10, 5)", ev.ScreenX, ev.ScreenY)
	}
	for name, got := range map[string][2]float64{
		"client": {ev.ClientX, ev.ClientY},
		"xy":     {ev.X, ev.Y},
		"page":   {ev.PageX, ev.PageY},
		"offset": {ev.OffsetX, ev.OffsetY},
	} {
		if got != [2]float64{20, 10} {
			t.Errorf("%s = %v, want physical (20, 10)", name, got)
		}
	}
	if ev.GlobalX != 10 || ev.GlobalY != 5 {
		t.Errorf("global = (%v, %v), want engine (10, 5)", ev.GlobalX, ev.GlobalY)
	}
}

func TestBuildIdentityFields(t *testing.T) {
	b, _ := newTestBuilder()
	ev := b.Build(Touch{Identifier: 11, X: 1, Y: 1}, PhaseStart, false, IdentityMapper())
	if ev.PointerID != 11 || ev.IsPrimary {
		t.Errorf("id/primary = %d/%v", ev.PointerID, ev.IsPrimary)
	}
	if ev.PointerType != gpucontext.PointerTypeTouch {
		t.Errorf("pointer type = %v, want touch", ev.PointerType)
	}
	if ev.Width != 1 || ev.Height != 1 {
		t.Errorf("contact size = %vx%v, want 1x1", ev.Width, ev.Height)
	}
	if ev.TimeStamp != 42*time.Millisecond {
		t.Errorf("timestamp = %v", ev.TimeStamp)
	}
	if ev.GetCoalescedEvents() != nil || ev.GetPredictedEvents() != nil {
		t.Error("coalesced/predicted events should be empty")
	}
}

func TestBuildZeroConfigUsesDefaults(t *testing.T) {
	b := NewEventBuilder(NewPointerTable(), BuilderConfig{})
	ev := b.Build(Touch{Identifier: 1}, PhaseStart, true, IdentityMapper())
	if ev.Pressure != defaultActivePressure || ev.Buttons != gpucontext.ButtonsLeft {
		t.Errorf("pressure/buttons = %v/%d", ev.Pressure, ev.Buttons)
	}
}

func TestPrimaryOf(t *testing.T) {
	if _, ok := PrimaryOf(nil); ok {
		t.Error("empty list should have no primary")
	}
	id, ok := PrimaryOf([]Touch{{Identifier: 7}, {Identifier: 9}})
	if !ok || id != 7 {
		t.Errorf("PrimaryOf = %d, %v; want 7, true", id, ok)
	}
}

func TestGPUEventConversion(t *testing.T) {
	b, _ := newTestBuilder()
	ev := b.Build(Touch{Identifier: 3, X: 6, Y: 8}, PhaseStart, true, NewCoordMapper(3, 0, 0))
	g := ev.GPUEvent()
	if g.Type != gpucontext.PointerDown || g.PointerID != 3 || !g.IsPrimary {
		t.Errorf("gpu event = %+v", g)
	}
	if g.X != 6 || g.Y != 8 {
		t.Errorf("gpu position = (%v, %v), want engine space (6, 8)", g.X, g.Y)
	}
}

package hostcanvas

import "testing"

func TestLoadGestureScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "snapshot", "label": "initial"},
			{"action": "tap", "id": 1, "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "id": 2, "fromX": 0, "fromY": 0, "toX": 10, "toY": 10, "frames": 4}
		]
	}`)

	runner, err := LoadGestureScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "snapshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if st := runner.steps[1]; st.Action != "tap" || st.ID != 1 || st.X != 100 || st.Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if st := runner.steps[3]; st.ToX != 10 || st.Frames != 4 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadGestureScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadGestureScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_Tap(t *testing.T) {
	v, _, rec := newTestView(t, PrimaryFrozen)

	runner, err := LoadGestureScript([]byte(`{"steps": [{"action": "tap", "id": 1, "x": 5, "y": 5}]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetGestureRunner(runner)

	// First step call: tap queues start+end (2 batches).
	runner.step(v)
	if v.Pending() != 2 {
		t.Fatalf("expected 2 queued batches, got %d", v.Pending())
	}
	if runner.Done() {
		t.Error("runner should not be done while batches are pending")
	}

	// Drain injections.
	v.processInjected()
	v.processInjected()

	runner.step(v)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	if len(rec.events) != 2 {
		t.Errorf("expected 2 events, got %d", len(rec.events))
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	v, _, _ := newTestView(t, PrimaryFrozen)
	runner, err := LoadGestureScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(v) // consumes the wait step, 2 frames left
	if runner.Done() {
		t.Fatal("done too early")
	}
	runner.step(v)
	runner.step(v)
	runner.step(v)
	if !runner.Done() {
		t.Error("runner should be done after waiting")
	}
}

func TestRunnerSnapshot(t *testing.T) {
	resetGlobals(t)
	v := NewView(DefaultConfig())
	s := &fakeSurface{w: 10, h: 10}
	v.SurfaceReady(s, 10, 10)

	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "snapshot", "label": "before"},
		{"action": "down", "id": 1, "x": 1, "y": 1},
		{"action": "move", "id": 1, "x": 2, "y": 1},
		{"action": "up", "id": 1, "x": 2, "y": 1},
		{"action": "snapshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetGestureRunner(runner)
	for i := 0; i < 20 && !runner.Done(); i++ {
		v.Update()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if len(s.snaps) != 2 || s.snaps[0] != "before" || s.snaps[1] != "after" {
		t.Errorf("snaps = %v", s.snaps)
	}
}

func TestRunnerSnapshotWithoutSupport(t *testing.T) {
	resetGlobals(t)
	captureLog(t)
	Bind(&plainSurface{w: 1, h: 1}, 1, 1)
	snapshot("x") // must not panic
	Clear()
	snapshot("y")
}

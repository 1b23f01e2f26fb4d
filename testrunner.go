package hostcanvas

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string    `json:"action"`
	Label  string    `json:"label,omitempty"`
	ID     PointerID `json:"id,omitempty"`
	X      float64   `json:"x,omitempty"`
	Y      float64   `json:"y,omitempty"`
	FromX  float64   `json:"fromX,omitempty"`
	FromY  float64   `json:"fromY,omitempty"`
	ToX    float64   `json:"toX,omitempty"`
	ToY    float64   `json:"toY,omitempty"`
	Frames int       `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

var knownActions = map[string]bool{
	"down": true, "move": true, "up": true, "cancel": true,
	"tap": true, "drag": true, "wait": true, "snapshot": true,
}

// GestureRunner sequences injected touches and snapshots across frames for
// scripted testing of an engine running on the adapter. Attach to a View via
// SetGestureRunner.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script:
//
//	{"steps": [
//		{"action": "down", "id": 1, "x": 10, "y": 20},
//		{"action": "move", "id": 1, "x": 30, "y": 20},
//		{"action": "up", "id": 1, "x": 30, "y": 20},
//		{"action": "drag", "id": 2, "fromX": 0, "fromY": 0, "toX": 50, "toY": 50, "frames": 6},
//		{"action": "wait", "frames": 3},
//		{"action": "snapshot", "label": "after-drag"}
//	]}
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetGestureRunner attaches a runner to the view. The runner's step method is
// called from View.Update before injected input is processed each frame.
func (v *View) SetGestureRunner(r *GestureRunner) {
	v.runner = r
}

// Done reports whether all steps in the script have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from View.Update.
func (r *GestureRunner) step(v *View) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "snapshot":
		snapshot(st.Label)
	case "down":
		v.InjectTouchStart(st.ID, st.X, st.Y)
	case "move":
		v.InjectTouchMove(st.ID, st.X, st.Y)
	case "up":
		v.InjectTouchEnd(st.ID, st.X, st.Y)
	case "cancel":
		v.InjectTouchCancel(st.ID, st.X, st.Y)
	case "tap":
		v.InjectTap(st.ID, st.X, st.Y)
	case "drag":
		v.InjectDrag(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}

// snapshot asks the bound surface to capture itself. Surfaces without
// snapshot support are skipped with a warning.
func snapshot(label string) {
	s := CurrentSurface()
	if s == nil {
		Logger().Warn("snapshot skipped: no surface bound", "label", label)
		return
	}
	sn, ok := s.(Snapshotter)
	if !ok {
		Logger().Warn("snapshot skipped: surface cannot capture", "label", label)
		return
	}
	sn.Snapshot(label)
}

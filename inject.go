package hostcanvas

import "slices"

// gestureBatch is one queued host-style gesture callback. Touches carry
// host logical coordinates, exactly as a real gesture would.
type gestureBatch struct {
	phase   Phase
	changed []Touch
}

// InjectTouchStart queues a contact starting at (x, y). Queued batches are
// replayed one per Update through HandleGesture, so injected input takes the
// same path as host input.
func (v *View) InjectTouchStart(id PointerID, x, y float64) {
	v.inject(PhaseStart, id, x, y)
}

// InjectTouchMove queues a move of contact id to (x, y).
func (v *View) InjectTouchMove(id PointerID, x, y float64) {
	v.inject(PhaseMove, id, x, y)
}

// InjectTouchEnd queues contact id lifting at (x, y).
func (v *View) InjectTouchEnd(id PointerID, x, y float64) {
	v.inject(PhaseEnd, id, x, y)
}

// InjectTouchCancel queues the host aborting contact id at (x, y).
func (v *View) InjectTouchCancel(id PointerID, x, y float64) {
	v.inject(PhaseCancel, id, x, y)
}

func (v *View) inject(phase Phase, id PointerID, x, y float64) {
	v.injectQueue = append(v.injectQueue, gestureBatch{
		phase:   phase,
		changed: []Touch{{Identifier: id, X: x, Y: y}},
	})
}

// InjectTap is a convenience that queues a start followed by an end at the
// same coordinates. Consumes two frames.
func (v *View) InjectTap(id PointerID, x, y float64) {
	v.InjectTouchStart(id, x, y)
	v.InjectTouchEnd(id, x, y)
}

// InjectDrag queues a full drag sequence: start at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and end at (toX, toY).
// The total sequence consumes `frames` frames. Minimum frames is 2.
func (v *View) InjectDrag(id PointerID, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectTouchStart(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		v.InjectTouchMove(id, x, y)
	}
	v.InjectTouchEnd(id, toX, toY)
}

// Pending returns the number of queued injected batches.
func (v *View) Pending() int { return len(v.injectQueue) }

// processInjected pops one batch and replays it. The full contact list is
// maintained the way hosts report it: contacts in start order, with lifted
// contacts already removed on end and cancel.
// Returns true if a batch was consumed.
func (v *View) processInjected() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	b := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	for _, t := range b.changed {
		i := slices.IndexFunc(v.injected, func(c Touch) bool { return c.Identifier == t.Identifier })
		switch {
		case b.phase.Releases():
			if i >= 0 {
				v.injected = slices.Delete(v.injected, i, i+1)
			}
		case i >= 0:
			v.injected[i] = t
		default:
			v.injected = append(v.injected, t)
		}
	}
	v.HandleGesture(b.phase, b.changed, slices.Clone(v.injected))
	return true
}

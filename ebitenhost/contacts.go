package ebitenhost

import (
	"slices"

	"github.com/phanxgames/hostcanvas"
)

// gesture is one host-style gesture callback: the contacts that changed in a
// phase and the full list of contacts still down.
type gesture struct {
	phase   hostcanvas.Phase
	changed []hostcanvas.Touch
	all     []hostcanvas.Touch
}

// contactTracker turns per-tick contact snapshots into gesture callbacks.
// Ebitengine only reports which contacts are down each tick; the tracker
// remembers the previous tick to find starts, moves and ends.
type contactTracker struct {
	down []hostcanvas.Touch // contacts in first-seen order
}

// diff compares the contacts down this tick against the previous tick and
// returns the gestures to deliver, in the order move, end, start. Lifted
// contacts report their last known position. Ending before starting lets a
// finger placed in the same tick another one lifts begin a new gesture.
func (t *contactTracker) diff(cur []hostcanvas.Touch) []gesture {
	var out []gesture

	var moved []hostcanvas.Touch
	for i, prev := range t.down {
		j := slices.IndexFunc(cur, func(c hostcanvas.Touch) bool { return c.Identifier == prev.Identifier })
		if j < 0 {
			continue
		}
		if cur[j].X != prev.X || cur[j].Y != prev.Y {
			t.down[i] = cur[j]
			moved = append(moved, cur[j])
		}
	}
	if len(moved) > 0 {
		out = append(out, gesture{phase: hostcanvas.PhaseMove, changed: moved, all: slices.Clone(t.down)})
	}

	var ended []hostcanvas.Touch
	t.down = slices.DeleteFunc(t.down, func(prev hostcanvas.Touch) bool {
		if !containsID(cur, prev.Identifier) {
			ended = append(ended, prev)
			return true
		}
		return false
	})
	if len(ended) > 0 {
		out = append(out, gesture{phase: hostcanvas.PhaseEnd, changed: ended, all: slices.Clone(t.down)})
	}

	var started []hostcanvas.Touch
	for _, c := range cur {
		if !containsID(t.down, c.Identifier) {
			started = append(started, c)
			t.down = append(t.down, c)
		}
	}
	if len(started) > 0 {
		out = append(out, gesture{phase: hostcanvas.PhaseStart, changed: started, all: slices.Clone(t.down)})
	}
	return out
}

// cancelAll aborts every contact still down, for focus loss and teardown.
func (t *contactTracker) cancelAll() []gesture {
	if len(t.down) == 0 {
		return nil
	}
	g := gesture{phase: hostcanvas.PhaseCancel, changed: t.down}
	t.down = nil
	return []gesture{g}
}

// Len returns the number of contacts down.
func (t *contactTracker) Len() int { return len(t.down) }

func containsID(list []hostcanvas.Touch, id hostcanvas.PointerID) bool {
	return slices.ContainsFunc(list, func(c hostcanvas.Touch) bool { return c.Identifier == id })
}

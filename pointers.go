package hostcanvas

import "slices"

// PointerID identifies one active contact. The host assigns it; it is unique
// while the contact is down and may be reused after release.
type PointerID int

// pointerPos is the last observed position for one contact, in host logical units.
type pointerPos struct {
	x, y float64
}

// PointerTable stores the last known position of every active contact so that
// movement deltas can be computed per id. An entry exists only while its
// contact is down.
//
// PointerTable is not safe for concurrent use; the host delivers gestures on a
// single UI thread.
type PointerTable struct {
	pos map[PointerID]pointerPos
}

// NewPointerTable creates an empty table.
func NewPointerTable() *PointerTable {
	return &PointerTable{pos: make(map[PointerID]pointerPos)}
}

// Update records (x, y) for id and returns the movement relative to the
// previous record for the same id. The first update for an id reports zero
// movement.
func (t *PointerTable) Update(id PointerID, x, y float64) (dx, dy float64) {
	if prev, ok := t.pos[id]; ok {
		dx = x - prev.x
		dy = y - prev.y
	}
	t.pos[id] = pointerPos{x: x, y: y}
	return dx, dy
}

// Position returns the last recorded position for id. ok is false when the id
// has no prior position (never seen, or released).
func (t *PointerTable) Position(id PointerID) (x, y float64, ok bool) {
	p, ok := t.pos[id]
	return p.x, p.y, ok
}

// Tracked reports whether id currently has a recorded position.
func (t *PointerTable) Tracked(id PointerID) bool {
	_, ok := t.pos[id]
	return ok
}

// Release forgets id. Releasing an unknown id is a no-op.
func (t *PointerTable) Release(id PointerID) {
	delete(t.pos, id)
}

// Len returns the number of tracked contacts.
func (t *PointerTable) Len() int {
	return len(t.pos)
}

// IDs returns the tracked ids in ascending order.
func (t *PointerTable) IDs() []PointerID {
	ids := make([]PointerID, 0, len(t.pos))
	for id := range t.pos {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Reset drops every entry. Called on unmount.
func (t *PointerTable) Reset() {
	clear(t.pos)
}

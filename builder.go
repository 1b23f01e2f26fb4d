package hostcanvas

import "time"

// EventBuilder turns raw host touches into PointerEvents. It owns the
// bookkeeping side of the pointer table: it records positions on start and
// move and releases them on end and cancel.
type EventBuilder struct {
	table *PointerTable
	cfg   BuilderConfig
	epoch time.Time
}

// NewEventBuilder creates a builder writing positions into table. Zero
// fields of cfg take the values from DefaultConfig.
func NewEventBuilder(table *PointerTable, cfg BuilderConfig) *EventBuilder {
	def := DefaultConfig().Builder
	if cfg.ActivePressure <= 0 {
		cfg.ActivePressure = def.ActivePressure
	}
	if cfg.ContactSize <= 0 {
		cfg.ContactSize = def.ContactSize
	}
	if cfg.Buttons == (ButtonTable{}) {
		cfg.Buttons = def.Buttons
	}
	return &EventBuilder{table: table, cfg: cfg, epoch: time.Now()}
}

// Table returns the pointer table the builder writes to.
func (b *EventBuilder) Table() *PointerTable { return b.table }

func (b *EventBuilder) now() time.Duration {
	if b.cfg.Clock != nil {
		return b.cfg.Clock()
	}
	return time.Since(b.epoch)
}

// Build produces the event for one touch in one phase. primary is decided by
// the caller from the full contact list; see PrimaryOf.
//
// Movement is reported in engine space against the previous record for the
// same identifier and is zero on first contact. For end and cancel the delta
// is computed before the table entry is released.
func (b *EventBuilder) Build(t Touch, phase Phase, primary bool, m CoordMapper) *PointerEvent {
	wasTracked := b.table.Tracked(t.Identifier)
	dx, dy := b.table.Update(t.Identifier, t.X, t.Y)
	if phase.Releases() {
		b.table.Release(t.Identifier)
	}

	cx, cy := m.Client(t.X, t.Y)
	gx, gy := m.Global(t.X, t.Y)

	ev := &PointerEvent{
		BaseEvent: BaseEvent{
			EventType:  phase.EventType(),
			TimeStamp:  b.now(),
			Bubbles:    true,
			Cancelable: phase != PhaseCancel,
			IsTrusted:  true,
		},
		PointerID:   t.Identifier,
		PointerType: b.cfg.PointerType,
		IsPrimary:   primary,
		Phase:       phase,
		ScreenX:     t.X,
		ScreenY:     t.Y,
		ClientX:     cx,
		ClientY:     cy,
		X:           cx,
		Y:           cy,
		PageX:       cx,
		PageY:       cy,
		OffsetX:     cx,
		OffsetY:     cy,
		GlobalX:     gx,
		GlobalY:     gy,
		MovementX:   dx,
		MovementY:   dy,
		Width:       b.cfg.ContactSize,
		Height:      b.cfg.ContactSize,
	}

	bt := b.cfg.Buttons
	switch phase {
	case PhaseStart:
		ev.Button, ev.Buttons = bt.Start.Button, bt.Start.Buttons
		ev.Pressure = b.cfg.ActivePressure
	case PhaseMove:
		ev.Button = bt.MoveButton
		if wasTracked {
			ev.Buttons = bt.ActiveButtons
		}
		ev.Pressure = b.cfg.ActivePressure
	default:
		ev.Button, ev.Buttons = bt.Release.Button, bt.Release.Buttons
	}
	frameStats.eventsBuilt++
	return ev
}

// PrimaryOf returns the identifier of the first entry in the full list of
// current contacts. ok is false for an empty list.
func PrimaryOf(all []Touch) (id PointerID, ok bool) {
	if len(all) == 0 {
		return 0, false
	}
	return all[0].Identifier, true
}

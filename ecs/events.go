package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventChomp fires on the frame a chomp was triggered. Data is the head position.
	EventChomp = "chomp"
	// EventSpecReloaded fires after a creature spec was re-applied. Data is the spec name.
	EventSpecReloaded = "spec_reloaded"
	// EventScriptChanged fires when a wander script changed on disk. Data is the script file name.
	EventScriptChanged = "script_changed"
	// EventTuningChanged fires when live tuning changed a creature. Data is a short description.
	EventTuningChanged = "tuning_changed"
	// EventStatus carries a free-form status line for the overlay.
	EventStatus = "status"
)

// EventQueue collects events for one frame. Every system sees the whole
// frame's queue; it is cleared after the last system ran.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Of returns this frame's events of the given type.
func (q *EventQueue) Of(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
